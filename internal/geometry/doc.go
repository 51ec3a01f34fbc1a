// Package geometry holds the pure math shared by every generator: percentage
// scaling, regular point placement, radial and tangential perturbation, spline
// control points and interpolation sequences.
//
// Points live in a normalized 0-100 space on both axes. They are converted to
// pixels only when a path or shape is serialized, using the width for X and the
// height for Y, so canvases never have to be square.
package geometry
