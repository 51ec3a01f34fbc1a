package geometry

import "errors"

var (
	// ErrZeroRadius indicates a tangential move around a center the point sits on.
	ErrZeroRadius = errors.New("geometry: tangential translation at zero radius")
	// ErrNonPositiveBound indicates a logarithmic interpolation bound <= 0.
	ErrNonPositiveBound = errors.New("geometry: logarithmic interpolation bounds must be greater than 0")
)
