// Package render serializes a scene into an SVG document.
package render

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ivlev/genart/internal/scene"
)

// ErrNilScene indicates a call without a scene.
var ErrNilScene = errors.New("render: nil scene")

// Options controls document metadata and the optional QR stamp.
type Options struct {
	Title       string
	Description string
	// Stamp is encoded as a QR code in the bottom-right corner when not empty.
	Stamp string
}

// errWriter remembers the first write error so drawing code can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Write renders sc as a complete SVG document.
func Write(w io.Writer, sc *scene.Scene, opts Options) error {
	if sc == nil {
		return ErrNilScene
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(sc.Width, sc.Height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	if opts.Description != "" {
		canvas.Desc(opts.Description)
	}

	if len(sc.Gradients) > 0 || len(sc.Filters) > 0 {
		canvas.Def()
		for _, g := range sc.Gradients {
			stops := make([]svg.Offcolor, len(g.Stops))
			for i, s := range g.Stops {
				stops[i] = svg.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: s.Opacity}
			}
			canvas.LinearGradient(g.ID, g.X1, g.Y1, g.X2, g.Y2, stops)
		}
		for _, f := range sc.Filters {
			writeFilter(canvas.Writer, f)
		}
		canvas.DefEnd()
	}

	if sc.Background != "" {
		canvas.Rect(0, 0, sc.Width, sc.Height, attr("fill", sc.Background))
	}

	for _, sh := range sc.Shapes {
		writeShape(canvas, sh)
	}

	if opts.Stamp != "" {
		if err := drawStamp(canvas, sc.Width, sc.Height, opts.Stamp); err != nil {
			return fmt.Errorf("render stamp: %w", err)
		}
	}

	canvas.End()
	return ew.err
}

func writeShape(canvas *svg.SVG, sh scene.Shape) {
	attrs := shapeAttrs(sh)

	// Static paths have nothing svgo cannot express
	if sh.Kind == scene.KindPath && len(sh.Animations) == 0 {
		canvas.Path(sh.D, attrs...)
		return
	}

	var geometry []string
	switch sh.Kind {
	case scene.KindCircle:
		geometry = []string{numAttr("cx", sh.CX), numAttr("cy", sh.CY), numAttr("r", sh.R)}
	case scene.KindRect:
		geometry = []string{numAttr("x", sh.X), numAttr("y", sh.Y), numAttr("width", sh.Width), numAttr("height", sh.Height)}
	case scene.KindPath:
		geometry = []string{attr("d", sh.D)}
	}

	writeElement(canvas.Writer, string(sh.Kind), append(geometry, attrs...), sh.Animations, nil)
}

func shapeAttrs(sh scene.Shape) []string {
	attrs := []string{attr("fill", sh.Fill)}
	if sh.FillOpacity > 0 {
		attrs = append(attrs, numAttr("fill-opacity", sh.FillOpacity))
	}
	if sh.Filter != "" {
		attrs = append(attrs, attr("filter", scene.URL(sh.Filter)))
	}
	if sh.Transform != "" {
		attrs = append(attrs, attr("transform", sh.Transform))
	}
	return attrs
}
