// Package scene describes a generated picture independently of SVG syntax:
// shapes in absolute pixels, their fills and filters, the gradient and filter
// definitions they reference and the declarative animations attached to them.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/genart/internal/geometry"
)

// ErrInvalidScene indicates a scene that references undefined definitions or
// carries a malformed animation.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene represents a complete generated picture
type Scene struct {
	Module     string     `yaml:"module"`
	Seed       int64      `yaml:"seed"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background string     `yaml:"background,omitempty"`
	Gradients  []Gradient `yaml:"gradients,omitempty"`
	Filters    []Filter   `yaml:"filters,omitempty"`
	Shapes     []Shape    `yaml:"shapes"`
	Warnings   []string   `yaml:"warnings,omitempty"`
}

// New creates an empty scene of the given pixel size.
func New(width, height int) *Scene {
	return &Scene{Width: width, Height: height, Shapes: []Shape{}}
}

// Canvas returns the normalized-to-pixel converter for the scene size.
func (s *Scene) Canvas() geometry.Canvas {
	return geometry.NewCanvas(s.Width, s.Height)
}

// Warn records a non-fatal problem found during generation.
func (s *Scene) Warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// Add appends shapes in paint order.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddFilter registers a filter definition once; later filters with the same
// id are ignored.
func (s *Scene) AddFilter(f Filter) {
	if s.HasFilter(f.ID) {
		return
	}
	s.Filters = append(s.Filters, f)
}

// HasFilter reports whether a filter with id is defined.
func (s *Scene) HasFilter(id string) bool {
	for _, f := range s.Filters {
		if f.ID == id {
			return true
		}
	}
	return false
}

// AddGradient registers a gradient definition.
func (s *Scene) AddGradient(g Gradient) {
	s.Gradients = append(s.Gradients, g)
}

// Validate checks that every reference resolves and every animation is well formed.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}

	gradients := make(map[string]bool, len(s.Gradients))
	for _, g := range s.Gradients {
		gradients[g.ID] = true
	}

	for _, f := range s.Filters {
		for _, p := range f.Primitives {
			if err := p.validate(); err != nil {
				return fmt.Errorf("%w: filter %s: %v", ErrInvalidScene, f.ID, err)
			}
		}
	}

	for i, sh := range s.Shapes {
		if sh.Filter != "" && !s.HasFilter(sh.Filter) {
			return fmt.Errorf("%w: shape %d uses undefined filter %q", ErrInvalidScene, i, sh.Filter)
		}
		if id, ok := Ref(sh.Fill); ok && !gradients[id] {
			return fmt.Errorf("%w: shape %d uses undefined gradient %q", ErrInvalidScene, i, id)
		}
		for _, a := range sh.Animations {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("%w: shape %d: %v", ErrInvalidScene, i, err)
			}
		}
	}
	return nil
}

// URL returns the paint/filter reference for a definition id.
func URL(id string) string {
	return "url(#" + id + ")"
}

// Ref extracts the definition id from a url(#id) reference.
func Ref(v string) (string, bool) {
	if !strings.HasPrefix(v, "url(#") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	return v[len("url(#") : len(v)-1], true
}
