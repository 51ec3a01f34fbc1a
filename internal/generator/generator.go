// Package generator synthesizes scenes for the visual modules.
//
// A generator draws every random value from Input.Rand in a fixed order, and
// that order is part of its contract: the same seed and configuration always
// give the same scene. Values are drawn before any element is skipped for an
// invalid color, so a bad color never shifts the rest of the picture.
package generator

import (
	"errors"

	"github.com/ivlev/genart/internal/colors"
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/geometry"
	"github.com/ivlev/genart/internal/palette"
	"github.com/ivlev/genart/internal/rng"
	"github.com/ivlev/genart/internal/scene"
)

var (
	// ErrUnknownModule indicates a module name with no generator.
	ErrUnknownModule = errors.New("generator: unknown module")
	// ErrNotImplemented indicates a known module that has no generator yet.
	ErrNotImplemented = errors.New("generator: module not implemented")
)

// Input is everything a generator reads.
type Input struct {
	Config  *config.Config
	Rand    *rng.Rand
	Palette palette.Palette
}

// Generator builds one scene per call.
type Generator interface {
	Name() string
	Generate(in Input) (*scene.Scene, error)
}

func newScene(in Input) *scene.Scene {
	g := in.Config.General
	sc := scene.New(g.Width, g.Height)
	sc.Module = g.Module
	sc.Seed = g.Seed
	return sc
}

// pickFill returns the fixed color or draws one from the palette.
func (in Input) pickFill(f config.Fill) (string, error) {
	if f.SingleColor {
		return f.FillColor, nil
	}
	return in.Rand.Choice(in.Palette)
}

// checkColor normalizes a color, recording a warning when it is invalid.
func checkColor(sc *scene.Scene, what, raw string) (string, bool) {
	c, err := colors.Normalize(raw)
	if err != nil {
		sc.Warn("%s: invalid color %q, skipped", what, raw)
		return "", false
	}
	return c, true
}

// shadowColor resolves the shadow flood color, optionally the complement of
// the fixed fill.
func shadowColor(sc *scene.Scene, s config.Shadow, f config.Fill) (string, bool) {
	if f.SingleColor && s.Complementary {
		c, err := colors.Complementary(f.FillColor)
		if err != nil {
			sc.Warn("shadow: invalid fill color %q for complementary shadow, skipped", f.FillColor)
			return "", false
		}
		return c, true
	}
	return checkColor(sc, "shadow", s.Color)
}

func num(v float64) string {
	return geometry.FormatNumber(v)
}

func pair(x, y float64) string {
	return num(x) + " " + num(y)
}
