package generator

import (
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/scene"
)

// Filters draws a single circle or square lit through a turbulence texture.
// When animated the point light wanders along x and y and bobs in z.
//
// Draws: fill (palette only).
type Filters struct{}

// Name returns the module name.
func (Filters) Name() string { return config.ModuleFilters }

// Generate builds the lit shape scene.
func (Filters) Generate(in Input) (*scene.Scene, error) {
	g := in.Config.General
	f := in.Config.Filters
	sc := newScene(in)
	cv := sc.Canvas()

	lighting, lit := checkColor(sc, "lighting", f.LightingColor)
	if lit {
		light := pointLight(cv.X(f.MinXPerc), cv.Y(f.MinYPerc), f.MinZ)

		if g.IsAnimated {
			dur, rep := g.AnimationDuration, g.RepeatAnimation
			light = light.Animate(
				scene.Animate("x", dur, rep, scene.Loop(num(cv.X(f.MinXPerc)), num(cv.X(f.MaxXPerc)))...),
				scene.Animate("y", dur, rep, scene.Loop(num(cv.Y(f.MinYPerc)), num(cv.Y(f.MaxYPerc)))...),
				scene.Animate("z", dur, rep, num(f.MinZ), num(f.MaxZ), num(f.MinZ), num(f.MaxZ), num(f.MinZ)),
			)

			// Browsers only replay the light animation while some shape in
			// the document is animated too
			enabler := scene.Circle(cv.X(50), cv.Y(50), 0, "black").Animate(
				scene.Tween("cx", num(cv.X(40)), num(cv.X(60)), dur, rep),
			)
			sc.Add(enabler)
		}

		sc.AddFilter(texturedFilter(texturedFilterID, f.Texture, lighting, light))
	}

	raw, err := in.pickFill(f.Fill)
	if err != nil {
		return nil, err
	}
	fill, ok := checkColor(sc, "shape", raw)
	if !ok {
		return sc, nil
	}

	var shape scene.Shape
	d := f.ShapeDimensions
	switch f.Shape {
	case "Square":
		shape = scene.Rect(cv.X((100-d)/2), cv.Y((100-d)/2), cv.X(d), cv.X(d), fill)
	default:
		shape = scene.Circle(cv.X(50), cv.Y(50), cv.X(d/2), fill)
	}
	if lit {
		shape.Filter = texturedFilterID
	}

	sc.Add(shape)
	return sc, nil
}
