package generator

import (
	"fmt"

	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/scene"
)

// Bubbles scatters circles, optionally shaded with a fading gradient,
// distorted by turbulence and drifting up and sideways.
//
// Draws per bubble: x, y, radius, fill (palette only), then dx, dy when
// animated. One palette draw follows for the noise overlay.
type Bubbles struct{}

// Name returns the module name.
func (Bubbles) Name() string { return config.ModuleBubbles }

// Generate builds the bubble scene.
func (Bubbles) Generate(in Input) (*scene.Scene, error) {
	g := in.Config.General
	b := in.Config.Bubbles
	sc := newScene(in)
	cv := sc.Canvas()

	if b.IsDistorted {
		sc.AddFilter(distortFilter())
	}

	for i := 0; i < b.Count; i++ {
		// Positions overshoot the canvas so bubbles can be cut by the edges
		x := 120*in.Rand.Float64() - 10
		y := 120*in.Rand.Float64() - 10
		radius := in.Rand.Between(b.MinRadius, b.MaxRadius)

		raw, err := in.pickFill(b.Fill)
		if err != nil {
			return nil, fmt.Errorf("bubble %d: %w", i, err)
		}

		var dx, dy float64
		if g.IsAnimated {
			dx = in.Rand.Between(b.MinX, b.MaxX)
			dy = in.Rand.Between(b.MinY, b.MaxY)
		}

		base, ok := checkColor(sc, fmt.Sprintf("bubble %d", i), raw)
		if !ok {
			continue
		}

		fill := base
		if b.HasGradient {
			id := fmt.Sprintf("gradient-%d", i)
			sc.AddGradient(scene.Gradient{
				ID: id, X1: 0, Y1: 0, X2: 100, Y2: 100,
				Stops: []scene.Stop{
					{Offset: 0, Color: base, Opacity: 1},
					{Offset: 100, Color: base, Opacity: 0.1},
				},
			})
			fill = scene.URL(id)
		}

		cx, cy := cv.X(x), cv.Y(y)
		circle := scene.Circle(cx, cy, cv.X(radius), fill)
		if b.IsDistorted {
			circle.Filter = distortFilterID
		}

		if g.IsAnimated {
			circle = circle.Animate(
				scene.Animate("cx", g.AnimationDuration, g.RepeatAnimation, scene.Loop(num(cx), num(cx+cv.X(dx)))...),
				scene.Animate("cy", g.AnimationDuration, g.RepeatAnimation, scene.Loop(num(cy), num(cy-cv.Y(dy)))...),
			)
		}

		sc.Add(circle)
	}

	if b.HasNoise {
		if err := addNoise(sc, in); err != nil {
			return nil, err
		}
	}
	return sc, nil
}
