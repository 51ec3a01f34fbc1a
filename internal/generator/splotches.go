package generator

import (
	"fmt"

	"github.com/ivlev/genart/internal/colors"
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/geometry"
	"github.com/ivlev/genart/internal/path"
	"github.com/ivlev/genart/internal/scene"
)

// Splotches draws organic blobs around random centers. Each blob can morph,
// drift and spin; shadows are offset by a transform so they stay below the
// blob while it rotates.
//
// Draws per splotch: center x and y, radius, point count, a tangential and a
// radial offset per point, the animated radial offset per point, fill
// (palette only), then translation x and y and the rotation duration when
// those animations are enabled. One palette draw follows for the noise
// overlay.
type Splotches struct{}

// Name returns the module name.
func (Splotches) Name() string { return config.ModuleSplotches }

// Generate builds the splotch scene.
func (Splotches) Generate(in Input) (*scene.Scene, error) {
	g := in.Config.General
	s := in.Config.Splotches
	sc := newScene(in)
	cv := sc.Canvas()

	hasShadow := s.HasShadow
	if hasShadow {
		var color string
		color, hasShadow = shadowColor(sc, s.Shadow, s.Fill)
		if hasShadow {
			sc.AddFilter(shadowFilter(s.Shadow, color, 0))
		}
	}

	lighting, textured := "", s.Textured
	if textured {
		lighting, textured = checkColor(sc, "splotch texture lighting", s.LightingColor)
	}

	for i := 0; i < s.Count; i++ {
		center := geometry.Pt(100*in.Rand.Float64(), 100*in.Rand.Float64())
		radius := in.Rand.Between(s.SizeMin, s.SizeMax)
		if s.SizeFade {
			radius = s.SizeMax - float64(i)*(s.SizeMax-s.SizeMin)/float64(s.Count)
		}

		from, err := splotchPoints(in, s, center, radius)
		if err != nil {
			return nil, fmt.Errorf("splotch %d: %w", i, err)
		}
		to := make([]geometry.Point, len(from))
		for k, p := range from {
			to[k] = geometry.TranslateRadially(p, center, s.PointAnimationStrength*in.Rand.Centered())
		}

		pr, err := path.BuildClosed(from, to, s.ControlArmLength)
		if err != nil {
			return nil, fmt.Errorf("splotch %d: %w", i, err)
		}

		raw, err := in.pickFill(s.Fill)
		if err != nil {
			return nil, fmt.Errorf("splotch %d: %w", i, err)
		}

		var travel geometry.Point
		var spin float64
		if g.IsAnimated && s.Translate {
			travel.X = s.MinX + (s.MaxX-s.MinX)*in.Rand.Float64()
			travel.Y = s.MinY + (s.MaxY-s.MinY)*in.Rand.Float64()
		}
		if g.IsAnimated && s.Rotate {
			spin = s.MinRotationDuration + (s.MaxRotationDuration-s.MinRotationDuration)*in.Rand.Float64()
		}

		fill, ok := checkColor(sc, fmt.Sprintf("splotch %d", i), raw)
		if !ok {
			continue
		}
		if s.Fade.Enabled {
			if fill, err = colors.AdjustLuminosity(fill, s.Fade.Luminosity(i, s.Count)); err != nil {
				return nil, fmt.Errorf("splotch %d: %w", i, err)
			}
		}

		d := pr.From.Format(cv)
		blob := scene.Path(d, fill)

		var shadow scene.Shape
		var offset string
		if hasShadow {
			offset = pair(cv.X(s.OffsetX), cv.Y(s.OffsetY))
			shadow = scene.Path(d, "blue")
			shadow.Filter = shadowFilterID
			shadow.Transform = "translate(" + offset + ")"
		}

		if g.IsAnimated {
			if s.PointsAnimated {
				morph := scene.Animate("d", s.PointAnimationDuration, g.RepeatAnimation, scene.Loop(d, pr.To.Format(cv))...)
				blob = blob.Animate(morph)
				if hasShadow {
					shadow = shadow.Animate(morph)
				}
			}
			if s.Translate {
				blob = blob.Animate(scene.AnimateTransform("translate", s.TranslationDuration, true,
					scene.Loop("0 0", pair(cv.X(travel.X), cv.Y(travel.Y)))...))
				if hasShadow {
					shadow = shadow.Animate(scene.AnimateTransform("translate", s.TranslationDuration, true,
						scene.Loop(offset, pair(
							geometry.Scale(travel.X, cv.Width+s.OffsetX),
							geometry.Scale(travel.Y, cv.Height+s.OffsetY),
						))...))
				}
			}
			if s.Rotate {
				spinning := scene.Rotate(spin, cv.X(center.X), cv.Y(center.Y))
				blob = blob.Animate(spinning)
				if hasShadow {
					shadow = shadow.Animate(spinning)
				}
			}
		}

		if textured {
			id := fmt.Sprintf("splotchTexture-%d", i)
			sc.AddFilter(texturedFilter(id, s.Texture, lighting, splotchLight(g, s, cv, travel)))
			blob.Filter = id
		}

		if hasShadow {
			sc.Add(shadow)
		}
		sc.Add(blob)
	}

	if s.HasNoise {
		if err := addNoise(sc, in); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// splotchPoints places regular points around center and perturbs each one
// tangentially, then radially.
func splotchPoints(in Input, s config.Splotches, center geometry.Point, radius float64) ([]geometry.Point, error) {
	n := in.Rand.IntBetween(s.PointsMin, s.PointsMax)
	regular := geometry.RegularPoints(center, n, radius)

	points := make([]geometry.Point, 0, n)
	for _, p := range regular {
		moved, err := geometry.TranslateTangentially(p, center, s.PointSpacingRandomness*in.Rand.Centered())
		if err != nil {
			return nil, err
		}
		points = append(points, geometry.TranslateRadially(moved, center, s.PointRadialRandomness*in.Rand.Centered()))
	}
	return points, nil
}

// splotchLight returns the texture light of a splotch. The filter region moves
// with the splotch, so a translating splotch moves its light in the opposite
// direction to keep it fixed on the canvas.
func splotchLight(g config.General, s config.Splotches, cv geometry.Canvas, travel geometry.Point) scene.Primitive {
	lx, ly := cv.X(s.LightXPerc), cv.Y(s.LightYPerc)
	light := pointLight(lx, ly, s.LightZ)
	if !g.IsAnimated || !s.Translate {
		return light
	}
	return light.Animate(
		scene.Animate("x", s.TranslationDuration, true, scene.Loop(num(lx), num(lx-cv.X(travel.X)))...),
		scene.Animate("y", s.TranslationDuration, true, scene.Loop(num(ly), num(ly-cv.Y(travel.Y)))...),
	)
}
