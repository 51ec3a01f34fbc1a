package generator

import (
	"fmt"
	"math"

	"github.com/ivlev/genart/internal/colors"
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/geometry"
	"github.com/ivlev/genart/internal/path"
	"github.com/ivlev/genart/internal/scene"
)

// Waves stacks wavy bands from the horizon down the canvas. Later bands are
// painted over earlier ones.
//
// Draws per wave: horizon jitter, point count, first point offset, x and y
// per point, the animated y factor per point, then fill (palette only). One
// palette draw follows for the noise overlay.
type Waves struct{}

// Name returns the module name.
func (Waves) Name() string { return config.ModuleWaves }

// Generate builds the wave scene.
func (Waves) Generate(in Input) (*scene.Scene, error) {
	g := in.Config.General
	w := in.Config.Waves
	sc := newScene(in)
	cv := sc.Canvas()

	horizons, err := Horizons(w)
	if err != nil {
		return nil, err
	}

	hasShadow := w.HasShadow
	if hasShadow {
		var color string
		color, hasShadow = shadowColor(sc, w.Shadow, w.Fill)
		if hasShadow {
			sc.AddFilter(shadowFilter(w.Shadow, color, -cv.Y(w.OffsetY)))
		}
	}

	for i, regular := range horizons {
		horizon := regular + w.SpacingRandomness*neighbourDistance(horizons, i)*in.Rand.Centered()

		from := wavePoints(in, w, horizon)
		to := make([]geometry.Point, len(from))
		for k, p := range from {
			to[k] = geometry.Pt(p.X, (1+w.AnimationStrength*in.Rand.Centered())*p.Y)
		}

		pr, err := path.BuildOpen(from, to, horizon, w.ControlArmLength)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}

		raw, err := in.pickFill(w.Fill)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		fill, ok := checkColor(sc, fmt.Sprintf("wave %d", i), raw)
		if !ok {
			continue
		}
		if w.Fade.Enabled {
			if fill, err = colors.AdjustLuminosity(fill, w.Fade.Luminosity(i, len(horizons))); err != nil {
				return nil, fmt.Errorf("wave %d: %w", i, err)
			}
		}

		d := pr.From.Format(cv)
		wave := scene.Path(d, fill)
		var anims []scene.Animation
		if g.IsAnimated {
			anims = append(anims, scene.Animate("d", g.AnimationDuration, g.RepeatAnimation, scene.Loop(d, pr.To.Format(cv))...))
		}

		if hasShadow {
			shadow := scene.Path(d, "blue").Animate(anims...)
			shadow.Filter = shadowFilterID
			sc.Add(shadow)
		}
		sc.Add(wave.Animate(anims...))
	}

	if w.HasNoise {
		if err := addNoise(sc, in); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// Horizons returns the unjittered baseline of every wave.
func Horizons(w config.Waves) ([]float64, error) {
	if w.SpacingType == "Linear" {
		return geometry.LinearInterpolation(w.HorizonY, w.LastWaveY, w.Count), nil
	}
	if w.Count <= 0 {
		return []float64{}, nil
	}
	hs, err := geometry.LogInterpolation(w.HorizonY, w.LastWaveY, w.Count)
	if err != nil {
		return nil, fmt.Errorf("wave horizons: %w", err)
	}
	return hs, nil
}

// neighbourDistance is the distance from horizon i to its closest neighbour,
// 0 for a lone horizon.
func neighbourDistance(hs []float64, i int) float64 {
	n := len(hs)
	switch {
	case n < 2:
		return 0
	case i == 0:
		return math.Abs(hs[1] - hs[0])
	case i == n-1:
		return math.Abs(hs[i] - hs[i-1])
	default:
		return math.Min(math.Abs(hs[i+1]-hs[i]), math.Abs(hs[i]-hs[i-1]))
	}
}

// wavePoints spreads a random number of points across the band, jittered
// around horizon.
func wavePoints(in Input, w config.Waves, horizon float64) []geometry.Point {
	n := in.Rand.IntBetween(w.PointsMin, w.PointsMax)
	firstX := w.FirstPointStartMax * in.Rand.Float64()

	points := make([]geometry.Point, 0, n)
	for j := 0; j < n; j++ {
		regularX := firstX + float64(j+1)*(100-firstX)/float64(n+1)
		x := regularX + (100/float64(n))*w.PointSpacingRandomness*in.Rand.Centered()
		y := horizon + w.HeightFactor*in.Rand.Centered()
		points = append(points, geometry.Pt(x, y))
	}
	return points
}
