package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/genart/internal/geometry"
)

const eps = 1e-9

func TestScale(t *testing.T) {
	assert.Equal(t, 300.0, geometry.Scale(50, 600))
	assert.Equal(t, 0.0, geometry.Scale(0, 600))

	c := geometry.NewCanvas(600, 900)
	assert.Equal(t, 60.0, c.X(10))
	assert.Equal(t, 90.0, c.Y(10))
	assert.Equal(t, geometry.Pt(300, 450), c.Point(geometry.Pt(50, 50)))
}

func TestRegularPoints(t *testing.T) {
	center := geometry.Pt(40, 60)
	for _, n := range []int{1, 3, 5, 12} {
		points := geometry.RegularPoints(center, n, 7)
		require.Len(t, points, n)

		step := 2 * math.Pi / float64(n)
		for i, p := range points {
			assert.InDelta(t, 7, p.Distance(center), eps, "point %d of %d", i, n)
			angle := math.Atan2(p.Y-center.Y, p.X-center.X)
			want := float64(i) * step
			diff := math.Mod(angle-want+4*math.Pi, 2*math.Pi)
			if diff > math.Pi {
				diff -= 2 * math.Pi
			}
			assert.InDelta(t, 0, diff, 1e-9, "angle of point %d of %d", i, n)
		}
	}
}

func TestRegularPoints_Empty(t *testing.T) {
	assert.Empty(t, geometry.RegularPoints(geometry.Pt(0, 0), 0, 5))
	assert.Empty(t, geometry.RegularPoints(geometry.Pt(0, 0), -2, 5))
}

func TestTranslateRadially(t *testing.T) {
	center := geometry.Pt(10, 10)
	p := geometry.Pt(13, 14) // distance 5

	out := geometry.TranslateRadially(p, center, 1)
	assert.InDelta(t, 10, out.Distance(center), eps)
	assert.InDelta(t, 16, out.X, eps)
	assert.InDelta(t, 18, out.Y, eps)

	in := geometry.TranslateRadially(p, center, -0.4)
	assert.InDelta(t, 3, in.Distance(center), eps)

	assert.Equal(t, p, geometry.TranslateRadially(p, center, 0))
	assert.Equal(t, center, geometry.TranslateRadially(center, center, 0.5))
}

func TestTranslateTangentially(t *testing.T) {
	center := geometry.Pt(0, 0)
	p := geometry.Pt(2, 0)

	out, err := geometry.TranslateTangentially(p, center, math.Pi) // quarter turn on r=2
	require.NoError(t, err)
	assert.InDelta(t, 0, out.X, eps)
	assert.InDelta(t, 2, out.Y, eps)
	assert.InDelta(t, 2, out.Distance(center), eps)

	same, err := geometry.TranslateTangentially(p, center, 0)
	require.NoError(t, err)
	assert.Equal(t, p, same)
}

func TestTranslateTangentially_ZeroRadius(t *testing.T) {
	_, err := geometry.TranslateTangentially(geometry.Pt(5, 5), geometry.Pt(5, 5), 1)
	assert.ErrorIs(t, err, geometry.ErrZeroRadius)
}

func TestControlPoint(t *testing.T) {
	prev := geometry.Pt(0, 0)
	next := geometry.Pt(10, 20)
	mid := geometry.Pt(5, 10)

	// Degenerate straight line: with arm 0.5 the control collapses onto current.
	c := geometry.ControlPoint(prev, mid, next, geometry.DefaultArmLength)
	assert.InDelta(t, 0, c.X, eps)
	assert.InDelta(t, 0, c.Y, eps)

	c = geometry.ControlPoint(prev, geometry.Pt(4, 4), next, 0.2)
	assert.InDelta(t, 2, c.X, eps)
	assert.InDelta(t, 0, c.Y, eps)
}

func TestLinearInterpolation(t *testing.T) {
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, geometry.LinearInterpolation(0, 10, 5))
	assert.Equal(t, []float64{3}, geometry.LinearInterpolation(3, 9, 1))
	assert.Equal(t, []float64{9, 3}, geometry.LinearInterpolation(9, 3, 2))
	assert.Empty(t, geometry.LinearInterpolation(0, 1, 0))
}

func TestLogInterpolation(t *testing.T) {
	values, err := geometry.LogInterpolation(1, 100, 3)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.InDelta(t, 1, values[0], 1e-9)
	assert.InDelta(t, 10, values[1], 1e-9)
	assert.InDelta(t, 100, values[2], 1e-9)

	single, err := geometry.LogInterpolation(15, 80, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{15}, single)
}

func TestLogInterpolation_Domain(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
	}{
		{"ZeroStart", 0, 10},
		{"NegativeEnd", 1, -3},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geometry.LogInterpolation(tc.start, tc.end, 4)
			assert.ErrorIs(t, err, geometry.ErrNonPositiveBound)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", geometry.FormatNumber(0))
	assert.Equal(t, "0", geometry.FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "600", geometry.FormatNumber(600))
	assert.Equal(t, "-12.5", geometry.FormatNumber(-12.5))
	assert.Equal(t, "0.0001", geometry.FormatNumber(0.0001))
}
