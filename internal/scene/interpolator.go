package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumeric indicates keyframes that are not plain number lists, such as
// path data.
var ErrNotNumeric = errors.New("scene: keyframes are not numeric")

// ValueAt evaluates the animation at fraction t of one iteration, applying
// the key splines the way a browser does. Each keyframe may hold several
// space separated numbers ("tx ty"); the result has one entry per number.
func (a Animation) ValueAt(t float64) ([]float64, error) {
	t = clamp01(t)

	if len(a.Values) == 0 {
		from, err := parseNumbers(a.From)
		if err != nil {
			return nil, err
		}
		to, err := parseNumbers(a.To)
		if err != nil {
			return nil, err
		}
		return lerpAll(from, to, t)
	}

	frames := make([][]float64, len(a.Values))
	for i, v := range a.Values {
		nums, err := parseNumbers(v)
		if err != nil {
			return nil, err
		}
		frames[i] = nums
	}
	if len(frames) == 1 || len(a.KeyTimes) != len(frames) {
		return frames[0], nil
	}

	// If before first keyframe, use first keyframe
	if t <= a.KeyTimes[0] {
		return frames[0], nil
	}
	// If after last keyframe, use last keyframe
	last := len(frames) - 1
	if t >= a.KeyTimes[last] {
		return frames[last], nil
	}

	i := 0
	for i < last-1 && t >= a.KeyTimes[i+1] {
		i++
	}

	span := a.KeyTimes[i+1] - a.KeyTimes[i]
	u := 1.0
	if span > 0 {
		u = (t - a.KeyTimes[i]) / span
	}
	if i < len(a.KeySplines) {
		u = a.KeySplines[i].Ease(u)
	}
	return lerpAll(frames[i], frames[i+1], u)
}

// Ease maps linear progress x to eased progress along the timing curve.
func (s Spline) Ease(x float64) float64 {
	x = clamp01(x)
	if x == 0 || x == 1 {
		return x
	}

	// x(t) is monotonic for control x values inside [0, 1]
	lo, hi := 0.0, 1.0
	t := x
	for i := 0; i < 64; i++ {
		t = (lo + hi) / 2
		if bezier(t, s[0], s[2]) < x {
			lo = t
		} else {
			hi = t
		}
	}
	return bezier(t, s[1], s[3])
}

func bezier(t, p1, p2 float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
}

func parseNumbers(v string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(v, ",", " "))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrNotNumeric)
	}
	nums := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}
		nums[i] = n
	}
	return nums, nil
}

func lerpAll(a, b []float64, t float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: keyframes of different arity", ErrNotNumeric)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = lerp(a[i], b[i], t)
	}
	return out, nil
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
