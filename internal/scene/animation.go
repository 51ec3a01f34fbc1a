package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/genart/internal/geometry"
)

// ErrInvalidAnimation indicates an animation SVG would reject or play wrongly.
var ErrInvalidAnimation = errors.New("scene: invalid animation")

const (
	ElementAnimate          = "animate"
	ElementAnimateTransform = "animateTransform"

	RepeatIndefinite = "indefinite"
	RepeatOnce       = "1"
)

// Spline is one keySplines entry: the two control points of a cubic bezier
// timing curve.
type Spline [4]float64

// EaseInOut is the timing curve used by every looping animation.
var EaseInOut = Spline{0.42, 0, 0.58, 1}

// Animation is an <animate> or <animateTransform> element. Keyframe based
// animations use Values/KeyTimes/KeySplines; linear ones use From/To.
type Animation struct {
	Element    string    `yaml:"element"`
	Attribute  string    `yaml:"attribute"`
	Type       string    `yaml:"type,omitempty"`
	Duration   float64   `yaml:"duration"`
	Repeat     string    `yaml:"repeat"`
	Values     []string  `yaml:"values,omitempty"`
	KeyTimes   []float64 `yaml:"key_times,omitempty"`
	KeySplines []Spline  `yaml:"key_splines,omitempty"`
	From       string    `yaml:"from,omitempty"`
	To         string    `yaml:"to,omitempty"`
	Additive   string    `yaml:"additive,omitempty"`
}

// RepeatCount maps the repeat flag to a repeatCount value.
func RepeatCount(repeat bool) string {
	if repeat {
		return RepeatIndefinite
	}
	return RepeatOnce
}

// Loop returns the keyframes a -> b -> a.
func Loop(a, b string) []string {
	return []string{a, b, a}
}

// Animate creates an eased keyframe animation of attribute. Key times are
// spread evenly over the values.
func Animate(attribute string, duration float64, repeat bool, values ...string) Animation {
	a := Animation{
		Element:   ElementAnimate,
		Attribute: attribute,
		Duration:  duration,
		Repeat:    RepeatCount(repeat),
		Values:    values,
	}
	a.KeyTimes, a.KeySplines = evenKeys(len(values))
	return a
}

// AnimateTransform creates an eased keyframe transform animation of the given
// kind ("translate", "scale", ...).
func AnimateTransform(kind string, duration float64, repeat bool, values ...string) Animation {
	a := Animate("transform", duration, repeat, values...)
	a.Element = ElementAnimateTransform
	a.Type = kind
	return a
}

// Tween creates a linear from/to animation of attribute.
func Tween(attribute, from, to string, duration float64, repeat bool) Animation {
	return Animation{
		Element:   ElementAnimate,
		Attribute: attribute,
		Duration:  duration,
		Repeat:    RepeatCount(repeat),
		From:      from,
		To:        to,
	}
}

// Rotate creates an endless full turn around (cx, cy) added on top of other
// transforms.
func Rotate(duration, cx, cy float64) Animation {
	around := " " + geometry.FormatNumber(cx) + " " + geometry.FormatNumber(cy)
	return Animation{
		Element:   ElementAnimateTransform,
		Attribute: "transform",
		Type:      "rotate",
		Duration:  duration,
		Repeat:    RepeatIndefinite,
		From:      "0" + around,
		To:        "360" + around,
		Additive:  "sum",
	}
}

func evenKeys(n int) ([]float64, []Spline) {
	if n < 2 {
		return nil, nil
	}
	times := geometry.LinearInterpolation(0, 1, n)
	splines := make([]Spline, n-1)
	for i := range splines {
		splines[i] = EaseInOut
	}
	return times, splines
}

// CalcMode returns the calcMode attribute value, empty for the SVG default.
func (a Animation) CalcMode() string {
	if len(a.KeySplines) > 0 {
		return "spline"
	}
	return ""
}

// Dur formats the duration in seconds.
func (a Animation) Dur() string {
	return geometry.FormatNumber(a.Duration) + "s"
}

// ValuesAttr joins the keyframe values.
func (a Animation) ValuesAttr() string {
	return strings.Join(a.Values, ";")
}

// KeyTimesAttr joins the key times.
func (a Animation) KeyTimesAttr() string {
	parts := make([]string, len(a.KeyTimes))
	for i, t := range a.KeyTimes {
		parts[i] = geometry.FormatNumber(t)
	}
	return strings.Join(parts, ";")
}

// KeySplinesAttr joins the timing curves.
func (a Animation) KeySplinesAttr() string {
	parts := make([]string, len(a.KeySplines))
	for i, s := range a.KeySplines {
		parts[i] = fmt.Sprintf("%s %s %s %s",
			geometry.FormatNumber(s[0]), geometry.FormatNumber(s[1]),
			geometry.FormatNumber(s[2]), geometry.FormatNumber(s[3]))
	}
	return strings.Join(parts, ";")
}

// Validate checks the timing structure of the animation.
func (a Animation) Validate() error {
	if a.Attribute == "" {
		return fmt.Errorf("%w: missing attributeName", ErrInvalidAnimation)
	}
	if a.Element == ElementAnimateTransform && a.Attribute != "transform" {
		return fmt.Errorf("%w: %s must target transform, got %q", ErrInvalidAnimation, a.Element, a.Attribute)
	}
	if a.Duration < 0 {
		return fmt.Errorf("%w: negative duration %v", ErrInvalidAnimation, a.Duration)
	}

	if len(a.Values) == 0 {
		if a.From == "" || a.To == "" {
			return fmt.Errorf("%w: %s has neither values nor from/to", ErrInvalidAnimation, a.Attribute)
		}
		return nil
	}

	n := len(a.Values)
	if n < 2 {
		return fmt.Errorf("%w: %s needs at least two keyframes", ErrInvalidAnimation, a.Attribute)
	}
	if a.Values[0] != a.Values[n-1] {
		return fmt.Errorf("%w: %s does not return to its first keyframe", ErrInvalidAnimation, a.Attribute)
	}
	if len(a.KeyTimes) != n {
		return fmt.Errorf("%w: %s has %d key times for %d values", ErrInvalidAnimation, a.Attribute, len(a.KeyTimes), n)
	}
	if a.KeyTimes[0] != 0 || a.KeyTimes[n-1] != 1 {
		return fmt.Errorf("%w: %s key times must span 0..1", ErrInvalidAnimation, a.Attribute)
	}
	for i := 1; i < n; i++ {
		if a.KeyTimes[i] < a.KeyTimes[i-1] {
			return fmt.Errorf("%w: %s key times are not monotonic", ErrInvalidAnimation, a.Attribute)
		}
	}
	if len(a.KeySplines) > 0 && len(a.KeySplines) != n-1 {
		return fmt.Errorf("%w: %s has %d key splines for %d intervals", ErrInvalidAnimation, a.Attribute, len(a.KeySplines), n-1)
	}
	return nil
}
