// Package colors parses user supplied colors and derives new ones from them.
// Every function is pure: the input string is never modified and the result
// is always a lowercase "#rrggbb" hex string.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor indicates a string that is neither a hex code nor a known color name.
var ErrInvalidColor = errors.New("colors: invalid color")

// Parse reads "#rgb", "#rrggbb" or an SVG color name such as "white".
func Parse(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(v, "#") {
		if !isHexCode(v) {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	if named, ok := colornames.Map[v]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}

	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// isHexCode reports whether v is "#rgb" or "#rrggbb" with hex digits only.
func isHexCode(v string) bool {
	if len(v) != 4 && len(v) != 7 {
		return false
	}
	for _, r := range v[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Normalize returns the canonical hex form of a color.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return toHex(c), nil
}

// AdjustLuminosity keeps hue and saturation of hex and replaces its HSL
// lightness with luminosity clamped into [0, 1].
func AdjustLuminosity(hex string, luminosity float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}

	h, s, _ := c.Hsl()
	l := math.Max(0, math.Min(1, luminosity))
	return toHex(colorful.Hsl(h, s, l)), nil
}

// Complementary inverts every channel of hex in normalized RGB space.
func Complementary(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return toHex(colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}), nil
}

func toHex(c colorful.Color) string {
	return c.Clamped().Hex()
}
