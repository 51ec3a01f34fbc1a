package geometry

import "math"

// Point is a position in normalized 0-100 space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Canvas converts normalized coordinates into pixels.
type Canvas struct {
	Width  float64
	Height float64
}

// NewCanvas creates a Canvas for an integer pixel size.
func NewCanvas(width, height int) Canvas {
	return Canvas{Width: float64(width), Height: float64(height)}
}

// X scales a percentage of the canvas width.
func (c Canvas) X(p float64) float64 {
	return Scale(p, c.Width)
}

// Y scales a percentage of the canvas height.
func (c Canvas) Y(p float64) float64 {
	return Scale(p, c.Height)
}

// Point scales both coordinates of p.
func (c Canvas) Point(p Point) Point {
	return Point{X: c.X(p.X), Y: c.Y(p.Y)}
}

// Scale converts a percentage into an absolute length along an extent.
func Scale(percent, extent float64) float64 {
	return percent / 100 * extent
}
