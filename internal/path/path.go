// Package path builds smooth spline outlines over normalized points.
//
// Outlines are produced in from/to pairs: two paths with the same command
// sequence and point counts, so SVG can morph one into the other through a
// "d" animation.
package path

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/genart/internal/geometry"
)

var (
	// ErrShapeMismatch indicates a from/to pair that SVG cannot interpolate.
	ErrShapeMismatch = errors.New("path: from and to differ in structure")
	// ErrLengthMismatch indicates point sequences of different lengths.
	ErrLengthMismatch = errors.New("path: point sequences differ in length")
)

// Op is a path command letter.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	Smooth Op = 'S'
	Close  Op = 'Z'
)

// Command is one path command with its points in normalized space.
// Smooth commands carry the control point followed by the end point.
type Command struct {
	Op     Op
	Points []geometry.Point
}

// Path is an ordered list of commands.
type Path struct {
	Commands []Command
}

func (p *Path) add(op Op, pts ...geometry.Point) {
	p.Commands = append(p.Commands, Command{Op: op, Points: pts})
}

// Points returns every point of the path in command order.
func (p Path) Points() []geometry.Point {
	var pts []geometry.Point
	for _, c := range p.Commands {
		pts = append(pts, c.Points...)
	}
	return pts
}

// Format renders the path as SVG path data scaled onto canvas. Coordinates of
// a point are joined by a comma and everything else by single spaces
// ("M 0,600 S 10,20 30,40 Z"); SVG only interpolates "d" reliably in that
// form.
func (p Path) Format(canvas geometry.Canvas) string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		for _, pt := range c.Points {
			px := canvas.Point(pt)
			b.WriteByte(' ')
			b.WriteString(geometry.FormatNumber(px.X))
			b.WriteByte(',')
			b.WriteString(geometry.FormatNumber(px.Y))
		}
	}
	return b.String()
}

// Pair holds the two keyframes of a morphing outline.
type Pair struct {
	From Path
	To   Path
}

// Check verifies that both paths have the same command kinds and point counts.
func (pr Pair) Check() error {
	if len(pr.From.Commands) != len(pr.To.Commands) {
		return fmt.Errorf("%w: %d vs %d commands", ErrShapeMismatch, len(pr.From.Commands), len(pr.To.Commands))
	}
	for i, c := range pr.From.Commands {
		o := pr.To.Commands[i]
		if c.Op != o.Op || len(c.Points) != len(o.Points) {
			return fmt.Errorf("%w: command %d is %c/%d vs %c/%d", ErrShapeMismatch, i, c.Op, len(c.Points), o.Op, len(o.Points))
		}
	}
	return nil
}
