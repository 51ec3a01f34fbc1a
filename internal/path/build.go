package path

import (
	"fmt"

	"github.com/ivlev/genart/internal/geometry"
)

// BuildClosed builds a closed blob through from and to. Each point gets a
// control from its wrap-around neighbours; point 0 is emitted once as a
// lead-in and once more before closing. Controls of the to path are computed
// from the to points.
func BuildClosed(from, to []geometry.Point, arm float64) (Pair, error) {
	if len(from) != len(to) {
		return Pair{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(from), len(to))
	}

	pr := Pair{From: closed(from, arm), To: closed(to, arm)}
	if err := pr.Check(); err != nil {
		return Pair{}, err
	}
	return pr, nil
}

func closed(pts []geometry.Point, arm float64) Path {
	var p Path
	n := len(pts)
	if n == 0 {
		return p
	}

	control := func(k int) geometry.Point {
		return geometry.ControlPoint(pts[(k-1+n)%n], pts[k], pts[(k+1)%n], arm)
	}

	p.add(MoveTo, pts[0])
	for k := range pts {
		p.add(Smooth, control(k), pts[k])
	}
	p.add(Smooth, control(0), pts[0])
	p.add(Close)
	return p
}

// BuildOpen builds a band that rises from the bottom-left corner to baseline,
// runs through the curve points and drops back at the right edge. The ends
// use (0, baseline) and (100, baseline) as neighbours.
//
// The to path reuses the controls computed for from and only swaps the end
// points, so it must have the same x coordinates to look right.
func BuildOpen(from, to []geometry.Point, baseline, arm float64) (Pair, error) {
	if len(from) != len(to) {
		return Pair{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(from), len(to))
	}

	start := geometry.Pt(0, baseline)
	end := geometry.Pt(100, baseline)

	var f, t Path
	for _, p := range []*Path{&f, &t} {
		p.add(MoveTo, geometry.Pt(start.X, 100))
		p.add(LineTo, start)
	}

	last := start
	for k, pt := range from {
		prev, next := start, end
		if k > 0 {
			prev = from[k-1]
		}
		if k < len(from)-1 {
			next = from[k+1]
		}

		c := geometry.ControlPoint(prev, pt, next, arm)
		f.add(Smooth, c, pt)
		t.add(Smooth, c, to[k])
		last = pt
	}

	closing := last.Add(end.Sub(last).Mul(0.5))
	for _, p := range []*Path{&f, &t} {
		p.add(Smooth, closing, end)
		p.add(LineTo, geometry.Pt(end.X, 100))
		p.add(Close)
	}

	pr := Pair{From: f, To: t}
	if err := pr.Check(); err != nil {
		return Pair{}, err
	}
	return pr, nil
}
