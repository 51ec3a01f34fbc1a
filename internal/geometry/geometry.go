package geometry

import "math"

// DefaultArmLength is the control arm used when a caller has no preference.
const DefaultArmLength = 0.5

// RegularPoints places count points evenly around center at a fixed radius,
// starting at angle 0 and going counter-clockwise in math orientation.
func RegularPoints(center Point, count int, radius float64) []Point {
	if count < 1 {
		return []Point{}
	}

	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points = append(points, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return points
}

// TranslateRadially scales the distance between p and center by 1+strength,
// keeping the angle. Negative strength pulls the point inward.
func TranslateRadially(p, center Point, strength float64) Point {
	if strength == 0 {
		return p
	}

	dx := p.X - center.X
	dy := p.Y - center.Y
	distance := math.Sqrt(dx*dx + dy*dy) * (1 + strength)
	angle := math.Atan2(dy, dx)

	return Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

// TranslateTangentially moves p along the circle around center by the given
// arc length. Positive arcs turn counter-clockwise. The radius is preserved.
func TranslateTangentially(p, center Point, arc float64) (Point, error) {
	if arc == 0 {
		return p, nil
	}

	dx := p.X - center.X
	dy := p.Y - center.Y
	radius := math.Sqrt(dx*dx + dy*dy)
	if radius == 0 {
		return Point{}, ErrZeroRadius
	}

	angle := math.Atan2(dy, dx) + arc/radius
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}, nil
}

// ControlPoint returns the smooth-curve control point for current, reflected
// along the direction from prev to next: current - arm*(next-prev).
func ControlPoint(prev, current, next Point, arm float64) Point {
	return current.Sub(next.Sub(prev).Mul(arm))
}

// LinearInterpolation returns steps evenly spaced values from start to end
// inclusive. A single step yields only start.
func LinearInterpolation(start, end float64, steps int) []float64 {
	if steps <= 0 {
		return []float64{}
	}
	if steps == 1 {
		return []float64{start}
	}

	stepSize := (end - start) / float64(steps-1)
	values := make([]float64, steps)
	for i := range values {
		values[i] = start + float64(i)*stepSize
	}
	return values
}

// LogInterpolation returns steps values evenly spaced in log space between
// start and end. Both bounds must be positive.
func LogInterpolation(start, end float64, steps int) ([]float64, error) {
	if start <= 0 || end <= 0 {
		return nil, ErrNonPositiveBound
	}
	if steps == 1 {
		return []float64{start}, nil
	}

	logs := LinearInterpolation(math.Log(start), math.Log(end), steps)
	for i, v := range logs {
		logs[i] = math.Exp(v)
	}
	return logs, nil
}
