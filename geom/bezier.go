package geom

// DefaultSamples is the number of points used to draw a curve.
const DefaultSamples = 100

type CubicBez struct {
	P0, P1, P2, P3 Point
}

// EvaluateBezier evaluates the cubic Bernstein polynomial at t in [0, 1]. The
// endpoints are reproduced exactly at t=0 and t=1.
func EvaluateBezier(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// SampleBezier returns steps points evenly spaced in t, first and last being
// p0 and p3. Fewer than two steps is treated as two.
func SampleBezier(p0, p1, p2, p3 Point, steps int) []Point {
	if steps < 2 {
		steps = 2
	}
	points := make([]Point, steps)
	last := float64(steps - 1)
	for i := range points {
		points[i] = EvaluateBezier(p0, p1, p2, p3, float64(i)/last)
	}
	return points
}

func (c CubicBez) Eval(t float64) Point {
	return EvaluateBezier(c.P0, c.P1, c.P2, c.P3, t)
}

func (c CubicBez) Sample(steps int) []Point {
	return SampleBezier(c.P0, c.P1, c.P2, c.P3, steps)
}

// Midpoint is the curve point at t=0.5, used to place labels.
func (c CubicBez) Midpoint() Point {
	return c.Eval(0.5)
}
