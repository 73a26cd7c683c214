package geom

import "math"

// LineDistance is the perpendicular distance from p to the infinite line
// through a and b. When a and b coincide there is no line and ok is false.
func LineDistance(p, a, b Point) (dist float64, ok bool) {
	den := math.Hypot(b.Y-a.Y, b.X-a.X)
	if den == 0 {
		return 0, false
	}
	num := math.Abs((b.Y-a.Y)*p.X - (b.X-a.X)*p.Y + b.X*a.Y - b.Y*a.X)
	return num / den, true
}

// Reflect returns the point reflection of p through the given center.
func Reflect(p, center Point) Point {
	return center.Scale(2).Sub(p)
}

// AlignOpposite places a point on the opposite side of v from toward, so that
// the result, v and toward are collinear, keeping the distance between keep
// and v. If toward coincides with v there is no direction and keep is
// returned unchanged.
func AlignOpposite(v, toward, keep Point) Point {
	dir := toward.Sub(v)
	l := dir.Len()
	if l == 0 {
		return keep
	}
	return v.Sub(dir.Scale(keep.Distance(v) / l))
}
