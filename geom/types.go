package geom

import (
	"fmt"
	"math"
)

// Points are plain values. The polygon model owns every point it stores, so
// nothing outside the model can alias a vertex or a control point.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

type Segment struct {
	Start Point
	End   Point
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub computes p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len treats the point as a vector from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Round returns the nearest pixel coordinates.
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Equal compares with Tolerance on both axes.
func (p Point) Equal(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

func (s Segment) Midpoint() Point {
	return s.Start.Midpoint(s.End)
}

func (s Segment) IsHorizontal() bool {
	return Equal(s.Start.Y, s.End.Y)
}

func (s Segment) IsVertical() bool {
	return Equal(s.Start.X, s.End.X)
}

// Project gives the line parameter of the foot of the perpendicular from p.
// Values in [0, 1] lie on the segment. A degenerate segment projects to 0.
func (s Segment) Project(p Point) float64 {
	d := s.End.Sub(s.Start)
	den := d.X*d.X + d.Y*d.Y
	if den == 0 {
		return 0
	}
	v := p.Sub(s.Start)
	return (v.X*d.X + v.Y*d.Y) / den
}
