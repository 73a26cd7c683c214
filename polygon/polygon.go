// Package polygon holds the editable closed polygon: a cyclic vertex
// sequence, the constraints and Bézier segments keyed by edge index, and the
// rules that keep them consistent as the polygon is edited.
//
// Edge i joins vertex i to vertex (i+1) mod n. Indices are positional, so any
// structural change renumbers them; callers must re-fetch indices after every
// mutation.
package polygon

import (
	"slices"

	"github.com/osuushi/polyedit/geom"
)

type Polygon struct {
	vertices    []Vertex
	constraints map[int]Constraint
	curves      map[int]BezierSegment

	symmetric  bool
	nextSerial uint64
}

type Option func(*Polygon)

// WithSymmetricConstraints makes a dragged vertex honor the constraints of
// both edges touching it, instead of only the edge starting at it.
func WithSymmetricConstraints() Option {
	return func(p *Polygon) {
		p.symmetric = true
	}
}

func New(opts ...Option) *Polygon {
	p := &Polygon{
		constraints: make(map[int]Constraint),
		curves:      make(map[int]BezierSegment),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// N is the number of vertices, which is also the number of edges.
func (p *Polygon) N() int {
	return len(p.vertices)
}

func (p *Polygon) checkVertex(i int) error {
	if i < 0 || i >= len(p.vertices) {
		return invalidIndexf("vertex %d out of range [0, %d)", i, len(p.vertices))
	}
	return nil
}

func (p *Polygon) checkEdge(e int) error {
	if e < 0 || e >= len(p.vertices) {
		return invalidIndexf("edge %d out of range [0, %d)", e, len(p.vertices))
	}
	return nil
}

// AddVertex appends a vertex. No existing index changes, so this is how
// scenes are built.
func (p *Polygon) AddVertex(x, y float64) {
	p.vertices = append(p.vertices, Vertex{Point: geom.Pt(x, y)})
}

// InsertVertex splits the given edge by inserting a vertex right after its
// start. The split edge loses its constraint. Its curve, if any, stays with
// the first half and now ends at the new vertex.
func (p *Polygon) InsertVertex(edge int, x, y float64) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	n := len(p.vertices)
	_, curved := p.curves[edge]

	p.shiftForInsert(edge)
	p.vertices = slices.Insert(p.vertices, edge+1, Vertex{Point: geom.Pt(x, y)})

	if curved && n > 1 {
		// The curve no longer reaches the old end vertex. With a single
		// vertex the old end is also the start, which still touches it.
		p.vertices[geom.CircularIndex(edge+2, n+1)].Continuity = G0
	}
	return nil
}

// RemoveVertex deletes a vertex. Negative indices count from the end, -1
// being the last vertex. Both edges touching the vertex lose their
// constraints and curves, and the vertex's neighbors go back to G0.
func (p *Polygon) RemoveVertex(index int) error {
	n := len(p.vertices)
	if index < 0 {
		index += n
	}
	if err := p.checkVertex(index); err != nil {
		return err
	}

	prev := geom.CircularIndex(index-1, n)
	next := geom.CircularIndex(index+1, n)
	for _, e := range []int{prev, index} {
		delete(p.constraints, e)
		delete(p.curves, e)
	}
	p.vertices[prev].Continuity = G0
	p.vertices[next].Continuity = G0

	p.vertices = slices.Delete(p.vertices, index, index+1)
	p.shiftForRemove(index, len(p.vertices))
	return nil
}

// Edges recomputes the edge list from the current vertex positions.
func (p *Polygon) Edges() []geom.Segment {
	n := len(p.vertices)
	edges := make([]geom.Segment, n)
	for i := range edges {
		edges[i] = geom.Segment{
			Start: p.vertices[i].Point,
			End:   p.vertices[geom.CircularIndex(i+1, n)].Point,
		}
	}
	return edges
}

// Edge returns a single edge. The index must be valid.
func (p *Polygon) Edge(e int) geom.Segment {
	n := len(p.vertices)
	return geom.Segment{
		Start: p.vertices[e].Point,
		End:   p.vertices[geom.CircularIndex(e+1, n)].Point,
	}
}

// MoveVertex drags a vertex toward (x, y), subject to the constraints that
// govern it.
func (p *Polygon) MoveVertex(index int, x, y float64) error {
	if err := p.checkVertex(index); err != nil {
		return err
	}
	p.vertices[index].Point = p.enforceOnMove(index, geom.Pt(x, y))
	return nil
}

// Translate moves every vertex and control point by the same delta.
func (p *Polygon) Translate(dx, dy float64) {
	d := geom.Pt(dx, dy)
	for i := range p.vertices {
		p.vertices[i].Point = p.vertices[i].Point.Add(d)
	}
	for e, seg := range p.curves {
		seg.Control1 = seg.Control1.Add(d)
		seg.Control2 = seg.Control2.Add(d)
		p.curves[e] = seg
	}
}

func (p *Polygon) Vertices() []Vertex {
	return slices.Clone(p.vertices)
}

func (p *Polygon) Constraint(e int) (Constraint, bool) {
	c, ok := p.constraints[e]
	return c, ok
}

func (p *Polygon) Constraints() map[int]Constraint {
	out := make(map[int]Constraint, len(p.constraints))
	for e, c := range p.constraints {
		out[e] = c
	}
	return out
}

func (p *Polygon) Bezier(e int) (BezierSegment, bool) {
	seg, ok := p.curves[e]
	return seg, ok
}

func (p *Polygon) Beziers() map[int]BezierSegment {
	out := make(map[int]BezierSegment, len(p.curves))
	for e, seg := range p.curves {
		out[e] = seg
	}
	return out
}

// Even-odd point-in-polygon. Curved edges count as their chords.
func (p *Polygon) ContainsPoint(pt geom.Point) bool {
	return p.CrossingCount(pt)%2 == 1
}

// Crossing count helper for the even-odd rule, casting a ray toward +x.
func (p *Polygon) CrossingCount(pt geom.Point) int {
	crossingCount := 0
	n := len(p.vertices)
	for i, vertex := range p.vertices {
		a := vertex.Point
		b := p.vertices[geom.CircularIndex(i+1, n)].Point
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > pt.X {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// SignedArea is the shoelace area over straight edges. With y pointing down,
// a positive area means the vertices run clockwise on screen.
func (p *Polygon) SignedArea() float64 {
	var sum float64
	n := len(p.vertices)
	for i, vertex := range p.vertices {
		next := p.vertices[geom.CircularIndex(i+1, n)].Point
		sum += vertex.Point.X*next.Y - next.X*vertex.Point.Y
	}
	return sum / 2
}
