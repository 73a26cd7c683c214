package polygon

import "github.com/osuushi/polyedit/geom"

// Snapshot is a read-only copy of everything a renderer or a hit tester
// needs. Nothing in it aliases the polygon.
type Snapshot struct {
	Vertices    []VertexState
	Edges       []geom.Segment
	Constraints map[int]Constraint
	Curves      map[int]CurveState
	// See SignedArea.
	Area float64
}

type VertexState struct {
	Point geom.Point
	// The continuity in effect, see Classify.
	Continuity Continuity
}

type CurveState struct {
	BezierSegment
	// Set when the neighboring edge on that side is also a curve, so the
	// vertex continuity couples the two.
	PrevLinked, NextLinked bool
}

func (p *Polygon) Snapshot() Snapshot {
	n := len(p.vertices)
	s := Snapshot{
		Vertices:    make([]VertexState, n),
		Edges:       p.Edges(),
		Constraints: p.Constraints(),
		Curves:      make(map[int]CurveState, len(p.curves)),
		Area:        p.SignedArea(),
	}
	for i, v := range p.vertices {
		s.Vertices[i] = VertexState{Point: v.Point, Continuity: p.Classify(i)}
	}
	for e, seg := range p.curves {
		prev := geom.CircularIndex(e-1, n)
		next := geom.CircularIndex(e+1, n)
		_, prevCurved := p.curves[prev]
		_, nextCurved := p.curves[next]
		s.Curves[e] = CurveState{
			BezierSegment: seg,
			PrevLinked:    prevCurved && prev != e,
			NextLinked:    nextCurved && next != e,
		}
	}
	return s
}

// Cubic resolves a curve's vertex indices into the four Bézier points.
func (s Snapshot) Cubic(c CurveState) geom.CubicBez {
	return geom.CubicBez{
		P0: s.Vertices[c.Start].Point,
		P1: c.Control1,
		P2: c.Control2,
		P3: s.Vertices[c.End].Point,
	}
}
