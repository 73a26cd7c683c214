package polygon

import (
	"github.com/pkg/errors"

	"github.com/osuushi/polyedit/geom"
)

func (p *Polygon) touchesCurve(v int) bool {
	n := len(p.vertices)
	_, after := p.curves[v]
	_, before := p.curves[geom.CircularIndex(v-1, n)]
	return after || before
}

// Classify returns the continuity in effect at a vertex. A label only means
// something next to a curve, so anything else reads as G0.
func (p *Polygon) Classify(v int) Continuity {
	if v < 0 || v >= len(p.vertices) || !p.touchesCurve(v) {
		return G0
	}
	return p.vertices[v].Continuity
}

// SetContinuity stores a label on a vertex that touches at least one curve.
func (p *Polygon) SetContinuity(v int, c Continuity) error {
	if err := p.checkVertex(v); err != nil {
		return err
	}
	if c != G0 && c != G1 && c != C1 {
		return errors.Wrapf(ErrInvalidConstraintValue, "unknown continuity %d", int(c))
	}
	if !p.touchesCurve(v) {
		return errors.Wrapf(ErrMissingContinuityContext, "vertex %d touches no curve", v)
	}
	p.vertices[v].Continuity = c
	return nil
}

// DragControlPoint moves one control point of the curve on edge and keeps the
// neighboring curve coherent. Control1 sits next to the segment's start and
// pairs with the previous edge's Control2; Control2 pairs with the next
// edge's Control1. At a G1 vertex the paired point swings onto the line
// through the vertex at its old distance, at a C1 vertex it becomes the exact
// reflection. Call it on every drag step.
func (p *Polygon) DragControlPoint(edge int, which Which, x, y float64) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	seg, ok := p.curves[edge]
	if !ok {
		return invalidIndexf("edge %d has no curve", edge)
	}
	if which != Control1 && which != Control2 {
		return invalidIndexf("control point %d", int(which))
	}

	pos := geom.Pt(x, y)
	seg.setControl(which, pos)
	p.curves[edge] = seg

	n := len(p.vertices)
	neighborEdge, shared, neighborWhich := geom.CircularIndex(edge+1, n), seg.End, Control1
	if which == Control1 {
		neighborEdge, shared, neighborWhich = geom.CircularIndex(edge-1, n), seg.Start, Control2
	}
	if neighborEdge == edge {
		return nil
	}
	neighbor, ok := p.curves[neighborEdge]
	if !ok {
		return nil
	}

	v := p.vertices[shared]
	switch v.Continuity {
	case G1:
		neighbor.setControl(neighborWhich, geom.AlignOpposite(v.Point, pos, neighbor.Control(neighborWhich)))
	case C1:
		neighbor.setControl(neighborWhich, geom.Reflect(pos, v.Point))
	default:
		return nil
	}
	p.curves[neighborEdge] = neighbor
	return nil
}

// AddBezier turns a straight edge into a curve with its control points at one
// and two thirds of the edge.
func (p *Polygon) AddBezier(edge int) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	s := p.Edge(edge)
	return p.AddBezierControls(edge, s.Start.Lerp(s.End, 1.0/3), s.Start.Lerp(s.End, 2.0/3))
}

// AddBezierControls turns a straight edge into a curve with the given
// control points.
func (p *Polygon) AddBezierControls(edge int, c1, c2 geom.Point) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	if _, ok := p.curves[edge]; ok {
		return conflictf("edge %d is already a curve", edge)
	}
	if c, ok := p.constraints[edge]; ok {
		return conflictf("edge %d is %s", edge, c)
	}
	p.nextSerial++
	p.curves[edge] = BezierSegment{
		Start:    edge,
		End:      geom.CircularIndex(edge+1, len(p.vertices)),
		Control1: c1,
		Control2: c2,
		serial:   p.nextSerial,
	}
	return nil
}

// RemoveBezier makes an edge straight again. Both endpoints go back to G0.
func (p *Polygon) RemoveBezier(edge int) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	seg, ok := p.curves[edge]
	if !ok {
		return nil
	}
	delete(p.curves, edge)
	p.vertices[seg.Start].Continuity = G0
	p.vertices[seg.End].Continuity = G0
	return nil
}
