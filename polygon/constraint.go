package polygon

import (
	"github.com/pkg/errors"

	"github.com/osuushi/polyedit/geom"
)

// CanAddConstraint reports whether AddConstraint would accept the kind on
// this edge, ignoring the length value.
func (p *Polygon) CanAddConstraint(edge int, kind ConstraintKind) bool {
	return p.checkConstraint(edge, kind) == nil
}

func (p *Polygon) checkConstraint(edge int, kind ConstraintKind) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	if kind != Horizontal && kind != Vertical && kind != Length {
		return errors.Wrapf(ErrInvalidConstraintValue, "unknown constraint kind %d", int(kind))
	}
	if _, ok := p.curves[edge]; ok {
		return conflictf("edge %d is a curve", edge)
	}
	if c, ok := p.constraints[edge]; ok {
		return conflictf("edge %d is already %s", edge, c)
	}
	if kind == Length {
		return nil
	}

	// Two neighbouring edges with the same orientation would be one line
	n := len(p.vertices)
	for _, neighbor := range []int{geom.CircularIndex(edge-1, n), geom.CircularIndex(edge+1, n)} {
		if neighbor == edge {
			continue
		}
		if c, ok := p.constraints[neighbor]; ok && c.Kind == kind {
			return conflictf("edge %d is next to %s edge %d", edge, kind, neighbor)
		}
	}
	return nil
}

// AddConstraint attaches a constraint to a straight edge. Length constraints
// need a positive value; the value is ignored for the other kinds.
func (p *Polygon) AddConstraint(edge int, kind ConstraintKind, value int) error {
	if err := p.checkConstraint(edge, kind); err != nil {
		return err
	}
	c := Constraint{Kind: kind}
	if kind == Length {
		if value <= 0 {
			return errors.Wrapf(ErrInvalidConstraintValue, "length %d must be positive", value)
		}
		c.Value = value
	}
	p.constraints[edge] = c
	return nil
}

// RemoveConstraint clears the constraint on an edge, if there is one.
func (p *Polygon) RemoveConstraint(edge int) error {
	if err := p.checkEdge(edge); err != nil {
		return err
	}
	delete(p.constraints, edge)
	return nil
}

// LengthDeviation is the current length of a length-constrained edge minus
// its target. Length is not enforced while dragging, so this is what a
// renderer shows instead.
func (p *Polygon) LengthDeviation(edge int) (float64, bool) {
	c, ok := p.constraints[edge]
	if !ok || c.Kind != Length {
		return 0, false
	}
	return p.Edge(edge).Length() - float64(c.Value), true
}

// enforceOnMove adjusts a proposed vertex position. The constraint on the
// edge starting at the vertex copies the other endpoint's y (horizontal) or x
// (vertical) onto the vertex. In symmetric mode the edge ending at the vertex
// applies the same rule against its start. Length never restricts a drag.
func (p *Polygon) enforceOnMove(index int, proposed geom.Point) geom.Point {
	n := len(p.vertices)
	result := proposed
	if c, ok := p.constraints[index]; ok {
		result = lock(c.Kind, result, p.vertices[geom.CircularIndex(index+1, n)].Point)
	}
	if p.symmetric {
		prev := geom.CircularIndex(index-1, n)
		if c, ok := p.constraints[prev]; ok && prev != index {
			result = lock(c.Kind, result, p.vertices[prev].Point)
		}
	}
	return result
}

func lock(kind ConstraintKind, pt, anchor geom.Point) geom.Point {
	switch kind {
	case Horizontal:
		pt.Y = anchor.Y
	case Vertical:
		pt.X = anchor.X
	}
	return pt
}
