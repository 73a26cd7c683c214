package polygon

import "github.com/osuushi/polyedit/geom"

// The two functions in this file are the only places where map keys and
// segment endpoints are renumbered. Every structural mutation goes through
// one of them, so the maps can never drift out of step with the vertices.

// shiftForInsert re-keys both maps for a vertex about to be inserted right
// after vertex edge. The split edge's constraint is dropped, everything past
// it moves up by one, and the split edge's curve is repointed to end at the
// new vertex.
func (p *Polygon) shiftForInsert(edge int) {
	delete(p.constraints, edge)

	constraints := make(map[int]Constraint, len(p.constraints))
	for k, c := range p.constraints {
		if k > edge {
			k++
		}
		constraints[k] = c
	}

	curves := make(map[int]BezierSegment, len(p.curves))
	for k, seg := range p.curves {
		if k > edge {
			k++
		}
		if seg.Start > edge {
			seg.Start++
		}
		if seg.End > edge {
			seg.End++
		}
		curves[k] = seg
	}
	if seg, ok := curves[edge]; ok {
		seg.End = edge + 1
		curves[edge] = seg
	}

	p.constraints = constraints
	p.curves = curves
}

// shiftForRemove re-keys both maps after vertex index was removed, leaving n
// vertices. The two edges touching the removed vertex must already be gone
// from both maps.
func (p *Polygon) shiftForRemove(index, n int) {
	constraints := make(map[int]Constraint, len(p.constraints))
	for k, c := range p.constraints {
		if k > index {
			k--
		}
		constraints[k] = c
	}

	curves := make(map[int]BezierSegment, len(p.curves))
	for k, seg := range p.curves {
		if k > index {
			k--
		}
		if seg.Start > index {
			seg.Start--
		}
		if seg.End > index {
			seg.End--
		}
		if n > 0 {
			seg.Start = geom.CircularIndex(seg.Start, n)
			seg.End = geom.CircularIndex(seg.End, n)
		}
		curves[k] = seg
	}

	p.constraints = constraints
	p.curves = curves
}
