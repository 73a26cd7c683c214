package polygon

import (
	"github.com/pkg/errors"

	"github.com/osuushi/polyedit/geom"
)

// Validate checks the structural invariants: map keys in range, no edge both
// constrained and curved, no two neighboring edges with the same orientation
// constraint, and every curve's endpoints matching its edge. It returns the
// first violation found.
func (p *Polygon) Validate() error {
	n := len(p.vertices)
	for e, c := range p.constraints {
		if e < 0 || e >= n {
			return errors.Errorf("constraint key %d out of range [0, %d)", e, n)
		}
		if _, ok := p.curves[e]; ok {
			return errors.Errorf("edge %d is both constrained and curved", e)
		}
		if c.Kind == Length && c.Value <= 0 {
			return errors.Errorf("edge %d has length %d", e, c.Value)
		}
		if c.Kind == Horizontal || c.Kind == Vertical {
			next := geom.CircularIndex(e+1, n)
			if other, ok := p.constraints[next]; ok && next != e && other.Kind == c.Kind {
				return errors.Errorf("edges %d and %d are both %s", e, next, c.Kind)
			}
		}
	}
	for e, seg := range p.curves {
		if e < 0 || e >= n {
			return errors.Errorf("curve key %d out of range [0, %d)", e, n)
		}
		if seg.Start != e || seg.End != geom.CircularIndex(e+1, n) {
			return errors.Errorf("curve on edge %d runs %d->%d", e, seg.Start, seg.End)
		}
	}
	return nil
}
