package polygon

import (
	"sort"

	"github.com/osuushi/polyedit/geom"
)

// Default pick radii, in model units.
const (
	VertexThreshold  = 10
	EdgeThreshold    = 10
	ControlThreshold = 5
)

// PickVertex returns the vertex nearest to pt that is closer than threshold.
func (p *Polygon) PickVertex(pt geom.Point, threshold float64) (int, bool) {
	best, bestDist := -1, threshold
	for i, v := range p.vertices {
		if d := v.Point.Distance(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// PickControlPoint returns the control point nearest to pt that is closer
// than threshold.
func (p *Polygon) PickControlPoint(pt geom.Point, threshold float64) (edge int, which Which, ok bool) {
	bestDist := threshold
	for _, e := range p.curveKeys() {
		seg := p.curves[e]
		for _, w := range []Which{Control1, Control2} {
			if d := seg.Control(w).Distance(pt); d < bestDist {
				edge, which, ok, bestDist = e, w, true, d
			}
		}
	}
	return edge, which, ok
}

// PickEdge returns the edge whose line passes within threshold of pt. The
// perpendicular foot must land on the edge, padded by the threshold at both
// ends, so distant points on the extension of an edge do not pick it.
func (p *Polygon) PickEdge(pt geom.Point, threshold float64) (int, bool) {
	best, bestDist := -1, threshold
	for i, s := range p.Edges() {
		d, ok := geom.LineDistance(pt, s.Start, s.End)
		if !ok || d > bestDist {
			continue
		}
		pad := threshold / s.Length()
		if t := s.Project(pt); t < -pad || t > 1+pad {
			continue
		}
		best, bestDist = i, d
	}
	return best, best >= 0
}

func (p *Polygon) curveKeys() []int {
	keys := make([]int, 0, len(p.curves))
	for e := range p.curves {
		keys = append(keys, e)
	}
	sort.Ints(keys)
	return keys
}
