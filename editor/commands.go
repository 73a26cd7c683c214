package editor

import (
	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

// The methods in this file are the command surface. Each one forwards to the
// polygon, logs a rejection, and returns the polygon's error unchanged.

func (s *Session) AddVertex(x, y float64) {
	s.poly.AddVertex(x, y)
	s.report("add vertex", nil, "x", x, "y", y)
}

// InsertVertex splits an edge and selects the new vertex.
func (s *Session) InsertVertex(edge int, x, y float64) error {
	err := s.poly.InsertVertex(edge, x, y)
	if err == nil {
		s.selectVertex(edge + 1)
	}
	return s.report("insert vertex", err, "edge", edge, "x", x, "y", y)
}

func (s *Session) RemoveVertex(index int) error {
	err := s.poly.RemoveVertex(index)
	if err == nil {
		s.clearSelection()
	}
	return s.report("remove vertex", err, "index", index)
}

// RemoveSelected removes the selected vertex, or the last one when nothing
// is selected.
func (s *Session) RemoveSelected() error {
	if s.selectedVertex >= 0 {
		return s.RemoveVertex(s.selectedVertex)
	}
	return s.RemoveVertex(-1)
}

func (s *Session) MoveVertex(index int, x, y float64) error {
	return s.report("move vertex", s.poly.MoveVertex(index, x, y), "index", index, "x", x, "y", y)
}

func (s *Session) Translate(dx, dy float64) {
	s.poly.Translate(dx, dy)
	s.report("translate", nil, "dx", dx, "dy", dy)
}

func (s *Session) AddConstraint(edge int, kind polygon.ConstraintKind, value int) error {
	return s.report("add constraint", s.poly.AddConstraint(edge, kind, value), "edge", edge, "kind", kind, "value", value)
}

func (s *Session) RemoveConstraint(edge int) error {
	return s.report("remove constraint", s.poly.RemoveConstraint(edge), "edge", edge)
}

func (s *Session) AddBezier(edge int) error {
	return s.report("add bezier", s.poly.AddBezier(edge), "edge", edge)
}

func (s *Session) AddBezierControls(edge int, c1, c2 geom.Point) error {
	return s.report("add bezier", s.poly.AddBezierControls(edge, c1, c2), "edge", edge, "c1", c1, "c2", c2)
}

func (s *Session) RemoveBezier(edge int) error {
	return s.report("remove bezier", s.poly.RemoveBezier(edge), "edge", edge)
}

// ToggleBezier turns a straight edge into a curve or a curve back into a
// straight edge.
func (s *Session) ToggleBezier(edge int) error {
	if _, ok := s.poly.Bezier(edge); ok {
		return s.RemoveBezier(edge)
	}
	return s.AddBezier(edge)
}

func (s *Session) SetContinuity(v int, c polygon.Continuity) error {
	return s.report("set continuity", s.poly.SetContinuity(v, c), "vertex", v, "continuity", c)
}

func (s *Session) DragControlPoint(edge int, which polygon.Which, x, y float64) error {
	return s.report("drag control", s.poly.DragControlPoint(edge, which, x, y), "edge", edge, "which", int(which), "x", x, "y", y)
}

func (s *Session) PickVertex(pt geom.Point) (int, bool) {
	return s.poly.PickVertex(pt, s.opts.VertexThreshold)
}

func (s *Session) PickEdge(pt geom.Point) (int, bool) {
	return s.poly.PickEdge(pt, s.opts.EdgeThreshold)
}

func (s *Session) PickControlPoint(pt geom.Point) (int, polygon.Which, bool) {
	return s.poly.PickControlPoint(pt, s.opts.ControlThreshold)
}

// LengthDeviation is passed through for renderers.
func (s *Session) LengthDeviation(edge int) (float64, bool) {
	return s.poly.LengthDeviation(edge)
}

func (s *Session) ContainsPoint(pt geom.Point) bool {
	return s.poly.ContainsPoint(pt)
}
