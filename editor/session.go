// Package editor turns pointer gestures and menu commands into polygon
// mutations. It owns the polygon for the length of an editing session and
// keeps the pick and drag state a front end needs between events.
package editor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

type Mode int

const (
	ModeSelect Mode = iota
	// The next edge click inserts a vertex there, then the session switches
	// back to ModeSelect.
	ModeInsertVertex
)

func (m Mode) String() string {
	if m == ModeInsertVertex {
		return "insert"
	}
	return "select"
}

// Hit is what a press landed on.
type Hit int

const (
	HitNone Hit = iota
	HitVertex
	HitControl
	HitEdge
	HitPolygon
)

func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitVertex:
		return "vertex"
	case HitControl:
		return "control"
	case HitEdge:
		return "edge"
	case HitPolygon:
		return "polygon"
	}
	return fmt.Sprintf("Hit(%d)", int(h))
}

type Options struct {
	VertexThreshold  float64
	EdgeThreshold    float64
	ControlThreshold float64
}

func DefaultOptions() Options {
	return Options{
		VertexThreshold:  polygon.VertexThreshold,
		EdgeThreshold:    polygon.EdgeThreshold,
		ControlThreshold: polygon.ControlThreshold,
	}
}

type dragState struct {
	hit   Hit
	index int
	which polygon.Which
	last  geom.Point
}

type Session struct {
	poly *polygon.Polygon
	opts Options
	log  *slog.Logger

	mode           Mode
	selectedVertex int
	selectedEdge   int
	drag           dragState
}

// New starts a session on p. A nil logger means slog.Default().
func New(p *polygon.Polygon, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		poly:           p,
		opts:           opts,
		log:            logger,
		selectedVertex: -1,
		selectedEdge:   -1,
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) SetMode(m Mode) {
	s.mode = m
}

func (s *Session) ToggleInsertMode() Mode {
	if s.mode == ModeInsertVertex {
		s.mode = ModeSelect
	} else {
		s.mode = ModeInsertVertex
	}
	return s.mode
}

// SelectedVertex is the last vertex pressed, or -1.
func (s *Session) SelectedVertex() int {
	return s.selectedVertex
}

// SelectedEdge is the last edge clicked, or -1.
func (s *Session) SelectedEdge() int {
	return s.selectedEdge
}

func (s *Session) Dragging() bool {
	return s.drag.hit != HitNone
}

func (s *Session) Snapshot() polygon.Snapshot {
	return s.poly.Snapshot()
}

func (s *Session) selectVertex(v int) {
	s.selectedVertex, s.selectedEdge = v, -1
}

func (s *Session) selectEdge(e int) {
	s.selectedVertex, s.selectedEdge = -1, e
}

func (s *Session) clearSelection() {
	s.selectedVertex, s.selectedEdge = -1, -1
}

// Press picks what lies under pt, in the order vertex, control point, edge,
// and otherwise grabs the whole polygon. An edge click in insert mode splits
// the edge at pt.
func (s *Session) Press(pt geom.Point) (Hit, error) {
	s.drag = dragState{}
	if v, ok := s.poly.PickVertex(pt, s.opts.VertexThreshold); ok {
		s.selectVertex(v)
		s.drag = dragState{hit: HitVertex, index: v}
		return HitVertex, nil
	}
	if e, which, ok := s.poly.PickControlPoint(pt, s.opts.ControlThreshold); ok {
		s.drag = dragState{hit: HitControl, index: e, which: which}
		return HitControl, nil
	}
	if e, ok := s.poly.PickEdge(pt, s.opts.EdgeThreshold); ok {
		s.selectEdge(e)
		if s.mode == ModeInsertVertex {
			s.mode = ModeSelect
			return HitEdge, s.InsertVertex(e, pt.X, pt.Y)
		}
		return HitEdge, nil
	}
	if s.poly.N() == 0 {
		return HitNone, nil
	}
	s.drag = dragState{hit: HitPolygon, last: pt}
	return HitPolygon, nil
}

// Move is one drag step. Without an active drag it does nothing.
func (s *Session) Move(pt geom.Point) error {
	switch s.drag.hit {
	case HitVertex:
		return s.MoveVertex(s.drag.index, pt.X, pt.Y)
	case HitControl:
		return s.DragControlPoint(s.drag.index, s.drag.which, pt.X, pt.Y)
	case HitPolygon:
		d := pt.Sub(s.drag.last)
		s.drag.last = pt
		s.Translate(d.X, d.Y)
	}
	return nil
}

// Release ends the drag. The selection survives.
func (s *Session) Release() {
	s.drag = dragState{}
}

func (s *Session) report(op string, err error, attrs ...any) error {
	if err != nil {
		s.log.Info("rejected", append([]any{"op", op, "error", err}, attrs...)...)
		return err
	}
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug(op, attrs...)
		if verr := s.poly.Validate(); verr != nil {
			s.log.Error("invariant violated", "op", op, "error", verr)
		}
	}
	return nil
}
