package polygon

import (
	"fmt"

	"github.com/osuushi/polyedit/geom"
)

// Continuity classifies how the two curves meeting at a vertex are tied
// together.
type Continuity int

const (
	// No relationship between the tangents.
	G0 Continuity = iota
	// Adjacent control points stay collinear with the vertex.
	G1
	// Adjacent control points are reflections of each other through the vertex.
	C1
)

func (c Continuity) String() string {
	switch c {
	case G0:
		return "G0"
	case G1:
		return "G1"
	case C1:
		return "C1"
	}
	return fmt.Sprintf("Continuity(%d)", int(c))
}

// ParseContinuity accepts the labels produced by String.
func ParseContinuity(s string) (Continuity, bool) {
	switch s {
	case "G0", "g0":
		return G0, true
	case "G1", "g1":
		return G1, true
	case "C1", "c1":
		return C1, true
	}
	return G0, false
}

type ConstraintKind int

const (
	Horizontal ConstraintKind = iota
	Vertical
	Length
)

func (k ConstraintKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Length:
		return "length"
	}
	return fmt.Sprintf("ConstraintKind(%d)", int(k))
}

func ParseConstraintKind(s string) (ConstraintKind, bool) {
	switch s {
	case "horizontal", "h":
		return Horizontal, true
	case "vertical", "v":
		return Vertical, true
	case "length", "l":
		return Length, true
	}
	return Horizontal, false
}

type Vertex struct {
	Point      geom.Point
	Continuity Continuity
}

// A Constraint restricts a straight edge. Value is the target length for
// Length constraints and zero otherwise.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

func (c Constraint) String() string {
	if c.Kind == Length {
		return fmt.Sprintf("length=%d", c.Value)
	}
	return c.Kind.String()
}

// Which selects one of the two control points of a segment.
type Which int

const (
	Control1 Which = 1
	Control2 Which = 2
)

// BezierSegment replaces the straight rendering of the edge it is keyed
// under. Start and End always equal that edge's endpoints.
type BezierSegment struct {
	Start, End         int
	Control1, Control2 geom.Point

	serial uint64
}

// Serial identifies the segment across re-indexing. It is only meant for
// debugging output.
func (b BezierSegment) Serial() uint64 {
	return b.serial
}

func (b BezierSegment) Control(which Which) geom.Point {
	if which == Control1 {
		return b.Control1
	}
	return b.Control2
}

func (b *BezierSegment) setControl(which Which, p geom.Point) {
	if which == Control1 {
		b.Control1 = p
	} else {
		b.Control2 = p
	}
}
