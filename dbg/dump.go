package dbg

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/polyedit/polygon"
)

// Dumper renders a polygon snapshot as text, one line per vertex and edge.
type Dumper struct {
	au aurora.Aurora
}

func NewDumper(colors bool) *Dumper {
	return &Dumper{au: aurora.NewAurora(colors)}
}

func (d *Dumper) Dump(s polygon.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d vertices %s\n", d.au.Bold("polygon"), len(s.Vertices), winding(s.Area))
	for i, v := range s.Vertices {
		label := d.au.Faint(v.Continuity.String())
		if v.Continuity != polygon.G0 {
			label = d.au.Cyan(v.Continuity.String())
		}
		fmt.Fprintf(&b, "  %s %s %s\n", d.au.Green(fmt.Sprintf("v%d", i)), v.Point, label)
	}
	for i, e := range s.Edges {
		fmt.Fprintf(&b, "  e%d %s -> %s", i, e.Start, e.End)
		if c, ok := s.Constraints[i]; ok {
			text := c.String()
			if c.Kind == polygon.Length {
				text += fmt.Sprintf(" (%+.1f)", e.Length()-float64(c.Value))
			}
			fmt.Fprintf(&b, " %s", d.au.Red(text))
		}
		if c, ok := s.Curves[i]; ok {
			fmt.Fprintf(&b, " %s c1=%s c2=%s", d.au.Magenta("curve "+SegmentName(c.BezierSegment)), c.Control1, c.Control2)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func winding(area float64) string {
	switch {
	case area > 0:
		return "clockwise"
	case area < 0:
		return "counterclockwise"
	}
	return "degenerate"
}
