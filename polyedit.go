// An interactive polygon editing core for Go.
//
// A polygon is a closed loop of vertices. Edges can be constrained to be
// horizontal, vertical or of a fixed length, and can be turned into cubic
// Bézier curves whose joints are kept G0, G1 or C1 continuous while control
// points are dragged. Edge constraints and curves stay attached to the right
// edges when vertices are inserted or removed.
//
// The packages under this module split the work: polygon holds the model,
// editor the pointer interaction, script a line-command driver, and render
// and tui two front ends.
package polyedit

import (
	"io"
	"log/slog"

	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
	"github.com/osuushi/polyedit/scene"
	"github.com/osuushi/polyedit/script"
)

type Point = geom.Point
type Polygon = polygon.Polygon
type Snapshot = polygon.Snapshot
type Session = editor.Session

// NewSession starts editing p with the default pick radii. A nil logger
// means slog.Default().
func NewSession(p *Polygon, logger *slog.Logger) *Session {
	return editor.New(p, editor.DefaultOptions(), logger)
}

// Run executes a command script against the start scene and returns the
// session it left behind. print commands write to output.
func Run(commands io.Reader, output io.Writer, logger *slog.Logger) (*Session, error) {
	session := NewSession(scene.Predefined(), logger)
	runner := &script.Runner{Session: session, Output: output, Log: logger}
	return session, runner.Run(commands)
}
