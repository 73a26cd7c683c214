// Package script drives an editing session from line commands, one per line.
// Blank lines and everything after a # are ignored.
//
//	vertex X Y                 append a vertex
//	insert E X Y               split edge E at (X, Y)
//	remove I                   remove vertex I (negative counts from the end)
//	move I X Y                 drag vertex I to (X, Y)
//	translate DX DY            move the whole polygon
//	constrain E KIND [V]       KIND is horizontal, vertical or length
//	unconstrain E
//	bezier E [C1X C1Y C2X C2Y] make edge E a curve
//	unbezier E
//	continuity V LABEL         LABEL is G0, G1 or C1
//	control E 1|2 X Y          drag a control point
//	mode select|insert
//	press X Y | drag X Y | release
//	print                      write the state dump to the output
package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/polyedit/dbg"
	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

type Runner struct {
	Session *editor.Session
	// Output receives print commands. Nil discards them.
	Output io.Writer
	// Dumper formats print commands.
	Dumper *dbg.Dumper
	// KeepGoing skips commands the polygon rejects instead of stopping.
	KeepGoing bool
	Log       *slog.Logger
}

// Run executes every line of r. Parse errors always stop the run; rejected
// commands stop it unless KeepGoing is set. Errors carry the line number.
func (rn *Runner) Run(r io.Reader) error {
	logger := rn.Log
	if logger == nil {
		logger = slog.Default()
	}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		err := rn.exec(fields)
		if err == nil {
			continue
		}
		if _, isParse := err.(parseError); !isParse && rn.KeepGoing {
			logger.Warn("skipping rejected command", "line", lineNo, "command", line, "error", err)
			continue
		}
		return errors.Wrapf(err, "line %d", lineNo)
	}
	return scanner.Err()
}

func (rn *Runner) exec(fields []string) (err error) {
	defer func() {
		if recovered := handleParsePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	s := rn.Session
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "vertex":
		arity(cmd, args, 2)
		s.AddVertex(num(args[0]), num(args[1]))
	case "insert":
		arity(cmd, args, 3)
		return s.InsertVertex(integer(args[0]), num(args[1]), num(args[2]))
	case "remove":
		arity(cmd, args, 1)
		return s.RemoveVertex(integer(args[0]))
	case "move":
		arity(cmd, args, 3)
		return s.MoveVertex(integer(args[0]), num(args[1]), num(args[2]))
	case "translate":
		arity(cmd, args, 2)
		s.Translate(num(args[0]), num(args[1]))
	case "constrain":
		if len(args) != 2 && len(args) != 3 {
			fatalf("constrain takes 2 or 3 arguments, got %d", len(args))
		}
		kind, ok := polygon.ParseConstraintKind(args[1])
		if !ok {
			fatalf("unknown constraint kind %q", args[1])
		}
		value := 0
		if len(args) == 3 {
			value = integer(args[2])
		}
		return s.AddConstraint(integer(args[0]), kind, value)
	case "unconstrain":
		arity(cmd, args, 1)
		return s.RemoveConstraint(integer(args[0]))
	case "bezier":
		switch len(args) {
		case 1:
			return s.AddBezier(integer(args[0]))
		case 5:
			c1 := geom.Pt(num(args[1]), num(args[2]))
			c2 := geom.Pt(num(args[3]), num(args[4]))
			return s.AddBezierControls(integer(args[0]), c1, c2)
		}
		fatalf("bezier takes 1 or 5 arguments, got %d", len(args))
	case "unbezier":
		arity(cmd, args, 1)
		return s.RemoveBezier(integer(args[0]))
	case "continuity":
		arity(cmd, args, 2)
		c, ok := polygon.ParseContinuity(args[1])
		if !ok {
			fatalf("unknown continuity %q", args[1])
		}
		return s.SetContinuity(integer(args[0]), c)
	case "control":
		arity(cmd, args, 4)
		which := polygon.Which(integer(args[1]))
		if which != polygon.Control1 && which != polygon.Control2 {
			fatalf("control point must be 1 or 2, got %s", args[1])
		}
		return s.DragControlPoint(integer(args[0]), which, num(args[2]), num(args[3]))
	case "mode":
		arity(cmd, args, 1)
		switch args[0] {
		case "select":
			s.SetMode(editor.ModeSelect)
		case "insert":
			s.SetMode(editor.ModeInsertVertex)
		default:
			fatalf("unknown mode %q", args[0])
		}
	case "press":
		arity(cmd, args, 2)
		_, err := s.Press(geom.Pt(num(args[0]), num(args[1])))
		return err
	case "drag":
		arity(cmd, args, 2)
		return s.Move(geom.Pt(num(args[0]), num(args[1])))
	case "release":
		arity(cmd, args, 0)
		s.Release()
	case "print":
		arity(cmd, args, 0)
		if rn.Output != nil {
			dumper := rn.Dumper
			if dumper == nil {
				dumper = dbg.NewDumper(false)
			}
			fmt.Fprint(rn.Output, dumper.Dump(s.Snapshot()))
		}
	default:
		fatalf("unknown command %q", cmd)
	}
	return nil
}

func arity(cmd string, args []string, n int) {
	if len(args) != n {
		fatalf("%s takes %d arguments, got %d", cmd, n, len(args))
	}
}

func num(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("invalid number %q", s)
	}
	return f
}

func integer(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		fatalf("invalid integer %q", s)
	}
	return i
}
