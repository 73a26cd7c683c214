// Package tui is a terminal front end for an editing session. Each cell
// stands for a CellWidth x CellHeight block of model space, and the bottom
// row is a status line.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

type Options struct {
	CellWidth, CellHeight float64
	// Samples per curve. Curves are short on a terminal, so this can be low.
	Samples int
}

func DefaultOptions() Options {
	return Options{CellWidth: 10, CellHeight: 20, Samples: 32}
}

var (
	styleInterior    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEdge        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleConstrained = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSelected    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCurve       = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleControl     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleVertex      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus      = tcell.StyleDefault.Reverse(true)
)

type App struct {
	screen  tcell.Screen
	session *editor.Session
	opts    Options

	pressed bool
	status  string
}

// New wraps an initialized screen. The caller owns Init and Fini.
func New(screen tcell.Screen, session *editor.Session, opts Options) *App {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		opts.CellWidth, opts.CellHeight = DefaultOptions().CellWidth, DefaultOptions().CellHeight
	}
	if opts.Samples < 2 {
		opts.Samples = DefaultOptions().Samples
	}
	return &App{screen: screen, session: session, opts: opts}
}

// Status is the last rejection, or empty.
func (a *App) Status() string {
	return a.status
}

// Run draws and handles events until the user quits or the screen is
// finalized.
func (a *App) Run() {
	a.screen.EnableMouse()
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil || !a.Handle(ev) {
			return
		}
	}
}

// The top left corner of the cell, so a cell under a vertex picks it exactly.
func (a *App) toModel(x, y int) geom.Point {
	return geom.Pt(float64(x)*a.opts.CellWidth, float64(y)*a.opts.CellHeight)
}

func (a *App) toCell(p geom.Point) (int, int) {
	return int(math.Floor(p.X / a.opts.CellWidth)), int(math.Floor(p.Y / a.opts.CellHeight))
}

// Handle applies one event and reports whether the app should keep running.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	pt := a.toModel(ev.Position())
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !a.pressed:
		a.pressed = true
		_, err := a.session.Press(pt)
		a.setStatus(err)
	case down:
		a.setStatus(a.session.Move(pt))
	case a.pressed:
		a.pressed = false
		a.session.Release()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	s := a.session
	switch ev.Rune() {
	case 'q':
		return false
	case 'i':
		s.ToggleInsertMode()
	case 'x':
		a.setStatus(s.RemoveSelected())
	case 'h':
		a.onEdge(func(e int) error { return s.AddConstraint(e, polygon.Horizontal, 0) })
	case 'v':
		a.onEdge(func(e int) error { return s.AddConstraint(e, polygon.Vertical, 0) })
	case 'l':
		a.onEdge(func(e int) error {
			edges := s.Snapshot().Edges
			if e >= len(edges) {
				return s.AddConstraint(e, polygon.Length, 0)
			}
			return s.AddConstraint(e, polygon.Length, int(math.Round(edges[e].Length())))
		})
	case 'c':
		a.onEdge(s.RemoveConstraint)
	case 'b':
		a.onEdge(s.ToggleBezier)
	case '0', '1', '2':
		c := polygon.Continuity(ev.Rune() - '0')
		if v := s.SelectedVertex(); v >= 0 {
			a.setStatus(s.SetContinuity(v, c))
		} else {
			a.status = "no vertex selected"
		}
	}
	return true
}

func (a *App) onEdge(f func(edge int) error) {
	e := a.session.SelectedEdge()
	if e < 0 {
		a.status = "no edge selected"
		return
	}
	a.setStatus(f(e))
}

func (a *App) setStatus(err error) {
	if err != nil {
		a.status = err.Error()
	} else {
		a.status = ""
	}
}

// Draw paints the polygon and the status line and shows the screen.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	rows := h - 1
	snap := a.session.Snapshot()

	half := geom.Pt(a.opts.CellWidth/2, a.opts.CellHeight/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			if a.session.ContainsPoint(a.toModel(x, y).Add(half)) {
				a.screen.SetContent(x, y, '.', nil, styleInterior)
			}
		}
	}

	selectedEdge := a.session.SelectedEdge()
	for i, e := range snap.Edges {
		if curve, ok := snap.Curves[i]; ok {
			style := styleCurve
			if i == selectedEdge {
				style = styleSelected
			}
			points := snap.Cubic(curve).Sample(a.opts.Samples)
			for j := 1; j < len(points); j++ {
				a.line(points[j-1], points[j], '~', style)
			}
			continue
		}
		style := styleEdge
		if _, ok := snap.Constraints[i]; ok {
			style = styleConstrained
		}
		if i == selectedEdge {
			style = styleSelected
		}
		a.line(e.Start, e.End, '*', style)
	}

	for i, c := range snap.Constraints {
		if i >= len(snap.Edges) {
			continue
		}
		x, y := a.toCell(snap.Edges[i].Midpoint())
		a.screen.SetContent(x, y, marker(c.Kind), nil, styleConstrained)
	}

	for _, curve := range snap.Curves {
		for _, p := range []geom.Point{curve.Control1, curve.Control2} {
			x, y := a.toCell(p)
			a.screen.SetContent(x, y, 'o', nil, styleControl)
		}
	}

	for i, v := range snap.Vertices {
		style := styleVertex
		if i == a.session.SelectedVertex() {
			style = styleSelected
		}
		x, y := a.toCell(v.Point)
		a.screen.SetContent(x, y, '@', nil, style)
	}

	a.drawStatus(w, rows)
	a.screen.Show()
}

func (a *App) line(from, to geom.Point, r rune, style tcell.Style) {
	x0, y0 := a.toCell(from)
	x1, y1 := a.toCell(to)
	for _, p := range geom.BresenhamLine(x0, y0, x1, y1) {
		a.screen.SetContent(p.X, p.Y, r, nil, style)
	}
}

func marker(k polygon.ConstraintKind) rune {
	switch k {
	case polygon.Horizontal:
		return 'H'
	case polygon.Vertical:
		return 'V'
	}
	return 'L'
}

func (a *App) drawStatus(w, row int) {
	if row < 0 {
		return
	}
	selection := "-"
	if v := a.session.SelectedVertex(); v >= 0 {
		selection = fmt.Sprintf("vertex %d", v)
	} else if e := a.session.SelectedEdge(); e >= 0 {
		selection = fmt.Sprintf("edge %d", e)
	}
	text := fmt.Sprintf(" %s | %s", a.session.Mode(), selection)
	if a.status != "" {
		text += " | " + a.status
	}
	runes := []rune(text)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		a.screen.SetContent(x, row, r, nil, styleStatus)
	}
}
