// Package render draws a polygon snapshot onto a raster image. It is the
// drawing backend of the editor: straight edges, curves, constraint markers,
// control handles and vertices, in that order.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

type Options struct {
	Width, Height int
	// Rasterize straight edges pixel by pixel with Bresenham instead of
	// stroking them with gg.
	Bresenham bool
	// Number of points a curve is sampled at.
	Samples int
}

func DefaultOptions() Options {
	return Options{Width: 400, Height: 400, Samples: geom.DefaultSamples}
}

// Selection marks what the editor has selected. -1 means nothing.
type Selection struct {
	Vertex, Edge int
}

var NoSelection = Selection{Vertex: -1, Edge: -1}

type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.Samples < 2 {
		opts.Samples = geom.DefaultSamples
	}
	return &Renderer{opts: opts}
}

type rgb struct{ r, g, b float64 }

var (
	background  = rgb{1, 1, 1}
	edgeColor   = rgb{0, 0, 0}
	constrained = rgb{1, 0, 0}
	selected    = rgb{0, 0, 1}
	curveColor  = rgb{0.55, 0, 0.55}
	markerColor = rgb{0, 0, 1}
	vertexColor = rgb{0, 0.8, 0}
)

func (r *Renderer) Draw(s polygon.Snapshot, sel Selection) *gg.Context {
	c := gg.NewContext(r.opts.Width, r.opts.Height)
	setColor(c, background)
	c.Clear()
	c.SetFontFace(basicfont.Face7x13)

	for i, e := range s.Edges {
		col, width := edgeColor, 2.0
		if _, ok := s.Constraints[i]; ok {
			col = constrained
		}
		if i == sel.Edge {
			col, width = selected, 3
		}

		if curve, ok := s.Curves[i]; ok {
			r.drawCurve(c, s.Cubic(curve), i == sel.Edge)
			continue
		}
		setColor(c, col)
		if r.opts.Bresenham {
			drawPixels(c, e.Start, e.End)
		} else {
			c.SetLineWidth(width)
			c.DrawLine(e.Start.X, e.Start.Y, e.End.X, e.End.Y)
			c.Stroke()
		}
	}

	for i, con := range s.Constraints {
		if i >= len(s.Edges) {
			continue
		}
		r.drawMarker(c, s.Edges[i], con)
	}

	for _, curve := range s.Curves {
		r.drawHandles(c, s, curve)
	}

	for i, v := range s.Vertices {
		drawVertex(c, v, i == sel.Vertex)
	}
	return c
}

func (r *Renderer) Render(s polygon.Snapshot, sel Selection) image.Image {
	return r.Draw(s, sel).Image()
}

func (r *Renderer) SavePNG(path string, s polygon.Snapshot, sel Selection) error {
	return r.Draw(s, sel).SavePNG(path)
}

// Preview prints a PNG to the terminal. Only iTerm understands the escape
// sequence, other terminals show nothing.
func Preview(path string, w io.Writer) error {
	return imgcat.CatFile(path, w)
}

func setColor(c *gg.Context, col rgb) {
	c.SetRGB(col.r, col.g, col.b)
}

// Bresenham pixels bypass gg's transform and antialiasing entirely.
func drawPixels(c *gg.Context, a, b geom.Point) {
	x0, y0 := a.Round()
	x1, y1 := b.Round()
	for _, p := range geom.BresenhamLine(x0, y0, x1, y1) {
		c.SetPixel(p.X, p.Y)
	}
}

func (r *Renderer) drawCurve(c *gg.Context, cubic geom.CubicBez, isSelected bool) {
	col, width := curveColor, 2.0
	if isSelected {
		col, width = selected, 3
	}
	setColor(c, col)
	points := cubic.Sample(r.opts.Samples)
	if r.opts.Bresenham {
		for i := 1; i < len(points); i++ {
			drawPixels(c, points[i-1], points[i])
		}
		return
	}
	c.SetLineWidth(width)
	c.SetDash(6, 4)
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
	c.SetDash()
}

func (r *Renderer) drawMarker(c *gg.Context, e geom.Segment, con polygon.Constraint) {
	mid := e.Midpoint()
	setColor(c, markerColor)
	c.DrawCircle(mid.X, mid.Y, 5)
	c.Fill()

	var label string
	switch con.Kind {
	case polygon.Horizontal:
		label = "H"
	case polygon.Vertical:
		label = "V"
	case polygon.Length:
		label = fmt.Sprintf("L=%d (%+.1f)", con.Value, e.Length()-float64(con.Value))
	}
	setColor(c, edgeColor)
	c.DrawStringAnchored(label, mid.X+8, mid.Y-8, 0, 0.5)
}

func (r *Renderer) drawHandles(c *gg.Context, s polygon.Snapshot, curve polygon.CurveState) {
	cubic := s.Cubic(curve)
	setColor(c, markerColor)
	c.SetLineWidth(1)
	c.DrawLine(cubic.P0.X, cubic.P0.Y, cubic.P1.X, cubic.P1.Y)
	c.DrawLine(cubic.P3.X, cubic.P3.Y, cubic.P2.X, cubic.P2.Y)
	c.Stroke()
	for _, p := range []geom.Point{cubic.P1, cubic.P2} {
		c.DrawCircle(p.X, p.Y, 3)
		setColor(c, markerColor)
		c.FillPreserve()
		setColor(c, edgeColor)
		c.Stroke()
	}
}

func drawVertex(c *gg.Context, v polygon.VertexState, isSelected bool) {
	radius := 5.0
	if isSelected {
		radius = 7
	}
	c.DrawCircle(v.Point.X, v.Point.Y, radius)
	setColor(c, vertexColor)
	c.FillPreserve()
	setColor(c, edgeColor)
	c.SetLineWidth(1)
	c.Stroke()

	if v.Continuity != polygon.G0 {
		c.DrawString(v.Continuity.String(), v.Point.X+7, v.Point.Y-7)
	}
}
