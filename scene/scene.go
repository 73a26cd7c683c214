// Package scene builds the polygon an editing session starts from, either the
// built-in square or a scene read from an SVG file.
package scene

import (
	"embed"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

var ErrMalformed = errors.New("malformed scene")

// Predefined is the start scene: a 200x200 square whose top edge is a curve,
// with a vertical right side and a bottom of length 200.
func Predefined(opts ...polygon.Option) *polygon.Polygon {
	p := polygon.New(opts...)
	p.AddVertex(100, 100)
	p.AddVertex(300, 100)
	p.AddVertex(300, 300)
	p.AddVertex(100, 300)
	must(p.AddBezierControls(0, geom.Pt(150, 50), geom.Pt(250, 150)))
	must(p.AddConstraint(1, polygon.Vertical, 0))
	must(p.AddConstraint(2, polygon.Length, 200))
	return p
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

//go:embed fixtures
var fixtures embed.FS

// Fixture loads one of the embedded scenes by name, sans extension.
func Fixture(name string, opts ...polygon.Option) (*polygon.Polygon, error) {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer f.Close()
	return LoadSVG(f, opts...)
}

// LoadSVG reads the first <polygon> of an SVG document. Its points become the
// vertices. Edges are annotated with attributes on the polygon element:
//
//	data-constraints="1:horizontal 2:length=200"
//	data-continuity="0:G1 3:C1"
//
// and each <path data-edge="E" d="M x y C c1x c1y c2x c2y x y"> turns edge E
// into a curve. Curves are added before constraints and continuity.
func LoadSVG(r io.Reader, opts ...polygon.Option) (*polygon.Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.Wrap(ErrMalformed, "no polygon found")
	}
	el := polygons[0]

	coords, err := numbers(el.Attributes["points"])
	if err != nil {
		return nil, err
	}
	if len(coords)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformed, "odd number of coordinates in %q", el.Attributes["points"])
	}
	p := polygon.New(opts...)
	for i := 0; i < len(coords); i += 2 {
		p.AddVertex(coords[i], coords[i+1])
	}
	if p.N() < 3 {
		return nil, errors.Wrapf(ErrMalformed, "polygon has %d vertices", p.N())
	}

	for _, path := range root.FindAll("path") {
		if err := addCurve(p, path); err != nil {
			return nil, err
		}
	}

	for _, item := range strings.Fields(el.Attributes["data-constraints"]) {
		edge, rest, err := annotation(item)
		if err != nil {
			return nil, err
		}
		kindName, valueText, hasValue := strings.Cut(rest, "=")
		kind, ok := polygon.ParseConstraintKind(kindName)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "unknown constraint %q", item)
		}
		value := 0
		if hasValue {
			if value, err = strconv.Atoi(valueText); err != nil {
				return nil, errors.Wrapf(ErrMalformed, "invalid length in %q", item)
			}
		}
		if err := p.AddConstraint(edge, kind, value); err != nil {
			return nil, errors.Wrapf(err, "constraint %q", item)
		}
	}

	for _, item := range strings.Fields(el.Attributes["data-continuity"]) {
		v, label, err := annotation(item)
		if err != nil {
			return nil, err
		}
		c, ok := polygon.ParseContinuity(label)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "unknown continuity %q", item)
		}
		if err := p.SetContinuity(v, c); err != nil {
			return nil, errors.Wrapf(err, "continuity %q", item)
		}
	}
	return p, nil
}

// Only paths tagged with data-edge are curves, anything else is decoration.
func addCurve(p *polygon.Polygon, path *svgparser.Element) error {
	edgeText, ok := path.Attributes["data-edge"]
	if !ok {
		return nil
	}
	edge, err := strconv.Atoi(edgeText)
	if err != nil {
		return errors.Wrapf(ErrMalformed, "invalid data-edge %q", edgeText)
	}

	d := path.Attributes["d"]
	fields := strings.FieldsFunc(d, separator)
	if len(fields) != 10 || fields[0] != "M" || fields[3] != "C" {
		return errors.Wrapf(ErrMalformed, "path %q is not a single cubic", d)
	}
	coords, err := numbers(strings.Join(append(fields[1:3:3], fields[4:]...), " "))
	if err != nil {
		return err
	}

	if edge < 0 || edge >= p.N() {
		return errors.Wrapf(polygon.ErrInvalidIndex, "path for edge %d", edge)
	}
	seg := p.Edge(edge)
	start, end := geom.Pt(coords[0], coords[1]), geom.Pt(coords[6], coords[7])
	if !start.Equal(seg.Start) || !end.Equal(seg.End) {
		return errors.Wrapf(ErrMalformed, "path %q does not join the ends of edge %d", d, edge)
	}
	return p.AddBezierControls(edge, geom.Pt(coords[2], coords[3]), geom.Pt(coords[4], coords[5]))
}

// "E:rest" as used by the data-* attributes.
func annotation(item string) (int, string, error) {
	indexText, rest, ok := strings.Cut(item, ":")
	if !ok {
		return 0, "", errors.Wrapf(ErrMalformed, "missing ':' in %q", item)
	}
	index, err := strconv.Atoi(indexText)
	if err != nil {
		return 0, "", errors.Wrapf(ErrMalformed, "invalid index in %q", item)
	}
	return index, rest, nil
}

func separator(r rune) bool {
	return r == ' ' || r == ',' || r == '\n' || r == '\t'
}

func numbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, separator)
	result := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "invalid number %q", field)
		}
		result = append(result, f)
	}
	return result, nil
}
