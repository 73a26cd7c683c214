package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polyedit/geom"
)

func TestPickVertex(t *testing.T) {
	p := square()
	i, ok := p.PickVertex(geom.Pt(104, 97), VertexThreshold)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = p.PickVertex(geom.Pt(112, 100), VertexThreshold)
	assert.False(t, ok)

	// Nearest wins when two are in range
	p.AddVertex(106, 100)
	i, ok = p.PickVertex(geom.Pt(104, 100), VertexThreshold)
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = New().PickVertex(geom.Pt(0, 0), VertexThreshold)
	assert.False(t, ok)
}

func TestPickEdge(t *testing.T) {
	p := square()
	e, ok := p.PickEdge(geom.Pt(200, 108), EdgeThreshold)
	require.True(t, ok)
	assert.Equal(t, 0, e)

	e, ok = p.PickEdge(geom.Pt(295, 250), EdgeThreshold)
	require.True(t, ok)
	assert.Equal(t, 1, e)

	_, ok = p.PickEdge(geom.Pt(200, 200), EdgeThreshold)
	assert.False(t, ok)

	// On the extension of edge 0, well past its end
	_, ok = p.PickEdge(geom.Pt(500, 100), EdgeThreshold)
	assert.False(t, ok)

	// Degenerate edges never pick
	d := New()
	d.AddVertex(5, 5)
	d.AddVertex(5, 5)
	_, ok = d.PickEdge(geom.Pt(5, 5), EdgeThreshold)
	assert.False(t, ok)
}

func TestPickControlPoint(t *testing.T) {
	p := square()
	require.NoError(t, p.AddBezierControls(0, geom.Pt(150, 50), geom.Pt(250, 150)))

	e, which, ok := p.PickControlPoint(geom.Pt(252, 148), ControlThreshold)
	require.True(t, ok)
	assert.Equal(t, 0, e)
	assert.Equal(t, Control2, which)

	e, which, ok = p.PickControlPoint(geom.Pt(150, 53), ControlThreshold)
	require.True(t, ok)
	assert.Equal(t, 0, e)
	assert.Equal(t, Control1, which)

	_, _, ok = p.PickControlPoint(geom.Pt(150, 56), ControlThreshold)
	assert.False(t, ok)
}
