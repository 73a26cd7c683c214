package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polyedit/geom"
)

// Square with curves on edges 0 and 1, which meet at vertex 1 (300, 100).
func curvedCorner(t *testing.T, c Continuity) *Polygon {
	p := square()
	require.NoError(t, p.AddBezierControls(0, geom.Pt(150, 50), geom.Pt(250, 50)))
	require.NoError(t, p.AddBezierControls(1, geom.Pt(340, 130), geom.Pt(350, 250)))
	require.NoError(t, p.SetContinuity(1, c))
	return p
}

func TestClassify(t *testing.T) {
	p := square()
	assert.Equal(t, G0, p.Classify(0))
	assert.ErrorIs(t, p.SetContinuity(0, C1), ErrMissingContinuityContext)
	assert.ErrorIs(t, p.SetContinuity(9, C1), ErrInvalidIndex)

	require.NoError(t, p.AddBezier(0))
	require.NoError(t, p.SetContinuity(0, C1))
	require.NoError(t, p.SetContinuity(1, G1))
	assert.Equal(t, C1, p.Classify(0))
	assert.Equal(t, G1, p.Classify(1))
	assert.ErrorIs(t, p.SetContinuity(2, G1), ErrMissingContinuityContext)
	assert.ErrorIs(t, p.SetContinuity(1, Continuity(7)), ErrInvalidConstraintValue)

	require.NoError(t, p.RemoveBezier(0))
	assert.Equal(t, G0, p.Classify(0))
	assert.Equal(t, G0, p.Vertices()[0].Continuity)
	assert.Equal(t, G0, p.Vertices()[1].Continuity)
	assert.Equal(t, G0, p.Classify(-1))
}

func TestDragControlPoint(t *testing.T) {
	vertex := geom.Pt(300, 100)

	t.Run("C1 reflects the neighbor", func(t *testing.T) {
		p := curvedCorner(t, C1)
		require.NoError(t, p.DragControlPoint(0, Control2, 320, 60))

		seg, _ := p.Bezier(0)
		assert.Equal(t, geom.Pt(320, 60), seg.Control2)
		next, _ := p.Bezier(1)
		assert.Equal(t, geom.Reflect(geom.Pt(320, 60), vertex), next.Control1)
		assert.Equal(t, geom.Pt(280, 140), next.Control1)
		assert.Equal(t, geom.Pt(350, 250), next.Control2, "far control untouched")

		// Every drag step recomputes
		require.NoError(t, p.DragControlPoint(0, Control2, 250, 100))
		next, _ = p.Bezier(1)
		assert.Equal(t, geom.Pt(350, 100), next.Control1)
	})

	t.Run("G1 keeps direction, not distance", func(t *testing.T) {
		p := curvedCorner(t, G1)
		before, _ := p.Bezier(1)
		dist := before.Control1.Distance(vertex)

		x := geom.Pt(260, 70)
		require.NoError(t, p.DragControlPoint(0, Control2, x.X, x.Y))
		next, _ := p.Bezier(1)
		got := next.Control1

		assert.InDelta(t, dist, got.Distance(vertex), geom.Tolerance)
		a := x.Sub(vertex)
		b := got.Sub(vertex)
		assert.InDelta(t, 0, a.X*b.Y-a.Y*b.X, 1e-6, "collinear")
		assert.Less(t, a.X*b.X+a.Y*b.Y, 0.0, "opposite sides of the vertex")
	})

	t.Run("G0 leaves the neighbor alone", func(t *testing.T) {
		p := curvedCorner(t, G0)
		before, _ := p.Bezier(1)
		require.NoError(t, p.DragControlPoint(0, Control2, 320, 60))
		after, _ := p.Bezier(1)
		assert.Equal(t, before, after)
	})

	t.Run("control1 pairs with the previous edge", func(t *testing.T) {
		p := curvedCorner(t, C1)
		require.NoError(t, p.AddBezierControls(3, geom.Pt(50, 250), geom.Pt(80, 120)))
		require.NoError(t, p.SetContinuity(0, C1))

		require.NoError(t, p.DragControlPoint(0, Control1, 140, 90))
		prev, _ := p.Bezier(3)
		assert.Equal(t, geom.Pt(60, 110), prev.Control2)
		assert.Equal(t, geom.Pt(50, 250), prev.Control1)

		// And the other way round
		require.NoError(t, p.DragControlPoint(3, Control2, 90, 80))
		seg, _ := p.Bezier(0)
		assert.Equal(t, geom.Pt(110, 120), seg.Control1)
	})

	t.Run("no neighbor moves freely", func(t *testing.T) {
		p := square()
		require.NoError(t, p.AddBezier(2))
		require.NoError(t, p.SetContinuity(2, C1))
		require.NoError(t, p.DragControlPoint(2, Control1, 310, 330))
		seg, _ := p.Bezier(2)
		assert.Equal(t, geom.Pt(310, 330), seg.Control1)
		assert.Len(t, p.Beziers(), 1)
	})

	t.Run("rejections", func(t *testing.T) {
		p := curvedCorner(t, C1)
		before := p.Beziers()
		assert.ErrorIs(t, p.DragControlPoint(2, Control1, 0, 0), ErrInvalidIndex)
		assert.ErrorIs(t, p.DragControlPoint(7, Control1, 0, 0), ErrInvalidIndex)
		assert.ErrorIs(t, p.DragControlPoint(0, Which(3), 0, 0), ErrInvalidIndex)
		assert.Equal(t, before, p.Beziers())
	})
}

func TestAddBezier(t *testing.T) {
	p := square()
	require.NoError(t, p.AddBezier(0))
	seg, ok := p.Bezier(0)
	require.True(t, ok)
	assert.Equal(t, 0, seg.Start)
	assert.Equal(t, 1, seg.End)
	assert.InDelta(t, 100+200.0/3, seg.Control1.X, geom.Tolerance)
	assert.InDelta(t, 100+400.0/3, seg.Control2.X, geom.Tolerance)

	assert.ErrorIs(t, p.AddBezier(0), ErrConstraintConflict)
	assert.ErrorIs(t, p.AddBezier(4), ErrInvalidIndex)

	require.NoError(t, p.AddBezier(3))
	last, _ := p.Bezier(3)
	assert.Equal(t, 0, last.End)
	assert.NotEqual(t, seg.Serial(), last.Serial())

	require.NoError(t, p.RemoveBezier(1), "straight edge is a no-op")
	assert.ErrorIs(t, p.RemoveBezier(4), ErrInvalidIndex)
}
