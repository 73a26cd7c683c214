package geom

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestBresenhamLine(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}, BresenhamLine(0, 0, 5, 0))
	})

	t.Run("vertical", func(t *testing.T) {
		assert.Equal(t, []image.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}}, BresenhamLine(0, 0, 0, 5))
	})

	t.Run("diagonal", func(t *testing.T) {
		assert.Equal(t, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, BresenhamLine(0, 0, 3, 3))
	})

	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, []image.Point{{4, 7}}, BresenhamLine(4, 7, 4, 7))
	})

	t.Run("negative direction", func(t *testing.T) {
		assert.Equal(t, []image.Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}, BresenhamLine(3, 0, 0, 0))
	})

	lines := [][4]int{
		{0, 0, 7, 3},
		{-2, 5, 9, -4},
		{1, 1, 2, 9},
		{10, -3, -6, 2},
		{0, 0, -5, -13},
	}
	for _, l := range lines {
		l := l
		t.Run(fmt.Sprintf("%v", l), func(t *testing.T) {
			forward := BresenhamLine(l[0], l[1], l[2], l[3])
			backward := BresenhamLine(l[2], l[3], l[0], l[1])
			expected := max(Abs(l[2]-l[0]), Abs(l[3]-l[1])) + 1
			require.Len(t, forward, expected)
			require.Len(t, backward, expected)
			assert.Equal(t, image.Pt(l[0], l[1]), forward[0])
			assert.Equal(t, image.Pt(l[2], l[3]), forward[len(forward)-1])

			// Every step moves to an 8-connected neighbor
			for i := 1; i < len(forward); i++ {
				d := forward[i].Sub(forward[i-1])
				assert.LessOrEqual(t, Abs(d.X), 1)
				assert.LessOrEqual(t, Abs(d.Y), 1)
				assert.NotEqual(t, image.Point{}, d)
			}
		})
	}
}

func TestEvaluateBezier(t *testing.T) {
	p0, p1, p2, p3 := Pt(100, 100), Pt(150, 50), Pt(250, 150), Pt(300, 100)

	assert.Equal(t, p0, EvaluateBezier(p0, p1, p2, p3, 0))
	assert.Equal(t, p3, EvaluateBezier(p0, p1, p2, p3, 1))

	// The midpoint of a cubic is (P0 + 3P1 + 3P2 + P3) / 8
	mid := EvaluateBezier(p0, p1, p2, p3, 0.5)
	assert.InDelta(t, (100+3*150+3*250+300)/8.0, mid.X, Tolerance)
	assert.InDelta(t, (100+3*50+3*150+100)/8.0, mid.Y, Tolerance)

	t.Run("straight curve stays on the line", func(t *testing.T) {
		a, b := Pt(0, 0), Pt(30, 0)
		for _, p := range SampleBezier(a, a.Lerp(b, 1.0/3), a.Lerp(b, 2.0/3), b, 17) {
			assert.InDelta(t, 0, p.Y, Tolerance)
			assert.True(t, p.X >= -Tolerance && p.X <= 30+Tolerance)
		}
	})
}

func TestSampleBezier(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 20), Pt(30, 20), Pt(40, 0)}

	samples := c.Sample(DefaultSamples)
	require.Len(t, samples, DefaultSamples)
	assert.Equal(t, c.P0, samples[0])
	assert.Equal(t, c.P3, samples[len(samples)-1])

	assert.Len(t, c.Sample(0), 2)
	assert.Equal(t, c.Eval(0.5), c.Midpoint())
}

func TestLineDistance(t *testing.T) {
	d, ok := LineDistance(Pt(5, 3), Pt(0, 0), Pt(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 3, d, Tolerance)

	// The line is infinite, so points beyond the ends measure to the extension
	d, ok = LineDistance(Pt(50, -4), Pt(0, 0), Pt(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 4, d, Tolerance)

	d, ok = LineDistance(Pt(1, 0), Pt(0, 0), Pt(3, 3))
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2/2, d, Tolerance)

	_, ok = LineDistance(Pt(1, 1), Pt(2, 2), Pt(2, 2))
	assert.False(t, ok)
}

func TestReflectAndAlign(t *testing.T) {
	v := Pt(100, 100)
	assert.Equal(t, Pt(80, 130), Reflect(Pt(120, 70), v))

	t.Run("align keeps distance", func(t *testing.T) {
		keep := Pt(100, 110) // 10 away
		got := AlignOpposite(v, Pt(130, 140), keep)
		assert.InDelta(t, 10, got.Distance(v), Tolerance)
		// Opposite direction of (30, 40)
		assert.InDelta(t, 100-6, got.X, Tolerance)
		assert.InDelta(t, 100-8, got.Y, Tolerance)
	})

	t.Run("no direction", func(t *testing.T) {
		keep := Pt(1, 2)
		assert.Equal(t, keep, AlignOpposite(v, v, keep))
	})
}

func TestSegment(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(10, 0)}
	assert.True(t, s.IsHorizontal())
	assert.False(t, s.IsVertical())
	assert.Equal(t, Pt(5, 0), s.Midpoint())
	assert.InDelta(t, 10, s.Length(), Tolerance)
	assert.InDelta(t, 0.5, s.Project(Pt(5, 8)), Tolerance)
	assert.InDelta(t, 1.5, s.Project(Pt(15, -1)), Tolerance)
	assert.Equal(t, 0.0, Segment{Pt(1, 1), Pt(1, 1)}.Project(Pt(4, 4)))

	x, y := Pt(2.4, 2.6).Round()
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)
}
