package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polyedit/geom"
	"github.com/osuushi/polyedit/polygon"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func scene(t *testing.T) polygon.Snapshot {
	p := polygon.New()
	p.AddVertex(100, 100)
	p.AddVertex(300, 100)
	p.AddVertex(300, 300)
	p.AddVertex(100, 300)
	require.NoError(t, p.AddConstraint(1, polygon.Vertical, 0))
	require.NoError(t, p.AddBezierControls(0, geom.Pt(150, 50), geom.Pt(250, 150)))
	return p.Snapshot()
}

func TestRenderBresenham(t *testing.T) {
	r := New(Options{Width: 400, Height: 400, Bresenham: true})
	img := r.Render(scene(t), NoSelection)

	assert.Equal(t, white, img.At(10, 10))
	assert.Equal(t, black, img.At(100, 250), "plain edge")
	assert.Equal(t, red, img.At(300, 150), "constrained edge")
	assert.NotEqual(t, white, img.At(100, 100), "vertex")
}

func TestRenderSelection(t *testing.T) {
	r := New(Options{Width: 400, Height: 400, Bresenham: true})
	img := r.Render(scene(t), Selection{Vertex: -1, Edge: 3})
	assert.Equal(t, blue, img.At(100, 250))
}

func TestRenderStroked(t *testing.T) {
	r := New(DefaultOptions())
	img := r.Render(scene(t), NoSelection)

	assert.Equal(t, white, img.At(10, 10))
	assert.NotEqual(t, white, img.At(100, 250))
	assert.NotEqual(t, white, img.At(250, 150), "control point")
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, New(DefaultOptions()).SavePNG(path, scene(t), NoSelection))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestPreviewMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Preview(filepath.Join(t.TempDir(), "missing.png"), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
