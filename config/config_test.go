package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/render"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, editor.DefaultOptions(), cfg.EditorOptions())
	assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Nil(t, cfg.PolygonOptions())
	assert.Equal(t, 10.0, cfg.CellWidth)
	assert.Equal(t, 20.0, cfg.CellHeight)
}

func TestOverrides(t *testing.T) {
	t.Setenv("POLYEDIT_VERTEX_THRESHOLD", "4.5")
	t.Setenv("POLYEDIT_BRESENHAM", "true")
	t.Setenv("POLYEDIT_SYMMETRIC_CONSTRAINTS", "true")
	t.Setenv("POLYEDIT_WIDTH", "800")
	t.Setenv("POLYEDIT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.EditorOptions().VertexThreshold)
	assert.True(t, cfg.RenderOptions().Bresenham)
	assert.Equal(t, 800, cfg.RenderOptions().Width)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Len(t, cfg.PolygonOptions(), 1)
}

func TestInvalid(t *testing.T) {
	t.Setenv("POLYEDIT_BEZIER_SAMPLES", "lots")
	_, err := Load()
	assert.Error(t, err)
}
