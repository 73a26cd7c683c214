package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/polygon"
	"github.com/osuushi/polyedit/render"
)

// Prefix of every environment variable, e.g. POLYEDIT_BRESENHAM=true.
const Prefix = "POLYEDIT"

type Config struct {
	VertexThreshold      float64    `envconfig:"VERTEX_THRESHOLD" default:"10"`
	EdgeThreshold        float64    `envconfig:"EDGE_THRESHOLD" default:"10"`
	ControlThreshold     float64    `envconfig:"CONTROL_THRESHOLD" default:"5"`
	BezierSamples        int        `envconfig:"BEZIER_SAMPLES" default:"100"`
	Bresenham            bool       `envconfig:"BRESENHAM" default:"false"`
	SymmetricConstraints bool       `envconfig:"SYMMETRIC_CONSTRAINTS" default:"false"`
	Width                int        `envconfig:"WIDTH" default:"400"`
	Height               int        `envconfig:"HEIGHT" default:"400"`
	LogLevel             slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	NoColor              bool       `envconfig:"NO_COLOR" default:"false"`
	CellWidth            float64    `envconfig:"CELL_WIDTH" default:"10"`
	CellHeight           float64    `envconfig:"CELL_HEIGHT" default:"20"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) PolygonOptions() []polygon.Option {
	if c.SymmetricConstraints {
		return []polygon.Option{polygon.WithSymmetricConstraints()}
	}
	return nil
}

func (c *Config) EditorOptions() editor.Options {
	return editor.Options{
		VertexThreshold:  c.VertexThreshold,
		EdgeThreshold:    c.EdgeThreshold,
		ControlThreshold: c.ControlThreshold,
	}
}

func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Width:     c.Width,
		Height:    c.Height,
		Bresenham: c.Bresenham,
		Samples:   c.BezierSamples,
	}
}
