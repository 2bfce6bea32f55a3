package viz

import (
	vizmath "github.com/drakos74/mlviz/internal/math"
)

type distanceConfig struct {
	Input   string  `yaml:"input"`
	Shape   Shape   `yaml:"shape"`
	Output  string  `yaml:"output"`
	Consume bool    `yaml:"consume"`
	Style   Style   `yaml:"style"`
	Palette Palette `yaml:"palette"`
}

// distance draws the matrix as an image, first row at the top, one unit per cell.
func (r *Runner) distance(cmd Distance) ([]string, error) {
	name := cmd.Visualization()
	var cfg distanceConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}

	rows, err := r.source.Matrix(cfg.Input)
	if err != nil {
		return nil, err
	}
	field, err := cfg.Shape.field(rows)
	if err != nil {
		return nil, err
	}
	field = field.FlipRows()
	w, h := field.Dims()
	g, err := vizmath.NewGrid(cells(w), cells(h))
	if err != nil {
		return nil, err
	}

	pal, err := cfg.Palette.build()
	if err != nil {
		return nil, err
	}
	f := cfg.Style.figure()
	f.Limits(0, float64(w), 0, float64(h))
	if err := f.Raster(g, field, pal, 0, field.Max()); err != nil {
		return nil, err
	}
	cfg.Style.finish(f)

	base, err := output(cfg.Output, "")
	if err != nil {
		return nil, err
	}
	files, err := r.export(name, f, base)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, cfg.Input)
}

// cells returns the centres of n unit cells starting at 0.
func cells(n int) []float64 {
	cc := make([]float64, n)
	for i := range cc {
		cc[i] = float64(i) + 0.5
	}
	return cc
}
