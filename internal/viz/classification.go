package viz

import (
	vizmath "github.com/drakos74/mlviz/internal/math"
)

type classificationConfig struct {
	Labels  string    `yaml:"labels"`
	Groups  []Markers `yaml:"groups"`
	X       Axis      `yaml:"x"`
	Y       Axis      `yaml:"y"`
	Palette Palette   `yaml:"palette"`
	Output  string    `yaml:"output"`
	Consume bool      `yaml:"consume"`
	Style   Style     `yaml:"style"`
	Limits  Limits    `yaml:"limits"`
}

// classification paints the label of every cell with a flat colour per class
// and draws the labelled samples of each class on top.
func (r *Runner) classification(cmd Classification) ([]string, error) {
	name := cmd.Visualization()
	var cfg classificationConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}
	base, err := output(cfg.Output, cmd.RunID)
	if err != nil {
		return nil, err
	}

	rows, err := r.source.Matrix(cfg.Labels)
	if err != nil {
		return nil, err
	}
	labels, err := vizmath.NewField(rows)
	if err != nil {
		return nil, err
	}
	xx, err := cfg.X.values()
	if err != nil {
		return nil, err
	}
	yy, err := cfg.Y.values()
	if err != nil {
		return nil, err
	}
	w, h := labels.Dims()
	g, err := vizmath.NewGrid(centres(xx, w), centres(yy, h))
	if err != nil {
		return nil, err
	}

	pal, err := cfg.Palette.build()
	if err != nil {
		return nil, err
	}
	f := cfg.Style.figure()
	cfg.Limits.apply(f)
	if err := f.Raster(g, labels, pal, 0, float64(len(pal.Colors())-1)); err != nil {
		return nil, err
	}

	inputs := []string{cfg.Labels}
	for _, m := range cfg.Groups {
		if err := r.scatter(f, m, ""); err != nil {
			return nil, err
		}
		if m.File != "" {
			inputs = append(inputs, m.File)
		}
	}
	cfg.Style.finish(f)

	files, err := r.export(name, f, base)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, inputs...)
}

// centres returns the cell centres of the axis for n cells.
// An axis with one more value than cells lists the cell edges,
// otherwise the values are the centres already.
func centres(axis []float64, n int) []float64 {
	if len(axis) == n+1 {
		return vizmath.Midpoints(axis)
	}
	return axis
}
