package viz

import (
	"fmt"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
)

type densityConfig struct {
	Input    string   `yaml:"input"`
	Shape    Shape    `yaml:"shape"`
	Train    Markers  `yaml:"train"`
	X        Axis     `yaml:"x"`
	Y        Axis     `yaml:"y"`
	Levels   int      `yaml:"levels"`
	Palette  Palette  `yaml:"palette"`
	Contours Line     `yaml:"contours"`
	Outputs  []string `yaml:"outputs"`
}

type mixtureConfig struct {
	Consume bool   `yaml:"consume"`
	Style   Style  `yaml:"style"`
	Limits  Limits `yaml:"limits"`
	// Colors of the components in order, swapped on reverse.
	Colors    []string      `yaml:"colors"`
	Mixtures  []Markers     `yaml:"mixtures"`
	Centroids Markers       `yaml:"centroids"`
	KMeans    string        `yaml:"kmeans"`
	Density   densityConfig `yaml:"density"`
}

func (c mixtureConfig) colors(reverse bool) []string {
	cc := make([]string, len(c.Colors))
	copy(cc, c.Colors)
	if reverse {
		for i, j := 0, len(cc)-1; i < j; i, j = i+1, j-1 {
			cc[i], cc[j] = cc[j], cc[i]
		}
	}
	return cc
}

// mixture draws the two component clouds and their centroids,
// for the density mode preceded by a figure of the estimated density with the training samples.
func (r *Runner) mixture(cmd Mixture) ([]string, error) {
	name := cmd.Visualization()
	var cfg mixtureConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}
	colors := cfg.colors(cmd.Reverse)
	if len(colors) < len(cfg.Mixtures) {
		return nil, fmt.Errorf("%d colours for %d mixtures: %w", len(colors), len(cfg.Mixtures), render.StyleErr)
	}

	inputs := make([]string, 0)
	for _, m := range cfg.Mixtures {
		inputs = append(inputs, m.File)
	}
	inputs = append(inputs, cfg.Centroids.File)

	var sheets []sheet
	switch cmd.Mode {
	case KMeans:
		f := cfg.Style.figure()
		if err := r.clusters(f, cfg, colors); err != nil {
			return nil, err
		}
		cfg.Style.finish(f)
		sheets = []sheet{{figure: f, base: cfg.KMeans}}
	case Density:
		ss, err := r.density(cfg, colors)
		if err != nil {
			return nil, err
		}
		sheets = ss
		inputs = append(inputs, cfg.Density.Input, cfg.Density.Train.File)
	default:
		return nil, fmt.Errorf("unknown mixture mode %d: %w", cmd.Mode, vizmath.ArgumentErr)
	}
	files, err := r.exportAll(name, sheets...)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, inputs...)
}

// density builds the filled density with the training samples,
// and the iso-lines with the clusters, without exporting either.
func (r *Runner) density(cfg mixtureConfig, colors []string) ([]sheet, error) {
	dc := cfg.Density
	if len(dc.Outputs) != 2 {
		return nil, fmt.Errorf("density needs 2 outputs, got %v: %w", dc.Outputs, vizmath.ArgumentErr)
	}
	rows, err := r.source.Matrix(dc.Input)
	if err != nil {
		return nil, err
	}
	field, err := dc.Shape.field(rows)
	if err != nil {
		return nil, err
	}
	g, err := grid(dc.X, dc.Y)
	if err != nil {
		return nil, err
	}
	levels := vizmath.Levels(field, dc.Levels)
	contours, err := vizmath.Contours(g, field, levels)
	if err != nil {
		return nil, err
	}
	sty, err := dc.Contours.style()
	if err != nil {
		return nil, err
	}

	// filled bands between the levels, one flat colour per band
	p := dc.Palette
	p.Shades = len(levels) + 1
	pal, err := p.build()
	if err != nil {
		return nil, err
	}
	filled := cfg.Style.figure()
	cfg.Limits.apply(filled)
	if err := filled.Raster(g, field.Bands(levels), pal, 0, float64(len(levels))); err != nil {
		return nil, err
	}
	if err := filled.Contours(contours, sty, true); err != nil {
		return nil, err
	}
	if err := r.scatter(filled, dc.Train, ""); err != nil {
		return nil, err
	}
	cfg.Style.finish(filled)

	lines := cfg.Style.figure()
	if err := lines.Contours(contours, sty, false); err != nil {
		return nil, err
	}
	if err := r.clusters(lines, cfg, colors); err != nil {
		return nil, err
	}
	cfg.Style.finish(lines)

	return []sheet{
		{figure: filled, base: dc.Outputs[0]},
		{figure: lines, base: dc.Outputs[1]},
	}, nil
}

// clusters draws every mixture and then its centroid in the colour of the component.
func (r *Runner) clusters(f *render.Figure, cfg mixtureConfig, colors []string) error {
	cfg.Limits.apply(f)
	for i, m := range cfg.Mixtures {
		if err := r.scatter(f, m, colors[i]); err != nil {
			return err
		}
	}
	rows, err := r.source.Matrix(cfg.Centroids.File)
	if err != nil {
		return err
	}
	xx, yy, err := storage.Points(rows)
	if err != nil {
		return err
	}
	if len(xx) > len(colors) {
		return fmt.Errorf("%d centroids for %d colours: %w", len(xx), len(colors), render.StyleErr)
	}
	for i := range xx {
		g, err := cfg.Centroids.group(xx[i:i+1], yy[i:i+1], colors[i])
		if err != nil {
			return err
		}
		if err := f.Scatter(g); err != nil {
			return err
		}
	}
	return nil
}
