package viz

import (
	"fmt"
	"strconv"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/rs/zerolog/log"
)

// domain is the input range of the network on both axes with the palette to paint it.
type domain struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Palette Palette `yaml:"palette"`
}

// markerSet lists the samples drawn for the given modes, no modes marks the default set.
type markerSet struct {
	Modes  []int     `yaml:"modes"`
	Groups []Markers `yaml:"groups"`
}

type perceptronConfig struct {
	Input   string `yaml:"input"`
	Shape   Shape  `yaml:"shape"`
	Output  string `yaml:"output"`
	Consume bool   `yaml:"consume"`
	Style   Style  `yaml:"style"`
	// Threshold on the maximum output above which the wide domain is used.
	Threshold float64     `yaml:"threshold"`
	Wide      domain      `yaml:"wide"`
	Narrow    domain      `yaml:"narrow"`
	Contours  Line        `yaml:"contours"`
	Markers   []markerSet `yaml:"markers"`
}

func (c perceptronConfig) domain(max float64) domain {
	if max > c.Threshold {
		return c.Wide
	}
	return c.Narrow
}

func (c perceptronConfig) markers(mode int) ([]Markers, error) {
	var fallback *markerSet
	for i, set := range c.Markers {
		if len(set.Modes) == 0 {
			fallback = &c.Markers[i]
			continue
		}
		for _, m := range set.Modes {
			if m == mode {
				return set.Groups, nil
			}
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("no markers for mode %d: %w", mode, vizmath.ArgumentErr)
	}
	return fallback.Groups, nil
}

// perceptron draws the network output over its input plane with iso-lines,
// the domain depending on the largest output, and the training samples of the mode.
func (r *Runner) perceptron(cmd Perceptron) ([]string, error) {
	name := cmd.Visualization()
	var cfg perceptronConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}
	groups, err := cfg.markers(cmd.Mode)
	if err != nil {
		return nil, err
	}
	base, err := output(cfg.Output, strconv.Itoa(cmd.Mode))
	if err != nil {
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
	max := field.Max()
	d := cfg.domain(max)
	w, h := field.Dims()
	xx, err := vizmath.Linspace(d.Min, d.Max, w)
	if err != nil {
		return nil, err
	}
	yy, err := vizmath.Linspace(d.Min, d.Max, h)
	if err != nil {
		return nil, err
	}
	g, err := vizmath.NewGrid(xx, yy)
	if err != nil {
		return nil, err
	}

	pal, err := d.Palette.build()
	if err != nil {
		return nil, err
	}
	f := cfg.Style.figure()
	f.Limits(d.Min, d.Max, d.Min, d.Max)
	if err := f.Raster(g, field, pal, 0, max); err != nil {
		return nil, err
	}

	n := vizmath.Round(max)
	contours, err := vizmath.Contours(g, field, vizmath.Levels(field, n))
	if err != nil {
		return nil, err
	}
	sty, err := cfg.Contours.style()
	if err != nil {
		return nil, err
	}
	// a single level is labelled, more would clutter the plane
	if err := f.Contours(contours, sty, n == 1); err != nil {
		return nil, err
	}
	log.Debug().Str("run", r.id).Float64("max", max).Int("levels", n).Msg("contours")

	for _, m := range groups {
		if err := r.scatter(f, m, ""); err != nil {
			return nil, err
		}
	}
	cfg.Style.finish(f)

	files, err := r.export(name, f, base)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, cfg.Input)
}
