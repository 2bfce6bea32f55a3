package viz

import (
	"fmt"
	"image/color"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var surfaces = map[string]vizmath.Surface{
	"saddle": vizmath.Saddle,
	"bowl":   vizmath.Bowl,
}

type pathConfig struct {
	Output   string  `yaml:"output"`
	Style    Style   `yaml:"style"`
	X        Axis    `yaml:"x"`
	Y        Axis    `yaml:"y"`
	Surface  string  `yaml:"surface"`
	VMin     float64 `yaml:"vmin"`
	VMax     float64 `yaml:"vmax"`
	Palette  Palette `yaml:"palette"`
	Levels   int     `yaml:"levels"`
	Contours Line    `yaml:"contours"`
	// Start annotates the first point of the first trajectory, Offset above it.
	Start  string  `yaml:"start"`
	Offset float64 `yaml:"offset"`
}

type lossConfig struct {
	Output string  `yaml:"output"`
	Style  Style   `yaml:"style"`
	YMax   float64 `yaml:"ymax"`
}

type descentConfig struct {
	Consume bool `yaml:"consume"`
	// Colors of the series in order, repeated if there are more series.
	Colors []string   `yaml:"colors"`
	Width  float64    `yaml:"width"`
	Path   pathConfig `yaml:"path"`
	Loss   lossConfig `yaml:"loss"`
}

// descent compares the optimizers given as series,
// either as trajectories on the loss surface or as loss curves per epoch.
func (r *Runner) descent(cmd Descent) ([]string, error) {
	name := cmd.Visualization()
	var cfg descentConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Colors) == 0 {
		return nil, fmt.Errorf("no series colours for %s: %w", name, render.StyleErr)
	}
	colors, err := render.ParseColors(cfg.Colors)
	if err != nil {
		return nil, err
	}

	inputs := make([]string, len(cmd.Series))
	series := make([][][]float64, len(cmd.Series))
	for i, s := range cmd.Series {
		inputs[i] = fmt.Sprintf("%s.dat", s)
		series[i], err = r.source.Matrix(inputs[i])
		if err != nil {
			return nil, err
		}
		if len(series[i]) == 0 {
			return nil, fmt.Errorf("no epochs in '%s': %w", inputs[i], storage.MalformedInputErr)
		}
	}

	var f *render.Figure
	var base string
	switch cmd.Mode {
	case Path:
		f, err = r.path(cfg, cmd.Series, series, colors)
		base = cfg.Path.Output
	case Loss:
		f, err = r.loss(cfg, cmd.Series, series, colors)
		base = cfg.Loss.Output
	default:
		err = fmt.Errorf("unknown descent mode %d: %w", cmd.Mode, vizmath.ArgumentErr)
	}
	if err != nil {
		return nil, err
	}
	files, err := r.export(name, f, base)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, inputs...)
}

func (r *Runner) path(cfg descentConfig, names []string, series [][][]float64, colors []color.Color) (*render.Figure, error) {
	pc := cfg.Path
	surface, ok := surfaces[pc.Surface]
	if !ok {
		return nil, fmt.Errorf("unknown surface '%s': %w", pc.Surface, vizmath.ArgumentErr)
	}
	g, err := grid(pc.X, pc.Y)
	if err != nil {
		return nil, err
	}
	field := vizmath.Evaluate(g, surface)
	contours, err := vizmath.Contours(g, field, vizmath.Levels(field, pc.Levels))
	if err != nil {
		return nil, err
	}
	pal, err := pc.Palette.build()
	if err != nil {
		return nil, err
	}
	sty, err := pc.Contours.style()
	if err != nil {
		return nil, err
	}

	f := pc.Style.figure()
	xmin, xmax, ymin, ymax := g.Extent()
	f.Limits(xmin, xmax, ymin, ymax)
	if err := f.Raster(g, field, pal, pc.VMin, pc.VMax); err != nil {
		return nil, err
	}
	if err := f.Contours(contours, sty, true); err != nil {
		return nil, err
	}

	// trajectories are compared step by step, so all are cut to the shortest
	steps := len(series[0])
	for _, s := range series {
		if len(s) < steps {
			steps = len(s)
		}
	}
	for i, s := range series {
		xx, yy, err := storage.Points(s[:steps])
		if err != nil {
			return nil, err
		}
		if err := f.Trajectory(names[i], xx, yy, colors[i%len(colors)], vg.Points(cfg.Width)); err != nil {
			return nil, err
		}
	}
	if steps > 0 && pc.Start != "" {
		start := series[0][0]
		if err := f.Text(start[0], start[1]+pc.Offset, pc.Start); err != nil {
			return nil, err
		}
	}
	pc.Style.finish(f)
	f.Legend(false, false)
	return f, nil
}

func (r *Runner) loss(cfg descentConfig, names []string, series [][][]float64, colors []color.Color) (*render.Figure, error) {
	lc := cfg.Loss
	f := lc.Style.figure()
	epochs := 0
	for i, s := range series {
		if len(s) > epochs {
			epochs = len(s)
		}
		stages := len(s[0])
		for stage := 0; stage < stages; stage++ {
			xx := make([]float64, len(s))
			yy := make([]float64, len(s))
			for e, row := range s {
				if len(row) != stages {
					return nil, fmt.Errorf("epoch %d of '%s' has %d stages instead of %d: %w", e, names[i], len(row), stages, storage.MalformedInputErr)
				}
				xx[e] = float64(e)
				yy[e] = row[stage]
			}
			// one legend entry per series
			legend := ""
			if stage == stages-1 {
				legend = names[i]
			}
			sty := draw.LineStyle{Color: colors[i%len(colors)], Width: vg.Points(cfg.Width)}
			if err := f.Curve(legend, xx, yy, sty); err != nil {
				return nil, err
			}
		}
	}
	f.Limits(0, float64(epochs), 0, lc.YMax)
	lc.Style.finish(f)
	return f, nil
}
