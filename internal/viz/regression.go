package viz

import (
	"fmt"
	"sort"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/rs/zerolog/log"
)

type regressionConfig struct {
	Input   string  `yaml:"input"`
	Output  string  `yaml:"output"`
	Consume bool    `yaml:"consume"`
	Style   Style   `yaml:"style"`
	Limits  Limits  `yaml:"limits"`
	Samples Markers `yaml:"samples"`
	Curve   Line    `yaml:"curve"`
}

// regression draws the (x, t) samples and the polynomial evaluated at every sample.
func (r *Runner) regression(cmd Regression) ([]string, error) {
	name := cmd.Visualization()
	var cfg regressionConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}

	xx, tt, err := r.points(cfg.Input)
	if err != nil {
		return nil, err
	}

	poly := cmd.Coefficients
	if len(poly) == 0 {
		poly, err = vizmath.Fit(xx, tt, cmd.Degree)
		if err != nil {
			return nil, fmt.Errorf("could not fit degree %d: %w", cmd.Degree, err)
		}
		log.Info().Str("run", r.id).Int("degree", poly.Degree()).Floats64("coefficients", poly).Msg("fitted")
	}

	f := cfg.Style.figure()
	cfg.Limits.apply(f)

	g, err := cfg.Samples.group(xx, tt, "")
	if err != nil {
		return nil, err
	}
	if err := f.Scatter(g); err != nil {
		return nil, err
	}

	// samples come in any order, the curve is drawn left to right
	cx := make([]float64, len(xx))
	copy(cx, xx)
	sort.Float64s(cx)
	sty, err := cfg.Curve.style()
	if err != nil {
		return nil, err
	}
	if err := f.Curve("", cx, poly.Map(cx), sty); err != nil {
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
