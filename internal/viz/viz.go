package viz

import (
	"fmt"
	"os"
	"time"

	"github.com/drakos74/mlviz/infra/config"
	"github.com/drakos74/mlviz/internal/geo"
	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/metrics"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Runner renders commands from the inputs of a source into an output directory.
type Runner struct {
	id       string
	source   storage.Source
	dir      string
	configs  string
	shapeDir string
	metrics  *metrics.Metrics
	records  map[string][]geo.Record
}

// New creates a runner writing its figures to dir.
func New(source storage.Source, dir string) *Runner {
	return &Runner{
		id:       uuid.New().String(),
		source:   source,
		dir:      dir,
		shapeDir: dir,
		metrics:  metrics.Observer,
		records:  make(map[string][]geo.Record),
	}
}

// WithConfig makes the runner look for configuration overrides in dir.
func (r *Runner) WithConfig(dir string) *Runner {
	r.configs = dir
	return r
}

// WithShapes sets the directory relative shapefile paths are resolved against.
func (r *Runner) WithShapes(dir string) *Runner {
	r.shapeDir = dir
	return r
}

// WithMetrics replaces the global metrics.
func (r *Runner) WithMetrics(m *metrics.Metrics) *Runner {
	r.metrics = m
	return r
}

// Run renders the command and returns the written files.
// Inputs are only consumed once every figure of the command has been exported.
func (r *Runner) Run(cmd Command) ([]string, error) {
	start := time.Now()
	name := cmd.Visualization()
	log.Info().Str("run", r.id).Str("visualization", name).Msg("render")

	var files []string
	var err error
	switch c := cmd.(type) {
	case Regression:
		files, err = r.regression(c)
	case Classification:
		files, err = r.classification(c)
	case Distance:
		files, err = r.distance(c)
	case Perceptron:
		files, err = r.perceptron(c)
	case Mixture:
		files, err = r.mixture(c)
	case Descent:
		files, err = r.descent(c)
	case Regions:
		files, err = r.regions(c)
	default:
		err = fmt.Errorf("unknown command %T: %w", cmd, vizmath.ArgumentErr)
	}
	if err != nil {
		r.metrics.Failure(name)
		log.Error().Err(err).Str("run", r.id).Str("visualization", name).Msg("could not render")
		return nil, err
	}
	r.metrics.Observe(name, start)
	log.Info().
		Str("run", r.id).
		Str("visualization", name).
		Strs("files", files).
		Dur("duration", time.Since(start)).
		Msg("done")
	return files, nil
}

func (r *Runner) load(key string, v interface{}) error {
	return config.Load(r.configs, key, v)
}

func (r *Runner) points(name string) (xx, yy []float64, err error) {
	rows, err := r.source.Matrix(name)
	if err != nil {
		return nil, nil, err
	}
	return storage.Points(rows)
}

// scatter draws the markers from their file, or the inline points if there is no file.
func (r *Runner) scatter(f *render.Figure, m Markers, face string) error {
	var xx, yy []float64
	var err error
	if m.File != "" {
		xx, yy, err = r.points(m.File)
	} else {
		xx, yy, err = m.inline()
	}
	if err != nil {
		return err
	}
	g, err := m.group(xx, yy, face)
	if err != nil {
		return err
	}
	return f.Scatter(g)
}

func (r *Runner) export(visualization string, f *render.Figure, base string) ([]string, error) {
	files, err := f.Export(r.dir, base)
	if err != nil {
		return nil, fmt.Errorf("could not export '%s': %w", base, err)
	}
	r.metrics.Figure(visualization)
	for _, format := range render.Formats {
		r.metrics.File(visualization, format)
	}
	log.Debug().Str("run", r.id).Str("visualization", visualization).Strs("files", files).Msg("exported")
	return files, nil
}

// sheet is a figure with the base name it is exported to.
type sheet struct {
	figure *render.Figure
	base   string
}

// exportAll exports the figures in order,
// removing what was already written if a later one fails.
func (r *Runner) exportAll(visualization string, sheets ...sheet) ([]string, error) {
	files := make([]string, 0, len(sheets)*len(render.Formats))
	for _, s := range sheets {
		ff, err := r.export(visualization, s.figure, s.base)
		if err != nil {
			for _, written := range files {
				if rmErr := os.Remove(written); rmErr != nil {
					log.Error().Err(rmErr).Str("file", written).Msg("could not remove partial export")
				}
			}
			return nil, err
		}
		files = append(files, ff...)
	}
	return files, nil
}

// consume removes the inputs if the configuration of the visualization asks for it.
func (r *Runner) consume(visualization string, enabled bool, inputs ...string) error {
	if !enabled || len(inputs) == 0 {
		return nil
	}
	err := r.source.Consume(inputs...)
	if err != nil {
		return fmt.Errorf("could not consume inputs of %s: %w", visualization, err)
	}
	r.metrics.Consumed(visualization, len(inputs))
	log.Info().Str("run", r.id).Str("visualization", visualization).Strs("inputs", inputs).Msg("consumed")
	return nil
}
