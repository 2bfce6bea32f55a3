package viz

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/mlviz/internal/geo"
	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
	"github.com/rs/zerolog/log"
)

// Values tells how the mapping values are turned into a fill colour.
const (
	ColorValues = "color"
	IndexValues = "index"
)

// rule assigns the key to records matching all When attributes.
type rule struct {
	When map[string]string `yaml:"when"`
	Key  string            `yaml:"key"`
}

// layer selects records of a shapefile and the mapping key each one is painted with.
type layer struct {
	Shapefile string `yaml:"shapefile"`
	// Match requires attributes equal to the given values.
	Match map[string]string `yaml:"match"`
	// Contains requires attributes containing the given values.
	Contains map[string]string `yaml:"contains"`
	// KeyAttribute names the attribute holding the key,
	// unless a fixed Key or a matching rule applies.
	KeyAttribute string `yaml:"key_attribute"`
	Key          string `yaml:"key"`
	Rules        []rule `yaml:"rules"`
}

func matches(a geo.Attributes, values map[string]string, contains bool) bool {
	for k, v := range values {
		actual, ok := a.Get(k)
		if !ok {
			return false
		}
		if contains && !strings.Contains(actual, v) {
			return false
		}
		if !contains && actual != v {
			return false
		}
	}
	return true
}

func (l layer) keep(a geo.Attributes) bool {
	return matches(a, l.Match, false) && matches(a, l.Contains, true)
}

func (l layer) key(a geo.Attributes) (string, error) {
	for _, r := range l.Rules {
		if matches(a, r.When, false) {
			return r.Key, nil
		}
	}
	if l.Key != "" {
		return l.Key, nil
	}
	if k, ok := a.Get(l.KeyAttribute); ok {
		return k, nil
	}
	return "", fmt.Errorf("no key attribute '%s' in %s: %w", l.KeyAttribute, l.Shapefile, storage.MalformedInputErr)
}

type regionsConfig struct {
	Mapping string     `yaml:"mapping"`
	Values  string     `yaml:"values"`
	Palette Palette    `yaml:"palette"`
	Output  string     `yaml:"output"`
	Consume bool       `yaml:"consume"`
	Style   Style      `yaml:"style"`
	Extent  geo.Extent `yaml:"extent"`
	Edge    Line       `yaml:"edge"`
	Layers  []layer    `yaml:"layers"`
}

// painter turns mapping values into fill colours.
type painter func(value string) (color.Color, error)

func (c regionsConfig) painter() (painter, error) {
	switch c.Values {
	case ColorValues:
		return render.ParseColor, nil
	case IndexValues:
		pal, err := c.Palette.build()
		if err != nil {
			return nil, err
		}
		cc := pal.Colors()
		return func(value string) (color.Color, error) {
			i, err := strconv.Atoi(value)
			if err != nil || i < 0 || i >= len(cc) {
				return nil, fmt.Errorf("index '%s' outside of %d colours: %w", value, len(cc), render.StyleErr)
			}
			return cc[i], nil
		}, nil
	}
	return nil, fmt.Errorf("unknown values '%s': %w", c.Values, vizmath.ArgumentErr)
}

// regions paints every selected shape with the colour its key maps to,
// on an equal-area projection centred on the extent.
func (r *Runner) regions(cmd Regions) ([]string, error) {
	name := cmd.Visualization()
	var cfg regionsConfig
	if err := r.load(name, &cfg); err != nil {
		return nil, err
	}
	base, err := output(cfg.Output, cmd.RunID)
	if err != nil {
		return nil, err
	}
	paint, err := cfg.painter()
	if err != nil {
		return nil, err
	}
	edge, err := cfg.Edge.style()
	if err != nil {
		return nil, err
	}
	classes, err := r.source.Mapping(cfg.Mapping)
	if err != nil {
		return nil, err
	}

	bounds := cfg.Extent.Bounds()
	albers := geo.Centred(bounds)
	f := cfg.Style.figure()
	f.Limits(albers.Extent(bounds))

	for _, l := range cfg.Layers {
		records, err := r.shapes(l)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			key, err := l.key(rec.Attributes)
			if err != nil {
				return nil, err
			}
			value, ok := classes[key]
			if !ok {
				return nil, fmt.Errorf("no class for region '%s' in '%s': %w", key, cfg.Mapping, storage.MissingInputErr)
			}
			fill, err := paint(value)
			if err != nil {
				return nil, err
			}
			rings := make([][]vizmath.Point, len(rec.Rings))
			for i, ring := range rec.Rings {
				rings[i] = albers.ProjectRing(ring)
			}
			if err := f.Polygon(rings, fill, edge); err != nil {
				return nil, err
			}
		}
		log.Debug().Str("run", r.id).Str("shapefile", l.Shapefile).Int("regions", len(records)).Msg("painted")
	}
	cfg.Style.finish(f)

	files, err := r.export(name, f, base)
	if err != nil {
		return nil, err
	}
	return files, r.consume(name, cfg.Consume, cfg.Mapping)
}

// shapes returns the records of the layer, reading every shapefile once per runner.
func (r *Runner) shapes(l layer) ([]geo.Record, error) {
	p := l.Shapefile
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.shapeDir, p)
	}
	all, ok := r.records[p]
	if !ok {
		var err error
		all, err = geo.ReadShapes(p, nil)
		if err != nil {
			return nil, err
		}
		r.records[p] = all
	}
	kept := make([]geo.Record, 0)
	for _, rec := range all {
		if l.keep(rec.Attributes) {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}
