package geo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/storage"
	"github.com/jonas-p/go-shp"
	"github.com/rs/zerolog/log"
)

// Attributes are the dbf fields of a shape record.
type Attributes map[string]string

// Get looks up an attribute ignoring the case of its name.
func (a Attributes) Get(name string) (string, bool) {
	if v, ok := a[name]; ok {
		return v, true
	}
	for k, v := range a {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Record is a polygon shape with its attributes, rings in longitude / latitude.
type Record struct {
	Attributes Attributes
	Rings      [][]vizmath.Point
}

// Filter selects the records to keep.
type Filter func(attributes Attributes) bool

// ReadShapes loads the polygon records of the shapefile that pass the filter.
// Other shape types are skipped.
func ReadShapes(path string, keep Filter) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not find shapefile '%s': %w", path, storage.MissingInputErr)
		}
		return nil, fmt.Errorf("could not open shapefile '%s': %w", path, err)
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open shapefile '%s': %s: %w", path, err.Error(), storage.MalformedInputErr)
	}
	defer r.Close()

	fields := r.Fields()
	records := make([]Record, 0)
	skipped := 0
	for r.Next() {
		n, shape := r.Shape()
		attributes := make(Attributes, len(fields))
		for i, f := range fields {
			attributes[f.String()] = strings.TrimSpace(r.ReadAttribute(n, i))
		}
		if keep != nil && !keep(attributes) {
			continue
		}
		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		records = append(records, Record{
			Attributes: attributes,
			Rings:      rings(polygon),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("could not read shapefile '%s': %s: %w", path, err.Error(), storage.MalformedInputErr)
	}
	log.Debug().Str("file", path).Int("records", len(records)).Int("skipped", skipped).Msg("loaded shapes")
	return records, nil
}

// rings splits the polygon points into its parts.
func rings(p *shp.Polygon) [][]vizmath.Point {
	rr := make([][]vizmath.Point, 0, len(p.Parts))
	for i, start := range p.Parts {
		end := int32(len(p.Points))
		if i+1 < len(p.Parts) {
			end = p.Parts[i+1]
		}
		ring := make([]vizmath.Point, 0, end-start)
		for _, pt := range p.Points[start:end] {
			ring = append(ring, vizmath.Point{X: pt.X, Y: pt.Y})
		}
		rr = append(rr, ring)
	}
	return rr
}
