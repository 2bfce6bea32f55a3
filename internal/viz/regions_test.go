package viz

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/drakos74/mlviz/internal/geo"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type region struct {
	lon, lat   float64
	attributes []string
}

// writeShapes writes a unit square polygon per region with the given dbf fields.
func writeShapes(t *testing.T, path string, fields []string, regions []region) {
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	ff := make([]shp.Field, len(fields))
	for i, f := range fields {
		ff[i] = shp.StringField(f, 32)
	}
	require.NoError(t, w.SetFields(ff))
	for row, r := range regions {
		pl := shp.NewPolyLine([][]shp.Point{{
			{X: r.lon, Y: r.lat},
			{X: r.lon, Y: r.lat + 1},
			{X: r.lon + 1, Y: r.lat + 1},
			{X: r.lon + 1, Y: r.lat},
			{X: r.lon, Y: r.lat},
		}})
		pg := shp.Polygon(*pl)
		w.Write(&pg)
		for i, a := range r.attributes {
			require.NoError(t, w.WriteAttribute(row, i, a))
		}
	}
	w.Close()
}

func writeNaturalEarth(t *testing.T, dir string) {
	writeShapes(t, filepath.Join(dir, "ne_10m_admin_1_states_provinces.shp"), []string{"name", "admin"}, []region{
		{lon: 142, lat: 43, attributes: []string{"Hokkaido", "Japan"}},
		{lon: 132, lat: 35, attributes: []string{"Shimane", "Japan"}},
		{lon: 139, lat: 35, attributes: []string{"Tokyo", "Japan"}},
		{lon: 142, lat: 47, attributes: []string{"Sakhalin", "Russia"}},
		{lon: 127, lat: 37, attributes: []string{"Seoul", "South Korea"}},
	})
	writeShapes(t, filepath.Join(dir, "ne_10m_admin_0_disputed_areas.shp"), []string{"NOTE_BRK", "ADMIN"}, []region{
		{lon: 146, lat: 43, attributes: []string{"Claimed by Japan", "Russia"}},
		{lon: 131, lat: 37, attributes: []string{"Claimed by Japan", "South Korea"}},
		{lon: 123, lat: 25, attributes: []string{"Claimed by China", "Japan"}},
	})
}

func TestRun_Regions(t *testing.T) {

	type test struct {
		cmd     Regions
		mapping map[string]string
		consume bool
		err     error
	}

	tests := map[string]test{
		"nbc": {
			cmd: Regions{Name: "nbc", RunID: "1"},
			mapping: map[string]string{
				"Hokkaido": "red",
				"Shimane":  "#00ff00",
				"Tokyo":    "b",
			},
		},
		"lda": {
			cmd: Regions{Name: "lda", RunID: "2"},
			mapping: map[string]string{
				"Hokkaido": "0",
				"Shimane":  "3",
				"Tokyo":    "4",
			},
			consume: true,
		},
		"lda-missing-region": {
			cmd: Regions{Name: "lda", RunID: "3"},
			mapping: map[string]string{
				"Hokkaido": "0",
				"Shimane":  "3",
			},
			err: storage.MissingInputErr,
		},
		"lda-index-out-of-palette": {
			cmd: Regions{Name: "lda", RunID: "4"},
			mapping: map[string]string{
				"Hokkaido": "0",
				"Shimane":  "5",
				"Tokyo":    "1",
			},
			err: render.StyleErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			shapes := t.TempDir()
			writeNaturalEarth(t, shapes)
			source := storage.NewMockSource().WithMapping("pref.dat", tt.mapping)
			r, _, dir := newRunner(t, source)
			r.WithShapes(shapes)

			_, err := r.Run(tt.cmd)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "%v", err)
				assertNoOutput(t, dir)
				assert.Empty(t, source.Consumed)
				return
			}
			require.NoError(t, err)
			assertFigure(t, dir, "plot"+tt.cmd.RunID)
			if tt.consume {
				assert.Equal(t, []string{"pref.dat"}, source.Consumed)
			} else {
				assert.Empty(t, source.Consumed)
			}
		})
	}

}

func TestRun_RegionsMissingShapes(t *testing.T) {

	source := storage.NewMockSource().WithMapping("pref.dat", map[string]string{})
	r, _, dir := newRunner(t, source)

	_, err := r.Run(Regions{Name: "nbc", RunID: "1"})
	assert.True(t, errors.Is(err, storage.MissingInputErr))
	assertNoOutput(t, dir)

}

func TestLayer(t *testing.T) {

	disputed := layer{
		Contains: map[string]string{"note_brk": "Claimed by Japan"},
		Rules: []rule{
			{When: map[string]string{"admin": "Russia"}, Key: "Hokkaido"},
			{Key: "Shimane"},
		},
	}

	type test struct {
		attributes geo.Attributes
		keep       bool
		key        string
	}

	tests := map[string]test{
		"russia": {
			attributes: geo.Attributes{"NOTE_BRK": "Claimed by Japan; administered by Russia", "ADMIN": "Russia"},
			keep:       true,
			key:        "Hokkaido",
		},
		"korea": {
			attributes: geo.Attributes{"NOTE_BRK": "Claimed by Japan", "ADMIN": "South Korea"},
			keep:       true,
			key:        "Shimane",
		},
		"china": {
			attributes: geo.Attributes{"NOTE_BRK": "Claimed by China", "ADMIN": "Japan"},
		},
		"no-note": {
			attributes: geo.Attributes{"ADMIN": "Japan"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.keep, disputed.keep(tt.attributes))
			if !tt.keep {
				return
			}
			key, err := disputed.key(tt.attributes)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
		})
	}

	prefectures := layer{Match: map[string]string{"admin": "Japan"}, KeyAttribute: "name"}
	key, err := prefectures.key(geo.Attributes{"name": "Tokyo"})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", key)
	_, err = prefectures.key(geo.Attributes{"admin": "Japan"})
	assert.True(t, errors.Is(err, storage.MalformedInputErr))

}
