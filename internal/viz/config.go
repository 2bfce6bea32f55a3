package viz

import (
	"fmt"
	"strings"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/drakos74/mlviz/internal/render"
	"github.com/drakos74/mlviz/internal/storage"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style is the canvas of a figure.
type Style struct {
	Title    string  `yaml:"title"`
	XLabel   string  `yaml:"xlabel"`
	YLabel   string  `yaml:"ylabel"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Grid     bool    `yaml:"grid"`
	HideAxes bool    `yaml:"hide_axes"`
}

func (s Style) figure() *render.Figure {
	f := render.New(render.Options{
		Title:  s.Title,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		Width:  s.Width,
		Height: s.Height,
	})
	if s.HideAxes {
		f.HideAxes()
	}
	return f
}

// finish adds the overlays that go on top of all data.
func (s Style) finish(f *render.Figure) {
	if s.Grid {
		f.Grid()
	}
}

// Limits is the visible data range.
type Limits struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

func (l Limits) apply(f *render.Figure) {
	f.Limits(l.XMin, l.XMax, l.YMin, l.YMax)
}

// Axis is a sampled coordinate range,
// either n samples including both ends or a half-open range with the given step.
type Axis struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	N    int     `yaml:"n"`
	Step float64 `yaml:"step"`
}

func (a Axis) values() ([]float64, error) {
	if a.Step > 0 {
		return vizmath.Arange(a.Min, a.Max, a.Step)
	}
	return vizmath.Linspace(a.Min, a.Max, a.N)
}

func grid(x, y Axis) (vizmath.Grid, error) {
	xx, err := x.values()
	if err != nil {
		return vizmath.Grid{}, err
	}
	yy, err := y.values()
	if err != nil {
		return vizmath.Grid{}, err
	}
	return vizmath.NewGrid(xx, yy)
}

// Shape lays out an input as a field of width columns and height rows,
// whatever the line breaks of the file. Zero keeps the rows of the file.
type Shape struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (s Shape) field(rows [][]float64) (*vizmath.Field, error) {
	if s.Width == 0 && s.Height == 0 {
		return vizmath.NewField(rows)
	}
	return vizmath.Reshape(storage.Flat(rows), s.Width, s.Height)
}

// Palette is either a named continuous colour map or a list of category colours.
type Palette struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
	Shades int      `yaml:"shades"`
}

func (p Palette) build() (palette.Palette, error) {
	return render.NewPalette(p.Name, p.Colors, p.Shades)
}

// Line is the style of a drawn line.
type Line struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
}

func (l Line) style() (draw.LineStyle, error) {
	c, err := render.ParseColor(l.Color)
	if err != nil {
		return draw.LineStyle{}, err
	}
	return draw.LineStyle{Color: c, Width: vg.Points(l.Width)}, nil
}

// Markers describes a group of points, read from a file or given inline.
type Markers struct {
	Name      string      `yaml:"name"`
	File      string      `yaml:"file"`
	Points    [][]float64 `yaml:"points"`
	Marker    string      `yaml:"marker"`
	Face      string      `yaml:"face"`
	Edge      string      `yaml:"edge"`
	EdgeWidth float64     `yaml:"edge_width"`
	Size      float64     `yaml:"size"`
}

// group builds the render group, face overrides the configured face colour if given.
func (m Markers) group(xx, yy []float64, face string) (render.Group, error) {
	if face == "" {
		face = m.Face
	}
	fc, err := render.ParseColor(face)
	if err != nil {
		return render.Group{}, err
	}
	var edge = fc
	if m.Edge != "" {
		edge, err = render.ParseColor(m.Edge)
		if err != nil {
			return render.Group{}, err
		}
	}
	marker, err := render.NewMarker(m.Marker, edge, vg.Points(m.EdgeWidth))
	if err != nil {
		return render.Group{}, err
	}
	return render.Group{
		Name:   m.Name,
		X:      xx,
		Y:      yy,
		Marker: marker,
		Face:   fc,
		Size:   m.Size,
	}, nil
}

// inline returns the configured points as coordinates.
func (m Markers) inline() (xx, yy []float64, err error) {
	xx = make([]float64, len(m.Points))
	yy = make([]float64, len(m.Points))
	for i, p := range m.Points {
		if len(p) != 2 {
			return nil, nil, fmt.Errorf("point %d of '%s' has %d coordinates: %w", i, m.Name, len(p), render.StyleErr)
		}
		xx[i], yy[i] = p[0], p[1]
	}
	return xx, yy, nil
}

// IDPlaceholder is replaced by the run identifier in output names.
const IDPlaceholder = "{id}"

// output resolves the file base name of a figure.
func output(pattern, id string) (string, error) {
	if strings.Contains(pattern, IDPlaceholder) {
		if id == "" {
			return "", fmt.Errorf("output '%s' needs a run identifier: %w", pattern, vizmath.ArgumentErr)
		}
		return strings.ReplaceAll(pattern, IDPlaceholder, id), nil
	}
	return pattern, nil
}
