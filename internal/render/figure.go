package render

import (
	"fmt"
	"image/color"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options describe the canvas of a figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height in inches
	Width  float64
	Height float64
}

// Figure is a single chart, all drawing goes through it explicitly.
type Figure struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
	limits *limits
}

type limits struct {
	xmin, xmax, ymin, ymax float64
}

// New creates an empty figure.
func New(opts Options) *Figure {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 6
	}
	if h <= 0 {
		h = w
	}
	return &Figure{
		plot:   p,
		width:  vg.Length(w) * vg.Inch,
		height: vg.Length(h) * vg.Inch,
	}
}

// Limits fixes the visible data range, whatever has been drawn.
func (f *Figure) Limits(xmin, xmax, ymin, ymax float64) {
	f.limits = &limits{xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
}

// Grid draws grid lines at the major ticks.
func (f *Figure) Grid() {
	f.plot.Add(plotter.NewGrid())
}

// HideAxes removes axes, ticks and labels.
func (f *Figure) HideAxes() {
	f.plot.HideAxes()
}

// Legend places the legend in the given corner.
func (f *Figure) Legend(top, left bool) {
	f.plot.Legend.Top = top
	f.plot.Legend.Left = left
}

// Raster draws the field over the grid, colour mapped between vmin and vmax.
// Values outside the range are clipped to it.
func (f *Figure) Raster(g vizmath.Grid, field *vizmath.Field, p palette.Palette, vmin, vmax float64) error {
	if err := g.Fits(field); err != nil {
		return err
	}
	if len(p.Colors()) == 0 {
		return fmt.Errorf("raster with empty palette: %w", StyleErr)
	}
	if vmax <= vmin {
		vmax = vmin + 1
	}
	hm := plotter.NewHeatMap(raster{grid: g, field: field, min: vmin, max: vmax}, p)
	hm.Min = vmin
	hm.Max = vmax
	f.plot.Add(hm)
	return nil
}

// Contours draws the iso-lines, optionally labelled with their level.
func (f *Figure) Contours(contours []vizmath.Contour, sty draw.LineStyle, labelled bool) error {
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0),
		Labels: make([]string, 0),
	}
	for _, c := range contours {
		for _, l := range c.Lines {
			line, err := plotter.NewLine(xys(l))
			if err != nil {
				return fmt.Errorf("could not draw contour %v: %w", c.Level, err)
			}
			line.LineStyle = sty
			f.plot.Add(line)
			if labelled {
				m := l.Middle()
				labels.XYs = append(labels.XYs, plotter.XY{X: m.X, Y: m.Y})
				labels.Labels = append(labels.Labels, vizmath.Format(c.Level))
			}
		}
	}
	if len(labels.Labels) == 0 {
		return nil
	}
	return f.labels(labels, 0)
}

// Group is a set of points drawn with the same marker.
type Group struct {
	Name   string
	X      []float64
	Y      []float64
	Marker Marker
	Face   color.Color
	Size   float64
}

// Scatter draws the points of the group, later groups on top.
func (f *Figure) Scatter(g Group) error {
	s, err := plotter.NewScatter(xy(g.X, g.Y))
	if err != nil {
		return fmt.Errorf("could not draw group '%s': %w", g.Name, err)
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  g.Face,
		Radius: Radius(g.Size),
		Shape:  g.Marker,
	}
	f.plot.Add(s)
	if g.Name != "" {
		f.plot.Legend.Add(g.Name, s)
	}
	return nil
}

// Trajectory draws the points as a connected path, the first point annotated as the start.
func (f *Figure) Trajectory(name string, xx, yy []float64, c color.Color, width vg.Length) error {
	l, s, err := plotter.NewLinePoints(xy(xx, yy))
	if err != nil {
		return fmt.Errorf("could not draw trajectory '%s': %w", name, err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	s.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: width * 1.5,
		Shape:  draw.CircleGlyph{},
	}
	f.plot.Add(l, s)
	if name != "" {
		f.plot.Legend.Add(name, l, s)
	}
	return nil
}

// Curve draws a line through the points in the given order.
func (f *Figure) Curve(name string, xx, yy []float64, sty draw.LineStyle) error {
	l, err := plotter.NewLine(xy(xx, yy))
	if err != nil {
		return fmt.Errorf("could not draw curve '%s': %w", name, err)
	}
	l.LineStyle = sty
	f.plot.Add(l)
	if name != "" {
		f.plot.Legend.Add(name, l)
	}
	return nil
}

// Text writes a centred annotation above the given position.
func (f *Figure) Text(x, y float64, s string) error {
	return f.labels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{s},
	}, vg.Points(2))
}

// Polygon fills the area enclosed by the rings and outlines it.
func (f *Figure) Polygon(rings [][]vizmath.Point, fill color.Color, edge draw.LineStyle) error {
	if len(rings) == 0 {
		return nil
	}
	xyers := make([]plotter.XYer, len(rings))
	for i, r := range rings {
		xyers[i] = xys(r)
	}
	pg, err := plotter.NewPolygon(xyers...)
	if err != nil {
		return fmt.Errorf("could not draw polygon: %w", err)
	}
	pg.Color = fill
	pg.LineStyle = edge
	f.plot.Add(pg)
	return nil
}

func (f *Figure) labels(xyl plotter.XYLabels, offset vg.Length) error {
	l, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("could not draw labels: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
	}
	l.Offset = vg.Point{Y: offset}
	f.plot.Add(l)
	return nil
}

// raster adapts a field to the heat map grid, clipping values to [min, max].
type raster struct {
	grid  vizmath.Grid
	field *vizmath.Field
	min   float64
	max   float64
}

func (r raster) Dims() (c, rr int) {
	return r.field.Dims()
}

func (r raster) Z(c, rr int) float64 {
	v := r.field.At(rr, c)
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

func (r raster) X(c int) float64 {
	return r.grid.X[c]
}

func (r raster) Y(rr int) float64 {
	return r.grid.Y[rr]
}

func xys(l []vizmath.Point) plotter.XYs {
	pts := make(plotter.XYs, len(l))
	for i, p := range l {
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return pts
}

func xy(xx, yy []float64) plotter.XYs {
	n := len(xx)
	if len(yy) < n {
		n = len(yy)
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i] = plotter.XY{X: xx[i], Y: yy[i]}
	}
	return pts
}
