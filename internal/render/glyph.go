package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker draws a filled glyph with an outline.
// The fill colour comes from the glyph style, the outline from the marker.
type Marker struct {
	Shape     string
	Edge      color.Color
	EdgeWidth vg.Length
}

// NewMarker validates the shape code: ^ v < > for triangles, o and . for dots, * for stars, s for squares.
func NewMarker(shape string, edge color.Color, width vg.Length) (Marker, error) {
	switch shape {
	case "^", "v", "<", ">", "o", ".", "*", "s":
		return Marker{Shape: shape, Edge: edge, EdgeWidth: width}, nil
	}
	return Marker{}, fmt.Errorf("unknown marker '%s': %w", shape, StyleErr)
}

func (m Marker) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	p := m.path(pt, sty.Radius)
	if sty.Color != nil {
		c.SetColor(sty.Color)
		c.Fill(p)
	}
	if m.Edge != nil && m.EdgeWidth > 0 {
		c.SetLineStyle(draw.LineStyle{Color: m.Edge, Width: m.EdgeWidth})
		c.Stroke(p)
	}
}

func (m Marker) path(pt vg.Point, r vg.Length) vg.Path {
	switch m.Shape {
	case "^":
		return polygon(pt, r, 3, math.Pi/2, 1)
	case "v":
		return polygon(pt, r, 3, -math.Pi/2, 1)
	case ">":
		return polygon(pt, r, 3, 0, 1)
	case "<":
		return polygon(pt, r, 3, math.Pi, 1)
	case "s":
		return polygon(pt, r, 4, math.Pi/4, 1)
	case "*":
		return polygon(pt, r, 5, math.Pi/2, 0.4)
	case ".":
		return circle(pt, r/2)
	default:
		return circle(pt, r)
	}
}

// polygon builds a regular polygon of n corners, or a star of n points
// when the inner ratio is below 1.
func polygon(pt vg.Point, r vg.Length, n int, phase, inner float64) vg.Path {
	step := 2 * math.Pi / float64(n)
	var p vg.Path
	for i := 0; i < n; i++ {
		a := phase + float64(i)*step
		v := vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
		if inner < 1 {
			b := a + step/2
			ri := r * vg.Length(inner)
			p.Line(vg.Point{X: pt.X + ri*vg.Length(math.Cos(b)), Y: pt.Y + ri*vg.Length(math.Sin(b))})
		}
	}
	p.Close()
	return p
}

func circle(pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Radius converts a marker area in square points to a glyph radius.
func Radius(size float64) vg.Length {
	return vg.Points(math.Sqrt(size) / 2)
}
