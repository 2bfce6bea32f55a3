package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced samples over [min, max], both ends included.
func Linspace(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace of %d samples: %w", n, ResolutionErr)
	}
	return floats.Span(make([]float64, n), min, max), nil
}

// Arange returns the samples min, min+step, ... up to max, excluding max.
// Counts that are an integer within rounding noise are not extended by an extra sample.
func Arange(min, max, step float64) ([]float64, error) {
	if step <= 0 || max <= min {
		return nil, fmt.Errorf("arange [%v,%v) with step %v: %w", min, max, step, ArgumentErr)
	}
	n := int(math.Ceil((max-min)/step - 1e-9))
	xx := make([]float64, n)
	for i := range xx {
		xx[i] = min + float64(i)*step
	}
	return xx, nil
}

// Midpoints returns the centres between consecutive edges.
func Midpoints(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	mm := make([]float64, len(edges)-1)
	for i := range mm {
		mm[i] = (edges[i] + edges[i+1]) / 2
	}
	return mm
}

// Grid is a rectangular lattice given by its coordinates on each axis.
type Grid struct {
	X []float64
	Y []float64
}

// NewGrid creates a grid for the given axis coordinates.
// Each axis needs at least 2 samples for contours to be defined.
func NewGrid(xx, yy []float64) (Grid, error) {
	if len(xx) < 2 || len(yy) < 2 {
		return Grid{}, fmt.Errorf("grid of %dx%d samples: %w", len(xx), len(yy), ResolutionErr)
	}
	return Grid{X: xx, Y: yy}, nil
}

// SpanGrid creates a grid of the given resolution over the given rectangle.
func SpanGrid(xmin, xmax, ymin, ymax float64, n int) (Grid, error) {
	xx, err := Linspace(xmin, xmax, n)
	if err != nil {
		return Grid{}, err
	}
	yy, err := Linspace(ymin, ymax, n)
	if err != nil {
		return Grid{}, err
	}
	return NewGrid(xx, yy)
}

// Dims returns the number of columns (x samples) and rows (y samples).
func (g Grid) Dims() (w, h int) {
	return len(g.X), len(g.Y)
}

// Extent returns the bounding rectangle of the grid.
func (g Grid) Extent() (xmin, xmax, ymin, ymax float64) {
	return g.X[0], g.X[len(g.X)-1], g.Y[0], g.Y[len(g.Y)-1]
}

// Meshgrid returns the coordinate matrices of the grid,
// with rows following y and columns following x.
func (g Grid) Meshgrid() (xm, ym *mat.Dense) {
	w, h := g.Dims()
	xm = mat.NewDense(h, w, nil)
	ym = mat.NewDense(h, w, nil)
	for r := 0; r < h; r++ {
		xm.SetRow(r, g.X)
		for c := 0; c < w; c++ {
			ym.Set(r, c, g.Y[r])
		}
	}
	return xm, ym
}

// Fits checks that the field can be laid over the grid.
func (g Grid) Fits(f *Field) error {
	w, h := g.Dims()
	fw, fh := f.Dims()
	if w != fw || h != fh {
		return fmt.Errorf("field of %dx%d on grid of %dx%d: %w", fw, fh, w, h, ShapeMismatchErr)
	}
	return nil
}
