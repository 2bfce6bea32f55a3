package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Field is a scalar value per grid point, stored row-major with rows following y.
type Field struct {
	m *mat.Dense
}

// Surface is an analytic scalar function of two variables.
type Surface func(x, y float64) float64

// Saddle is the x^2 - y^2 loss surface.
func Saddle(x, y float64) float64 {
	return x*x - y*y
}

// Bowl is the x^2 + y^2 loss surface.
func Bowl(x, y float64) float64 {
	return x*x + y*y
}

// Evaluate computes the field of the given function over the grid.
func Evaluate(g Grid, f Surface) *Field {
	xm, ym := g.Meshgrid()
	h, w := xm.Dims()
	m := mat.NewDense(h, w, nil)
	m.Apply(func(r, c int, _ float64) float64 {
		return f(xm.At(r, c), ym.At(r, c))
	}, m)
	return &Field{m: m}
}

// Reshape lays out the flat sequence as a field of w columns and h rows.
func Reshape(flat []float64, w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("reshape to %dx%d: %w", w, h, ArgumentErr)
	}
	if len(flat) != w*h {
		return nil, fmt.Errorf("reshape %d values to %dx%d: %w", len(flat), w, h, ShapeMismatchErr)
	}
	data := make([]float64, len(flat))
	copy(data, flat)
	return &Field{m: mat.NewDense(h, w, data)}, nil
}

// NewField creates a field from rows of equal length.
func NewField(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty field: %w", ShapeMismatchErr)
	}
	w := len(rows[0])
	flat := make([]float64, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d values instead of %d: %w", i, len(row), w, ShapeMismatchErr)
		}
		flat = append(flat, row...)
	}
	return Reshape(flat, w, len(rows))
}

// Dims returns the number of columns and rows.
func (f *Field) Dims() (w, h int) {
	h, w = f.m.Dims()
	return w, h
}

// At returns the value at the given row and column.
func (f *Field) At(row, col int) float64 {
	return f.m.At(row, col)
}

// Flatten returns the values in row-major order.
func (f *Field) Flatten() []float64 {
	h, w := f.m.Dims()
	flat := make([]float64, 0, w*h)
	for r := 0; r < h; r++ {
		flat = append(flat, f.m.RawRowView(r)...)
	}
	return flat
}

func (f *Field) Min() float64 {
	return mat.Min(f.m)
}

func (f *Field) Max() float64 {
	return mat.Max(f.m)
}

// FlipRows returns a copy of the field with the row order reversed,
// for data stored top row first.
func (f *Field) FlipRows() *Field {
	h, w := f.m.Dims()
	m := mat.NewDense(h, w, nil)
	for r := 0; r < h; r++ {
		m.SetRow(h-1-r, f.m.RawRowView(r))
	}
	return &Field{m: m}
}

// Bands maps every value to the index of the band it falls in,
// band 0 lying below levels[0] and band len(levels) above the last level.
// Levels are expected in ascending order.
func (f *Field) Bands(levels []float64) *Field {
	h, w := f.m.Dims()
	m := mat.NewDense(h, w, nil)
	m.Apply(func(_, _ int, v float64) float64 {
		b := 0
		for _, l := range levels {
			if v <= l {
				break
			}
			b++
		}
		return float64(b)
	}, f.m)
	return &Field{m: m}
}
