package math

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoly_Map(t *testing.T) {

	type test struct {
		w []float64
		x []float64
		y []float64
	}

	tests := map[string]test{
		"identity": {
			w: []float64{0, 1, 0},
			x: []float64{-2, -1, 0, 1, 2},
			y: []float64{-2, -1, 0, 1, 2},
		},
		"constant": {
			w: []float64{3},
			x: []float64{-5, 0, 5},
			y: []float64{3, 3, 3},
		},
		"square": {
			w: []float64{1, 0, 2},
			x: []float64{-2, 0, 3},
			y: []float64{9, 1, 19},
		},
		"cubic": {
			w: []float64{0, 0, 0, 1},
			x: []float64{-2, 10},
			y: []float64{-8, 1000},
		},
		"zero-power-at-zero": {
			w: []float64{7, 5},
			x: []float64{0},
			y: []float64{7},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := NewPoly(tt.w)
			require.NoError(t, err)
			assert.Equal(t, tt.y, p.Map(tt.x))
		})
	}

}

func TestPoly_Deterministic(t *testing.T) {

	p, err := NewPoly([]float64{0.3, -1.7, 0.013, 2.2e-3, -4.1e-5})
	require.NoError(t, err)

	for _, x := range []float64{-9.9, -1.1, 0.1, 3.3, 7.77} {
		y1 := p.Eval(x)
		y2 := p.Eval(x)
		assert.Equal(t, math.Float64bits(y1), math.Float64bits(y2))
	}

}

func TestPoly_LargeValues(t *testing.T) {

	p, err := NewPoly([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, 1e20, p.Eval(100))
	assert.Equal(t, 10, p.Degree())

}

func TestNewPoly_Empty(t *testing.T) {

	_, err := NewPoly(nil)
	assert.True(t, errors.Is(err, EmptyPolynomialErr))
	assert.True(t, errors.Is(err, ArgumentErr))

}

func TestNewPoly_Copies(t *testing.T) {

	w := []float64{1, 2}
	p, err := NewPoly(w)
	require.NoError(t, err)
	w[0] = 100
	assert.Equal(t, 1.0, p[0])

}

func TestFit(t *testing.T) {

	x := []float64{-2, -1, 0, 1, 2, 3}
	y := Poly{1, -2, 0.5}.Map(x)

	c, err := Fit(x, y, 2)
	require.NoError(t, err)
	require.Len(t, c, 3)
	assert.InDelta(t, 1, c[0], 1e-9)
	assert.InDelta(t, -2, c[1], 1e-9)
	assert.InDelta(t, 0.5, c[2], 1e-9)

}

func TestFit_Invalid(t *testing.T) {

	type test struct {
		x      []float64
		y      []float64
		degree int
		err    error
	}

	tests := map[string]test{
		"negative-degree": {
			x:      []float64{1, 2},
			y:      []float64{1, 2},
			degree: -1,
			err:    ArgumentErr,
		},
		"length-mismatch": {
			x:      []float64{1, 2, 3},
			y:      []float64{1, 2},
			degree: 1,
			err:    ShapeMismatchErr,
		},
		"too-few-samples": {
			x:      []float64{1, 2},
			y:      []float64{1, 2},
			degree: 2,
			err:    ArgumentErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Fit(tt.x, tt.y, tt.degree)
			assert.True(t, errors.Is(err, tt.err), err)
		})
	}

}
