package math

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {

	f, err := Reshape([]float64{0, 10, 0, 10}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{2.5, 5, 7.5}, Levels(f, 3))
	assert.Nil(t, Levels(f, 0))

	flat, err := Reshape([]float64{3, 3, 3, 3}, 2, 2)
	require.NoError(t, err)
	assert.Nil(t, Levels(flat, 5))

}

func TestContours_Monotonic(t *testing.T) {

	type test struct {
		n      int
		levels int
	}

	tests := map[string]test{
		"on-nodes":      {n: 11, levels: 4},
		"between-nodes": {n: 8, levels: 3},
		"single":        {n: 2, levels: 1},
		"dense":         {n: 50, levels: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := SpanGrid(0, 10, -1, 1, tt.n)
			require.NoError(t, err)
			f := Evaluate(g, func(x, y float64) float64 {
				return x
			})

			levels := Levels(f, tt.levels)
			require.Len(t, levels, tt.levels)

			contours, err := Contours(g, f, levels)
			require.NoError(t, err)
			require.Len(t, contours, tt.levels)

			xs := make([]float64, 0)
			for i, c := range contours {
				assert.Equal(t, levels[i], c.Level)
				require.Len(t, c.Lines, 1)
				line := c.Lines[0]
				ys := make([]float64, 0)
				for _, p := range line {
					assert.InDelta(t, c.Level, p.X, 1e-9)
					ys = append(ys, p.Y)
				}
				sort.Float64s(ys)
				// the iso-line spans the full height of the domain
				assert.InDelta(t, -1, ys[0], 1e-9)
				assert.InDelta(t, 1, ys[len(ys)-1], 1e-9)
				assert.Len(t, line, tt.n)
				xs = append(xs, line[0].X)
			}

			step := 10 / float64(tt.levels+1)
			for i := 1; i < len(xs); i++ {
				assert.InDelta(t, step, xs[i]-xs[i-1], 1e-9)
			}
		})
	}

}

func TestContours_Constant(t *testing.T) {

	g, err := SpanGrid(-1, 1, -1, 1, 10)
	require.NoError(t, err)
	f := Evaluate(g, func(x, y float64) float64 {
		return 4.2
	})

	contours, err := Contours(g, f, Levels(f, 8))
	require.NoError(t, err)
	assert.Empty(t, contours)

	// explicit levels through a constant field do not cross anything either
	contours, err = Contours(g, f, []float64{4.2, 1, 10})
	require.NoError(t, err)
	assert.Empty(t, contours)

}

func TestContours_ClosedLoop(t *testing.T) {

	g, err := SpanGrid(-2, 2, -2, 2, 41)
	require.NoError(t, err)
	f := Evaluate(g, Bowl)

	contours, err := Contours(g, f, []float64{1})
	require.NoError(t, err)
	require.Len(t, contours, 1)
	require.Len(t, contours[0].Lines, 1)

	line := contours[0].Lines[0]
	assert.Equal(t, line[0], line[len(line)-1])
	for _, p := range line {
		// linear interpolation stays close to the unit circle
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 0.01)
	}

}

func TestContours_Saddle(t *testing.T) {

	g, err := SpanGrid(-2, 2, -2, 2, 21)
	require.NoError(t, err)
	f := Evaluate(g, Saddle)

	contours, err := Contours(g, f, []float64{1, -1})
	require.NoError(t, err)
	require.Len(t, contours, 2)

	// each hyperbola has two branches reaching the boundary
	for _, c := range contours {
		assert.Len(t, c.Lines, 2)
		for _, l := range c.Lines {
			m := l.Middle()
			assert.InDelta(t, c.Level, Saddle(m.X, m.Y), 0.1)
		}
	}

}

func TestContours_ShapeMismatch(t *testing.T) {

	g, err := SpanGrid(0, 1, 0, 1, 3)
	require.NoError(t, err)
	f, err := Reshape([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	_, err = Contours(g, f, []float64{2})
	assert.True(t, errors.Is(err, ShapeMismatchErr))

}
