package viz

import (
	"errors"
	"testing"

	vizmath "github.com/drakos74/mlviz/internal/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegression(t *testing.T) {

	type test struct {
		args   []string
		degree int
		cmd    Regression
		err    error
	}

	tests := map[string]test{
		"coefficients": {
			args: []string{"0", "1", "-0.5"},
			cmd:  Regression{Coefficients: vizmath.Poly{0, 1, -0.5}},
		},
		"fit": {
			degree: 3,
			cmd:    Regression{Degree: 3},
		},
		"empty": {
			err: vizmath.EmptyPolynomialErr,
		},
		"both": {
			args:   []string{"1"},
			degree: 2,
			err:    vizmath.ArgumentErr,
		},
		"not-a-number": {
			args: []string{"1", "x"},
			err:  vizmath.ArgumentErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := ParseRegression(tt.args, tt.degree)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, "lr", cmd.Visualization())
		})
	}

}

func TestParseEmptyPolynomial(t *testing.T) {

	_, err := ParseRegression(nil, 0)
	assert.True(t, errors.Is(err, vizmath.ArgumentErr))

}

func TestParseClassification(t *testing.T) {

	cmd, err := ParseClassification("knn", nil)
	require.NoError(t, err)
	assert.Equal(t, Classification{Name: "knn"}, cmd)

	cmd, err = ParseClassification("dt", []string{"7"})
	require.NoError(t, err)
	assert.Equal(t, Classification{Name: "dt", RunID: "7"}, cmd)
	assert.Equal(t, "dt", cmd.Visualization())

	for _, args := range [][]string{{"1", "2"}, {"../x"}, {"a/b"}, {".."}, {" "}} {
		_, err = ParseClassification("dt", args)
		assert.True(t, errors.Is(err, vizmath.ArgumentErr), "%v", args)
	}

}

func TestParsePerceptron(t *testing.T) {

	cmd, err := ParsePerceptron([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, Perceptron{Mode: 2}, cmd)

	for _, args := range [][]string{nil, {"a"}, {"1", "2"}} {
		_, err = ParsePerceptron(args)
		assert.True(t, errors.Is(err, vizmath.ArgumentErr), "%v", args)
	}

}

func TestParseMixture(t *testing.T) {

	type test struct {
		args []string
		cmd  Mixture
		err  bool
	}

	tests := map[string]test{
		"km": {
			args: []string{"km"},
			cmd:  Mixture{Mode: KMeans},
		},
		"KM": {
			args: []string{"KM"},
			cmd:  Mixture{Mode: KMeans},
		},
		"em": {
			args: []string{"em"},
			cmd:  Mixture{Mode: Density},
		},
		"em-reverse": {
			args: []string{"em", "reverse"},
			cmd:  Mixture{Mode: Density, Reverse: true},
		},
		"km-reverse": {
			args: []string{"km", "reverse"},
			err:  true,
		},
		"em-other": {
			args: []string{"em", "forward"},
			err:  true,
		},
		"none": {
			err: true,
		},
		"unknown": {
			args: []string{"dbscan"},
			err:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := ParseMixture(tt.args)
			if tt.err {
				assert.True(t, errors.Is(err, vizmath.ArgumentErr), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
		})
	}

}

func TestParseDescent(t *testing.T) {

	type test struct {
		name string
		args []string
		cmd  Descent
		err  bool
	}

	tests := map[string]test{
		"gd-path": {
			name: "gd",
			args: []string{"path", "sgd", "momentum"},
			cmd:  Descent{Name: "gd", Mode: Path, Series: []string{"sgd", "momentum"}},
		},
		"sgd-1": {
			name: "sgd",
			args: []string{"1", "adam"},
			cmd:  Descent{Name: "sgd", Mode: Path, Series: []string{"adam"}},
		},
		"sgd-2": {
			name: "sgd",
			args: []string{"2", "adam", "rmsprop"},
			cmd:  Descent{Name: "sgd", Mode: Loss, Series: []string{"adam", "rmsprop"}},
		},
		"no-series": {
			name: "gd",
			args: []string{"loss"},
			err:  true,
		},
		"unknown-mode": {
			name: "gd",
			args: []string{"3", "adam"},
			err:  true,
		},
		"path-series": {
			name: "gd",
			args: []string{"loss", "../adam"},
			err:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := ParseDescent(tt.name, tt.args)
			if tt.err {
				assert.True(t, errors.Is(err, vizmath.ArgumentErr), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.name, cmd.Visualization())
		})
	}

}

func TestParseRegions(t *testing.T) {

	cmd, err := ParseRegions("lda", []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, Regions{Name: "lda", RunID: "3"}, cmd)

	_, err = ParseRegions("nbc", nil)
	assert.True(t, errors.Is(err, vizmath.ArgumentErr))

}

func TestModes_String(t *testing.T) {

	assert.Equal(t, "km", KMeans.String())
	assert.Equal(t, "em", Density.String())
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "loss", Loss.String())
	assert.Equal(t, "unknown", DescentMode(0).String())

}
