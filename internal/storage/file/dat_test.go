package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/mlviz/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestSource_Matrix(t *testing.T) {

	type test struct {
		content string
		rows    [][]float64
		err     error
	}

	tests := map[string]test{
		"points": {
			content: "1.5,-2\n3,4e-1\n",
			rows:    [][]float64{{1.5, -2}, {3, 0.4}},
		},
		"single-column": {
			content: "1\n2\n3",
			rows:    [][]float64{{1}, {2}, {3}},
		},
		"spaces": {
			content: " 1, 2 ,3\n4,5,6\n",
			rows:    [][]float64{{1, 2, 3}, {4, 5, 6}},
		},
		"blank-lines": {
			content: "1,2\n\n3,4\n\n",
			rows:    [][]float64{{1, 2}, {3, 4}},
		},
		"ragged": {
			content: "1,2\n3\n",
			err:     storage.MalformedInputErr,
		},
		"not-numeric": {
			content: "1,2\n3,x\n",
			err:     storage.MalformedInputErr,
		},
		"empty": {
			content: "",
			err:     storage.MalformedInputErr,
		},
		"quoted": {
			content: "1,2\n\"3\",4\n",
			err:     storage.MalformedInputErr,
		},
		"quote-inside": {
			content: "1,2\n3,4\"\n",
			err:     storage.MalformedInputErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			write(t, dir, "data.dat", tt.content)
			rows, err := New(dir).Matrix("data.dat")
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, rows)
		})
	}

}

func TestSource_Missing(t *testing.T) {

	s := New(t.TempDir())

	_, err := s.Matrix("dist.dat")
	assert.True(t, errors.Is(err, storage.MissingInputErr))

	_, err = s.Mapping("pref.dat")
	assert.True(t, errors.Is(err, storage.MissingInputErr))

}

func TestSource_Mapping(t *testing.T) {

	dir := t.TempDir()
	write(t, dir, "pref.dat", "Hokkaido,red\nShimane, 3\nTokyo,#00aa00\n")

	m, err := New(dir).Mapping("pref.dat")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Hokkaido": "red",
		"Shimane":  "3",
		"Tokyo":    "#00aa00",
	}, m)

	write(t, dir, "bad.dat", "Hokkaido,red,blue\n")
	_, err = New(dir).Mapping("bad.dat")
	assert.True(t, errors.Is(err, storage.MalformedInputErr))

	write(t, dir, "quoted.dat", "Hokkaido,red\n\"Tokyo\",blue\n")
	_, err = New(dir).Mapping("quoted.dat")
	assert.True(t, errors.Is(err, storage.MalformedInputErr))
	assert.Contains(t, err.Error(), "line 2")

}

func TestSource_Consume(t *testing.T) {

	dir := t.TempDir()
	write(t, dir, "data0.dat", "1,2\n")
	write(t, dir, "class.dat", "0,1\n")

	s := New(dir)
	require.NoError(t, s.Consume("data0.dat", "class.dat"))

	_, err := os.Stat(s.Path("data0.dat"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(s.Path("class.dat"))
	assert.True(t, os.IsNotExist(err))

	// a second run finds nothing to consume
	err = s.Consume("data0.dat")
	assert.True(t, errors.Is(err, storage.MissingInputErr))

	_, err = s.Matrix("data0.dat")
	assert.True(t, errors.Is(err, storage.MissingInputErr))

}
