package storage

import (
	"errors"
	"fmt"
)

var (
	MissingInputErr   = errors.New("missing input")
	MalformedInputErr = errors.New("malformed input")
)

// Source provides the delimited data files produced by the training process.
type Source interface {
	// Matrix loads an all-numeric file as rows of equal length.
	Matrix(name string) ([][]float64, error)
	// Mapping loads a two column file as key to value.
	Mapping(name string) (map[string]string, error)
	// Consume removes the given inputs once they are no longer needed.
	Consume(names ...string) error
}

// Points extracts the first two columns of the matrix as x and y coordinates.
func Points(rows [][]float64) (xx, yy []float64, err error) {
	xx = make([]float64, len(rows))
	yy = make([]float64, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("row %d has %d fields instead of 2: %w", i, len(row), MalformedInputErr)
		}
		xx[i] = row[0]
		yy[i] = row[1]
	}
	return xx, yy, nil
}

// Flat concatenates the rows in order.
func Flat(rows [][]float64) []float64 {
	ff := make([]float64, 0)
	for _, row := range rows {
		ff = append(ff, row...)
	}
	return ff
}
