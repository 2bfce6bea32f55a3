package math

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ArgumentErr      = errors.New("invalid argument")
	ShapeMismatchErr = errors.New("shape mismatch")

	ResolutionErr      = fmt.Errorf("resolution below 2 samples: %w", ArgumentErr)
	EmptyPolynomialErr = fmt.Errorf("polynomial without coefficients: %w", ArgumentErr)
)

// Format formats a float with two decimals, the way contour levels are labelled.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Round returns the nearest integer to f, halves away from zero.
func Round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
