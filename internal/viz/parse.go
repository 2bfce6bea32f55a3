package viz

import (
	"fmt"
	"strconv"
	"strings"

	vizmath "github.com/drakos74/mlviz/internal/math"
)

// ParseRegression reads the polynomial coefficients w0 ... wn.
// Without coefficients a positive degree asks for a least squares fit instead.
func ParseRegression(args []string, degree int) (Regression, error) {
	if len(args) == 0 {
		if degree <= 0 {
			return Regression{}, fmt.Errorf("no coefficients and no degree to fit: %w", vizmath.EmptyPolynomialErr)
		}
		return Regression{Degree: degree}, nil
	}
	if degree > 0 {
		return Regression{}, fmt.Errorf("both coefficients and a degree to fit: %w", vizmath.ArgumentErr)
	}
	w := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return Regression{}, fmt.Errorf("coefficient %d '%s' is not a number: %w", i, arg, vizmath.ArgumentErr)
		}
		w[i] = f
	}
	poly, err := vizmath.NewPoly(w)
	if err != nil {
		return Regression{}, err
	}
	return Regression{Coefficients: poly}, nil
}

// ParseClassification reads the optional run identifier.
func ParseClassification(name string, args []string) (Classification, error) {
	if len(args) > 1 {
		return Classification{}, fmt.Errorf("%s takes at most a run id, got %v: %w", name, args, vizmath.ArgumentErr)
	}
	c := Classification{Name: name}
	if len(args) == 1 {
		id, err := RunID(args[0])
		if err != nil {
			return Classification{}, err
		}
		c.RunID = id
	}
	return c, nil
}

// ParsePerceptron reads the integer mode, selecting the marker set drawn on top.
func ParsePerceptron(args []string) (Perceptron, error) {
	if len(args) != 1 {
		return Perceptron{}, fmt.Errorf("mlp takes exactly one mode, got %v: %w", args, vizmath.ArgumentErr)
	}
	mode, err := strconv.Atoi(args[0])
	if err != nil {
		return Perceptron{}, fmt.Errorf("mode '%s' is not an integer: %w", args[0], vizmath.ArgumentErr)
	}
	return Perceptron{Mode: mode}, nil
}

// ParseMixture reads 'km' or 'em', the latter optionally followed by 'reverse'.
func ParseMixture(args []string) (Mixture, error) {
	if len(args) == 0 {
		return Mixture{}, fmt.Errorf("gmm needs a mode: %w", vizmath.ArgumentErr)
	}
	var m Mixture
	switch strings.ToLower(args[0]) {
	case "km":
		m.Mode = KMeans
	case "em":
		m.Mode = Density
	default:
		return Mixture{}, fmt.Errorf("unknown mixture mode '%s': %w", args[0], vizmath.ArgumentErr)
	}
	rest := args[1:]
	switch {
	case len(rest) == 0:
	case len(rest) == 1 && m.Mode == Density && strings.ToLower(rest[0]) == "reverse":
		m.Reverse = true
	default:
		return Mixture{}, fmt.Errorf("unexpected arguments %v for mode '%s': %w", rest, m.Mode, vizmath.ArgumentErr)
	}
	return m, nil
}

// ParseDescent reads the mode, 'path' or '1' and 'loss' or '2', followed by the series names.
func ParseDescent(name string, args []string) (Descent, error) {
	if len(args) < 2 {
		return Descent{}, fmt.Errorf("%s needs a mode and at least one series, got %v: %w", name, args, vizmath.ArgumentErr)
	}
	d := Descent{Name: name}
	switch strings.ToLower(args[0]) {
	case "path", "1":
		d.Mode = Path
	case "loss", "2":
		d.Mode = Loss
	default:
		return Descent{}, fmt.Errorf("unknown descent mode '%s': %w", args[0], vizmath.ArgumentErr)
	}
	d.Series = make([]string, 0, len(args)-1)
	for _, s := range args[1:] {
		if s == "" || strings.ContainsAny(s, `/\`) {
			return Descent{}, fmt.Errorf("invalid series name '%s': %w", s, vizmath.ArgumentErr)
		}
		d.Series = append(d.Series, s)
	}
	return d, nil
}

// ParseRegions reads the run identifier.
func ParseRegions(name string, args []string) (Regions, error) {
	if len(args) != 1 {
		return Regions{}, fmt.Errorf("%s takes exactly one run id, got %v: %w", name, args, vizmath.ArgumentErr)
	}
	id, err := RunID(args[0])
	if err != nil {
		return Regions{}, err
	}
	return Regions{Name: name, RunID: id}, nil
}

// RunID validates an identifier that ends up in output file names.
func RunID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("invalid run id '%s': %w", id, vizmath.ArgumentErr)
	}
	return id, nil
}
