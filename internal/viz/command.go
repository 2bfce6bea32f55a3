package viz

import (
	vizmath "github.com/drakos74/mlviz/internal/math"
)

// Command is the typed description of a single run, built once from the command line.
type Command interface {
	// Visualization is the key of the named configuration the command renders with.
	Visualization() string
}

// Regression draws a polynomial through the samples,
// fitted with the given degree if no coefficients are given.
type Regression struct {
	Coefficients vizmath.Poly
	Degree       int
}

func (r Regression) Visualization() string {
	return "lr"
}

// Classification paints the predicted label of every grid cell under the labelled samples.
// Name selects the configuration, e.g. 'knn' or 'dt'.
type Classification struct {
	Name  string
	RunID string
}

func (c Classification) Visualization() string {
	return c.Name
}

// Distance draws a distance matrix as an image.
type Distance struct{}

func (d Distance) Visualization() string {
	return "mcc"
}

// Perceptron draws the output surface of a network over its input plane.
type Perceptron struct {
	Mode int
}

func (p Perceptron) Visualization() string {
	return "mlp"
}

// MixtureMode selects what the mixture run shows.
type MixtureMode int

const (
	// KMeans shows the two clusters and their centroids.
	KMeans MixtureMode = iota
	// Density shows the estimated density, then the clusters on top of its contours.
	Density
)

func (m MixtureMode) String() string {
	switch m {
	case KMeans:
		return "km"
	case Density:
		return "em"
	}
	return "unknown"
}

type Mixture struct {
	Mode    MixtureMode
	Reverse bool
}

func (m Mixture) Visualization() string {
	return "gmm"
}

// DescentMode selects what the descent run shows.
type DescentMode int

const (
	// Path shows the optimizer trajectories on the loss surface.
	Path DescentMode = iota + 1
	// Loss shows the loss per epoch.
	Loss
)

func (m DescentMode) String() string {
	switch m {
	case Path:
		return "path"
	case Loss:
		return "loss"
	}
	return "unknown"
}

// Descent compares optimizers, one series file per optimizer.
type Descent struct {
	Name   string
	Mode   DescentMode
	Series []string
}

func (d Descent) Visualization() string {
	return d.Name
}

// Regions paints the regions of a map by the class assigned to each of them.
type Regions struct {
	Name  string
	RunID string
}

func (r Regions) Visualization() string {
	return r.Name
}
