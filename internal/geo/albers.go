package geo

import (
	"math"

	vizmath "github.com/drakos74/mlviz/internal/math"
)

// Radius of the sphere the projection is computed on, in metres.
const Radius = 6378137.0

// Bounds is a longitude / latitude rectangle in degrees.
type Bounds struct {
	West  float64
	East  float64
	South float64
	North float64
}

// DMS converts degrees, minutes and seconds to decimal degrees.
func DMS(d, m, s float64) float64 {
	return d + m/60 + s/3600
}

// Centre returns the middle of the rectangle.
func (b Bounds) Centre() (lon, lat float64) {
	return (b.West + b.East) / 2, (b.North + b.South) / 2
}

// Albers is the spherical Albers equal-area conic projection.
type Albers struct {
	lon0 float64
	n    float64
	c    float64
	rho0 float64
}

// NewAlbers creates the projection around the given origin with two standard parallels, all in degrees.
func NewAlbers(lon0, lat0, lat1, lat2 float64) Albers {
	phi0, phi1, phi2 := rad(lat0), rad(lat1), rad(lat2)
	n := (math.Sin(phi1) + math.Sin(phi2)) / 2
	c := math.Cos(phi1)*math.Cos(phi1) + 2*n*math.Sin(phi1)
	return Albers{
		lon0: rad(lon0),
		n:    n,
		c:    c,
		rho0: Radius * math.Sqrt(c-2*n*math.Sin(phi0)) / n,
	}
}

// Centred creates the projection with its origin at the centre of the bounds
// and standard parallels at 20 and 50 degrees.
func Centred(b Bounds) Albers {
	lon, lat := b.Centre()
	return NewAlbers(lon, lat, 20, 50)
}

// Project maps a longitude / latitude pair in degrees to plane coordinates in metres.
func (a Albers) Project(lon, lat float64) vizmath.Point {
	rho := Radius * math.Sqrt(a.c-2*a.n*math.Sin(rad(lat))) / a.n
	theta := a.n * (rad(lon) - a.lon0)
	return vizmath.Point{
		X: rho * math.Sin(theta),
		Y: a.rho0 - rho*math.Cos(theta),
	}
}

// ProjectRing projects every vertex of the ring.
func (a Albers) ProjectRing(ring []vizmath.Point) []vizmath.Point {
	pp := make([]vizmath.Point, len(ring))
	for i, p := range ring {
		pp[i] = a.Project(p.X, p.Y)
	}
	return pp
}

// Extent returns the projected bounding box of the bounds,
// sampling the edges since parallels map to arcs.
func (a Albers) Extent(b Bounds) (xmin, xmax, ymin, ymax float64) {
	const samples = 32
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		lon := b.West + t*(b.East-b.West)
		lat := b.South + t*(b.North-b.South)
		for _, p := range []vizmath.Point{
			a.Project(lon, b.South),
			a.Project(lon, b.North),
			a.Project(b.West, lat),
			a.Project(b.East, lat),
		} {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
