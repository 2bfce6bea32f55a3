package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Poly is a polynomial given by its coefficients in ascending power order
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
type Poly []float64

// NewPoly creates a polynomial from the given coefficients.
func NewPoly(w []float64) (Poly, error) {
	if len(w) == 0 {
		return nil, EmptyPolynomialErr
	}
	p := make(Poly, len(w))
	copy(p, w)
	return p, nil
}

// Degree returns the highest power of the polynomial.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at x.
// There is no overflow handling, large x on high degrees is up to the caller to bound.
func (p Poly) Eval(x float64) float64 {
	y := 0.0
	for i, xi := 0, 1.; i < len(p); i, xi = i+1, xi*x {
		y += p[i] * xi
	}
	return y
}

// Map evaluates the polynomial for each of the given x values.
func (p Poly) Map(xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = p.Eval(x)
	}
	return yy
}

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) (Poly, error) {

	if degree < 0 {
		return nil, fmt.Errorf("negative degree %d: %w", degree, ArgumentErr)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("fit on %d x and %d y values: %w", len(x), len(y), ShapeMismatchErr)
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("fit of degree %d on %d samples: %w", degree, len(x), ArgumentErr)
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(c, false, b)

	v := c.ColView(0)
	cc := make(Poly, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, err
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
