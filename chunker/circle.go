package chunker

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for the stock circle generator.
var (
	// ErrBadRadius indicates a non-positive radius.
	ErrBadRadius = errors.New("chunker: radius must be positive")
	// ErrBadPanels indicates a non-positive panel count.
	ErrBadPanels = errors.New("chunker: panel count must be positive")
)

// Circle discretizes the circle of the given radius centered at the origin
// into panels equal arcs, each carrying k Gauss–Legendre nodes in the
// angular parameter. Weights include the parametric speed, so W sums to
// the circumference. The resulting chunker is closed.
//
// Circle is the stock test and example geometry; production geometries
// come from the caller's own panel generator.
func Circle(radius float64, panels, k int) (*Chunker, error) {
	if radius <= 0 {
		return nil, ErrBadRadius
	}
	if panels < 1 {
		return nil, ErrBadPanels
	}
	if k < 1 {
		return nil, ErrBadOrder
	}

	const dim = 2
	np := panels * k
	r := mat.NewDense(dim, np, nil)
	d := mat.NewDense(dim, np, nil)
	d2 := mat.NewDense(dim, np, nil)
	n := mat.NewDense(dim, np, nil)
	w := make([]float64, np)

	theta := make([]float64, k)
	gw := make([]float64, k)
	var rule quad.Legendre
	h := 2 * math.Pi / float64(panels)
	for p := 0; p < panels; p++ {
		rule.FixedLocations(theta, gw, float64(p)*h, float64(p+1)*h)
		for q := 0; q < k; q++ {
			i := p*k + q
			sin, cos := math.Sincos(theta[q])
			r.Set(0, i, radius*cos)
			r.Set(1, i, radius*sin)
			d.Set(0, i, -radius*sin)
			d.Set(1, i, radius*cos)
			d2.Set(0, i, -radius*cos)
			d2.Set(1, i, -radius*sin)
			n.Set(0, i, cos)
			n.Set(1, i, sin)
			w[i] = radius * gw[q] // |d r/dθ| = radius
		}
	}

	return New(k, r, d, d2, n, w, true)
}
