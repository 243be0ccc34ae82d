package operator

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// applyCorrection computes partial = corr · density. Sparse matrices take
// the DoNonZero fast path; anything else falls back to a dense traversal.
// The correction never mutates its inputs.
func applyCorrection(corr mat.Matrix, density []float64, rows int) ([]float64, error) {
	r, c := corr.Dims()
	if r != rows || c != len(density) {
		return nil, fmt.Errorf("operator: correction is %dx%d, layout wants %dx%d: %w",
			r, c, rows, len(density), ErrCorrectionShape)
	}
	out := make([]float64, rows)
	if s, ok := corr.(sparse.Sparser); ok {
		s.DoNonZero(func(i, j int, v float64) {
			out[i] += v * density[j]
		})
		return out, nil
	}
	for i := 0; i < r; i++ {
		acc := 0.0
		for j := 0; j < c; j++ {
			acc += corr.At(i, j) * density[j]
		}
		out[i] = acc
	}
	return out, nil
}
