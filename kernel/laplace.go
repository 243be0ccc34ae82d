package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
)

// ErrDim reports a node record whose ambient dimension a kernel cannot
// handle.
var ErrDim = errors.New("kernel: unsupported ambient dimension")

// ErrDegenerateNode reports a node with zero parametric speed, where
// curvature (and hence the double-layer diagonal limit) is undefined.
var ErrDegenerateNode = errors.New("kernel: degenerate node")

const invTwoPi = 1 / (2 * math.Pi)

// LaplaceSLP is the 2-D Laplace single-layer potential kernel
//
//	G(x, y) = -(1/2π) log|x - y|.
//
// The diagonal (coincident source and target) evaluates to zero: the
// logarithmic singularity there belongs entirely to the near-field
// correction matrix, so the smooth rule punctures it.
type LaplaceSLP struct{}

// Evaluate returns the 1×1 block G(tgt, src).
func (LaplaceSLP) Evaluate(src, tgt chunker.Point) (*mat.Dense, error) {
	if len(src.R) != 2 || len(tgt.R) != 2 {
		return nil, fmt.Errorf("laplace slp: %w", ErrDim)
	}
	dx, dy := tgt.R[0]-src.R[0], tgt.R[1]-src.R[1]
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		return mat.NewDense(1, 1, []float64{0}), nil
	}
	return mat.NewDense(1, 1, []float64{-0.5 * invTwoPi * math.Log(r2)}), nil
}

// Singularity classifies the single-layer kernel as log-singular.
func (LaplaceSLP) Singularity() SingularityKind { return LogSingular }

// LaplaceDLP is the 2-D Laplace double-layer potential kernel
//
//	K(x, y) = (1/2π) (n_y · (x - y)) / |x - y|².
//
// On a smooth curve the diagonal limit is finite, -κ(x)/(4π) with κ the
// signed curvature, which Evaluate computes from the node's first and
// second parametric derivatives when source and target coincide.
type LaplaceDLP struct{}

// Evaluate returns the 1×1 block K(tgt, src).
func (LaplaceDLP) Evaluate(src, tgt chunker.Point) (*mat.Dense, error) {
	if len(src.R) != 2 || len(tgt.R) != 2 {
		return nil, fmt.Errorf("laplace dlp: %w", ErrDim)
	}
	dx, dy := tgt.R[0]-src.R[0], tgt.R[1]-src.R[1]
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		speed := math.Hypot(src.D[0], src.D[1])
		if speed == 0 {
			return nil, fmt.Errorf("laplace dlp: zero parametric speed: %w", ErrDegenerateNode)
		}
		kappa := (src.D[0]*src.D2[1] - src.D[1]*src.D2[0]) / (speed * speed * speed)
		return mat.NewDense(1, 1, []float64{-0.5 * invTwoPi * kappa}), nil
	}
	return mat.NewDense(1, 1, []float64{invTwoPi * (src.N[0]*dx + src.N[1]*dy) / r2}), nil
}

// Singularity classifies the double-layer kernel as log-singular; its
// smooth-diagonal limit still needs corrected panel-neighbor quadrature.
func (LaplaceDLP) Singularity() SingularityKind { return LogSingular }
