package quadrature

import (
	"fmt"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
)

// Direct is the reference smooth evaluator: plain double summation of the
// source chunker's quadrature rule at every target node,
//
//	u[i·rows+p] = Σ_j Σ_q B(j→i)[p,q] · w_j · σ[j·cols+q],
//
// with a fixed target-major, source-minor loop order so results are
// bitwise reproducible across runs. When opts.UseFMM is set and the kernel
// implements kernel.FMM, the whole evaluation is delegated to the kernel's
// accelerated routine instead.
type Direct struct{}

// Evaluate implements Evaluator.
func (Direct) Evaluate(src *chunker.Chunker, kern kernel.Kernel, dims kernel.Dims,
	density []float64, targets *chunker.Chunker, opts EvalOptions) ([]float64, error) {
	if src == nil || targets == nil {
		return nil, fmt.Errorf("quadrature: Direct.Evaluate: %w", ErrNilChunker)
	}
	if kern == nil {
		return nil, fmt.Errorf("quadrature: Direct.Evaluate: %w", ErrNilKernel)
	}
	if dims.Rows < 1 || dims.Cols < 1 {
		return nil, fmt.Errorf("quadrature: Direct.Evaluate: %dx%d: %w", dims.Rows, dims.Cols, ErrBadDims)
	}
	ns := src.PointCount()
	if len(density) != ns*dims.Cols {
		return nil, fmt.Errorf("quadrature: Direct.Evaluate: have %d, want %d: %w",
			len(density), ns*dims.Cols, ErrDensityLength)
	}

	if opts.UseFMM {
		if f, ok := kern.(kernel.FMM); ok {
			tol := opts.Tol
			if tol <= 0 {
				tol = DefaultTol
			}
			return f.ApplyFMM(tol, src, density, targets)
		}
		// No accelerated path on this kernel; fall back to summation.
	}

	srcPts := src.Nodes()
	tgtPts := targets.Nodes()
	out := make([]float64, targets.PointCount()*dims.Rows)
	for i, tgt := range tgtPts {
		for j, s := range srcPts {
			blk, err := kern.Evaluate(s, tgt)
			if err != nil {
				return nil, err
			}
			if br, bc := blk.Dims(); br != dims.Rows || bc != dims.Cols {
				return nil, fmt.Errorf("quadrature: Direct.Evaluate: block %dx%d, want %dx%d: %w",
					br, bc, dims.Rows, dims.Cols, ErrBlockShape)
			}
			w := src.W[j]
			for p := 0; p < dims.Rows; p++ {
				acc := 0.0
				for q := 0; q < dims.Cols; q++ {
					acc += blk.At(p, q) * density[j*dims.Cols+q]
				}
				out[i*dims.Rows+p] += w * acc
			}
		}
	}
	return out, nil
}
