package operator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
	"github.com/katalvlaran/lvlbie/quadrature"
)

// smoothStrategy is the smooth-quadrature dispatch seam. Apply selects one
// strategy up front from the descriptor variant; the two modes never
// interleave.
type smoothStrategy interface {
	apply(comps []*chunker.Chunker, desc *kernel.Descriptor, dims [][]kernel.Dims,
		lay Layout, density []float64, ev quadrature.Evaluator, opts quadrature.EvalOptions) ([]float64, error)
}

// mergedSmooth handles the homogeneous case: all components merge into one
// order-preserving target/source set and the single kernel is evaluated in
// one pass over the full density, which also lets a kernel-level FMM see
// the whole system at once.
type mergedSmooth struct{}

func (mergedSmooth) apply(comps []*chunker.Chunker, desc *kernel.Descriptor, dims [][]kernel.Dims,
	lay Layout, density []float64, ev quadrature.Evaluator, opts quadrature.EvalOptions) ([]float64, error) {
	merged, err := chunker.Merge(comps)
	if err != nil {
		return nil, err
	}
	return ev.Evaluate(merged, desc.For(0, 0), dims[0][0], density, merged, opts)
}

// pairwiseSmooth handles the heterogeneous case: one evaluation per
// ordered (target, source) component pair, reading the source's density
// slice through the column offsets and accumulating into the target's
// output slice through the row offsets. Accumulation runs in fixed
// component-index order, so results are reproducible.
type pairwiseSmooth struct{}

func (pairwiseSmooth) apply(comps []*chunker.Chunker, desc *kernel.Descriptor, dims [][]kernel.Dims,
	lay Layout, density []float64, ev quadrature.Evaluator, opts quadrature.EvalOptions) ([]float64, error) {
	out := make([]float64, lay.Rows())
	for i := range comps {
		tgtSlice := out[lay.RowOffsets[i]:lay.RowOffsets[i+1]]
		for j := range comps {
			part, err := ev.Evaluate(comps[j], desc.For(i, j), dims[i][j],
				density[lay.ColOffsets[j]:lay.ColOffsets[j+1]], comps[i], opts)
			if err != nil {
				return nil, err
			}
			floats.Add(tgtSlice, part)
		}
	}
	return out, nil
}
