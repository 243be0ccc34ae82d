package operator

import (
	"fmt"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
)

// Probe discovers the operator dimension of every ordered component pair
// by evaluating the pair's kernel once on a sample node pair, and reports
// whether every kernel pair in use exposes an accelerated (FMM) path.
//
// The sample target is component i's second node and the sample source is
// component j's first node; the off-by-one on the target side sidesteps
// possibly-degenerate data at a curve's first node and is kept as a fixed
// contract. A component with a single node falls back to that node.
//
// Probing is read-only and idempotent: repeated calls on unchanged inputs
// return identical tables.
func Probe(comps []*chunker.Chunker, desc *kernel.Descriptor) ([][]kernel.Dims, bool, error) {
	if desc == nil {
		return nil, false, ErrNilDescriptor
	}
	nc := len(comps)
	if nc == 0 {
		return nil, false, ErrNoComponents
	}
	for i, c := range comps {
		if c == nil || c.PointCount() == 0 {
			return nil, false, fmt.Errorf("operator: Probe: component %d: %w", i, ErrNilComponent)
		}
	}

	dims := make([][]kernel.Dims, nc)
	allAccel := true
	for i := 0; i < nc; i++ {
		dims[i] = make([]kernel.Dims, nc)
		ti := 1
		if comps[i].PointCount() < 2 {
			ti = 0
		}
		tgt, err := comps[i].Node(ti)
		if err != nil {
			return nil, false, err
		}
		for j := 0; j < nc; j++ {
			kern := desc.For(i, j)
			if kern == nil {
				return nil, false, fmt.Errorf("operator: Probe: pair (%d,%d): %w", i, j, ErrDescriptorSize)
			}
			src, err := comps[j].Node(0)
			if err != nil {
				return nil, false, err
			}
			blk, err := kern.Evaluate(src, tgt)
			if err != nil {
				return nil, false, err
			}
			if blk == nil {
				return nil, false, fmt.Errorf("operator: Probe: pair (%d,%d): %w", i, j, ErrEmptyBlock)
			}
			r, c := blk.Dims()
			if r < 1 || c < 1 {
				return nil, false, fmt.Errorf("operator: Probe: pair (%d,%d): %dx%d: %w", i, j, r, c, ErrEmptyBlock)
			}
			dims[i][j] = kernel.Dims{Rows: r, Cols: c}
			if !kernel.HasFMM(kern) {
				allAccel = false
			}
		}
	}
	return dims, allAccel, nil
}
