package chunker

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Merge concatenates components into a single chunker, preserving component
// order and node order within each component. All inputs must share the
// same ambient dimension and panel order. The merged chunker is marked
// open: adjacency across the original component boundaries is not implied.
//
// Merge copies node data; the inputs are not retained or mutated.
func Merge(comps []*Chunker) (*Chunker, error) {
	if len(comps) == 0 {
		return nil, ErrNoComponents
	}
	for i, c := range comps {
		if c == nil {
			return nil, fmt.Errorf("chunker: Merge: component %d: %w", i, ErrNilChunker)
		}
	}
	dim, k := comps[0].dim, comps[0].k
	total := 0
	for i, c := range comps {
		if c.dim != dim {
			return nil, fmt.Errorf("chunker: Merge: component %d has dim %d, want %d: %w", i, c.dim, dim, ErrMergeDim)
		}
		if c.k != k {
			return nil, fmt.Errorf("chunker: Merge: component %d has order %d, want %d: %w", i, c.k, k, ErrMergeOrder)
		}
		total += c.PointCount()
	}

	r := mat.NewDense(dim, total, nil)
	d := mat.NewDense(dim, total, nil)
	d2 := mat.NewDense(dim, total, nil)
	n := mat.NewDense(dim, total, nil)
	w := make([]float64, total)

	off := 0
	for _, c := range comps {
		np := c.PointCount()
		r.Slice(0, dim, off, off+np).(*mat.Dense).Copy(c.R)
		d.Slice(0, dim, off, off+np).(*mat.Dense).Copy(c.D)
		d2.Slice(0, dim, off, off+np).(*mat.Dense).Copy(c.D2)
		n.Slice(0, dim, off, off+np).(*mat.Dense).Copy(c.N)
		copy(w[off:off+np], c.W)
		off += np
	}

	return New(k, r, d, d2, n, w, false)
}
