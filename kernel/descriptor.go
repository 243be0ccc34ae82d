package kernel

import "fmt"

// Descriptor is the tagged kernel variant resolved once at operator entry:
// either a single kernel applied uniformly between every pair of geometric
// components, or a square matrix of kernels indexed by (target component,
// source component). Downstream code only ever calls For.
type Descriptor struct {
	single Kernel
	pairs  [][]Kernel
}

// NewSingle wraps one kernel applying uniformly to all component pairs.
func NewSingle(k Kernel) (*Descriptor, error) {
	if k == nil {
		return nil, fmt.Errorf("kernel: NewSingle: %w", ErrNilKernel)
	}
	return &Descriptor{single: k}, nil
}

// NewPerPair wraps a square matrix of kernels, pairs[target][source].
// Every entry must be non-nil and every row must have the same length as
// the number of rows.
func NewPerPair(pairs [][]Kernel) (*Descriptor, error) {
	n := len(pairs)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i, row := range pairs {
		if len(row) != n {
			return nil, fmt.Errorf("kernel: NewPerPair: row %d has %d entries, want %d: %w", i, len(row), n, ErrRaggedMatrix)
		}
		for j, k := range row {
			if k == nil {
				return nil, fmt.Errorf("kernel: NewPerPair: entry (%d,%d): %w", i, j, ErrNilKernel)
			}
		}
	}
	return &Descriptor{pairs: pairs}, nil
}

// Homogeneous reports whether the descriptor carries a single uniform
// kernel.
func (d *Descriptor) Homogeneous() bool { return d.single != nil }

// Size returns the number of components the per-pair matrix is indexed by,
// or 0 for a homogeneous descriptor (which fits any component count).
func (d *Descriptor) Size() int { return len(d.pairs) }

// For returns the kernel acting from source component j onto target
// component i. For homogeneous descriptors any indices return the single
// kernel; for per-pair descriptors out-of-range indices return nil.
func (d *Descriptor) For(i, j int) Kernel {
	if d.single != nil {
		return d.single
	}
	if i < 0 || j < 0 || i >= len(d.pairs) || j >= len(d.pairs) {
		return nil
	}
	return d.pairs[i][j]
}
