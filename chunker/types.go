// Package chunker: core types, sentinel errors, and node accessors.
package chunker

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for chunker construction and access.
var (
	// ErrBadOrder indicates a non-positive number of nodes per panel.
	ErrBadOrder = errors.New("chunker: nodes per panel must be positive")
	// ErrBadDim indicates an ambient dimension below one.
	ErrBadDim = errors.New("chunker: ambient dimension must be positive")
	// ErrShape indicates node-data matrices with inconsistent shapes.
	ErrShape = errors.New("chunker: node data shape mismatch")
	// ErrPartialPanel indicates a node count not divisible by the panel order.
	ErrPartialPanel = errors.New("chunker: node count not divisible by panel order")
	// ErrNodeIndex indicates a node index outside [0, PointCount).
	ErrNodeIndex = errors.New("chunker: node index out of range")
	// ErrNilChunker indicates a nil *Chunker where one is required.
	ErrNilChunker = errors.New("chunker: nil chunker")
	// ErrNoComponents indicates an empty component list.
	ErrNoComponents = errors.New("chunker: no components")
	// ErrMergeDim indicates components with differing ambient dimensions.
	ErrMergeDim = errors.New("chunker: cannot merge components of different dimension")
	// ErrMergeOrder indicates components with differing panel orders.
	ErrMergeOrder = errors.New("chunker: cannot merge components of different panel order")
)

// Point is the per-node information record handed to kernel evaluations:
// position, first and second parametric derivatives, and unit normal.
// Slices have length Dim of the owning chunker and alias freshly copied
// storage, never the chunker's matrices.
type Point struct {
	R  []float64 // position
	D  []float64 // d r / d t
	D2 []float64 // d² r / d t²
	N  []float64 // outward unit normal
}

// Chunker is a panel discretization of a single boundary curve.
//
// Node data is stored column-per-node (Dim rows × PointCount columns),
// panels occupying consecutive column ranges of width K in parameter
// order. W holds the smooth quadrature weights, already scaled by the
// parametric speed |D|.
type Chunker struct {
	k      int  // nodes per panel
	dim    int  // ambient dimension
	closed bool // panel 0 adjacent to the last panel

	R  *mat.Dense // positions, dim × n
	D  *mat.Dense // first parametric derivatives, dim × n
	D2 *mat.Dense // second parametric derivatives, dim × n
	N  *mat.Dense // unit normals, dim × n
	W  []float64  // quadrature weights, length n
}

// New assembles a Chunker from node data and validates shape consistency:
// all four matrices must be dim × n with n divisible by k, and W must have
// length n.
func New(k int, r, d, d2, n *mat.Dense, w []float64, closed bool) (*Chunker, error) {
	if k <= 0 {
		return nil, ErrBadOrder
	}
	if r == nil || d == nil || d2 == nil || n == nil {
		return nil, fmt.Errorf("chunker: New: nil node data: %w", ErrShape)
	}
	dim, np := r.Dims()
	if dim < 1 {
		return nil, ErrBadDim
	}
	for _, m := range []*mat.Dense{d, d2, n} {
		if mr, mc := m.Dims(); mr != dim || mc != np {
			return nil, fmt.Errorf("chunker: New: have %dx%d, want %dx%d: %w", mr, mc, dim, np, ErrShape)
		}
	}
	if len(w) != np {
		return nil, fmt.Errorf("chunker: New: %d weights for %d nodes: %w", len(w), np, ErrShape)
	}
	if np%k != 0 {
		return nil, fmt.Errorf("chunker: New: %d nodes, order %d: %w", np, k, ErrPartialPanel)
	}
	return &Chunker{k: k, dim: dim, closed: closed, R: r, D: d, D2: d2, N: n, W: w}, nil
}

// Dim returns the ambient dimension.
func (c *Chunker) Dim() int { return c.dim }

// Order returns the number of quadrature nodes per panel.
func (c *Chunker) Order() int { return c.k }

// Closed reports whether the first and last panels are adjacent.
func (c *Chunker) Closed() bool { return c.closed }

// PointCount returns the total number of quadrature nodes.
func (c *Chunker) PointCount() int {
	_, n := c.R.Dims()
	return n
}

// PanelCount returns the number of panels.
func (c *Chunker) PanelCount() int { return c.PointCount() / c.k }

// Node returns the information record for node i, or ErrNodeIndex when i
// is out of range.
func (c *Chunker) Node(i int) (Point, error) {
	if i < 0 || i >= c.PointCount() {
		return Point{}, fmt.Errorf("chunker: Node(%d) of %d: %w", i, c.PointCount(), ErrNodeIndex)
	}
	return c.node(i), nil
}

// node extracts node i without bounds checks; callers guarantee the range.
func (c *Chunker) node(i int) Point {
	return Point{
		R:  mat.Col(nil, i, c.R),
		D:  mat.Col(nil, i, c.D),
		D2: mat.Col(nil, i, c.D2),
		N:  mat.Col(nil, i, c.N),
	}
}

// Nodes materializes all node records in index order. O(n) allocations;
// intended for evaluation loops that visit every node anyway.
func (c *Chunker) Nodes() []Point {
	n := c.PointCount()
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = c.node(i)
	}
	return pts
}
