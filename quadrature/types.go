// Package quadrature: interfaces, options, and sentinel errors.
package quadrature

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
)

// Sentinel errors for quadrature evaluation and correction assembly.
var (
	// ErrNilChunker indicates a nil source or target chunker.
	ErrNilChunker = errors.New("quadrature: nil chunker")
	// ErrNilKernel indicates a nil kernel.
	ErrNilKernel = errors.New("quadrature: nil kernel")
	// ErrBadDims indicates a non-positive operator dimension.
	ErrBadDims = errors.New("quadrature: operator dimensions must be positive")
	// ErrDensityLength indicates a density slice whose length does not
	// match pointCount·cols of the source.
	ErrDensityLength = errors.New("quadrature: density length mismatch")
	// ErrBlockShape indicates a kernel block whose shape differs from the
	// declared operator dimension.
	ErrBlockShape = errors.New("quadrature: kernel block shape mismatch")
	// ErrOffsets indicates row/column offset tables inconsistent with the
	// component list.
	ErrOffsets = errors.New("quadrature: offset tables inconsistent with components")
	// ErrRuleLength indicates a special rule returning a weight slice whose
	// length is not the panel order.
	ErrRuleLength = errors.New("quadrature: special rule weight length mismatch")
)

// DefaultTol is the default accuracy target handed to accelerated
// evaluations and adaptive correction rules.
const DefaultTol = 1e-12

// DefaultMethod names the default specialized near-quadrature method key.
const DefaultMethod = "ggq"

// PrecompKey identifies precomputed auxiliary data for one (method,
// singularity kind) combination, e.g. auxiliary quadrature node tables.
// The maps keyed by it pass through the core untouched.
type PrecompKey struct {
	Method string
	Kind   kernel.SingularityKind
}

// EvalOptions configures one smooth evaluation.
//   - UseFMM: dispatch to the kernel's accelerated path when it has one.
//   - Tol: accuracy target for accelerated evaluation (DefaultTol).
//   - Precomp: opaque precomputed data, passed through unchanged.
type EvalOptions struct {
	UseFMM  bool
	Tol     float64
	Precomp map[PrecompKey]any
}

// DefaultEvalOptions returns EvalOptions with documented defaults.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{UseFMM: false, Tol: DefaultTol}
}

// Evaluator applies the smooth far-field rule of src to density at every
// node of targets and returns the result flattened target-major (dims.Rows
// values per target node). Kernel evaluation failures propagate unchanged.
type Evaluator interface {
	Evaluate(src *chunker.Chunker, kern kernel.Kernel, dims kernel.Dims,
		density []float64, targets *chunker.Chunker, opts EvalOptions) ([]float64, error)
}

// BuildOptions configures correction-matrix assembly.
//   - Method: specialized near-quadrature method key (DefaultMethod).
//   - Kind: default singularity kind for kernels without a Classifier.
//   - Scale: apply L² row/column weighting √w_i · C · 1/√w_j.
//   - Tol: accuracy target for adaptive rules (DefaultTol).
//   - Precomp: opaque precomputed data, passed through unchanged.
type BuildOptions struct {
	Method  string
	Kind    kernel.SingularityKind
	Scale   bool
	Tol     float64
	Precomp map[PrecompKey]any
}

// DefaultBuildOptions returns BuildOptions with documented defaults.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Method: DefaultMethod, Kind: kernel.LogSingular, Tol: DefaultTol}
}

// Builder assembles the sparse corrections-only operator for a component
// list and kernel descriptor. rowOff and colOff are the global block
// offsets (length len(comps)+1); dims holds the per-pair operator
// dimensions. The result maps the flattened density to the flattened
// output and is valid only while geometry and kernels are unchanged.
type Builder interface {
	Build(comps []*chunker.Chunker, desc *kernel.Descriptor, dims [][]kernel.Dims,
		rowOff, colOff []int, opts BuildOptions) (mat.Matrix, error)
}
