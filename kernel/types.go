// Package kernel: interfaces, singularity kinds, and sentinel errors.
package kernel

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
)

// Sentinel errors for kernel descriptors.
var (
	// ErrNilKernel indicates a nil kernel where one is required.
	ErrNilKernel = errors.New("kernel: nil kernel")
	// ErrEmptyMatrix indicates an empty per-pair kernel matrix.
	ErrEmptyMatrix = errors.New("kernel: empty kernel matrix")
	// ErrRaggedMatrix indicates a non-square per-pair kernel matrix.
	ErrRaggedMatrix = errors.New("kernel: kernel matrix must be square")
	// ErrPairIndex indicates a pair lookup outside the descriptor's range.
	ErrPairIndex = errors.New("kernel: pair index out of range")
)

// SingularityKind classifies the diagonal behavior of a kernel. The kind
// selects which specialized near-field rule a correction builder installs;
// the smooth far-field rule is kind-agnostic.
type SingularityKind int

const (
	// Smooth marks kernels with no singularity on the diagonal.
	Smooth SingularityKind = iota
	// LogSingular marks kernels with a logarithmic diagonal singularity.
	LogSingular
	// PrincipalValue marks kernels requiring a principal-value interpretation.
	PrincipalValue
	// Hypersingular marks kernels requiring a finite-part interpretation.
	Hypersingular
)

// String returns the short lower-case name of the kind.
func (s SingularityKind) String() string {
	switch s {
	case Smooth:
		return "smooth"
	case LogSingular:
		return "log"
	case PrincipalValue:
		return "pv"
	case Hypersingular:
		return "hs"
	default:
		return "unknown"
	}
}

// Dims is the operator dimension of a kernel: the (rows × cols) shape of
// the block it returns per source/target node pair.
type Dims struct {
	Rows, Cols int
}

// Kernel evaluates the integral kernel on one source/target node pair and
// returns the resulting block. Implementations must return blocks of a
// fixed shape for fixed source/target components; the operator core probes
// that shape once per component pair.
type Kernel interface {
	Evaluate(src, tgt chunker.Point) (*mat.Dense, error)
}

// Func adapts a plain function to the Kernel interface.
type Func func(src, tgt chunker.Point) (*mat.Dense, error)

// Evaluate calls the function itself.
func (f Func) Evaluate(src, tgt chunker.Point) (*mat.Dense, error) { return f(src, tgt) }

// FMM marks kernels that carry an accelerated whole-chunker evaluation.
// ApplyFMM computes the smooth far-field contribution of the full source
// chunker at every target node, to the requested tolerance, and returns it
// flattened target-major.
type FMM interface {
	Kernel
	ApplyFMM(tol float64, src *chunker.Chunker, density []float64, targets *chunker.Chunker) ([]float64, error)
}

// HasFMM reports whether k exposes the accelerated evaluation path.
func HasFMM(k Kernel) bool {
	_, ok := k.(FMM)
	return ok
}

// Classifier marks kernels that know their own singularity kind.
type Classifier interface {
	Singularity() SingularityKind
}

// KindOf returns k's own singularity kind when it is a Classifier, and
// fallback otherwise.
func KindOf(k Kernel, fallback SingularityKind) SingularityKind {
	if c, ok := k.(Classifier); ok {
		return c.Singularity()
	}
	return fallback
}
