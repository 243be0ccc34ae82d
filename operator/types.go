// Package operator: options, advisories, layout type, sentinel errors.
package operator

import (
	"errors"
	"log"

	"github.com/katalvlaran/lvlbie/kernel"
	"github.com/katalvlaran/lvlbie/quadrature"
)

// Sentinel errors, in detection order: input-type errors first, then shape
// mismatches. Downstream evaluator/builder failures are returned as-is and
// carry no operator sentinel.
var (
	// ErrNilSource indicates a nil geometry source.
	ErrNilSource = errors.New("operator: geometry source is nil")
	// ErrNoComponents indicates a geometry source with zero components.
	ErrNoComponents = errors.New("operator: geometry has no components")
	// ErrNilComponent indicates a nil chunker inside the component list.
	ErrNilComponent = errors.New("operator: nil component")
	// ErrNilDescriptor indicates a nil kernel descriptor.
	ErrNilDescriptor = errors.New("operator: kernel descriptor is nil")
	// ErrDescriptorSize indicates a per-pair kernel matrix whose size does
	// not match the component count.
	ErrDescriptorSize = errors.New("operator: kernel matrix size does not match component count")
	// ErrEmptyBlock indicates a kernel that returned a nil or zero-sized
	// block during dimension probing.
	ErrEmptyBlock = errors.New("operator: kernel returned an empty block")
	// ErrDimsInconsistent indicates kernel pairs that disagree on the row
	// width of a shared target component or the column width of a shared
	// source component.
	ErrDimsInconsistent = errors.New("operator: operator dimensions inconsistent across kernel pairs")
	// ErrDensityLength indicates a density vector whose length does not
	// equal the final column offset.
	ErrDensityLength = errors.New("operator: density length does not match column layout")
	// ErrCorrectionShape indicates a correction matrix whose dimensions do
	// not match the block layout.
	ErrCorrectionShape = errors.New("operator: correction matrix shape does not match layout")
	// ErrBadTol indicates a negative tolerance.
	ErrBadTol = errors.New("operator: tolerance must be non-negative")
)

// AccelPolicy selects how the accelerated (FMM) evaluation path is used.
type AccelPolicy int

const (
	// AccelAuto uses acceleration when every kernel pair in use has it.
	AccelAuto AccelPolicy = iota
	// AccelOn requests acceleration unconditionally; kernels without an
	// accelerated path still fall back to direct summation.
	AccelOn
	// AccelOff never uses acceleration.
	AccelOff
)

// AdvisoryCode identifies a non-fatal advisory category.
type AdvisoryCode int

// AdvisoryNoAcceleration reports that at least one kernel pair in use has
// no accelerated evaluation path, so the apply runs (at least partially)
// by direct summation; dense-matrix formation or a fast direct solver may
// be preferable at scale.
const AdvisoryNoAcceleration AdvisoryCode = iota

// Advisory is a non-fatal warning surfaced alongside a successful apply.
// Advisories never change the returned result.
type Advisory struct {
	Code    AdvisoryCode
	Message string
}

// Options configures Apply. DefaultOptions returns the documented
// defaults; Apply also fills Method, Tol, Evaluator, and Builder when a
// caller-constructed Options leaves them zero.
type Options struct {
	// Method keys the specialized near-quadrature method handed to the
	// correction builder. Default: quadrature.DefaultMethod.
	Method string
	// Kind is the default singularity kind for kernels without their own
	// classification. Default: kernel.LogSingular.
	Kind kernel.SingularityKind
	// Scale enables L² row/column weighting of built corrections.
	Scale bool
	// Accel selects the acceleration policy. Default: AccelAuto.
	Accel AccelPolicy
	// Tol is the accuracy target for accelerated evaluation and adaptive
	// corrections. Zero means quadrature.DefaultTol; negative is an error.
	Tol float64
	// Precomp carries precomputed per-(method, kind) auxiliary data and is
	// passed through to the evaluator and builder unchanged.
	Precomp map[quadrature.PrecompKey]any
	// Evaluator performs smooth far-field evaluation.
	// Default: quadrature.Direct{}.
	Evaluator quadrature.Evaluator
	// Builder assembles the correction matrix when Apply receives none.
	// Default: &quadrature.NearBuilder{}.
	Builder quadrature.Builder
	// OnAdvisory receives non-fatal advisories; nil logs them through the
	// standard library logger.
	OnAdvisory func(Advisory)
}

// DefaultOptions returns Options with every documented default filled in.
func DefaultOptions() Options {
	return Options{
		Method:    quadrature.DefaultMethod,
		Kind:      kernel.LogSingular,
		Accel:     AccelAuto,
		Tol:       quadrature.DefaultTol,
		Evaluator: quadrature.Direct{},
		Builder:   &quadrature.NearBuilder{},
	}
}

// emit routes an advisory to the configured handler.
func (o *Options) emit(a Advisory) {
	if o.OnAdvisory != nil {
		o.OnAdvisory(a)
		return
	}
	log.Printf("operator: advisory: %s", a.Message)
}

// Layout locates each component's contribution in the flattened output
// (row offsets, one per target component) and input (column offsets, one
// per source component). Both tables have length componentCount+1, start
// at 0, are monotonically non-decreasing, and end at the total output and
// input lengths respectively.
type Layout struct {
	RowOffsets []int
	ColOffsets []int
}

// Rows returns the total output-vector length.
func (l Layout) Rows() int { return l.RowOffsets[len(l.RowOffsets)-1] }

// Cols returns the total input-vector length.
func (l Layout) Cols() int { return l.ColOffsets[len(l.ColOffsets)-1] }
