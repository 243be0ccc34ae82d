package operator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
	"github.com/katalvlaran/lvlbie/quadrature"
)

// Apply evaluates u = A·σ matrix-free: the sum of the sparse near-field
// correction C·σ and the smooth far-field quadrature pass S·σ.
//
// src supplies the ordered component list (a lone *chunker.Chunker, a
// chunker.List, or a *chunker.Graph). desc selects the kernel variant;
// a per-pair descriptor must match the component count. density is the
// flattened input, partitioned per source component by the column layout;
// the returned vector is partitioned per target component by the row
// layout. corr may be nil, in which case the configured Builder assembles
// a corrections-only matrix for this call — callers applying the same
// operator repeatedly should build once and pass it in, since assembly
// dominates the cost. opts may be nil for defaults.
//
// Failures from the evaluator or builder propagate unchanged; advisories
// (such as a missing acceleration path) go through Options.OnAdvisory and
// never affect the result.
func Apply(src chunker.Source, desc *kernel.Descriptor, density []float64,
	corr mat.Matrix, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Method == "" {
			o.Method = quadrature.DefaultMethod
		}
		if o.Tol < 0 {
			return nil, fmt.Errorf("operator: Apply: tol %g: %w", o.Tol, ErrBadTol)
		}
		if o.Tol == 0 {
			o.Tol = quadrature.DefaultTol
		}
		if o.Evaluator == nil {
			o.Evaluator = quadrature.Direct{}
		}
		if o.Builder == nil {
			o.Builder = &quadrature.NearBuilder{}
		}
	}

	// Input-type validation before any work.
	if src == nil {
		return nil, ErrNilSource
	}
	comps := src.Components()
	if len(comps) == 0 {
		return nil, ErrNoComponents
	}
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if !desc.Homogeneous() && desc.Size() != len(comps) {
		return nil, fmt.Errorf("operator: Apply: %d kernels for %d components: %w",
			desc.Size(), len(comps), ErrDescriptorSize)
	}

	dims, allAccel, err := Probe(comps, desc)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(comps))
	for i, c := range comps {
		counts[i] = c.PointCount()
	}
	lay, err := BuildLayout(dims, counts)
	if err != nil {
		return nil, err
	}
	if len(density) != lay.Cols() {
		return nil, fmt.Errorf("operator: Apply: density length %d, layout wants %d: %w",
			len(density), lay.Cols(), ErrDensityLength)
	}

	useFMM := false
	switch o.Accel {
	case AccelOn:
		useFMM = true
	case AccelAuto:
		useFMM = allAccel
	}
	if !allAccel && o.Accel != AccelOff {
		o.emit(Advisory{
			Code: AdvisoryNoAcceleration,
			Message: "accelerated (FMM) evaluation unavailable for one or more kernel pairs; " +
				"falling back to direct summation — dense or fast-direct methods may be preferable",
		})
	}

	if corr == nil {
		corr, err = o.Builder.Build(comps, desc, dims, lay.RowOffsets, lay.ColOffsets, quadrature.BuildOptions{
			Method:  o.Method,
			Kind:    o.Kind,
			Scale:   o.Scale,
			Tol:     o.Tol,
			Precomp: o.Precomp,
		})
		if err != nil {
			return nil, err
		}
	}
	out, err := applyCorrection(corr, density, lay.Rows())
	if err != nil {
		return nil, err
	}

	var strat smoothStrategy = pairwiseSmooth{}
	if desc.Homogeneous() {
		strat = mergedSmooth{}
	}
	smooth, err := strat.apply(comps, desc, dims, lay, density, o.Evaluator, quadrature.EvalOptions{
		UseFMM:  useFMM,
		Tol:     o.Tol,
		Precomp: o.Precomp,
	})
	if err != nil {
		return nil, err
	}
	floats.Add(out, smooth)
	return out, nil
}
