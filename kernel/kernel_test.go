package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
)

// constKernel returns the same 1×1 block for every node pair.
type constKernel struct{ c float64 }

func (k constKernel) Evaluate(src, tgt chunker.Point) (*mat.Dense, error) {
	return mat.NewDense(1, 1, []float64{k.c}), nil
}

// fmmKernel is a constKernel that also advertises an accelerated path.
type fmmKernel struct{ constKernel }

func (k fmmKernel) ApplyFMM(tol float64, src *chunker.Chunker, density []float64, targets *chunker.Chunker) ([]float64, error) {
	return make([]float64, targets.PointCount()), nil
}

func point(x, y float64) chunker.Point {
	return chunker.Point{
		R:  []float64{x, y},
		D:  []float64{1, 0},
		D2: []float64{0, 0},
		N:  []float64{0, 1},
	}
}

func TestDescriptor_Single(t *testing.T) {
	_, err := kernel.NewSingle(nil)
	assert.ErrorIs(t, err, kernel.ErrNilKernel)

	d, err := kernel.NewSingle(constKernel{c: 2})
	require.NoError(t, err)
	assert.True(t, d.Homogeneous())
	assert.Equal(t, 0, d.Size())

	// Any pair resolves to the single kernel.
	assert.Equal(t, constKernel{c: 2}, d.For(0, 0))
	assert.Equal(t, constKernel{c: 2}, d.For(7, 3))
}

func TestDescriptor_PerPair(t *testing.T) {
	_, err := kernel.NewPerPair(nil)
	assert.ErrorIs(t, err, kernel.ErrEmptyMatrix)

	_, err = kernel.NewPerPair([][]kernel.Kernel{
		{constKernel{}, constKernel{}},
		{constKernel{}},
	})
	assert.ErrorIs(t, err, kernel.ErrRaggedMatrix)

	_, err = kernel.NewPerPair([][]kernel.Kernel{
		{constKernel{}, nil},
		{constKernel{}, constKernel{}},
	})
	assert.ErrorIs(t, err, kernel.ErrNilKernel)

	d, err := kernel.NewPerPair([][]kernel.Kernel{
		{constKernel{c: 1}, constKernel{c: 2}},
		{constKernel{c: 3}, constKernel{c: 4}},
	})
	require.NoError(t, err)
	assert.False(t, d.Homogeneous())
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, constKernel{c: 3}, d.For(1, 0), "For(target, source) indexing")
	assert.Nil(t, d.For(2, 0), "out-of-range lookup yields nil")
}

func TestFunc_Adapter(t *testing.T) {
	f := kernel.Func(func(src, tgt chunker.Point) (*mat.Dense, error) {
		return mat.NewDense(1, 1, []float64{tgt.R[0] - src.R[0]}), nil
	})
	blk, err := f.Evaluate(point(1, 0), point(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 3.0, blk.At(0, 0))
}

func TestCapabilities(t *testing.T) {
	assert.False(t, kernel.HasFMM(constKernel{}))
	assert.True(t, kernel.HasFMM(fmmKernel{}))

	assert.Equal(t, kernel.PrincipalValue, kernel.KindOf(constKernel{}, kernel.PrincipalValue),
		"unclassified kernel takes the fallback kind")
	assert.Equal(t, kernel.LogSingular, kernel.KindOf(kernel.LaplaceSLP{}, kernel.Smooth))
}

func TestSingularityKind_String(t *testing.T) {
	assert.Equal(t, "smooth", kernel.Smooth.String())
	assert.Equal(t, "log", kernel.LogSingular.String())
	assert.Equal(t, "pv", kernel.PrincipalValue.String())
	assert.Equal(t, "hs", kernel.Hypersingular.String())
}

func TestLaplaceSLP(t *testing.T) {
	var slp kernel.LaplaceSLP

	// Distance 1 zeroes the logarithm.
	blk, err := slp.Evaluate(point(0, 0), point(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, blk.At(0, 0), 1e-15)

	// Depends only on |x-y|: swapping the arguments changes nothing.
	a, err := slp.Evaluate(point(0, 0), point(2, 1))
	require.NoError(t, err)
	b, err := slp.Evaluate(point(2, 1), point(0, 0))
	require.NoError(t, err)
	assert.Equal(t, a.At(0, 0), b.At(0, 0))

	// Coincident points puncture to zero.
	c, err := slp.Evaluate(point(3, 3), point(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.At(0, 0))
}

// TestLaplaceDLP_CircleConstant exercises the classical identity that the
// double-layer kernel between any two points of a circle of radius R is
// the constant -1/(4πR), and that the diagonal curvature limit matches it.
func TestLaplaceDLP_CircleConstant(t *testing.T) {
	const radius = 1.5
	c, err := chunker.Circle(radius, 6, 8)
	require.NoError(t, err)

	var dlp kernel.LaplaceDLP
	want := -1 / (4 * math.Pi * radius)

	pts := c.Nodes()
	for _, i := range []int{0, 7, 23} {
		for _, j := range []int{0, 3, 40} {
			blk, err := dlp.Evaluate(pts[j], pts[i])
			require.NoError(t, err)
			assert.InDelta(t, want, blk.At(0, 0), 1e-12, "pair (%d,%d)", i, j)
		}
	}
}

func TestLaplace_DimErrors(t *testing.T) {
	bad := chunker.Point{R: []float64{1}, D: []float64{1}, D2: []float64{0}, N: []float64{1}}
	_, err := kernel.LaplaceSLP{}.Evaluate(bad, bad)
	assert.ErrorIs(t, err, kernel.ErrDim)
	_, err = kernel.LaplaceDLP{}.Evaluate(bad, bad)
	assert.ErrorIs(t, err, kernel.ErrDim)
}
