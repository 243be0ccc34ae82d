package quadrature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
	"github.com/katalvlaran/lvlbie/quadrature"
)

func scalarDims(nc int) [][]kernel.Dims {
	dims := make([][]kernel.Dims, nc)
	for i := range dims {
		dims[i] = make([]kernel.Dims, nc)
		for j := range dims[i] {
			dims[i][j] = kernel.Dims{Rows: 1, Cols: 1}
		}
	}
	return dims
}

func singleDescriptor(t *testing.T, k kernel.Kernel) *kernel.Descriptor {
	t.Helper()
	d, err := kernel.NewSingle(k)
	require.NoError(t, err)
	return d
}

func TestNearBuilder_PuncturedOpenChunker(t *testing.T) {
	// 3 panels × 2 nodes, open: panel 0 is near {0,1}, panel 1 near
	// {0,1,2}, panel 2 near {1,2}.
	c := lineChunker(t, 2, 6, 1)
	desc := singleDescriptor(t, constKernel{c: 2})

	b := &quadrature.NearBuilder{}
	corr, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 6}, []int{0, 6}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)

	r, cols := corr.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 6, cols)

	// Near pairs subtract w_j·K = 2.
	assert.Equal(t, -2.0, corr.At(0, 0), "self panel")
	assert.Equal(t, -2.0, corr.At(0, 2), "adjacent panel")
	assert.Equal(t, -2.0, corr.At(2, 4), "panel 1 target, panel 2 source")
	// Separated panels stay on the smooth rule.
	assert.Equal(t, 0.0, corr.At(5, 0), "panel 2 target, panel 0 source")
	assert.Equal(t, 0.0, corr.At(0, 5), "panel 0 target, panel 2 source")
}

func TestNearBuilder_ClosedWrapsAround(t *testing.T) {
	c, err := chunker.Circle(1, 3, 2)
	require.NoError(t, err)
	desc := singleDescriptor(t, constKernel{c: 1})

	b := &quadrature.NearBuilder{}
	corr, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 6}, []int{0, 6}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)

	// On a closed 3-panel curve every panel is adjacent to every other,
	// including the 0↔2 wrap pair.
	assert.Equal(t, -c.W[0], corr.At(5, 0), "wrap-around pair must be corrected")
	assert.Equal(t, -c.W[5], corr.At(0, 5))
}

func TestNearBuilder_BlockDiagonalAcrossComponents(t *testing.T) {
	a := lineChunker(t, 2, 4, 1)
	b := lineChunker(t, 2, 4, 1)
	desc := singleDescriptor(t, constKernel{c: 1})

	nb := &quadrature.NearBuilder{}
	corr, err := nb.Build([]*chunker.Chunker{a, b}, desc, scalarDims(2),
		[]int{0, 4, 8}, []int{0, 4, 8}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)

	assert.Equal(t, -1.0, corr.At(0, 0))
	assert.Equal(t, -1.0, corr.At(4, 4), "second component's own block")
	for i := 0; i < 4; i++ {
		for j := 4; j < 8; j++ {
			assert.Equal(t, 0.0, corr.At(i, j), "cross-component entry (%d,%d)", i, j)
			assert.Equal(t, 0.0, corr.At(j, i), "cross-component entry (%d,%d)", j, i)
		}
	}
}

// smoothRule hands back the chunker's own smooth weights, which cancels
// the puncture exactly.
type smoothRule struct{}

func (smoothRule) Weights(c *chunker.Chunker, panel, target int, kind kernel.SingularityKind) ([]float64, bool) {
	w := make([]float64, c.Order())
	copy(w, c.W[panel*c.Order():(panel+1)*c.Order()])
	return w, true
}

func TestNearBuilder_SpecialRuleCancels(t *testing.T) {
	c := lineChunker(t, 2, 6, 0.75)
	desc := singleDescriptor(t, constKernel{c: 3})

	b := &quadrature.NearBuilder{Rule: smoothRule{}}
	corr, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 6}, []int{0, 6}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)

	zero := mat.NewDense(6, 6, nil)
	assert.True(t, mat.Equal(corr, zero), "rule equal to the smooth weights must cancel the puncture")
}

type badLengthRule struct{}

func (badLengthRule) Weights(c *chunker.Chunker, panel, target int, kind kernel.SingularityKind) ([]float64, bool) {
	return []float64{1}, true
}

func TestNearBuilder_RuleLengthError(t *testing.T) {
	c := lineChunker(t, 2, 4, 1)
	desc := singleDescriptor(t, constKernel{c: 1})

	b := &quadrature.NearBuilder{Rule: badLengthRule{}}
	_, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 4}, []int{0, 4}, quadrature.DefaultBuildOptions())
	assert.ErrorIs(t, err, quadrature.ErrRuleLength)
}

func TestNearBuilder_L2Scale(t *testing.T) {
	// One panel of two nodes with weights 1 and 4; every pair is near.
	r := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	d := mat.NewDense(2, 2, []float64{1, 1, 0, 0})
	d2 := mat.NewDense(2, 2, nil)
	nm := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	c, err := chunker.New(2, r, d, d2, nm, []float64{1, 4}, false)
	require.NoError(t, err)

	desc := singleDescriptor(t, constKernel{c: 1})
	opts := quadrature.DefaultBuildOptions()
	opts.Scale = true

	b := &quadrature.NearBuilder{}
	corr, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 2}, []int{0, 2}, opts)
	require.NoError(t, err)

	// Entry (i,j) = -w_j·√(w_i)/√(w_j) = -√(w_i)·√(w_j).
	assert.InDelta(t, -1.0, corr.At(0, 0), 1e-15)
	assert.InDelta(t, -2.0, corr.At(0, 1), 1e-15)
	assert.InDelta(t, -2.0, corr.At(1, 0), 1e-15)
	assert.InDelta(t, -4.0, corr.At(1, 1), 1e-15)
}

func TestNearBuilder_Deterministic(t *testing.T) {
	c, err := chunker.Circle(1, 4, 3)
	require.NoError(t, err)
	desc := singleDescriptor(t, kernel.LaplaceDLP{})

	b := &quadrature.NearBuilder{}
	first, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 12}, []int{0, 12}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)
	second, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0, 12}, []int{0, 12}, quadrature.DefaultBuildOptions())
	require.NoError(t, err)

	assert.True(t, mat.Equal(first, second), "rebuilds on unchanged input must agree exactly")
}

func TestNearBuilder_OffsetValidation(t *testing.T) {
	c := lineChunker(t, 2, 4, 1)
	desc := singleDescriptor(t, constKernel{c: 1})

	b := &quadrature.NearBuilder{}
	_, err := b.Build([]*chunker.Chunker{c}, desc, scalarDims(1),
		[]int{0}, []int{0, 4}, quadrature.DefaultBuildOptions())
	assert.ErrorIs(t, err, quadrature.ErrOffsets)
}
