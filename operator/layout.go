package operator

import (
	"fmt"

	"github.com/katalvlaran/lvlbie/kernel"
)

// BuildLayout derives the block layout from the probed operator-dimension
// table and per-component point counts.
//
// The row width of target component i is taken from pair (i, 0) and the
// column width of source component j from pair (0, j): all kernel pairs
// sharing a target component must agree on row width, and all pairs
// sharing a source component on column width. BuildLayout verifies that
// agreement and fails with ErrDimsInconsistent on violation, since a
// disagreeing kernel matrix has no well-defined flattened indexing.
func BuildLayout(dims [][]kernel.Dims, counts []int) (Layout, error) {
	nc := len(counts)
	if nc == 0 || len(dims) != nc {
		return Layout{}, ErrNoComponents
	}
	for i := 0; i < nc; i++ {
		if len(dims[i]) != nc {
			return Layout{}, fmt.Errorf("operator: BuildLayout: row %d has %d pairs, want %d: %w",
				i, len(dims[i]), nc, ErrDimsInconsistent)
		}
		for j := 0; j < nc; j++ {
			if dims[i][j].Rows != dims[i][0].Rows {
				return Layout{}, fmt.Errorf("operator: BuildLayout: pair (%d,%d) rows %d, pair (%d,0) rows %d: %w",
					i, j, dims[i][j].Rows, i, dims[i][0].Rows, ErrDimsInconsistent)
			}
			if dims[i][j].Cols != dims[0][j].Cols {
				return Layout{}, fmt.Errorf("operator: BuildLayout: pair (%d,%d) cols %d, pair (0,%d) cols %d: %w",
					i, j, dims[i][j].Cols, j, dims[0][j].Cols, ErrDimsInconsistent)
			}
		}
	}

	lay := Layout{
		RowOffsets: make([]int, nc+1),
		ColOffsets: make([]int, nc+1),
	}
	for i := 0; i < nc; i++ {
		lay.RowOffsets[i+1] = lay.RowOffsets[i] + counts[i]*dims[i][0].Rows
		lay.ColOffsets[i+1] = lay.ColOffsets[i] + counts[i]*dims[0][i].Cols
	}
	return lay, nil
}
