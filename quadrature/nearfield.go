package quadrature

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbie/chunker"
	"github.com/katalvlaran/lvlbie/kernel"
)

// SpecialRule supplies replacement quadrature weights for one source panel
// and one near target node, for the given singularity kind. The returned
// slice must have one weight per panel node (length Order of the chunker).
// Returning ok=false leaves the pair punctured.
//
// This is the seam where generalized Gaussian quadrature or RCIP corner
// data plugs in; NearBuilder treats it as opaque.
type SpecialRule interface {
	Weights(c *chunker.Chunker, panel, target int, kind kernel.SingularityKind) ([]float64, bool)
}

// NearBuilder assembles punctured-rule near-field corrections. For every
// component, for every source panel and every target node on that panel or
// an adjacent panel (wrapping on closed chunkers), it subtracts the smooth
// contribution w_j·K(x_i, y_j) and adds back w̃_j·K(x_i, y_j) when Rule
// supplies replacement weights w̃.
//
// Corrections are intra-component only: cross-component near interactions
// need a builder aware of the caller's geometry, behind the same Builder
// interface. Assembly order is fixed (component, panel, target, source),
// so the resulting matrix is reproducible.
type NearBuilder struct {
	// Rule supplies specialized weights; nil punctures the near field.
	Rule SpecialRule
}

// Build implements Builder.
func (b *NearBuilder) Build(comps []*chunker.Chunker, desc *kernel.Descriptor, dims [][]kernel.Dims,
	rowOff, colOff []int, opts BuildOptions) (mat.Matrix, error) {
	nc := len(comps)
	if nc == 0 {
		return nil, fmt.Errorf("quadrature: NearBuilder.Build: %w", ErrNilChunker)
	}
	if desc == nil {
		return nil, fmt.Errorf("quadrature: NearBuilder.Build: %w", ErrNilKernel)
	}
	if len(rowOff) != nc+1 || len(colOff) != nc+1 || len(dims) != nc {
		return nil, fmt.Errorf("quadrature: NearBuilder.Build: %w", ErrOffsets)
	}

	var rows, cols []int
	var data []float64
	put := func(i, j int, v float64) {
		if v != 0 {
			rows = append(rows, i)
			cols = append(cols, j)
			data = append(data, v)
		}
	}

	for ci, c := range comps {
		kern := desc.For(ci, ci)
		if kern == nil {
			return nil, fmt.Errorf("quadrature: NearBuilder.Build: component %d: %w", ci, ErrNilKernel)
		}
		kind := kernel.KindOf(kern, opts.Kind)
		d := dims[ci][ci]
		k := c.Order()
		panels := c.PanelCount()
		pts := c.Nodes()

		for p := 0; p < panels; p++ {
			for _, t := range nearPanels(p, panels, c.Closed()) {
				for ti := t * k; ti < (t+1)*k; ti++ {
					var special []float64
					if b.Rule != nil {
						if w, ok := b.Rule.Weights(c, p, ti, kind); ok {
							if len(w) != k {
								return nil, fmt.Errorf("quadrature: NearBuilder.Build: have %d, want %d: %w",
									len(w), k, ErrRuleLength)
							}
							special = w
						}
					}
					for j := p * k; j < (p+1)*k; j++ {
						factor := -c.W[j]
						if special != nil {
							factor += special[j-p*k]
						}
						if factor == 0 {
							continue
						}
						blk, err := kern.Evaluate(pts[j], pts[ti])
						if err != nil {
							return nil, err
						}
						if br, bc := blk.Dims(); br != d.Rows || bc != d.Cols {
							return nil, fmt.Errorf("quadrature: NearBuilder.Build: block %dx%d, want %dx%d: %w",
								br, bc, d.Rows, d.Cols, ErrBlockShape)
						}
						scale := 1.0
						if opts.Scale {
							scale = math.Sqrt(c.W[ti]) / math.Sqrt(c.W[j])
						}
						for pr := 0; pr < d.Rows; pr++ {
							for qc := 0; qc < d.Cols; qc++ {
								put(rowOff[ci]+ti*d.Rows+pr, colOff[ci]+j*d.Cols+qc,
									scale*factor*blk.At(pr, qc))
							}
						}
					}
				}
			}
		}
	}

	coo := sparse.NewCOO(rowOff[nc], colOff[nc], rows, cols, data)
	return coo.ToCSR(), nil
}

// nearPanels lists the panels adjacent to p (including p itself) in
// ascending order, wrapping around on closed chunkers.
func nearPanels(p, panels int, closed bool) []int {
	if panels == 1 {
		return []int{0}
	}
	set := make(map[int]bool, 3)
	for _, q := range []int{p - 1, p, p + 1} {
		switch {
		case q >= 0 && q < panels:
			set[q] = true
		case closed && q < 0:
			set[q+panels] = true
		case closed && q >= panels:
			set[q-panels] = true
		}
	}
	out := make([]int, 0, len(set))
	for q := 0; q < panels; q++ {
		if set[q] {
			out = append(out, q)
		}
	}
	return out
}
