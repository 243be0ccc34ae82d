package chunker

import "gonum.org/v1/gonum/mat"

// Source yields an ordered list of geometric components. It is the single
// capability the operator core requires of its geometry argument, so a lone
// chunker, a flat list, and a corner graph are interchangeable there.
type Source interface {
	Components() []*Chunker
}

// Components returns the chunker itself as a one-element component list.
func (c *Chunker) Components() []*Chunker { return []*Chunker{c} }

// List is a flat, ordered collection of components.
type List []*Chunker

// Components returns the list unchanged.
func (l List) Components() []*Chunker { return l }

// Graph is a set of curve components joined at corner vertices. The vertex
// positions and edge endpoint table describe the junction structure; the
// operator core does not interpret them, it only extracts Edges. Corner
// corrections belong to the correction-matrix builder.
type Graph struct {
	// Edges holds one chunker per curve segment, in edge order.
	Edges []*Chunker
	// Verts holds junction vertex positions, dim × nVerts.
	Verts *mat.Dense
	// EdgeEnds maps each edge to its (start, end) vertex indices;
	// -1 marks a free end.
	EdgeEnds [][2]int
}

// Components returns the edge chunkers in edge order.
func (g *Graph) Components() []*Chunker { return g.Edges }
