// Package chunker defines panel-based discretizations of boundary curves
// ("chunkers") and the component sources consumed by the operator core.
//
// A Chunker is an ordered sequence of panels, each carrying K quadrature
// nodes. Per node it stores the position, the first and second parametric
// derivatives, the outward unit normal, and the smooth quadrature weight.
// Node data lives in gonum Dense matrices with one column per node, so a
// whole coordinate track can be handed to linear-algebra routines without
// copying.
//
// Multiple chunkers are grouped behind the Source interface: a single
// *Chunker, a flat List, and a *Graph (chunkers joined at corner vertices)
// all satisfy it, so downstream code never branches on geometry kind.
//
// Chunkers are treated as immutable for the duration of an operator apply.
package chunker
