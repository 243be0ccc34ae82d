// Package quadrature supplies the two numerical collaborators the operator
// core composes: a smooth (far-field) evaluator and a near-field
// correction-matrix builder.
//
// The Evaluator interface applies the plain smooth quadrature rule of a
// source chunker to a density at a set of target nodes; Direct implements
// it by deterministic double summation, dispatching to the kernel's own
// FMM routine when one is available and requested.
//
// The Builder interface assembles the sparse corrections-only operator
// that repairs the smooth rule where it is inaccurate (self and adjacent
// panels). NearBuilder implements the punctured-rule scheme: subtract the
// smooth contribution of every near node pair, then add back whatever a
// pluggable SpecialRule supplies (generalized Gaussian quadrature, RCIP
// corner data, ...). With no special rule installed the near field is
// simply punctured, which is exact for kernels that already vanish there.
//
// Both implementations are reference-grade: correct, deterministic, and
// O(n·m). Callers with specialized quadrature machinery provide their own
// implementations of the same two interfaces.
package quadrature
