// Package kernel defines the integral-kernel interfaces consumed by the
// operator core, together with the descriptor type that covers both the
// homogeneous case (one kernel between every component pair) and the
// heterogeneous case (a square matrix of kernels indexed by target and
// source component).
//
// A kernel maps a (source, target) node pair to a small dense block whose
// shape is the operator dimension; vector-valued kernels return blocks
// larger than 1×1. Optional capabilities are discovered by type assertion:
// FMM marks kernels with an accelerated whole-chunker apply, Classifier
// marks kernels that know their own singularity kind.
//
// LaplaceSLP and LaplaceDLP provide the classical 2-D Laplace layer
// potentials as ready-made kernels for tests and examples.
package kernel
