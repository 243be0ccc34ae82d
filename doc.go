// Package lvlbie is a matrix-free toolkit for applying discretized
// boundary-integral operators to density functions, the workhorse step of
// iterative solvers for boundary integral equations on curves.
//
// Given a panel-based discretization of one or more boundary curves and an
// integral-kernel definition, lvlbie computes u = A·σ without ever forming
// the dense matrix A, by combining:
//
//	• a sparse near-field/self correction matrix (precomputed or built once
//	  per geometry/kernel pair), and
//	• a smooth far-field quadrature pass, optionally accelerated by a fast
//	  multipole method when the kernel provides one.
//
// Everything is organized under four subpackages:
//
//	chunker/    — panel discretizations of boundary curves: node positions,
//	              parametric derivatives, normals, quadrature weights
//	kernel/     — kernel interfaces, singularity kinds, FMM capability,
//	              single and per-pair kernel descriptors, Laplace examples
//	quadrature/ — smooth (far-field) evaluation and near-field correction
//	              matrix assembly
//	operator/   — the operator-apply core: dimension probing, block layout,
//	              correction + smooth composition, acceleration advisories
//
// Quick ASCII picture of one apply call:
//
//	density σ ──► correction C·σ ──────┐
//	                                   ├──► u = C·σ + S·σ
//	geometry + kernel ──► smooth S·σ ──┘
//
// lvlbie does not solve the linear system, refine meshes, or implement
// specialized singular quadrature; those remain the caller's concern and
// plug in through the interfaces in quadrature.
package lvlbie
