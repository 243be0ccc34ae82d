// Package operator is the matrix-free operator-apply core: it composes a
// sparse near-field correction and a smooth far-field quadrature pass into
// one u = A·σ evaluation with correct block indexing over multiple
// geometric components and (possibly heterogeneous) operator dimensions.
//
// One Apply call runs, in order:
//
//  1. dimension probing — evaluate each kernel pair once on a sample node
//     pair to learn its (rows × cols) block shape and whether every pair
//     in use has an accelerated (FMM) path;
//  2. block layout — cumulative row/column offset tables locating each
//     component's slice of the flattened input and output vectors;
//  3. correction — partial = C·σ, building C through the configured
//     Builder when the caller supplies none;
//  4. smooth dispatch — one merged evaluation for a homogeneous kernel, or
//     one evaluation per ordered component pair for a per-pair kernel
//     matrix, accumulated in component-index order;
//  5. advisory — a non-fatal warning when acceleration is requested but
//     not uniformly available.
//
// The package is single-threaded and deterministic: loops run in fixed
// component order, and repeated applies on unchanged inputs produce
// identical results. Geometry, kernels, and the correction matrix are
// never mutated; reusing a correction matrix across calls is sound only
// while geometry and kernels are unchanged, which is the caller's
// responsibility.
package operator
