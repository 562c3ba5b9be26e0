// Package matrix provides the dense linear-algebra primitives behind the
// Savitzky-Golay kernel builder.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-value policy.
//   - Mul, Transpose, MatVec and AllClose for verification-grade algebra.
//   - Rotation, a numerically stable Givens plane rotation.
//   - GivensQR, a least-squares QR factorization that overwrites its input
//     with R and records every rotation instead of forming Q. The recorded
//     sequence is replayed against any number of right-hand sides, which
//     makes "factor once, solve many" cheap.
//
// Tall systems are the intended workload: rows ≥ cols, with rows in the
// hundreds and cols in the tens. Factorization costs O(cols²·rows); each
// replay costs O(cols·rows).
//
// See the examples in this package for usage patterns.
package matrix
