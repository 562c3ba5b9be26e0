// Package savgol is the root of a small toolkit for Savitzky-Golay smoothing
// of images: least-squares polynomial kernels over rectangular windows, built
// once per window and re-targeted to any origin in it.
//
// 🚀 What is in the box?
//
//	A pure-Go numeric core plus a thin command-line front end:
//		• matrix/ : dense row-major matrices, Givens QR with recorded
//		             rotations, replay of Qᵀ and back-substitution
//		• savgol/ : kernel builder (NewKernel, RecalcForOrigin), 16-byte
//		             aligned weights, border-aware grayscale Filter
//		• cmd/savgol: `savgol kernel` and `savgol filter` commands
//
// ✨ Why Givens rotations?
//
//   - One factorization per (window, degrees); every origin after that is a
//     replay plus a triangular solve, O(numTerms·numDataPoints)
//   - Rotations are stored as (sin, cos) pairs, never an explicit Q
//   - Bit-reproducible for a fixed configuration
//
// Quick ASCII example (5×1 window, quadratic, origin in the middle):
//
//	  x:    1     2     3     4     5
//	  w:  -3/35 12/35 17/35 12/35 -3/35
//
//	go get github.com/katalvlaran/savgol/savgol
package savgol
