// SPDX-License-Identifier: MIT

package savgol

import (
	"fmt"
	"image"

	"github.com/katalvlaran/savgol/matrix"
)

// Kernel is a Savitzky-Golay convolution kernel for one window and degree
// pair. The design matrix is factorized once in NewKernel; RecalcForOrigin
// then re-derives the kernel for any origin in O(numTerms·numDataPoints).
//
// A Kernel is not safe for concurrent RecalcForOrigin calls. Reading Data
// from several goroutines is safe while no recalculation runs. Use Clone to
// hand each goroutine its own kernel.
type Kernel struct {
	size       image.Point
	origin     image.Point
	horDegree  int
	vertDegree int
	terms      int

	qr *matrix.GivensQR // immutable after NewKernel

	dataPoints []float64 // impulse RHS, scratch
	coeffs     []float64 // fitted coefficients for origin
	kernel     *AlignedBuffer
}

// NewKernel validates the configuration, assembles and factorizes the design
// matrix, and solves for the initial origin.
//
// Implementation:
//   - Stage 1: validate size, degrees, term count, rank and origin.
//   - Stage 2: build the numDataPoints×numTerms design matrix and factorize
//     it in place with matrix.Factorize.
//   - Stage 3: allocate scratch and the aligned kernel, then RecalcForOrigin.
//
// Errors (all match ErrInvalidArgument):
//   - ErrInvalidSize when size.X ≤ 0 or size.Y ≤ 0.
//   - ErrInvalidHorDegree / ErrInvalidVertDegree for negative degrees.
//   - ErrDegreeTooHigh when (horDegree+1)·(vertDegree+1) > size.X·size.Y.
//   - ErrRankDeficient when horDegree ≥ size.X or vertDegree ≥ size.Y.
//   - ErrOriginOutOfRange when origin is outside [0,size.X)×[0,size.Y).
//
// Complexity:
//   - Time O(numTerms²·numDataPoints), Space O(numTerms·numDataPoints).
func NewKernel(size, origin image.Point, horDegree, vertDegree int) (*Kernel, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, kernelErrorf(size, horDegree, vertDegree, ErrInvalidSize)
	}
	if horDegree < 0 {
		return nil, kernelErrorf(size, horDegree, vertDegree, ErrInvalidHorDegree)
	}
	if vertDegree < 0 {
		return nil, kernelErrorf(size, horDegree, vertDegree, ErrInvalidVertDegree)
	}
	terms := numTerms(horDegree, vertDegree)
	points := size.X * size.Y
	if terms > points {
		return nil, kernelErrorf(size, horDegree, vertDegree, ErrDegreeTooHigh)
	}
	if horDegree >= size.X || vertDegree >= size.Y {
		return nil, kernelErrorf(size, horDegree, vertDegree, ErrRankDeficient)
	}
	if !inWindow(origin, size) {
		return nil, fmt.Errorf("savgol: origin %v, window %v: %w", origin, size, ErrOriginOutOfRange)
	}

	a, err := matrix.NewDenseFrom(points, terms, designMatrix(size.X, size.Y, horDegree, vertDegree))
	if err != nil {
		return nil, fmt.Errorf("savgol: design matrix: %w", err)
	}
	qr, err := matrix.Factorize(a)
	if err != nil {
		return nil, fmt.Errorf("savgol: factorize: %w", err)
	}

	k := &Kernel{
		size:       size,
		horDegree:  horDegree,
		vertDegree: vertDegree,
		terms:      terms,
		qr:         qr,
		dataPoints: make([]float64, points),
		coeffs:     make([]float64, terms),
		kernel:     NewAlignedBuffer(points),
	}
	k.RecalcForOrigin(origin)

	return k, nil
}

// kernelErrorf wraps a configuration sentinel with the offending parameters.
func kernelErrorf(size image.Point, horDegree, vertDegree int, err error) error {
	return fmt.Errorf("savgol: window %dx%d, degrees (%d,%d): %w", size.X, size.Y, horDegree, vertDegree, err)
}

func inWindow(p, size image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

// RecalcForOrigin overwrites the coefficients and the kernel for a new origin.
//
// Implementation:
//   - Stage 1: impulse RHS, 1 at origin.Y·width+origin.X.
//   - Stage 2: replay the recorded rotations (RHS ← Qᵀ·RHS).
//   - Stage 3: back-substitute against R into the coefficients.
//   - Stage 4: evaluate the polynomial at every sample into the kernel.
//
// Panics when origin lies outside the window, and when R has a zero pivot.
// NewKernel rejects every configuration that could produce one, so the
// latter signals a broken invariant.
//
// Complexity:
//   - Time O(numTerms·numDataPoints), no allocation.
func (k *Kernel) RecalcForOrigin(origin image.Point) {
	if !inWindow(origin, k.size) {
		panic(fmt.Sprintf("savgol: origin %v outside %dx%d window", origin, k.size.X, k.size.Y))
	}

	clear(k.dataPoints)
	k.dataPoints[origin.Y*k.size.X+origin.X] = 1

	if err := k.qr.ApplyQT(k.dataPoints); err != nil {
		panic(fmt.Sprintf("savgol: window %dx%d, degrees (%d,%d): %v",
			k.size.X, k.size.Y, k.horDegree, k.vertDegree, err))
	}
	if err := k.qr.SolveR(k.dataPoints, k.coeffs); err != nil {
		panic(fmt.Sprintf("savgol: window %dx%d, degrees (%d,%d): %v",
			k.size.X, k.size.Y, k.horDegree, k.vertDegree, err))
	}

	evaluate(k.coeffs, k.size.X, k.size.Y, k.horDegree, k.vertDegree, k.kernel.Floats())
	k.origin = origin
}

// Data returns the row-major kernel. The slice aliases the kernel's aligned
// buffer and is overwritten by the next RecalcForOrigin.
func (k *Kernel) Data() []float32 { return k.kernel.Floats() }

// Buffer returns the aligned buffer backing Data.
func (k *Kernel) Buffer() *AlignedBuffer { return k.kernel }

// At returns the weight of window sample (x, y), 0-based.
func (k *Kernel) At(x, y int) float32 { return k.kernel.At(y*k.size.X + x) }

// NumTerms returns (horDegree+1)·(vertDegree+1).
func (k *Kernel) NumTerms() int { return k.terms }

// NumDataPoints returns width·height.
func (k *Kernel) NumDataPoints() int { return len(k.dataPoints) }

// HorizontalDegree returns the polynomial degree in x.
func (k *Kernel) HorizontalDegree() int { return k.horDegree }

// VerticalDegree returns the polynomial degree in y.
func (k *Kernel) VerticalDegree() int { return k.vertDegree }

// Width returns the window width.
func (k *Kernel) Width() int { return k.size.X }

// Height returns the window height.
func (k *Kernel) Height() int { return k.size.Y }

// Size returns the window size.
func (k *Kernel) Size() image.Point { return k.size }

// Origin returns the origin of the current kernel.
func (k *Kernel) Origin() image.Point { return k.origin }

// Coefficients returns a copy of the polynomial coefficients for the current
// origin, in basis order (vertical power outer, horizontal inner).
func (k *Kernel) Coefficients() []float64 {
	out := make([]float64, len(k.coeffs))
	copy(out, k.coeffs)

	return out
}

// NumRotations returns the number of recorded Givens rotations.
func (k *Kernel) NumRotations() int { return k.qr.NumRotations() }

// Clone returns a kernel with its own scratch and output buffers. The
// factorization is immutable and shared.
func (k *Kernel) Clone() *Kernel {
	c := *k
	c.dataPoints = make([]float64, len(k.dataPoints))
	c.coeffs = make([]float64, len(k.coeffs))
	copy(c.coeffs, k.coeffs)
	c.kernel = k.kernel.Clone()

	return &c
}
