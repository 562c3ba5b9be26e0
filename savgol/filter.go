// SPDX-License-Identifier: MIT

package savgol

import (
	"fmt"
	"image"
	"math"
)

// Filter smooths a grayscale image with a Savitzky-Golay kernel.
//
// Implementation:
//   - Stage 1: clamp the window to the image and each degree to window−1 on
//     its axis, then build one Kernel centered at (width/2, height/2).
//   - Stage 2: for every origin (ox, oy) in the window, compute the pixel
//     columns and rows whose window, centered and shifted inward at the
//     borders, puts the pixel at that origin; skip empty sets.
//   - Stage 3: RecalcForOrigin once and convolve that whole batch.
//
// Behavior highlights:
//   - Output bounds equal src bounds; values are round(clamp(Σ w·p, 0, 255)).
//   - Polynomials within the degree pair pass through unchanged, so constant
//     and planar images are reproduced exactly.
//
// Errors:
//   - ErrInvalidSize for a nil or empty image and for a non-positive window.
//   - Degree errors as for NewKernel (negative degrees).
//
// Complexity:
//   - Time O(numTerms·numDataPoints²) for the kernels plus O(pixels·numDataPoints).
func Filter(src *image.Gray, window image.Point, horDegree, vertDegree int) (*image.Gray, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, filterErrorf(ErrInvalidSize)
	}
	if window.X <= 0 || window.Y <= 0 {
		return nil, filterErrorf(ErrInvalidSize)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	size := image.Pt(min(window.X, w), min(window.Y, h))
	center := image.Pt(size.X/2, size.Y/2)

	k, err := NewKernel(size, center, min(horDegree, size.X-1), min(vertDegree, size.Y-1))
	if err != nil {
		return nil, filterErrorf(err)
	}

	dst := image.NewGray(b)
	var xlo, xhi, ylo, yhi int
	for oy := 0; oy < size.Y; oy++ {
		ylo, yhi = originSpan(oy, center.Y, size.Y, h)
		for ox := 0; ox < size.X; ox++ {
			xlo, xhi = originSpan(ox, center.X, size.X, w)
			if xlo > xhi || ylo > yhi {
				continue
			}
			k.RecalcForOrigin(image.Pt(ox, oy))
			convolve(src, dst, k, image.Pt(ox, oy), xlo, xhi, ylo, yhi)
		}
	}

	return dst, nil
}

func filterErrorf(err error) error {
	return fmt.Errorf("savgol: filter: %w", err)
}

// originSpan returns the inclusive range of pixel positions p in [0, n) whose
// window of extent ext starts at clamp(p−center, 0, n−ext) and thus holds p at
// offset o. Pixels before the center column stay at their own offset, pixels
// past it sit at the window's far side, everything in between is centered.
func originSpan(o, center, ext, n int) (lo, hi int) {
	switch {
	case o < center:
		return o, o
	case o == center:
		return center, center + n - ext
	default:
		return o + n - ext, o + n - ext
	}
}

// convolve writes the filtered value of every pixel in [xlo,xhi]×[ylo,yhi]
// (relative to the image origin) using the kernel for origin o.
func convolve(src, dst *image.Gray, k *Kernel, o image.Point, xlo, xhi, ylo, yhi int) {
	weights := k.Data()
	kw, kh := k.Width(), k.Height()
	var (
		sum      float64
		row, out int
	)
	for py := ylo; py <= yhi; py++ {
		top := (py - o.Y) * src.Stride
		out = py * dst.Stride
		for px := xlo; px <= xhi; px++ {
			left := px - o.X
			sum = 0
			for ky := 0; ky < kh; ky++ {
				row = top + ky*src.Stride + left
				for kx, wt := range weights[ky*kw : (ky+1)*kw] {
					sum += float64(wt) * float64(src.Pix[row+kx])
				}
			}
			dst.Pix[out+px] = toGray(sum)
		}
	}
}

func toGray(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}

	return uint8(math.Round(v))
}
