// SPDX-License-Identifier: MIT

package savgol_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/savgol/savgol"
	"github.com/stretchr/testify/require"
)

// MustKernel builds a kernel or fails the test.
func MustKernel(t testing.TB, w, h, ox, oy, hd, vd int) *savgol.Kernel {
	t.Helper()
	k, err := savgol.NewKernel(image.Pt(w, h), image.Pt(ox, oy), hd, vd)
	require.NoError(t, err)

	return k
}

// design returns the row-major design matrix with 1-based sample
// coordinates, vertical power outer and horizontal power inner.
func design(w, h, hd, vd int) []float64 {
	data := make([]float64, 0, w*h*(hd+1)*(vd+1))
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			py := 1.0
			for i := 0; i <= vd; i++ {
				px := py
				for j := 0; j <= hd; j++ {
					data = append(data, px)
					px *= float64(x)
				}
				py *= float64(y)
			}
		}
	}

	return data
}

// grayFunc returns a w×h gray image with pixel (x, y) = f(x, y).
func grayFunc(w, h int, f func(x, y int) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: f(x, y)})
		}
	}

	return img
}

func sum32(v []float32) float64 {
	var s float64
	for _, x := range v {
		s += float64(x)
	}

	return s
}
