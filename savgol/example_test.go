// SPDX-License-Identifier: MIT

package savgol_test

import (
	"fmt"
	"image"
	"strings"

	"github.com/katalvlaran/savgol/savgol"
)

// ExampleNewKernel builds the classic 5-point quadratic smoothing kernel and
// prints its weights scaled by 35.
func ExampleNewKernel() {
	k, err := savgol.NewKernel(image.Pt(5, 1), image.Pt(2, 0), 2, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(scaled(k.Data(), 35))
	fmt.Println("terms:", k.NumTerms(), "rotations:", k.NumRotations())
	// Output:
	// -3 12 17 12 -3
	// terms: 3 rotations: 9
}

// ExampleKernel_RecalcForOrigin moves the origin to the left border without
// factorizing again.
func ExampleKernel_RecalcForOrigin() {
	k, err := savgol.NewKernel(image.Pt(5, 1), image.Pt(2, 0), 2, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	k.RecalcForOrigin(image.Pt(0, 0))
	fmt.Println(scaled(k.Data(), 35))
	// Output:
	// 31 9 -3 -5 3
}

// ExampleFilter smooths a constant image, which passes through unchanged.
func ExampleFilter() {
	src := image.NewGray(image.Rect(0, 0, 6, 4))
	for i := range src.Pix {
		src.Pix[i] = 42
	}
	dst, err := savgol.Filter(src, image.Pt(3, 3), 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dst.Bounds(), dst.GrayAt(0, 0).Y, dst.GrayAt(5, 3).Y)
	// Output:
	// (0,0)-(6,4) 42 42
}

// scaled formats each weight times f, rounded, separated by spaces.
func scaled(ws []float32, f float32) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = fmt.Sprintf("%.0f", w*f)
	}

	return strings.Join(parts, " ")
}
