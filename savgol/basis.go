// SPDX-License-Identifier: MIT

package savgol

// numTerms returns the size of the bivariate basis for a degree pair.
func numTerms(horDegree, vertDegree int) int {
	return (horDegree + 1) * (vertDegree + 1)
}

// designMatrix returns the row-major numDataPoints×numTerms equation matrix:
// one row per window sample (x, y), 1-based, in row-major sample order, and
// one column per monomial x^j·y^i with the vertical power i outer and the
// horizontal power j inner.
//
// Powers are accumulated by repeated multiplication, never math.Pow, so the
// same sample always produces bit-identical rows.
func designMatrix(width, height, horDegree, vertDegree int) []float64 {
	terms := numTerms(horDegree, vertDegree)
	data := make([]float64, 0, width*height*terms)

	var px, py float64
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			py = 1
			for i := 0; i <= vertDegree; i++ {
				px = py
				for j := 0; j <= horDegree; j++ {
					data = append(data, px)
					px *= float64(x)
				}
				py *= float64(y)
			}
		}
	}

	return data
}

// evaluate writes float32(p(x, y)) for every sample into dst, row-major, where
// p is the polynomial with the given coefficients in designMatrix order.
func evaluate(coeffs []float64, width, height, horDegree, vertDegree int, dst []float32) {
	var (
		sum, px, py float64
		n, c        int
	)
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			sum, py, c = 0, 1, 0
			for i := 0; i <= vertDegree; i++ {
				px = py
				for j := 0; j <= horDegree; j++ {
					sum += coeffs[c] * px
					c++
					px *= float64(x)
				}
				py *= float64(y)
			}
			dst[n] = float32(sum)
			n++
		}
	}
}
