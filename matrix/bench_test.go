package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/savgol/matrix"
)

// BenchmarkFactorize measures the one-time O(cols²·rows) cost.
func BenchmarkFactorize(b *testing.B) {
	for _, side := range []int{5, 9, 15} {
		rows, cols, data := vandermonde2D(side, side, 2, 2)
		b.Run(fmt.Sprintf("%dx%d", side, side), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a, err := matrix.NewDenseFrom(rows, cols, data)
				if err != nil {
					b.Fatalf("NewDenseFrom: %v", err)
				}
				if _, err = matrix.Factorize(a); err != nil {
					b.Fatalf("Factorize: %v", err)
				}
			}
		})
	}
}

// BenchmarkApplyQT measures the per-RHS replay that Factorize amortizes.
func BenchmarkApplyQT(b *testing.B) {
	for _, side := range []int{5, 9, 15} {
		rows, cols, data := vandermonde2D(side, side, 2, 2)
		a, err := matrix.NewDenseFrom(rows, cols, data)
		if err != nil {
			b.Fatalf("NewDenseFrom: %v", err)
		}
		qr, err := matrix.Factorize(a)
		if err != nil {
			b.Fatalf("Factorize: %v", err)
		}
		v := make([]float64, rows)
		b.Run(fmt.Sprintf("%dx%d", side, side), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				clear(v)
				v[i%rows] = 1
				if err := qr.ApplyQT(v); err != nil {
					b.Fatalf("ApplyQT: %v", err)
				}
			}
		})
	}
}
