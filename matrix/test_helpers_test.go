// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for factorization tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/savgol/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in Mul/Transpose/MatVec.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustDenseFrom builds a *Dense from row-major data or fails the test.
func MustDenseFrom(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// vandermonde2D returns the design matrix of the bivariate monomial basis
// x^j·y^i (i ≤ vd outer, j ≤ hd inner) over a w×h grid with 1-based
// coordinates, rows in row-major sample order.
func vandermonde2D(w, h, hd, vd int) (rows, cols int, data []float64) {
	cols = (hd + 1) * (vd + 1)
	rows = w * h
	data = make([]float64, 0, rows*cols)
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

	return rows, cols, data
}

// MustFactorize factorizes a clone of m and fails the test on error.
func MustFactorize(t *testing.T, m *matrix.Dense) *matrix.GivensQR {
	t.Helper()
	qr, err := matrix.Factorize(m.Clone().(*matrix.Dense))
	require.NoError(t, err)

	return qr
}

// requireAllClose asserts a ≈ b entrywise within eps (absolute and relative).
func requireAllClose(t *testing.T, a, b matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, matrix.WithEpsilon(eps), matrix.WithRelTolerance(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\n%v\nvs\n%v", eps, a, b)
}
