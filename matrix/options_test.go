// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/savgol/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptions_InvalidValuesPanic verifies that nonsensical tolerances are
// rejected at option construction.
func TestOptions_InvalidValuesPanic(t *testing.T) {
	for _, v := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(v) }, "eps=%v", v)
		require.Panics(t, func() { matrix.WithRelTolerance(v) }, "rtol=%v", v)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithRelTolerance(0) })
}

// TestOptions_ValidateNaNInf toggles finite-value validation on creation.
func TestOptions_ValidateNaNInf(t *testing.T) {
	data := []float64{1, math.NaN()}

	_, err := matrix.NewDenseFrom(1, 2, data)
	require.ErrorIs(t, err, matrix.ErrNaNInf, "validation is on by default")

	_, err = matrix.NewDenseFrom(1, 2, data, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(1, 2, data, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.Inf(-1)))

	// last writer wins
	_, err = matrix.NewDenseFrom(1, 2, data, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestOptions_ToleranceDefaults checks AllClose at the documented defaults.
func TestOptions_ToleranceDefaults(t *testing.T) {
	a := MustDenseFrom(t, 1, 1, []float64{1})
	inside := MustDenseFrom(t, 1, 1, []float64{1 + matrix.DefaultEpsilon/2})
	outside := MustDenseFrom(t, 1, 1, []float64{1 + 4*(matrix.DefaultEpsilon+matrix.DefaultRelTolerance)})

	ok, err := matrix.AllClose(a, inside)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, outside)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, outside, matrix.WithRelTolerance(1e-6))
	require.NoError(t, err)
	require.True(t, ok)
}
