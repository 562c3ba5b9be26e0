package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/savgol/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRotation_Branches walks every branch of the stable rotation formula
// and checks that applying the rotation to (a, b) yields (r, 0).
func TestNewRotation_Branches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		sin, cos float64
		r        float64
	}{
		{"both zero", 0, 0, 0, 1, 0},
		{"b zero", -2, 0, 0, 1, -2},
		{"a zero positive b", 0, 2, 1, 0, 2},
		{"a zero negative b", 0, -2, -1, 0, 2},
		{"b dominates", 3, 4, 0.8, 0.6, 5},
		{"a dominates", 4, -3, -0.6, 0.8, 5},
		{"a dominates negative", -4, 3, 0.6, -0.8, 5},
		{"equal magnitude", 1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2, math.Sqrt2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rot, r := matrix.NewRotation(tc.a, tc.b)
			assert.InDelta(t, tc.sin, rot.Sin, 1e-15, "sin")
			assert.InDelta(t, tc.cos, rot.Cos, 1e-15, "cos")
			assert.InDelta(t, tc.r, r, 1e-14, "r")

			x, y := rot.Apply(tc.a, tc.b)
			assert.InDelta(t, r, x, 1e-14)
			assert.InDelta(t, 0, y, 1e-14)
		})
	}
}

// TestNewRotation_NoOverflow checks that huge and tiny magnitudes survive.
func TestNewRotation_NoOverflow(t *testing.T) {
	rot, r := matrix.NewRotation(1e300, 1e300)
	require.False(t, math.IsInf(r, 0))
	assert.InDelta(t, math.Sqrt2*1e300, r, 1e286)
	assert.InDelta(t, 1, rot.Sin*rot.Sin+rot.Cos*rot.Cos, 1e-15)

	rot, r = matrix.NewRotation(1e-300, -3e-300)
	require.NotZero(t, r)
	assert.InDelta(t, 1, rot.Sin*rot.Sin+rot.Cos*rot.Cos, 1e-15)
}

// TestRotation_Identity checks the identity value and IsIdentity.
func TestRotation_Identity(t *testing.T) {
	require.True(t, matrix.IdentityRotation.IsIdentity())
	require.False(t, matrix.Rotation{}.IsIdentity(), "zero value is not the identity")

	x, y := matrix.IdentityRotation.Apply(7, -2)
	require.Equal(t, 7.0, x)
	require.Equal(t, -2.0, y)
}
