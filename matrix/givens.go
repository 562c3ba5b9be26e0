// SPDX-License-Identifier: MIT

// Package matrix - Givens plane rotations.
//
// A Rotation acting on the pair (x, y) produces
//
//	x' =  cos·x + sin·y
//	y' = −sin·x + cos·y
//
// and NewRotation picks (sin, cos) so that y' = 0 for a given (a, b).
package matrix

import "math"

// Rotation is a plane rotation stored as its (sin, cos) pair.
// The zero value is NOT the identity; use IdentityRotation.
type Rotation struct {
	Sin float64
	Cos float64
}

// IdentityRotation leaves both coordinates unchanged.
var IdentityRotation = Rotation{Sin: 0, Cos: 1}

// NewRotation returns the rotation that maps (a, b) onto (r, 0) and the new
// leading value r.
//
// Implementation:
//   - b == 0: identity, r = a (this branch wins even when a == 0 too).
//   - a == 0: cos = 0, sin = sign(b), r = |b|.
//   - |b| > |a|: t = a/b, u = copysign(√(1+t²), b), sin = 1/u, cos = sin·t, r = b·u.
//   - otherwise: t = b/a, u = copysign(√(1+t²), a), cos = 1/u, sin = cos·t, r = a·u.
//
// Behavior highlights:
//   - Only the ratio of the smaller to the larger magnitude is squared, so
//     neither overflow nor harmful underflow occurs for finite inputs.
//   - r carries the sign of the larger of a, b; |r| = hypot(a, b).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewRotation(a, b float64) (rot Rotation, r float64) {
	if b == 0 {
		return IdentityRotation, a
	}
	if a == 0 {
		return Rotation{Sin: math.Copysign(1, b), Cos: 0}, math.Abs(b)
	}

	var t, u float64
	if math.Abs(b) > math.Abs(a) {
		t = a / b
		u = math.Copysign(math.Sqrt(1+t*t), b)
		rot.Sin = 1 / u
		rot.Cos = rot.Sin * t

		return rot, b * u
	}
	t = b / a
	u = math.Copysign(math.Sqrt(1+t*t), a)
	rot.Cos = 1 / u
	rot.Sin = rot.Cos * t

	return rot, a * u
}

// Apply rotates the pair (x, y).
func (g Rotation) Apply(x, y float64) (float64, float64) {
	return g.Cos*x + g.Sin*y, g.Cos*y - g.Sin*x
}

// IsIdentity reports whether g is exactly the identity rotation.
func (g Rotation) IsIdentity() bool { return g.Sin == 0 && g.Cos == 1 }
