// SPDX-License-Identifier: MIT

// Package matrix - least-squares QR by recorded Givens rotations.
//
// Purpose:
//   - Triangularize a tall matrix A (rows ≥ cols) in place: after Factorize the
//     top cols×cols block of A's storage holds upper-triangular R and every
//     entry below the diagonal is zero.
//   - Keep Q implicit. Every rotation is appended to a slice in generation
//     order (pivot column j ascending, row i ascending within j), identities
//     included, so a replay can walk the same (j, i) loop and index the slice
//     with a plain counter.
//   - Replay the rotations against any right-hand side (ApplyQT ≡ multiply by
//     Qᵀ) and back-substitute against R (SolveR).
//
// Memory:
//   - cols·(cols−1)/2 + (rows−cols)·cols rotations, i.e. O(rows·cols), versus
//     O(rows²) for an explicit Q.
//
// Complexity quicksheet:
//   - Factorize: O(cols²·rows); ApplyQT: O(cols·rows); SolveR: O(cols²).
package matrix

import "fmt"

// GivensQR holds a factorized matrix and the rotations that produced it.
// Both are immutable after Factorize; ApplyQT and SolveR only read them, so
// one GivensQR may serve concurrent solvers as long as each owns its vectors.
type GivensQR struct {
	a    *Dense     // R in the top cols×cols block, zeros below the diagonal
	rots []Rotation // generation order, identities included
}

// NumRotations returns the rotation count a rows×cols factorization records.
func NumRotations(rows, cols int) int {
	return cols*(cols-1)/2 + (rows-cols)*cols
}

// Factorize triangularizes a in place with Givens rotations and records them.
//
// Implementation:
//   - Stage 1: validate a non-nil and tall (rows ≥ cols).
//   - Stage 2: for pivot column j, for rows i = j+1..rows−1, build the
//     rotation zeroing a[i][j] against a[j][j] (NewRotation), store the new
//     pivot, zero a[i][j], and rotate the remaining columns k > j of rows j
//     and i jointly. Identity rotations skip the row update but are recorded.
//   - Stage 3: return the GivensQR owning a.
//
// Behavior highlights:
//   - a is overwritten and owned by the result; Clone first to keep it.
//   - A zero column below a zero pivot yields identity rotations and leaves the
//     pivot at zero. Rank deficiency therefore surfaces later, in SolveR, as
//     ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrUnderdetermined (wrapped with "QR").
//
// Determinism:
//   - Fixed loop order; bit-reproducible for identical input.
//
// Complexity:
//   - Time O(cols²·rows), Space O(rows·cols) for the rotations.
func Factorize(a *Dense) (*GivensQR, error) {
	if a == nil {
		return nil, matrixErrorf(opQR, ErrNilMatrix)
	}
	if err := ValidateTall(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	rows, cols := a.r, a.c
	data := a.data
	rots := make([]Rotation, 0, NumRotations(rows, cols))

	var (
		i, j, k    int
		jj, ij     int // flat offsets of a[j][j] and a[i][j]
		ik, jk     int // flat offsets of a[i][k] and a[j][k]
		rot        Rotation
		pivot, rjk float64
	)
	for j = 0; j < cols; j++ {
		jj = j*cols + j
		for i = j + 1; i < rows; i++ {
			ij = i*cols + j
			rot, pivot = NewRotation(data[jj], data[ij])
			rots = append(rots, rot)
			if data[ij] == 0 {
				continue
			}
			data[jj] = pivot
			data[ij] = 0

			ik, jk = ij+1, jj+1
			for k = j + 1; k < cols; k, ik, jk = k+1, ik+1, jk+1 {
				rjk = rot.Cos*data[jk] + rot.Sin*data[ik]
				data[ik] = rot.Cos*data[ik] - rot.Sin*data[jk]
				data[jk] = rjk
			}
		}
	}

	return &GivensQR{a: a, rots: rots}, nil
}

// valid reports whether q came out of Factorize.
func (q *GivensQR) valid() error {
	if q == nil || q.a == nil {
		return ErrNotFactorized
	}

	return nil
}

// Rows returns the row count of the factorized matrix.
func (q *GivensQR) Rows() int { return q.a.r }

// Cols returns the column count of the factorized matrix (order of R).
func (q *GivensQR) Cols() int { return q.a.c }

// NumRotations returns the number of recorded rotations.
func (q *GivensQR) NumRotations() int { return len(q.rots) }

// Rotations returns a copy of the recorded rotations in generation order.
func (q *GivensQR) Rotations() []Rotation {
	out := make([]Rotation, len(q.rots))
	copy(out, q.rots)

	return out
}

// R returns a copy of the cols×cols upper-triangular factor.
func (q *GivensQR) R() *Dense {
	n := q.a.c
	r := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: q.a.validateNaNInf}
	copy(r.data, q.a.data[:n*n])

	return r
}

// Factor returns a copy of the whole rows×cols storage after factorization:
// R on top, zeros below.
func (q *GivensQR) Factor() *Dense {
	return q.a.Clone().(*Dense)
}

// ApplyQT overwrites v with Qᵀ·v by replaying the recorded rotations in the
// order they were generated. Entry pairs (j, i) are combined exactly as rows
// j and i were during Factorize.
//
// Errors:
//   - ErrNotFactorized, ErrNilMatrix / ErrDimensionMismatch when len(v) != Rows.
//
// Complexity:
//   - Time O(rows·cols), no allocation.
func (q *GivensQR) ApplyQT(v []float64) error {
	if err := q.valid(); err != nil {
		return matrixErrorf(opApplyQT, err)
	}
	if err := ValidateVecLen(v, q.a.r); err != nil {
		return matrixErrorf(opApplyQT, err)
	}
	q.replay(v)

	return nil
}

// replay is ApplyQT without validation.
func (q *GivensQR) replay(v []float64) {
	rows, cols := q.a.r, q.a.c
	var vj float64
	n := 0
	for j := 0; j < cols; j++ {
		for i := j + 1; i < rows; i++ {
			rot := q.rots[n]
			n++
			vj = rot.Cos*v[j] + rot.Sin*v[i]
			v[i] = rot.Cos*v[i] - rot.Sin*v[j]
			v[j] = vj
		}
	}
}

// SolveR solves R·x = rhs[:cols] by back-substitution into dst.
//
// Implementation:
//   - Stage 1: validate lengths (len(rhs) == Rows, len(dst) == Cols).
//   - Stage 2: for i = cols−1 down to 0,
//     dst[i] = (rhs[i] − Σ_{k>i} R[i][k]·dst[k]) / R[i][i].
//
// Errors:
//   - ErrSingular (with the pivot index) on R[i][i] == 0; dst entries above i
//     are already written in that case and must be discarded.
//   - ErrNotFactorized, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(cols²), no allocation.
func (q *GivensQR) SolveR(rhs, dst []float64) error {
	if err := q.valid(); err != nil {
		return matrixErrorf(opSolveR, err)
	}
	if err := ValidateVecLen(rhs, q.a.r); err != nil {
		return matrixErrorf(opSolveR, err)
	}
	if err := ValidateVecLen(dst, q.a.c); err != nil {
		return matrixErrorf(opSolveR, err)
	}

	cols := q.a.c
	data := q.a.data
	var sum, pivot float64
	for i := cols - 1; i >= 0; i-- {
		sum = rhs[i]
		for k := i + 1; k < cols; k++ {
			sum -= data[i*cols+k] * dst[k]
		}
		pivot = data[i*cols+i]
		if pivot == ZeroPivot {
			return matrixErrorf(opSolveR, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		dst[i] = sum / pivot
	}

	return nil
}

// Solve returns the least-squares solution x minimizing ‖A·x − b‖₂.
// b is not modified. Convenience wrapper over ApplyQT + SolveR that allocates
// its scratch; hot loops should hold their own buffers and call those two.
func (q *GivensQR) Solve(b []float64) ([]float64, error) {
	if err := q.valid(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, q.a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	work := make([]float64, len(b))
	copy(work, b)
	q.replay(work)

	x := make([]float64, q.a.c)
	if err := q.SolveR(work, x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// QT materializes Qᵀ (rows×rows) by replaying the rotations over every unit
// vector: column k of Qᵀ is Qᵀ·e_k. Intended for verification; O(rows²·cols).
func (q *GivensQR) QT() (*Dense, error) {
	if err := q.valid(); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	n := q.a.r
	qt, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	e := make([]float64, n)
	for k := 0; k < n; k++ {
		clear(e)
		e[k] = 1
		q.replay(e)
		for i := 0; i < n; i++ {
			qt.data[i*n+k] = e[i]
		}
	}

	return qt, nil
}
