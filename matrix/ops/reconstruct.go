// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/eigenplay/matrix"
)

// FromEigenPairs returns the 2x2 matrix A with A·u = l1·u and A·v = l2·v.
//
// Implementation:
//   - Stage 1: validate finite inputs and tolerance.
//   - Stage 2: d = u1·v2 − u2·v1 (determinant of the basis pair P = [u v]);
//     reject |d| ≤ tol.
//   - Stage 3: expand A = P·diag(l1,l2)·P⁻¹ entry by entry:
//     A00 = (v2·l1·u1 − u2·l2·v1)/d,  A01 = (u1·l2·v1 − v1·l1·u1)/d,
//     A10 = (v2·l1·u2 − u2·l2·v2)/d,  A11 = (u1·l2·v2 − v1·l1·u2)/d.
//
// Behavior highlights:
//   - u=(1,0), v=(0,1) gives diag(l1, l2) exactly.
//   - Scaling u or v by a non-zero factor does not change A.
//
// Inputs:
//   - u, v: eigenvectors (any length).
//   - l1, l2: eigenvalues for u and v.
//   - tol: absolute threshold on |d|; pass eps·|u|·|v| for a scale-free guard.
//
// Errors:
//   - matrix.ErrNaNInf, matrix.ErrBadTolerance.
//   - matrix.ErrSingular when u and v are linearly dependent within tol.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromEigenPairs(u, v matrix.Vec2, l1, l2, tol float64) (matrix.Mat2, error) {
	if err := matrix.ValidateFinite(u.X, u.Y, v.X, v.Y, l1, l2); err != nil {
		return matrix.Mat2{}, opsErrorf(opFromEigenPairs, err)
	}
	if err := matrix.ValidateTolerance(tol); err != nil {
		return matrix.Mat2{}, opsErrorf(opFromEigenPairs, err)
	}

	u1, u2 := u.X, u.Y
	v1, v2 := v.X, v.Y
	d := u1*v2 - u2*v1
	if math.Abs(d) <= tol {
		return matrix.Mat2{}, opsErrorf(opFromEigenPairs, matrix.ErrSingular)
	}

	a := matrix.Mat2{
		{(v2*l1*u1 - u2*l2*v1) / d, (u1*l2*v1 - v1*l1*u1) / d},
		{(v2*l1*u2 - u2*l2*v2) / d, (u1*l2*v2 - v1*l1*u2) / d},
	}
	// Huge eigenvalues over a nearly singular pair can still overflow.
	if err := matrix.ValidateMat2(a); err != nil {
		return matrix.Mat2{}, opsErrorf(opFromEigenPairs, err)
	}

	return a, nil
}
