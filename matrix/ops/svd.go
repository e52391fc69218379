// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/eigenplay/matrix"
)

// SVD computes A = U · diag(s) · Vᵀ for a 2x2 matrix in closed form.
//
// Implementation:
//   - Stage 1: validate finiteness of a.
//   - Stage 2: split a into its conformal and anti-conformal parts:
//     E=(a00+a11)/2, H=(a10−a01)/2 (rotation part) and
//     F=(a00−a11)/2, G=(a10+a01)/2 (reflection part).
//   - Stage 3: Q=|(E,H)|, R=|(F,G)| give s0=Q+R, s1=Q−R and the two angles
//     φ=(atan2(H,E)+atan2(G,F))/2, θ=(atan2(H,E)−atan2(G,F))/2 with
//     A = Rot(φ)·diag(s0,s1)·Rot(θ).
//   - Stage 4: if s1<0 (det A < 0) negate s1 and the second column of U.
//
// Behavior highlights:
//   - s[0] ≥ s[1] ≥ 0 always (Q, R ≥ 0).
//   - det(U) is +1 when det(A) ≥ 0 and −1 when det(A) < 0; V is always a
//     proper rotation. The sign of U therefore only changes when the input
//     flips orientation.
//   - No iteration, no convergence failure.
//
// Returns:
//   - U, V: orthonormal 2x2 matrices (columns are singular vectors).
//   - s: singular values, descending.
//
// Errors:
//   - matrix.ErrNaNInf when a has a non-finite entry.
//
// Determinism:
//   - Pure function of the four entries; bit-identical on repeat calls.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - When atan2(H,E) crosses its ±π branch cut, φ and θ both jump by π, which
//     negates U and V together; the product U·diag(s)·Vᵀ is unaffected.
func SVD(a matrix.Mat2) (u matrix.Mat2, s [2]float64, v matrix.Mat2, err error) {
	if err = matrix.ValidateMat2(a); err != nil {
		return u, s, v, opsErrorf(opSVD, err)
	}

	var (
		e = (a[0][0] + a[1][1]) / 2
		f = (a[0][0] - a[1][1]) / 2
		g = (a[1][0] + a[0][1]) / 2
		h = (a[1][0] - a[0][1]) / 2
	)
	q := math.Hypot(e, h)
	r := math.Hypot(f, g)
	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)
	theta := (a2 - a1) / 2
	phi := (a2 + a1) / 2

	s = [2]float64{q + r, q - r}
	u = matrix.Rotation(phi)
	v = matrix.Rotation(theta).Transpose()

	// Fold a negative second singular value into U so s stays non-negative.
	if s[1] < 0 {
		s[1] = -s[1]
		u[0][1], u[1][1] = -u[0][1], -u[1][1]
	}

	return u, s, v, nil
}
