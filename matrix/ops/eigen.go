// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/eigenplay/matrix"
)

// Eigen computes the real eigenvalues and unit eigenvectors of a general 2x2 matrix.
// Implementation:
//   - Stage 1: validate finite input and tolerance.
//   - Stage 2: solve λ² − tr(A)·λ + det(A) = 0; a discriminant below −tol is
//     rejected as a complex pair, one in [−tol, 0) is clamped to a double root.
//   - Stage 3: for each λ take the row of (A − λI) with the larger norm and
//     return its perpendicular, normalized.
//
// Behavior highlights:
//   - Eigenvalues are ordered descending: vals[0] ≥ vals[1].
//   - For scalar matrices (A = λI) every vector is an eigenvector; the
//     standard basis e0, e1 is returned.
//
// Inputs:
//   - a: any finite 2x2 matrix.
//   - tol: non-negative tolerance on the discriminant and degenerate rows.
//
// Returns:
//   - vals: eigenvalues.
//   - vecs: vecs[k] is a unit eigenvector for vals[k].
//
// Errors:
//   - matrix.ErrNaNInf, matrix.ErrBadTolerance, matrix.ErrComplexEigen.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use to label a freely dragged matrix with its actual eigen-structure.
func Eigen(a matrix.Mat2, tol float64) (vals [2]float64, vecs [2]matrix.Vec2, err error) {
	if err = matrix.ValidateMat2(a); err != nil {
		return vals, vecs, opsErrorf(opEigen, err)
	}
	if err = matrix.ValidateTolerance(tol); err != nil {
		return vals, vecs, opsErrorf(opEigen, err)
	}

	half := a.Trace() / 2
	disc := half*half - a.Det()
	if disc < -tol {
		return vals, vecs, opsErrorf(opEigen, matrix.ErrComplexEigen)
	}
	if disc < 0 {
		disc = 0 // round-off around a double root
	}
	root := math.Sqrt(disc)
	vals = [2]float64{half + root, half - root}

	scale := math.Max(1, a.FrobeniusNorm())
	var k int
	for k = 0; k < 2; k++ {
		vecs[k] = eigenvectorFor(a, vals[k], k, tol*scale)
	}

	return vals, vecs, nil
}

// eigenvectorFor returns a unit vector in the null space of (A − λI).
// fallback selects the standard basis vector used when A − λI ≈ 0.
func eigenvectorFor(a matrix.Mat2, lambda float64, fallback int, tol float64) matrix.Vec2 {
	row0 := matrix.Vec2{X: a[0][0] - lambda, Y: a[0][1]}
	row1 := matrix.Vec2{X: a[1][0], Y: a[1][1] - lambda}

	// The null space is perpendicular to the dominant row.
	best := row0
	if row1.Len() > row0.Len() {
		best = row1
	}
	n := best.Len()
	if n <= tol {
		if fallback == 0 {
			return matrix.Vec2{X: 1}
		}

		return matrix.Vec2{Y: 1}
	}

	return matrix.Vec2{X: -best.Y / n, Y: best.X / n}
}
