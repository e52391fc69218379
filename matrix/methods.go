// SPDX-License-Identifier: MIT

// Package matrix - kernels on Vec2 and Mat2.
//
// Purpose:
//   - Small, allocation-free kernels used once per sample per frame.
//   - Safe public surface: indexers return errors instead of panicking.
//
// Complexity quicksheet:
//   - Every kernel here is O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxColumn    = "Column"
	ctxSetColumn = "SetColumn"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// DefaultEpsilon is the absolute tolerance used by structural comparisons
// (AllClose, singularity guards) unless the caller passes its own.
const DefaultEpsilon = 1e-9

// mat2Errorf attaches method context and the offending column to a sentinel.
func mat2Errorf(method string, col int, err error) error {
	return fmt.Errorf("Mat2.%s(%d): %w", method, col, err)
}

// ---------- Vec2 ----------

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns alpha * v.
func (v Vec2) Scale(alpha float64) Vec2 { return Vec2{alpha * v.X, alpha * v.Y} }

// Dot returns the inner product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar 2D cross product v.X*w.Y - v.Y*w.X, which is the
// determinant of the matrix with columns v and w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns |v - w|.
func (v Vec2) Dist(w Vec2) float64 { return math.Hypot(v.X-w.X, v.Y-w.Y) }

// Perp returns v rotated by +90° in a Y-up frame: (-Y, X).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool { return !isNonFinite(v.X) && !isNonFinite(v.Y) }

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// ---------- Mat2 ----------

// MulVec computes y = m·v.
// Complexity: O(1), 4 multiplications.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// Mul performs the matrix product m × n.
// Complexity: O(1), 8 multiplications.
func (m Mat2) Mul(n Mat2) Mat2 {
	var (
		out     Mat2
		i, j, k int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			for k = 0; k < Dim; k++ {
				out[i][j] += m[i][k] * n[k][j] // fixed i→j→k order
			}
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Scale returns alpha·m.
func (m Mat2) Scale(alpha float64) Mat2 {
	return Mat2{
		{alpha * m[0][0], alpha * m[0][1]},
		{alpha * m[1][0], alpha * m[1][1]},
	}
}

// Det returns the determinant m00·m11 − m01·m10.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Trace returns m00 + m11.
func (m Mat2) Trace() float64 {
	return m[0][0] + m[1][1]
}

// FrobeniusNorm returns sqrt(Σ m[i][j]²).
func (m Mat2) FrobeniusNorm() float64 {
	return math.Sqrt(m[0][0]*m[0][0] + m[0][1]*m[0][1] + m[1][0]*m[1][0] + m[1][1]*m[1][1])
}

// Column returns column j as a vector.
//
// Errors:
//   - ErrOutOfRange when j is not 0 or 1.
func (m Mat2) Column(j int) (Vec2, error) {
	if err := ValidateIndex(j, Dim); err != nil {
		return Vec2{}, mat2Errorf(ctxColumn, j, err)
	}

	return Vec2{m[0][j], m[1][j]}, nil
}

// SetColumn overwrites column j with v.
//
// Implementation:
//   - Stage 1: validate j and finiteness of v.
//   - Stage 2: write both rows of the column.
//
// Errors:
//   - ErrOutOfRange when j is not 0 or 1.
//   - ErrNaNInf when v has a non-finite component; m is left untouched.
func (m *Mat2) SetColumn(j int, v Vec2) error {
	if err := ValidateIndex(j, Dim); err != nil {
		return mat2Errorf(ctxSetColumn, j, err)
	}
	if err := ValidateFinite(v.X, v.Y); err != nil {
		return mat2Errorf(ctxSetColumn, j, err)
	}
	m[0][j] = v.X
	m[1][j] = v.Y

	return nil
}

// IsFinite reports whether every entry is finite.
func (m Mat2) IsFinite() bool {
	return ValidateMat2(m) == nil
}

// AllClose reports whether |a[i][j] − b[i][j]| ≤ tol for every entry.
// NaN never compares close.
func AllClose(a, b Mat2, tol float64) bool {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if !(math.Abs(a[i][j]-b[i][j]) <= tol) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer as "[a, b] [c, d]".
func (m Mat2) String() string {
	var s string
	var i int
	for i = 0; i < Dim; i++ {
		if i > 0 {
			s += " "
		}
		s += _fmtRowOpen + fmt.Sprintf("%g", m[i][0]) + _fmtSep + fmt.Sprintf("%g", m[i][1]) + _fmtRowClose
	}

	return s
}
