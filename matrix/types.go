// SPDX-License-Identifier: MIT

// Package matrix: value types for 2D linear algebra.
// This file intentionally contains ONLY the domain types (Vec2, Mat2) and
// their constructors. Kernels live in methods.go, errors in errors.go,
// guards in validators.go.
package matrix

import (
	"fmt"
	"math"
)

// Dim is the fixed dimension of every vector and matrix in this package.
const Dim = 2

// Vec2 is a vector (or point) in the plane.
// Model space uses the screen orientation of the host: X grows to the right,
// Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Mat2 is a row-major 2x2 real matrix: m[i][j] is row i, column j.
//
//	| m[0][0]  m[0][1] |
//	| m[1][0]  m[1][1] |
//
// Column j is the image of the j-th standard basis vector.
type Mat2 [Dim][Dim]float64

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = Vec2{}
	_ fmt.Stringer = Mat2{}
)

// Identity returns the 2x2 identity matrix.
// Complexity: O(1).
func Identity() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Diag returns diag(a, b).
// Complexity: O(1).
func Diag(a, b float64) Mat2 {
	return Mat2{{a, 0}, {0, b}}
}

// FromColumns builds a matrix whose columns are c0 and c1.
// Complexity: O(1).
func FromColumns(c0, c1 Vec2) Mat2 {
	return Mat2{
		{c0.X, c1.X},
		{c0.Y, c1.Y},
	}
}

// Rotation returns the counter-clockwise rotation by theta radians
// (counter-clockwise in a Y-up frame).
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
func Rotation(theta float64) Mat2 {
	s, c := math.Sincos(theta)

	return Mat2{{c, -s}, {s, c}}
}
