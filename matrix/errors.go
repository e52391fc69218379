// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matrix and
// matrix/ops. Callers match them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Return the sentinel directly from validators;
// wrap with fmt.Errorf("ctx: %w", ErrX) at the operation boundary.

var (
	// ErrOutOfRange indicates that an index (row, column, slot) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a determinant is zero within tolerance and
	// the operation needs to divide by it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrComplexEigen is returned when a real 2x2 matrix has a complex
	// conjugate pair of eigenvalues (rotation-like maps).
	ErrComplexEigen = errors.New("matrix: eigenvalues are complex")

	// ErrBadTolerance signals a negative or non-finite tolerance argument.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)
