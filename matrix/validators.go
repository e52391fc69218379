// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the numeric guards.
//  - Return plain sentinel errors (wrapped only with the validator tag) so
//    call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateFinite ensures every value is finite.
//
// Inputs: any number of scalars.
// Returns ErrNaNInf on the first NaN/±Inf.
// Complexity: O(len(xs)).
// AI-Hints: Call before storing pointer-derived values into model state.
func ValidateFinite(xs ...float64) error {
	for _, x := range xs {
		if isNonFinite(x) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateMat2 ensures all four entries of m are finite.
// Complexity: O(1).
func ValidateMat2(m Mat2) error {
	if err := ValidateFinite(m[0][0], m[0][1], m[1][0], m[1][1]); err != nil {
		return validatorErrorf("ValidateMat2", err)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
//
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateTolerance ensures tol is finite and non-negative.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}
