// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrSingularBasis is returned when the two eigenvector slots would hold
	// linearly dependent sample vectors, leaving the eigen reconstruction
	// undefined (division by a zero determinant).
	ErrSingularBasis = errors.New("transform: eigenvector pair is linearly dependent")

	// ErrNoEigenBasis is returned when an eigen handle is used before two
	// vectors are selected.
	ErrNoEigenBasis = errors.New("transform: two eigenvectors must be selected")

	// ErrInvalidConfig signals an option combination that cannot build a model.
	ErrInvalidConfig = errors.New("transform: invalid configuration")
)
