// SPDX-License-Identifier: MIT

// Package ops provides the decompositions and reconstruction kernels built on
// the matrix.Mat2 value type:
//
//   - SVD: closed-form singular value decomposition of a 2x2 matrix.
//   - Eigen: real eigenvalues/eigenvectors of a general 2x2 matrix.
//   - FromEigenPairs: rebuild the unique 2x2 map with prescribed eigenpairs.
//
// All kernels are O(1), allocation-free and deterministic: the same input
// always yields bit-identical output, which matters because the engine
// recomputes them every frame on slowly changing matrices.
package ops

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSVD            = "SVD"
	opEigen          = "Eigen"
	opFromEigenPairs = "FromEigenPairs"
)

// opsErrorf wraps err with an operation tag, preserving it for errors.Is.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
