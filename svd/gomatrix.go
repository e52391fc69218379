// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/katalvlaran/eigenplay/matrix"
	gomatrix "github.com/skelterjohn/go.matrix"
)

// GoMatrix delegates to the general dense SVD of github.com/skelterjohn/go.matrix
// and normalizes the result to this package's conventions.
type GoMatrix struct{}

var _ Provider = GoMatrix{}

// Decompose implements Provider.
//
// Implementation:
//   - Stage 1: validate finiteness (the backend does not).
//   - Stage 2: run the dense SVD and copy U, Σ, V into Mat2 values.
//   - Stage 3: order singular values descending, then flip the second
//     column of both U and V when det V < 0 so V is a proper rotation.
//   - Stage 4: set Det from det(a); for rank-deficient input the backend's
//     second U column has an arbitrary sign and is flipped to match.
func (GoMatrix) Decompose(a matrix.Mat2) (Decomposition, error) {
	if err := matrix.ValidateMat2(a); err != nil {
		return Decomposition{}, fmt.Errorf("GoMatrix.Decompose: %w", err)
	}

	dense := gomatrix.MakeDenseMatrix([]float64{a[0][0], a[0][1], a[1][0], a[1][1]}, matrix.Dim, matrix.Dim)
	gu, gs, gv, err := dense.SVD()
	if err != nil {
		return Decomposition{}, fmt.Errorf("GoMatrix.Decompose: %w: %v", ErrBackend, err)
	}

	var (
		d    Decomposition
		i, j int
	)
	for i = 0; i < matrix.Dim; i++ {
		for j = 0; j < matrix.Dim; j++ {
			d.U[i][j] = gu.Get(i, j)
			d.V[i][j] = gv.Get(i, j)
		}
		d.S[i] = gs.Get(i, i)
	}

	if d.S[0] < d.S[1] {
		d.S[0], d.S[1] = d.S[1], d.S[0]
		swapColumns(&d.U)
		swapColumns(&d.V)
	}
	if d.V.Det() < 0 {
		negateColumn(&d.U, 1)
		negateColumn(&d.V, 1)
	}
	orient(a, &d)

	return d, nil
}

func swapColumns(m *matrix.Mat2) {
	m[0][0], m[0][1] = m[0][1], m[0][0]
	m[1][0], m[1][1] = m[1][1], m[1][0]
}

func negateColumn(m *matrix.Mat2, j int) {
	m[0][j], m[1][j] = -m[0][j], -m[1][j]
}
