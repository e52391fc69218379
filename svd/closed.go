// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/matrix/ops"
)

// Closed is the closed-form provider. It has no state and never iterates.
type Closed struct{}

var _ Provider = Closed{}

// Decompose implements Provider.
func (Closed) Decompose(a matrix.Mat2) (Decomposition, error) {
	u, s, v, err := ops.SVD(a)
	if err != nil {
		return Decomposition{}, fmt.Errorf("Closed.Decompose: %w", err)
	}

	d := Decomposition{U: u, S: s, V: v}
	orient(a, &d)

	return d, nil
}
