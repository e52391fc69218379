// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/matrix/ops"
	"github.com/katalvlaran/eigenplay/svd"
)

// EigenInfo is the actual eigen-structure of A, which differs from the
// selected eigenvectors whenever A was edited through a basis handle.
type EigenInfo struct {
	Real    bool           // false when A has a complex eigenvalue pair
	Values  [2]float64     // descending; zero when !Real
	Vectors [2]matrix.Vec2 // unit eigenvectors; zero when !Real
}

// Frame is a read-only snapshot of everything a renderer draws.
// Slices are copies; mutating them does not affect the model.
type Frame struct {
	A             matrix.Mat2
	Norm          float64
	Bases         [2]int
	Samples       []matrix.Vec2 // V[n]
	Transformed   []matrix.Vec2 // U[n] = A·V[n]
	Selection     Selection
	EigenValues   [2]float64
	Locks         LockState
	Decomposition svd.Decomposition
	Eigen         EigenInfo
	State         State
	Unstable      bool
}

// Frame captures the current state. Call it after Tick.
func (m *Model) Frame() Frame {
	f := Frame{
		A:             m.a,
		Norm:          m.opts.norm,
		Bases:         m.opts.bases,
		Samples:       append([]matrix.Vec2(nil), m.samples...),
		Transformed:   append([]matrix.Vec2(nil), m.transformed...),
		Selection:     m.selection,
		EigenValues:   m.eigenValues,
		Locks:         m.locks,
		Decomposition: m.dec,
		State:         m.State(),
		Unstable:      m.unstable,
	}
	if vals, vecs, err := ops.Eigen(m.a, matrix.DefaultEpsilon); err == nil {
		f.Eigen = EigenInfo{Real: true, Values: vals, Vectors: vecs}
	}

	return f
}

// EigenHandle returns the on-screen position of eigen handle slot, U[sel[slot]].
func (f Frame) EigenHandle(slot int) (matrix.Vec2, bool) {
	idx, ok := f.Selection.At(slot)
	if !ok || !f.Selection.Full() {
		return matrix.Vec2{}, false
	}

	return f.Transformed[idx], true
}

// BasisHandle returns the on-screen position of basis handle slot, U[Bases[slot]].
func (f Frame) BasisHandle(slot int) (matrix.Vec2, bool) {
	if slot < 0 || slot >= len(f.Bases) {
		return matrix.Vec2{}, false
	}

	return f.Transformed[f.Bases[slot]], true
}
