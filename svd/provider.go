// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/eigenplay/matrix"
)

// Backend names accepted by ByName.
const (
	BackendClosed   = "closed"
	BackendGoMatrix = "gomatrix"
)

// Decomposition is an immutable SVD snapshot of a 2x2 matrix.
// It is a plain value: replacing it is atomic for a single-threaded owner.
type Decomposition struct {
	U   matrix.Mat2 // left singular vectors (columns), orthonormal
	S   [2]float64  // singular values, S[0] ≥ S[1] ≥ 0
	V   matrix.Mat2 // right singular vectors (columns), det V = +1
	Det float64     // det(U): +1 or -1, orientation flag for rendering
}

// Identity is the decomposition of the identity matrix.
func Identity() Decomposition {
	return Decomposition{U: matrix.Identity(), S: [2]float64{1, 1}, V: matrix.Identity(), Det: 1}
}

// orient sets d.Det from the sign of det(a) and makes det(U) agree with it.
// A mismatch can only come from a zero (or roundoff-sized) S[1], where the
// sign of U's second column is arbitrary; flipping it leaves U·diag(S)·Vᵀ
// unchanged up to that roundoff.
func orient(a matrix.Mat2, d *Decomposition) {
	d.Det = 1
	if a.Det() < 0 {
		d.Det = -1
	}
	if (d.U.Det() < 0) != (d.Det < 0) {
		negateColumn(&d.U, 1)
	}
}

// Reconstruct returns U · diag(S) · Vᵀ.
func (d Decomposition) Reconstruct() matrix.Mat2 {
	return d.U.Mul(matrix.Diag(d.S[0], d.S[1])).Mul(d.V.Transpose())
}

// Axis returns the k-th principal axis of the image ellipse, U[:,k]·S[k].
// It is what a renderer draws as the k-th singular vector.
func (d Decomposition) Axis(k int) (matrix.Vec2, error) {
	col, err := d.U.Column(k)
	if err != nil {
		return matrix.Vec2{}, fmt.Errorf("Decomposition.Axis: %w", err)
	}

	return col.Scale(d.S[k]), nil
}

// Provider computes the SVD of a 2x2 matrix.
type Provider interface {
	// Decompose returns the decomposition of a or an error for non-finite input.
	Decompose(a matrix.Mat2) (Decomposition, error)
}

var backends = map[string]func() Provider{
	BackendClosed:   func() Provider { return Closed{} },
	BackendGoMatrix: func() Provider { return GoMatrix{} },
}

// ByName returns the provider registered under name.
func ByName(name string) (Provider, error) {
	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownBackend)
	}

	return ctor(), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
