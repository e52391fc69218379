// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/matrix/ops"
	"github.com/katalvlaran/eigenplay/svd"
)

// Operation name constants for unified error wrapping.
const (
	opNew                    = "New"
	opSelectBasisVector      = "SelectBasisVector"
	opSetBasisComponent      = "SetBasisComponent"
	opSetEigenValue          = "SetEigenValue"
	opDragEigenvector        = "DragEigenvector"
	opLock                   = "Lock"
	opRecomputeFromEigenData = "RecomputeFromEigenData"
	opRecomputeDecomposition = "RecomputeDecomposition"
)

// modelErrorf wraps err with an operation tag, preserving it for errors.Is.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Model owns every piece of interaction state. Create it with New.
type Model struct {
	opts Options
	log  *slog.Logger

	samples     []matrix.Vec2 // V[n], fixed after New
	transformed []matrix.Vec2 // U[n] = A·V[n], refreshed by RecomputeTransformedSet

	a           matrix.Mat2
	selection   Selection
	eigenValues [2]float64
	locks       LockState
	dec         svd.Decomposition
	unstable    bool
}

// New builds a model in its initial state: A = I, nothing selected,
// eigenvalues (1, 1), no locks, decomposition of I.
//
// Errors:
//   - ErrInvalidConfig when a basis index is outside the sample ring.
//   - any error of the configured SVD provider on the identity.
func New(opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, modelErrorf(opNew, fmt.Errorf("bases %v with %d samples: %w", o.bases, o.sampleCount, err))
	}

	m := &Model{
		opts:        o,
		log:         o.logger,
		samples:     ringSamples(o.norm, o.sampleCount),
		transformed: make([]matrix.Vec2, o.sampleCount),
	}
	m.resetState()
	if err := m.RecomputeDecomposition(); err != nil {
		return nil, modelErrorf(opNew, err)
	}
	m.RecomputeTransformedSet()

	return m, nil
}

// resetState restores the scalar state without touching derived data.
func (m *Model) resetState() {
	m.a = matrix.Identity()
	m.selection = Selection{}
	m.eigenValues = [2]float64{DefaultEigenValue, DefaultEigenValue}
	m.locks = LockState{}
	m.unstable = false
}

// ---------- Per-frame pipeline ----------

// Tick runs one frame: rebuild A from the eigen data when two vectors are
// selected, then refresh the transformed set. The returned error comes from
// the reconstruction; the transformed set is refreshed regardless.
func (m *Model) Tick() error {
	err := m.RecomputeFromEigenData()
	m.RecomputeTransformedSet()

	return err
}

// RecomputeFromEigenData rebuilds A from the selected eigenvectors
// u = V[sel0], v = V[sel1] and the eigenvalues (l1, l2), so that A·u = l1·u
// and A·v = l2·v. It is a no-op unless exactly two vectors are selected.
//
// Errors:
//   - ErrSingularBasis (also matching matrix.ErrSingular) when |u×v| ≤ eps·Norm².
//     A keeps its previous value and Unstable reports true until the next
//     successful reconstruction or Reset.
func (m *Model) RecomputeFromEigenData() error {
	if !m.selection.Full() {
		return nil
	}

	u := m.samples[m.selection.idx[0]]
	v := m.samples[m.selection.idx[1]]
	a, err := ops.FromEigenPairs(u, v, m.eigenValues[0], m.eigenValues[1], m.singularTol())
	if err != nil {
		if !m.unstable {
			m.log.Warn("eigen reconstruction refused",
				slog.Any("selection", m.selection.Indices()),
				slog.Any("eigenvalues", m.eigenValues),
				slog.Any("err", err))
		}
		m.unstable = true
		if errors.Is(err, matrix.ErrSingular) {
			return fmt.Errorf("%s: %w: %w", opRecomputeFromEigenData, ErrSingularBasis, err)
		}

		return modelErrorf(opRecomputeFromEigenData, err)
	}

	m.unstable = false
	if a == m.a {
		return nil
	}
	m.a = a

	return m.RecomputeDecomposition()
}

// RecomputeTransformedSet refreshes U[n] = A·V[n] for every sample.
func (m *Model) RecomputeTransformedSet() {
	for n, v := range m.samples {
		m.transformed[n] = m.a.MulVec(v)
	}
}

// RecomputeDecomposition replaces the SVD snapshot with the provider's result
// for the current A. On error the previous snapshot is kept.
func (m *Model) RecomputeDecomposition() error {
	d, err := m.opts.provider.Decompose(m.a)
	if err != nil {
		return modelErrorf(opRecomputeDecomposition, err)
	}
	m.dec = d

	return nil
}

// Reset returns to the initial state (A = I, empty selection, eigenvalues
// (1, 1), no locks) and recomputes every derived value before returning, so
// the next frame never observes stale data.
func (m *Model) Reset() {
	m.resetState()
	if err := m.RecomputeDecomposition(); err != nil {
		// The built-in providers never fail on the identity.
		m.log.Error("reset: decomposition of identity failed", slog.Any("err", err))
		m.dec = svd.Identity()
	}
	m.RecomputeTransformedSet()
	m.log.Info("model reset")
}

// ---------- Selection ----------

// SelectBasisVector appends sample index to the selection.
//
// Behavior highlights:
//   - A duplicate or a third selection is silently ignored (nil error).
//   - The second selection is refused with ErrSingularBasis when it is
//     linearly dependent on the first (e.g. opposite points of the ring).
//
// Errors:
//   - matrix.ErrOutOfRange for an index outside the ring.
//   - ErrSingularBasis as above; the selection is unchanged.
func (m *Model) SelectBasisVector(index int) error {
	if err := matrix.ValidateIndex(index, len(m.samples)); err != nil {
		return modelErrorf(opSelectBasisVector, err)
	}
	if m.selection.Full() || m.selection.Contains(index) {
		m.log.Debug("selection ignored", slog.Int("index", index), slog.Any("selection", m.selection.Indices()))
		return nil
	}
	if m.selection.Len() == 1 {
		first := m.samples[m.selection.idx[0]]
		if math.Abs(first.Cross(m.samples[index])) <= m.singularTol() {
			m.log.Warn("selection refused: dependent eigenvector pair",
				slog.Int("first", m.selection.idx[0]), slog.Int("index", index))
			return modelErrorf(opSelectBasisVector, fmt.Errorf("indices %d and %d: %w", m.selection.idx[0], index, ErrSingularBasis))
		}
	}
	m.selection.add(index)
	m.log.Debug("vector selected", slog.Int("index", index), slog.String("state", m.State().String()))

	return nil
}

// singularTol is the absolute threshold on |u×v| for ring samples.
func (m *Model) singularTol() float64 {
	return m.opts.eps * m.opts.norm * m.opts.norm
}

// ---------- Direct edits ----------

// SetBasisComponent rewrites column slot of A from a dragged basis handle:
// column = (dx, dy)/Norm · (−1)^slot. The sign alternation matches the default
// handles, V[0] = (Norm, 0) and V[12] = (0, −Norm).
//
// Errors:
//   - matrix.ErrOutOfRange for slot ∉ {0, 1}; matrix.ErrNaNInf for non-finite deltas.
func (m *Model) SetBasisComponent(slot int, dx, dy float64) error {
	if err := matrix.ValidateIndex(slot, matrix.Dim); err != nil {
		return modelErrorf(opSetBasisComponent, err)
	}
	sign := 1.0
	if slot == 1 {
		sign = -1.0
	}
	col := matrix.Vec2{X: dx / m.opts.norm * sign, Y: dy / m.opts.norm * sign}
	if err := m.a.SetColumn(slot, col); err != nil {
		return modelErrorf(opSetBasisComponent, err)
	}

	return m.RecomputeDecomposition()
}

// SetEigenValue sets the eigenvalue of slot. A is rebuilt on the next Tick.
//
// Errors:
//   - matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (m *Model) SetEigenValue(slot int, l float64) error {
	if err := matrix.ValidateIndex(slot, matrix.Dim); err != nil {
		return modelErrorf(opSetEigenValue, err)
	}
	if err := matrix.ValidateFinite(l); err != nil {
		return modelErrorf(opSetEigenValue, err)
	}
	m.eigenValues[slot] = l

	return nil
}

// DragEigenvector sets the eigenvalue of slot from a dragged handle position
// p: the projection of p onto the slot's eigenvector, λ = (p·v)/(v·v), so the
// handle A·v = λ·v lands as close to p as the eigen-line allows.
//
// Errors:
//   - ErrNoEigenBasis unless two vectors are selected.
//   - matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (m *Model) DragEigenvector(slot int, p matrix.Vec2) error {
	if !m.selection.Full() {
		return modelErrorf(opDragEigenvector, ErrNoEigenBasis)
	}
	if err := matrix.ValidateIndex(slot, matrix.Dim); err != nil {
		return modelErrorf(opDragEigenvector, err)
	}
	v := m.samples[m.selection.idx[slot]]

	return m.SetEigenValue(slot, p.Dot(v)/v.Dot(v))
}

// ---------- Locks ----------

// Lock marks h as the handle being dragged, clearing any other lock.
//
// Errors:
//   - matrix.ErrOutOfRange for a bad slot or kind.
//   - ErrNoEigenBasis when locking an eigen handle without two selections.
func (m *Model) Lock(h Handle) error {
	if err := matrix.ValidateIndex(h.Slot, matrix.Dim); err != nil {
		return modelErrorf(opLock, err)
	}
	next := LockState{}
	switch h.Kind {
	case HandleEigen:
		if !m.selection.Full() {
			return modelErrorf(opLock, ErrNoEigenBasis)
		}
		next.Eigen[h.Slot] = true
	case HandleBasis:
		next.Basis[h.Slot] = true
	default:
		return modelErrorf(opLock, fmt.Errorf("kind %v: %w", h.Kind, matrix.ErrOutOfRange))
	}
	m.locks = next

	return nil
}

// Release clears every lock flag, ending any drag.
func (m *Model) Release() {
	m.locks = LockState{}
}

// ---------- Read access ----------

// A returns the current transformation matrix.
func (m *Model) A() matrix.Mat2 { return m.a }

// Selection returns the current selection.
func (m *Model) Selection() Selection { return m.selection }

// EigenValues returns the eigenvalues of the two slots.
func (m *Model) EigenValues() [2]float64 { return m.eigenValues }

// Locks returns the current lock flags.
func (m *Model) Locks() LockState { return m.locks }

// Decomposition returns the latest SVD snapshot.
func (m *Model) Decomposition() svd.Decomposition { return m.dec }

// Unstable reports whether the last eigen reconstruction was refused.
func (m *Model) Unstable() bool { return m.unstable }

// Norm returns the ring radius.
func (m *Model) Norm() float64 { return m.opts.norm }

// Bases returns the sample indices of the two standard basis handles.
func (m *Model) Bases() [2]int { return m.opts.bases }

// SampleCount returns the number of sample vectors.
func (m *Model) SampleCount() int { return len(m.samples) }

// Sample returns V[n].
func (m *Model) Sample(n int) (matrix.Vec2, error) {
	if err := matrix.ValidateIndex(n, len(m.samples)); err != nil {
		return matrix.Vec2{}, err
	}

	return m.samples[n], nil
}

// Transformed returns U[n] as of the last RecomputeTransformedSet.
func (m *Model) Transformed(n int) (matrix.Vec2, error) {
	if err := matrix.ValidateIndex(n, len(m.transformed)); err != nil {
		return matrix.Vec2{}, err
	}

	return m.transformed[n], nil
}

// State returns the selection lifecycle position.
func (m *Model) State() State {
	return State(m.selection.Len())
}
