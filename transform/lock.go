// SPDX-License-Identifier: MIT

package transform

import "fmt"

// HandleKind distinguishes the two families of draggable handles.
type HandleKind int

const (
	// HandleEigen is the transformed tip of a selected eigenvector; dragging
	// it changes that slot's eigenvalue.
	HandleEigen HandleKind = iota + 1

	// HandleBasis is the transformed tip of a standard basis sample; dragging
	// it rewrites the matching column of A.
	HandleBasis
)

// String implements fmt.Stringer.
func (k HandleKind) String() string {
	switch k {
	case HandleEigen:
		return "eigen"
	case HandleBasis:
		return "basis"
	default:
		return fmt.Sprintf("HandleKind(%d)", int(k))
	}
}

// Handle identifies one draggable handle: its kind and slot (0 or 1).
type Handle struct {
	Kind HandleKind
	Slot int
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("%s[%d]", h.Kind, h.Slot)
}

// LockState records which handle is being dragged. At most one flag is set.
type LockState struct {
	Eigen [2]bool
	Basis [2]bool
}

// Active returns the locked handle, if any.
func (l LockState) Active() (Handle, bool) {
	for slot := 0; slot < 2; slot++ {
		if l.Eigen[slot] {
			return Handle{Kind: HandleEigen, Slot: slot}, true
		}
		if l.Basis[slot] {
			return Handle{Kind: HandleBasis, Slot: slot}, true
		}
	}

	return Handle{}, false
}

// Any reports whether a drag is in progress.
func (l LockState) Any() bool {
	_, ok := l.Active()

	return ok
}
