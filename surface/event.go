// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/transform"
)

// EventKind enumerates the input events the engine understands.
type EventKind int

const (
	PointerDown EventKind = iota + 1
	PointerDrag
	PointerUp
	Reset
	// PointerSelect only picks ring samples, ignoring handles drawn on top
	// of them (the basis handles sit on samples 0 and 12 while A = I).
	PointerSelect
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerDrag:
		return "drag"
	case PointerUp:
		return "up"
	case Reset:
		return "reset"
	case PointerSelect:
		return "select"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one input event. Pos is ignored for PointerUp and Reset.
type Event struct {
	Kind EventKind
	Pos  matrix.Vec2
}

// InputSource yields the events gathered since the previous call, in order.
type InputSource interface {
	Poll() []Event
}

// RenderSurface draws a frame.
type RenderSurface interface {
	Render(f transform.Frame) error
}

// Script is an InputSource that replays a fixed list of per-frame batches:
// the k-th Poll returns Script[k], and nil once exhausted.
type Script struct {
	Frames [][]Event
	next   int
}

var _ InputSource = (*Script)(nil)

// Poll implements InputSource.
func (s *Script) Poll() []Event {
	if s.next >= len(s.Frames) {
		return nil
	}
	batch := s.Frames[s.next]
	s.next++

	return batch
}

// Done reports whether every batch has been replayed.
func (s *Script) Done() bool { return s.next >= len(s.Frames) }
