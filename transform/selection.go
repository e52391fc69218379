// SPDX-License-Identifier: MIT

package transform

import "fmt"

// Selection is the ordered set of 0–2 distinct sample indices acting as
// eigenvector slots. The zero value is empty.
type Selection struct {
	idx [2]int
	n   int
}

// Len returns how many slots are filled.
func (s Selection) Len() int { return s.n }

// At returns the sample index held by slot i, or false when i is not filled.
func (s Selection) At(i int) (int, bool) {
	if i < 0 || i >= s.n {
		return 0, false
	}

	return s.idx[i], true
}

// Contains reports whether sample index is selected.
func (s Selection) Contains(index int) bool {
	for i := 0; i < s.n; i++ {
		if s.idx[i] == index {
			return true
		}
	}

	return false
}

// Indices returns the selected sample indices in selection order.
func (s Selection) Indices() []int {
	out := make([]int, s.n)
	copy(out, s.idx[:s.n])

	return out
}

// Full reports whether both slots are filled.
func (s Selection) Full() bool { return s.n == len(s.idx) }

// String implements fmt.Stringer.
func (s Selection) String() string {
	return fmt.Sprint(s.Indices())
}

// add appends index; callers check Full and Contains first.
func (s *Selection) add(index int) {
	s.idx[s.n] = index
	s.n++
}

// State is the selection lifecycle position.
type State int

const (
	StateEmpty State = iota
	StateOneSelected
	StateTwoSelected
)

// String implements fmt.Stringer.
func (st State) String() string {
	switch st {
	case StateEmpty:
		return "empty"
	case StateOneSelected:
		return "one-selected"
	case StateTwoSelected:
		return "two-selected"
	default:
		return fmt.Sprintf("State(%d)", int(st))
	}
}
