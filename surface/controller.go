// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/transform"
)

// Controller turns pointer events into model operations.
//
// Press priority, first hit wins:
//  1. eigen handles U[sel[i]] (only with two selections),
//  2. basis handles U[Bases[i]],
//  3. ring samples V[n], which select an eigenvector slot.
//
// Within a tier the nearest target inside the hit radius is taken.
type Controller struct {
	m    *transform.Model
	opts Options
}

// NewController binds a controller to m.
func NewController(m *transform.Model, opts ...Option) *Controller {
	return &Controller{m: m, opts: gatherOptions(opts...)}
}

// Dispatch routes ev to the matching handler.
func (c *Controller) Dispatch(ev Event) error {
	switch ev.Kind {
	case PointerDown:
		return c.OnPointerDown(ev.Pos)
	case PointerDrag:
		return c.OnPointerDrag(ev.Pos)
	case PointerUp:
		c.OnPointerUp()
		return nil
	case Reset:
		c.m.Reset()
		return nil
	case PointerSelect:
		return c.OnPointerSelect(ev.Pos)
	default:
		return fmt.Errorf("Dispatch: event %v: %w", ev.Kind, matrix.ErrOutOfRange)
	}
}

// OnPointerDown grabs a handle or selects a sample under p. A press that hits
// nothing is ignored.
func (c *Controller) OnPointerDown(p matrix.Vec2) error {
	if h, ok := c.hitHandle(p); ok {
		c.opts.logger.Debug("handle grabbed", slog.String("handle", h.String()))
		return c.m.Lock(h)
	}

	return c.OnPointerSelect(p)
}

// OnPointerSelect selects the ring sample under p, if any.
func (c *Controller) OnPointerSelect(p matrix.Vec2) error {
	if n, ok := c.nearest(p, c.m.SampleCount(), c.m.Sample); ok {
		return c.m.SelectBasisVector(n)
	}

	return nil
}

// OnPointerDrag moves the locked handle to p. Without a lock it does nothing.
func (c *Controller) OnPointerDrag(p matrix.Vec2) error {
	h, ok := c.m.Locks().Active()
	if !ok {
		return nil
	}
	switch h.Kind {
	case transform.HandleEigen:
		return c.m.DragEigenvector(h.Slot, p)
	case transform.HandleBasis:
		return c.m.SetBasisComponent(h.Slot, p.X, p.Y)
	}

	return nil
}

// OnPointerUp ends any drag.
func (c *Controller) OnPointerUp() {
	c.m.Release()
}

// hitHandle finds the handle under p following the press priority.
func (c *Controller) hitHandle(p matrix.Vec2) (transform.Handle, bool) {
	sel := c.m.Selection()
	if sel.Full() {
		slot, ok := c.nearest(p, 2, func(i int) (matrix.Vec2, error) {
			idx, _ := sel.At(i)
			return c.m.Transformed(idx)
		})
		if ok {
			return transform.Handle{Kind: transform.HandleEigen, Slot: slot}, true
		}
	}

	bases := c.m.Bases()
	slot, ok := c.nearest(p, len(bases), func(i int) (matrix.Vec2, error) {
		return c.m.Transformed(bases[i])
	})
	if ok {
		return transform.Handle{Kind: transform.HandleBasis, Slot: slot}, true
	}

	return transform.Handle{}, false
}

// nearest returns the index in [0, n) whose position is closest to p and
// within the hit radius.
func (c *Controller) nearest(p matrix.Vec2, n int, at func(int) (matrix.Vec2, error)) (int, bool) {
	best, bestDist := -1, c.opts.hitRadius
	for i := 0; i < n; i++ {
		q, err := at(i)
		if err != nil {
			continue
		}
		if d := p.Dist(q); d <= bestDist {
			best, bestDist = i, d
		}
	}

	return best, best >= 0
}
