// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/eigenplay/transform"
)

// Session wires a model, an input source and a render surface together.
type Session struct {
	model *transform.Model
	ctrl  *Controller
	in    InputSource
	out   RenderSurface
	log   *slog.Logger
	frame uint64
}

// NewSession builds a session. Options are shared with its Controller.
func NewSession(m *transform.Model, in InputSource, out RenderSurface, opts ...Option) *Session {
	o := gatherOptions(opts...)

	return &Session{
		model: m,
		ctrl:  NewController(m, opts...),
		in:    in,
		out:   out,
		log:   o.logger,
	}
}

// Step runs one frame: drain input, dispatch each event, Tick, render.
//
// Input and reconstruction errors are user-level (refused selection, dragging
// into overflow) and only logged; the frame still renders. A render error is
// returned because the host cannot continue without its surface.
func (s *Session) Step() error {
	for _, ev := range s.in.Poll() {
		if err := s.ctrl.Dispatch(ev); err != nil {
			s.log.Debug("input refused", slog.String("event", ev.Kind.String()), slog.Any("err", err))
		}
	}
	if err := s.model.Tick(); err != nil {
		s.log.Debug("tick", slog.Uint64("frame", s.frame), slog.Any("err", err))
	}
	s.frame++
	if err := s.out.Render(s.model.Frame()); err != nil {
		return fmt.Errorf("Session.Step: render frame %d: %w", s.frame, err)
	}

	return nil
}

// Frames returns how many frames Step has run.
func (s *Session) Frames() uint64 { return s.frame }

// Model returns the driven model.
func (s *Session) Model() *transform.Model { return s.model }
