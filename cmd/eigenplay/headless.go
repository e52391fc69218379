// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/surface"
	"github.com/katalvlaran/eigenplay/transform"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled  bool
	Hz       int
	Ticks    uint64
	LogEvery int
}

// logSurface is a RenderSurface that logs a summary of every n-th frame.
type logSurface struct {
	log   *slog.Logger
	every int
	count int
	last  transform.Frame
}

var _ surface.RenderSurface = (*logSurface)(nil)

func (s *logSurface) Render(f transform.Frame) error {
	s.last = f
	s.count++
	if s.every <= 0 || s.count%s.every != 0 {
		return nil
	}
	d := f.Decomposition
	s.log.Info("frame",
		slog.Int("n", s.count),
		slog.String("state", f.State.String()),
		slog.String("A", f.A.String()),
		slog.Float64("s0", d.S[0]),
		slog.Float64("s1", d.S[1]),
		slog.Float64("det", d.Det),
		slog.Bool("unstable", f.Unstable))

	return nil
}

// demoScript picks V[0] and V[4] as eigenvectors, then drags the second
// eigen handle outward and the first one through the origin.
func demoScript(m *transform.Model) *surface.Script {
	v0, _ := m.Sample(0)
	v4, _ := m.Sample(4)
	frames := [][]surface.Event{
		{{Kind: surface.PointerSelect, Pos: v0}},
		{{Kind: surface.PointerSelect, Pos: v4}},
		{{Kind: surface.PointerDown, Pos: v4}},
	}
	const steps = 60
	for k := 1; k <= steps; k++ {
		frames = append(frames, []surface.Event{{Kind: surface.PointerDrag, Pos: v4.Scale(1 + 2*float64(k)/steps)}})
	}
	frames = append(frames,
		[]surface.Event{{Kind: surface.PointerUp}},
		[]surface.Event{{Kind: surface.PointerDown, Pos: v0}},
	)
	for k := 1; k <= steps; k++ {
		frames = append(frames, []surface.Event{{Kind: surface.PointerDrag, Pos: v0.Scale(1 - 2*float64(k)/steps).Add(matrix.Vec2{Y: 4})}})
	}
	frames = append(frames, []surface.Event{{Kind: surface.PointerUp}})

	return &surface.Script{Frames: frames}
}

// RunHeadless drives the model from a ticker until ctx is done or cfg.Ticks
// frames have run.
func RunHeadless(ctx context.Context, m *transform.Model, log *slog.Logger, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	out := &logSurface{log: log, every: cfg.LogEvery}
	session := surface.NewSession(m, demoScript(m), out, surface.WithLogger(log))

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := session.Step(); err != nil {
				return err
			}
			if cfg.Ticks > 0 && session.Frames() >= cfg.Ticks {
				log.Info("headless run finished", slog.Uint64("frames", session.Frames()), slog.String("A", out.last.A.String()))
				return nil
			}
		}
	}
}
