// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/surface"
	"github.com/katalvlaran/eigenplay/transform"
)

const (
	windowTitle = "eigenplay"
	canvasSize  = 480
)

// RunWindow opens a desktop window and drives the model from ebiten's game
// loop. It blocks until the window closes or Esc is pressed.
func RunWindow(m *transform.Model, log *slog.Logger, scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("invalid -scale %g: must be finite and > 0", scale)
	}
	g := newGame(m, log, scale)

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(canvasSize, canvasSize)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

// game adapts ebiten's Update/Draw/Layout to a surface.Session. It is both the
// session's InputSource (pointer state gathered in Update) and its
// RenderSurface (the frame kept for Draw).
type game struct {
	session *surface.Session
	view    view
	pending []surface.Event
	lastPos matrix.Vec2
	frame   transform.Frame
	log     *slog.Logger
}

var (
	_ ebiten.Game           = (*game)(nil)
	_ surface.InputSource   = (*game)(nil)
	_ surface.RenderSurface = (*game)(nil)
)

func newGame(m *transform.Model, log *slog.Logger, scale float64) *game {
	g := &game{
		view: view{cx: canvasSize / 2, cy: canvasSize / 2, scale: scale},
		log:  log,
	}
	g.session = surface.NewSession(m, g, g, surface.WithLogger(log))
	g.frame = m.Frame()

	return g
}

// Poll implements surface.InputSource.
func (g *game) Poll() []surface.Event {
	ev := g.pending
	g.pending = nil

	return ev
}

// Render implements surface.RenderSurface. Drawing happens in Draw.
func (g *game) Render(f transform.Frame) error {
	g.frame = f

	return nil
}

func (g *game) push(kind surface.EventKind, p matrix.Vec2) {
	g.pending = append(g.pending, surface.Event{Kind: kind, Pos: p})
}

// Update gathers pointer and key input, then runs one session step.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Debug("reset requested")
		g.push(surface.Reset, matrix.Vec2{})
	}

	mx, my := ebiten.CursorPosition()
	p := g.view.toModel(mx, my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.push(surface.PointerDown, p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && p != g.lastPos:
		g.push(surface.PointerDrag, p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.push(surface.PointerUp, p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.push(surface.PointerSelect, p)
	}
	g.lastPos = p

	return g.session.Step()
}

// Draw renders the last frame.
func (g *game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.view, g.frame)
}

// Layout fixes the logical canvas size; ebiten scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return canvasSize, canvasSize
}

// view maps model space to screen pixels: screen = centre + scale·model.
// Both spaces grow downward in Y.
type view struct {
	cx, cy float64
	scale  float64
}

func (v view) toModel(x, y int) matrix.Vec2 {
	return matrix.Vec2{X: (float64(x) - v.cx) / v.scale, Y: (float64(y) - v.cy) / v.scale}
}

func (v view) toScreen(p matrix.Vec2) (float32, float32) {
	return float32(v.cx + p.X*v.scale), float32(v.cy + p.Y*v.scale)
}

// Palette.
var (
	colBackground = color.RGBA{0x12, 0x14, 0x1c, 0xff}
	colAxis       = color.RGBA{0x3a, 0x3f, 0x4f, 0xff}
	colSample     = color.RGBA{0x70, 0x76, 0x88, 0xff}
	colImage      = color.RGBA{0xe8, 0xe8, 0xf0, 0xff}
	colBasisX     = color.RGBA{0xe0, 0x4f, 0x4f, 0xff}
	colBasisY     = color.RGBA{0x4f, 0xd0, 0x6a, 0xff}
	colEigen      = color.RGBA{0xf2, 0xc9, 0x4c, 0xff}
	colSingular   = [2]color.RGBA{{0x4c, 0xc3, 0xf2, 0xff}, {0xd0, 0x6a, 0xe0, 0xff}}
	colWarn       = color.RGBA{0xff, 0x60, 0x30, 0xff}
)
