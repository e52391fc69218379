// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/transform"
)

const (
	pointRadius  = 3
	handleRadius = 6
	lineWidth    = 2
)

// drawFrame paints one frame: axes, the sample ring and its image, the SVD
// axes of the image ellipse, eigen lines and handles, then a text overlay.
func drawFrame(screen *ebiten.Image, v view, f transform.Frame) {
	screen.Fill(colBackground)
	ox, oy := v.toScreen(matrix.Vec2{})
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.StrokeLine(screen, 0, oy, w, oy, 1, colAxis, false)
	vector.StrokeLine(screen, ox, 0, ox, h, 1, colAxis, false)

	for n, s := range f.Samples {
		sx, sy := v.toScreen(s)
		vector.DrawFilledCircle(screen, sx, sy, pointRadius, colSample, true)
		ux, uy := v.toScreen(f.Transformed[n])
		vector.DrawFilledCircle(screen, ux, uy, pointRadius, colImage, true)
	}

	// Image ellipse axes: U[:,k]·s[k] scaled to ring radius.
	for k := 0; k < 2; k++ {
		axis, err := f.Decomposition.Axis(k)
		if err != nil {
			continue
		}
		drawSegment(screen, v, axis.Scale(-f.Norm), axis.Scale(f.Norm), colSingular[k])
	}

	// Eigen lines through the origin along each selected sample.
	for slot := 0; slot < f.Selection.Len(); slot++ {
		idx, _ := f.Selection.At(slot)
		s := f.Samples[idx]
		drawSegment(screen, v, s.Scale(-4), s.Scale(4), colAxis)
		sx, sy := v.toScreen(s)
		vector.StrokeCircle(screen, sx, sy, handleRadius, lineWidth, colEigen, true)
	}

	drawArrow(screen, v, f, 0, colBasisX)
	drawArrow(screen, v, f, 1, colBasisY)

	for slot := 0; slot < 2; slot++ {
		p, ok := f.EigenHandle(slot)
		if !ok {
			break
		}
		drawSegment(screen, v, matrix.Vec2{}, p, colEigen)
		px, py := v.toScreen(p)
		vector.DrawFilledCircle(screen, px, py, handleRadius, colEigen, true)
		if f.Locks.Eigen[slot] {
			vector.StrokeCircle(screen, px, py, handleRadius+3, 1, colImage, true)
		}
	}

	ebitenutil.DebugPrint(screen, overlay(f))
	if f.Unstable {
		vector.DrawFilledRect(screen, 0, h-4, w, 4, colWarn, false)
	}
}

// drawArrow draws basis handle slot from the origin to U[Bases[slot]].
func drawArrow(screen *ebiten.Image, v view, f transform.Frame, slot int, c color.Color) {
	p, ok := f.BasisHandle(slot)
	if !ok {
		return
	}
	drawSegment(screen, v, matrix.Vec2{}, p, c)
	px, py := v.toScreen(p)
	vector.DrawFilledCircle(screen, px, py, handleRadius, c, true)
	if f.Locks.Basis[slot] {
		vector.StrokeCircle(screen, px, py, handleRadius+3, 1, colImage, true)
	}
}

func drawSegment(screen *ebiten.Image, v view, a, b matrix.Vec2, c color.Color) {
	ax, ay := v.toScreen(a)
	bx, by := v.toScreen(b)
	vector.StrokeLine(screen, ax, ay, bx, by, lineWidth, c, true)
}

// overlay formats the text panel shown in the top-left corner.
func overlay(f transform.Frame) string {
	var b strings.Builder
	a := f.A
	d := f.Decomposition
	fmt.Fprintf(&b, "A = | %6.2f %6.2f |\n    | %6.2f %6.2f |\n", a[0][0], a[0][1], a[1][0], a[1][1])
	fmt.Fprintf(&b, "s = (%.2f, %.2f)  det U = %+.0f\n", d.S[0], d.S[1], d.Det)
	fmt.Fprintf(&b, "state: %s %v\n", f.State, f.Selection)
	if f.Selection.Full() {
		fmt.Fprintf(&b, "eigenvalues: %.2f, %.2f\n", f.EigenValues[0], f.EigenValues[1])
	} else if f.Eigen.Real {
		fmt.Fprintf(&b, "eig(A): %.2f, %.2f\n", f.Eigen.Values[0], f.Eigen.Values[1])
	} else {
		b.WriteString("eig(A): complex\n")
	}
	if f.Unstable {
		b.WriteString("UNSTABLE: reconstruction refused\n")
	}
	b.WriteString("right-click: pick eigenvector  R: reset  Esc: quit")

	return b.String()
}
