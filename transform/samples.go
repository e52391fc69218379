// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/eigenplay/matrix"
)

// ringSamples returns count vectors evenly spaced on a circle of radius norm:
// V[n] = norm·(cos θn, sin θn), θn = n·2π/count.
func ringSamples(norm float64, count int) []matrix.Vec2 {
	out := make([]matrix.Vec2, count)
	step := 2 * math.Pi / float64(count)
	for n := range out {
		s, c := math.Sincos(float64(n) * step)
		out[n] = matrix.Vec2{X: norm * c, Y: norm * s}
	}

	return out
}
