// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-size 2D linear-algebra primitives used by
// the eigenplay engine: Vec2 (a point or direction in the plane) and Mat2
// (a row-major 2x2 real matrix).
//
// What & Why:
//
//	The engine only ever manipulates 2x2 maps and 16 sample vectors per frame,
//	so the types are plain values (arrays, no heap, no interface dispatch).
//	Copying a Mat2 is the way to take a snapshot; there is no aliasing to guard.
//
// Numeric policy:
//
//   - Every public mutator that ingests external data validates finiteness
//     (ValidateFinite) and returns ErrNaNInf instead of storing NaN/±Inf.
//   - Comparisons use an explicit tolerance (AllClose, DefaultEpsilon).
//
// Complexity:
//
//	All kernels are O(1) with zero allocations.
//
// See package ops for decompositions (SVD, eigen) and the eigen-pair
// reconstruction kernel.
package matrix
