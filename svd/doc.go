// SPDX-License-Identifier: MIT

// Package svd turns a 2x2 transformation matrix into the read-only
// Decomposition snapshot the visualization draws: left singular vectors U,
// singular values S, right singular vectors V and the orientation flag Det.
//
// Two interchangeable providers implement the Provider interface:
//
//   - Closed: the closed-form 2x2 kernel from matrix/ops (default).
//   - GoMatrix: the general JAMA-style SVD of github.com/skelterjohn/go.matrix,
//     normalized to the same conventions.
//
// Conventions shared by every provider:
//
//   - S[0] ≥ S[1] ≥ 0.
//   - V is a proper rotation (det V = +1); Det = det(U) = ±1 follows the
//     orientation of the input.
//   - A = U · diag(S) · Vᵀ.
package svd
