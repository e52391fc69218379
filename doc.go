// SPDX-License-Identifier: MIT

// Package eigenplay is an interactive playground for 2x2 linear maps: drag
// the images of the standard basis to edit a matrix directly, or pick two
// eigenvectors on a ring of samples and drag their handles to set the
// eigenvalues, and watch the singular value decomposition follow along.
//
// The module is organized as:
//
//	matrix/       Vec2 and Mat2 value types, validators and sentinel errors
//	matrix/ops/   closed-form 2x2 kernels: SVD, eigen-decomposition and
//	              reconstruction of A from eigen pairs
//	svd/          Provider interface with the closed-form and go.matrix backends
//	transform/    Model: A, the sample ring, the selection/lock state machine
//	              and the per-frame recompute pipeline
//	surface/      input events, pointer hit-testing and the Session step loop
//	cmd/eigenplay ebiten window host and a headless ticker host
//
// The core packages never import a graphics binding; a host implements
// surface.InputSource and surface.RenderSurface and calls Session.Step once
// per frame.
package eigenplay
