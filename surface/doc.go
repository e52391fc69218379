// SPDX-License-Identifier: MIT

// Package surface connects a transform.Model to whatever draws it and
// whatever produces pointer input, without importing any graphics binding.
//
// A host implements two narrow interfaces:
//
//   - InputSource: drains the pointer/reset events collected since the last frame.
//   - RenderSurface: draws one transform.Frame.
//
// Controller performs hit-testing against the model's current handle
// positions and turns raw pointer events into model calls. Session runs one
// frame: drain input, dispatch, Tick, render. The host owns the loop.
//
// Coordinates are model-space offsets from the canvas centre; converting
// screen pixels is the host's job.
package surface
