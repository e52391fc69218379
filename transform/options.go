// SPDX-License-Identifier: MIT

// Package transform: functional configuration for Model.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     cross-field problems (bases vs sample count) surface as ErrInvalidConfig from New.
package transform

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/eigenplay/svd"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNorm is the radius of the sample ring in model units; basis-handle
	// drags are divided by it to get matrix entries.
	DefaultNorm = 50.0

	// DefaultSampleCount is the number of sample vectors on the ring.
	DefaultSampleCount = 16

	// DefaultBasisX is the sample index rendered as the first standard basis
	// vector (angle 0, pointing right).
	DefaultBasisX = 0

	// DefaultBasisY is the sample index rendered as the second standard basis
	// vector (angle 3π/2, pointing up on a Y-down screen).
	DefaultBasisY = 12

	// DefaultEpsilon is the relative tolerance of the singular-basis guard:
	// a pair is rejected when |u×v| ≤ eps·Norm².
	DefaultEpsilon = 1e-9

	// DefaultEigenValue is the eigenvalue assigned to a freshly selected slot.
	DefaultEigenValue = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNormInvalid     = "transform: WithNorm: norm must be finite and > 0"
	panicSamplesInvalid  = "transform: WithSampleCount: count must be >= 2"
	panicBasesInvalid    = "transform: WithBases: indices must be distinct and >= 0"
	panicEpsilonInvalid  = "transform: WithEpsilon: eps must be finite, non-negative"
	panicProviderInvalid = "transform: WithProvider: provider must not be nil"
	panicLoggerInvalid   = "transform: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; New consumes ...Option.
type Options struct {
	norm        float64      // > 0; DefaultNorm
	sampleCount int          // >= 2; DefaultSampleCount
	bases       [2]int       // distinct sample indices; {DefaultBasisX, DefaultBasisY}
	eps         float64      // >= 0; DefaultEpsilon
	provider    svd.Provider // svd.Closed{}
	logger      *slog.Logger // discard handler
}

// ---------- Constructors (WithX) ----------

// WithNorm sets the ring radius in model units.
// Panics when norm is not finite or not positive.
func WithNorm(norm float64) Option {
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm <= 0 {
		panic(panicNormInvalid)
	}

	return func(o *Options) { o.norm = norm }
}

// WithSampleCount sets how many sample vectors sit on the ring.
// Panics when count < 2.
func WithSampleCount(count int) Option {
	if count < 2 {
		panic(panicSamplesInvalid)
	}

	return func(o *Options) { o.sampleCount = count }
}

// WithBases sets the two sample indices rendered as the standard basis handles.
// Panics on negative or equal indices; indices beyond the sample count are
// reported by New as ErrInvalidConfig.
func WithBases(x, y int) Option {
	if x < 0 || y < 0 || x == y {
		panic(panicBasesInvalid)
	}

	return func(o *Options) { o.bases = [2]int{x, y} }
}

// WithEpsilon sets the relative tolerance of the singular-basis guard.
// Notes:
//   - WithEpsilon(0) only rejects exactly dependent pairs; nearly parallel
//     pairs are accepted and can produce very large matrix entries.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithProvider selects the SVD backend.
func WithProvider(p svd.Provider) Option {
	if p == nil {
		panic(panicProviderInvalid)
	}

	return func(o *Options) { o.provider = p }
}

// WithLogger routes model diagnostics (ignored selections, refused
// reconstructions, resets) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerInvalid)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user options over the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		norm:        DefaultNorm,
		sampleCount: DefaultSampleCount,
		bases:       [2]int{DefaultBasisX, DefaultBasisY},
		eps:         DefaultEpsilon,
		provider:    svd.Closed{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// validate reports cross-field violations.
func (o Options) validate() error {
	if o.bases[0] >= o.sampleCount || o.bases[1] >= o.sampleCount {
		return ErrInvalidConfig
	}

	return nil
}
