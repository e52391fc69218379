// SPDX-License-Identifier: MIT

package surface

import (
	"io"
	"log/slog"
	"math"
)

// DefaultHitRadius is the distance, in model units, within which a pointer
// press grabs a handle or picks a sample.
const DefaultHitRadius = 5.0

const (
	panicHitRadiusInvalid = "surface: WithHitRadius: radius must be finite and > 0"
	panicLoggerInvalid    = "surface: WithLogger: logger must not be nil"
)

// Option configures a Controller or Session.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	hitRadius float64
	logger    *slog.Logger
}

// WithHitRadius sets the pick radius. Panics unless radius is finite and > 0.
func WithHitRadius(radius float64) Option {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		panic(panicHitRadiusInvalid)
	}

	return func(o *Options) { o.hitRadius = radius }
}

// WithLogger routes dispatch diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerInvalid)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		hitRadius: DefaultHitRadius,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
