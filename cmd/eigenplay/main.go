// SPDX-License-Identifier: MIT

// Command eigenplay opens an interactive window for exploring a 2x2 linear
// map: drag the red and green basis handles to edit the matrix directly, or
// right-click two ring samples to make them eigenvectors and drag their
// yellow handles to change the eigenvalues. R resets, Esc quits.
//
// With -headless it replays a short scripted session on a ticker and logs the
// resulting frames instead of opening a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/eigenplay/svd"
	"github.com/katalvlaran/eigenplay/transform"
)

// config collects the command-line settings.
type config struct {
	Headless HeadlessConfig
	Backend  string
	Scale    float64
	Epsilon  float64
	Verbose  bool
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.Headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Headless.LogEvery, "log-every", 30, "Log every N-th frame in headless mode.")
	flag.StringVar(&cfg.Backend, "backend", svd.BackendClosed, "SVD backend: "+strings.Join(svd.Backends(), ", ")+".")
	flag.Float64Var(&cfg.Scale, "scale", 3, "Screen pixels per model unit.")
	flag.Float64Var(&cfg.Epsilon, "eps", transform.DefaultEpsilon, "Relative tolerance for rejecting a dependent eigenvector pair.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging.")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	model, err := newModel(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = RunHeadless(ctx, model, log, cfg.Headless)
		if errors.Is(err, context.Canceled) {
			return nil
		}

		return err
	}

	return RunWindow(model, log, cfg.Scale)
}

// newModel resolves the backend and builds the model.
func newModel(cfg config, log *slog.Logger) (*transform.Model, error) {
	provider, err := svd.ByName(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) || cfg.Epsilon < 0 {
		return nil, fmt.Errorf("invalid -eps %g: must be finite and >= 0", cfg.Epsilon)
	}
	log.Info("starting", slog.String("backend", cfg.Backend), slog.Bool("headless", cfg.Headless.Enabled))

	return transform.New(
		transform.WithProvider(provider),
		transform.WithEpsilon(cfg.Epsilon),
		transform.WithLogger(log),
	)
}
