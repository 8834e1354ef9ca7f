// SPDX-License-Identifier: MIT
// Package: lvcsr/pagerank

package pagerank

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

// Defaults.
const (
	DefaultAlpha         = 0.85
	DefaultTolerance     = 0.01
	DefaultMaxIterations = 1000
)

// Options configures Initialize, Iterate and Run.
type Options struct {
	// Alpha is the fraction of a node's value passed along its out-edges.
	Alpha float64
	// Tolerance is the residual threshold that counts as work.
	Tolerance float64
	// MaxIterations caps Run.
	MaxIterations int
	// Protected pushes under node locks via csr.Tx.
	Protected bool
	// Workers is the pass width; 0 means GOMAXPROCS.
	Workers int
	// Steal enables work-stealing between worker blocks.
	Steal  bool
	Logger *slog.Logger
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.GOMAXPROCS(0),
		Steal:         true,
		Logger:        slog.Default(),
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return fmt.Errorf("%w: %v", ErrBadAlpha, o.Alpha)
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return fmt.Errorf("%w: %v", ErrBadTolerance, o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxIterations, o.MaxIterations)
	}
	return nil
}

// Option mutates Options.
type Option func(*Options)

// WithAlpha sets the propagated fraction.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithTolerance sets the convergence threshold.
func WithTolerance(t float64) Option { return func(o *Options) { o.Tolerance = t } }

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithProtected makes pushes take node locks.
func WithProtected(on bool) Option { return func(o *Options) { o.Protected = on } }

// WithWorkers sets the pass width. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pagerank: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithSteal toggles work-stealing.
func WithSteal(on bool) Option { return func(o *Options) { o.Steal = on } }

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pagerank: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.Validate()
}
