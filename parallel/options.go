// SPDX-License-Identifier: MIT
// Package: lvcsr/parallel

package parallel

import (
	"log/slog"
	"runtime"
)

// DefaultChunkSize is the number of indices claimed at a time when stealing.
const DefaultChunkSize = 32

// Option configures one pass.
type Option func(*options)

type options struct {
	workers int
	steal   bool
	name    string
	ranges  []uint64
	chunk   uint64
	pin     bool
	logger  *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		name:    "loop",
		chunk:   DefaultChunkSize,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ranges != nil {
		o.workers = len(o.ranges) - 1
	}
	return o
}

// WithWorkers sets the number of workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("parallel: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithSteal enables or disables work-stealing between blocks.
func WithSteal(on bool) Option {
	return func(o *options) { o.steal = on }
}

// WithLoopName labels the pass in spans and logs.
func WithLoopName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithRanges fixes the per-worker blocks to [r[i], r[i+1]). The worker count
// becomes len(r)-1 and overrides WithWorkers. Panics if len(r) < 2.
// The table must span exactly the pass's [begin,end) and be non-decreasing.
func WithRanges(r []uint64) Option {
	if len(r) < 2 {
		panic("parallel: WithRanges needs at least 2 entries")
	}
	cp := append([]uint64(nil), r...)
	return func(o *options) { o.ranges = cp }
}

// WithChunkSize sets the stealing granularity. Panics if n == 0.
func WithChunkSize(n uint64) Option {
	if n == 0 {
		panic("parallel: WithChunkSize(0)")
	}
	return func(o *options) { o.chunk = n }
}

// WithPinning pins each worker goroutine to one CPU for the pass.
// Ignored where CPU affinity is unavailable.
func WithPinning(on bool) Option {
	return func(o *options) { o.pin = on }
}

// WithLogger sets the logger used for per-worker debug output. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("parallel: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
