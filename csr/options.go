// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvcsr/lock"
)

// Option configures a Graph at creation time.
type Option func(*config)

type config struct {
	lockKind  lock.Kind
	workers   int
	numa      bool
	steal     bool
	pin       bool
	nodeAlpha int64
	logger    *slog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		lockKind: lock.NoLock,
		workers:  runtime.GOMAXPROCS(0),
		numa:     true,
		steal:    true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLockKind selects the node lock policy. Default lock.NoLock.
func WithLockKind(k lock.Kind) Option {
	switch k {
	case lock.NoLock, lock.Inline, lock.OutOfLine:
	default:
		panic("csr: WithLockKind: unknown kind")
	}
	return func(c *config) { c.lockKind = k }
}

// WithWorkers sets the number of workers used for planning and parallel
// passes. Default GOMAXPROCS. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("csr: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithNUMA enables per-worker placement of storage once a plan is known.
// When disabled every array is interleaved. Default true.
func WithNUMA(on bool) Option {
	return func(c *config) { c.numa = on }
}

// WithSteal enables work-stealing in the container's parallel passes.
// Default true.
func WithSteal(on bool) Option {
	return func(c *config) { c.steal = on }
}

// WithPinning pins workers to CPUs during the container's parallel passes.
func WithPinning(on bool) Option {
	return func(c *config) { c.pin = on }
}

// WithNodeAlpha sets the node weight used by ThreadRanges relative to an edge
// weight of 1. Default 0 (balance by edges only). Panics if negative.
func WithNodeAlpha(alpha int64) Option {
	if alpha < 0 {
		panic("csr: WithNodeAlpha(alpha<0)")
	}
	return func(c *config) { c.nodeAlpha = alpha }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("csr: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
