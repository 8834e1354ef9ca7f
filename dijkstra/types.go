// SPDX-License-Identifier: MIT
// Package: lvcsr/dijkstra
//
// types.go - sentinel errors, options and defaults for single-source
// shortest paths over a float64-weighted csr.Graph.
//
// Contract:
//   • Node ids are dense uint32 values below g.Size().
//   • Distances are float64; +Inf marks an unreached node.
//   • Option constructors panic on meaningless arguments (negative caps,
//     non-positive thresholds). Dijkstra itself never panics.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *csr.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source id is not below g.Size().
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was
	// detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for a target the run did not reach.
	ErrNoPath = errors.New("dijkstra: no path")
)

// NoParent is the predecessor of the source and of every unreached node.
const NoParent = math.MaxUint32

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node id (must be below g.Size()).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – nodes whose distance would exceed this cap are not settled.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
// Workers          – goroutines used by the upfront weight scan.
type Options struct {
	Source           uint32
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Workers          int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node id. The default is node 0.
func Source(id uint32) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on negative or NaN input.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// skipped entirely. Panics with ErrBadInfThreshold on non-positive input.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWorkers bounds the goroutines of the weight scan. Values below 1 keep
// the graph's own worker count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node.
//
// Defaults:
//   - ReturnPath:       false (prev is nil).
//   - MaxDistance:      +Inf (explore all reachable nodes).
//   - InfEdgeThreshold: +Inf (no edge is treated as impassable).
//   - Workers:          0 (use g.Workers()).
func DefaultOptions(source uint32) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
