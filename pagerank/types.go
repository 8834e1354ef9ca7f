// SPDX-License-Identifier: MIT
// Package: lvcsr/pagerank

package pagerank

import (
	"errors"
	"time"
)

// NodeData is the per-node PageRank state. It holds no pointers, so node
// arrays of NodeData can be NUMA-placed.
type NodeData struct {
	Value    float64
	NOut     uint32
	Residual AtomicFloat64
}

// IterationResult is what one pass reports back to the driver loop.
type IterationResult struct {
	// DidWork is true when some destination's residual crossed the tolerance.
	DidWork bool
}

// Result summarises a Run.
type Result struct {
	Iterations int
	Converged  bool
	Duration   time.Duration
}

var (
	// ErrBadAlpha is returned for an alpha outside (0, 1).
	ErrBadAlpha = errors.New("pagerank: alpha must be in (0,1)")

	// ErrBadTolerance is returned for a negative or NaN tolerance.
	ErrBadTolerance = errors.New("pagerank: tolerance must be >= 0")

	// ErrBadMaxIterations is returned for a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("pagerank: max iterations must be > 0")
)
