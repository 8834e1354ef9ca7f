// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Constructors MUST NOT panic; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource →
//   ErrUnsupportedGraphMode → ErrTooManyVertices → ErrConstructFailed.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// configured mode (e.g. RandomRegular with WithDirected).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrTooManyVertices indicates the composed graph would exceed the 32-bit
// node id space.
var ErrTooManyVertices = errors.New("builder: node id space exhausted")

// ErrConstructFailed indicates that the builder exhausted its strategies
// (e.g. stub-matching retries) or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadWeightSpec indicates a weight distribution spec that ParseWeightFn
// cannot turn into a WeightFn.
var ErrBadWeightSpec = errors.New("builder: bad weight spec")
