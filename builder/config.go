// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// config.go - resolved builder configuration.
//
// Notes:
//   • builderConfig is passed by VALUE to constructors.
//   • rng == nil means "no randomness": stochastic builders either fall back to
//     a deterministic rule or return ErrNeedRandSource.
//   • directed controls whether asymmetric topologies (Cycle, Path,
//     CompleteBipartite, RandomSparse) mirror their edges.

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit only the forward direction of asymmetric topologies.
	directed bool
	// Allow self-loops in RandomSparse (directed only) and RandomRegular.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
