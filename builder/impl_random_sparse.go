// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected (default): iterate unordered pairs {i,j} with i<j, emit both directions.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff WithLoops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     For p ∈ {0,1} the edge set is fixed and no RNG is consulted.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (undirected uses j>i).

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		b, err := s.reserve(MethodRandomSparse, n)
		if err != nil {
			return err
		}

		// keep decides one Bernoulli trial.
		keep := func() bool {
			if cfg.rng == nil {
				return p == MaxProbability
			}
			return cfg.rng.Float64() < p
		}

		if cfg.directed {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j && !cfg.loops {
						continue
					}
					if keep() {
						s.link(cfg, b+uint32(i), b+uint32(j))
					}
				}
			}
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep() {
					s.link(cfg, b+uint32(i), b+uint32(j))
				}
			}
		}
		return nil
	}
}
