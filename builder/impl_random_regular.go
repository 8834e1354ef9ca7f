// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Contract:
//   • Undirected only (WithDirected → ErrUnsupportedGraphMode).
//   • n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Stub matching with at most maxStubMatchingAttempts reshuffles; pairings
//     with a self-loop (unless WithLoops) or a repeated pair are rejected.
//     Exhaustion returns ErrConstructFailed.
//
// Complexity: ~O(n·d) per attempt. Deterministic per seed.

package builder

import "fmt"

// RandomRegular returns a Constructor that builds an undirected d-regular
// simple graph using stub matching with bounded retries.
func RandomRegular(n, d int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if cfg.directed {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubCount := n * d
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs, cfg.loops) {
				continue
			}

			b, err := s.reserve(MethodRandomRegular, n)
			if err != nil {
				return err
			}
			s.grow(stubCount)
			for i := 0; i < stubCount; i += 2 {
				s.link(cfg, b+uint32(stubs[i]), b+uint32(stubs[i+1]))
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a graph with no
// repeated pair and, unless loops is set, no self-loop.
func simplePairing(stubs []int, loops bool) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !loops {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
