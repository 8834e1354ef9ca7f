// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the block's first id b; leaves are b+1..b+n-1.
//   • Emits hub → leaf[i] then leaf[i] → hub for increasing i, in every mode.
//
// Complexity: O(n) time, O(1) extra space.

package builder

// Star returns a Constructor that builds a star topology with n nodes:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub, err := s.reserve(MethodStar, n)
		if err != nil {
			return err
		}
		s.grow(2 * (n - 1))
		for i := 1; i < n; i++ {
			s.linkBoth(cfg, hub, hub+uint32(i))
		}
		return nil
	}
}
