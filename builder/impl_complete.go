// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order as
//     i→j followed by j→i, in every mode.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		b, err := s.reserve(MethodComplete, n)
		if err != nil {
			return err
		}
		s.grow(n * (n - 1))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.linkBoth(cfg, b+uint32(i), b+uint32(j))
			}
		}
		return nil
	}
}
