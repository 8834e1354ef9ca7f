// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side takes ids b..b+n1-1, right side b+n1..b+n1+n2-1.
//   • Emits every cross-pair L_i → R_j (i asc, then j asc); mirrors R_j → L_i
//     unless directed.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		left, err := s.reserve(MethodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + uint32(n1)
		s.grow(2 * n1 * n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(cfg, left+uint32(i), right+uint32(j))
			}
		}
		return nil
	}
}
