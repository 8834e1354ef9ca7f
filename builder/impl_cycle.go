// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Reserves n ids b..b+n-1 and emits b+i → b+(i+1)%n for i=0..n-1.
//   • Mirrors every edge unless the config is directed.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		b, err := s.reserve(MethodCycle, n)
		if err != nil {
			return err
		}
		s.grow(2 * n)
		for i := 0; i < n; i++ {
			s.link(cfg, b+uint32(i), b+uint32((i+1)%n))
		}
		return nil
	}
}
