// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits b+i → b+i+1 for i=0..n-2, mirrored unless directed.
//
// Complexity: O(n) time, O(1) extra space.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		b, err := s.reserve(MethodPath, n)
		if err != nil {
			return err
		}
		s.grow(2 * (n - 1))
		for i := 0; i+1 < n; i++ {
			s.link(cfg, b+uint32(i), b+uint32(i+1))
		}
		return nil
	}
}
