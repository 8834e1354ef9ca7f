// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim is a Cycle(n-1) on ids b..b+n-2; the hub is b+n-1.
//   • Spokes are symmetric in every mode; the rim follows Cycle.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rim := uint32(s.nodes)
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub, err := s.reserve(MethodWheel, 1)
		if err != nil {
			return err
		}
		s.grow(2 * (n - 1))
		for i := 0; i < n-1; i++ {
			s.linkBoth(cfg, hub, rim+uint32(i))
		}
		return nil
	}
}
