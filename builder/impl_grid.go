// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id b + r*cols + c (row-major).
//   • For each cell in row-major order, links Right then Bottom neighbour,
//     symmetric in every mode.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if uint64(rows)*uint64(cols) > 1<<32 {
			return fmt.Errorf("%s: %d×%d cells: %w", MethodGrid, rows, cols, ErrTooManyVertices)
		}
		b, err := s.reserve(MethodGrid, rows*cols)
		if err != nil {
			return err
		}
		id := func(r, c int) uint32 { return b + uint32(r*cols+c) }

		s.grow(2 * (rows*(cols-1) + cols*(rows-1)))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.linkBoth(cfg, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					s.linkBoth(cfg, id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}
