// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import "fmt"

// Validate checks the structural invariants of a populated graph:
// edgeIndex is non-decreasing and ends at SizeEdges, every destination is a
// valid node id, and the cached thread ranges (if any) cover the node space
// and agree with edgeIndex.
//
// Complexity: O(V + E + T).
func (g *Graph[N, E]) Validate() error {
	const method = "Validate"
	var prev uint64
	for n := uint64(0); n < g.numNodes; n++ {
		cur := g.edgeIndex.Get(n)
		if cur < prev {
			return fmt.Errorf("%s: %w: edgeIndex[%d]=%d < edgeIndex[%d]=%d", method, ErrInvariant, n, cur, n-1, prev)
		}
		prev = cur
	}
	if prev != g.numEdges {
		return fmt.Errorf("%s: %w: edgeIndex ends at %d, graph has %d edges", method, ErrInvariant, prev, g.numEdges)
	}
	for e := uint64(0); e < g.numEdges; e++ {
		if d := g.edgeDst.Get(e); uint64(d) >= g.numNodes {
			return fmt.Errorf("%s: %w: edge %d points at %d, graph has %d nodes", method, ErrInvariant, e, d, g.numNodes)
		}
	}
	if !g.ranges.Empty() {
		if err := g.ranges.Validate(0, g.numNodes, g); err != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrInvariant, err)
		}
	}
	return nil
}
