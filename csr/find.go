// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import "slices"

// FindEdge returns the first edge from src to dst by linear scan.
//
// Complexity: O(deg(src)).
func (g *Graph[N, E]) FindEdge(src, dst uint32) (uint64, bool) {
	r := g.Edges(src)
	for e := r.Begin; e < r.End; e++ {
		if g.edgeDst.Get(e) == dst {
			return e, true
		}
	}
	return 0, false
}

// FindEdgeSortedByDst returns the first edge from src to dst by binary search.
// src's edges must be sorted by destination (SortEdgesByDst).
//
// Complexity: O(log deg(src)).
func (g *Graph[N, E]) FindEdgeSortedByDst(src, dst uint32) (uint64, bool) {
	r := g.Edges(src)
	i, ok := slices.BinarySearch(g.edgeDst.Slice()[r.Begin:r.End], dst)
	if !ok {
		return 0, false
	}
	return r.Begin + uint64(i), true
}

// PartitionNeighbors reorders node n's edges so that those whose destination
// satisfies pred come first, and returns the id of the first edge that does
// not. Payloads move with their destinations. Relative order is not kept.
func (g *Graph[N, E]) PartitionNeighbors(n uint32, pred func(dst uint32) bool) uint64 {
	s := g.sorter(n)
	base := g.EdgeBegin(n)
	i, j := 0, len(s.dst)-1
	for {
		for i <= j && pred(s.dst[i]) {
			i++
		}
		for i <= j && !pred(s.dst[j]) {
			j--
		}
		if i >= j {
			return base + uint64(i)
		}
		s.Swap(i, j)
		i++
		j--
	}
}
