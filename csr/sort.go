// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// sort.go - per-node edge sorting. Destinations and payloads are permuted
// together. Sorting touches only the node's own edge sub-array, so nodes may
// be sorted concurrently; traversals must not run at the same time.

package csr

import (
	"context"
	"slices"
	"sort"

	"github.com/katalvlaran/lvcsr/parallel"
)

// EdgeSortValue is the (destination, payload) pair compared by SortEdges.
type EdgeSortValue[E any] struct {
	Dst  uint32
	Data E
}

// edgeSorter co-permutes one node's destination and payload sub-arrays.
type edgeSorter[E any] struct {
	dst  []uint32
	data []E
	less func(i, j int) bool
}

func (s *edgeSorter[E]) Len() int           { return len(s.dst) }
func (s *edgeSorter[E]) Less(i, j int) bool { return s.less(i, j) }
func (s *edgeSorter[E]) Swap(i, j int) {
	s.dst[i], s.dst[j] = s.dst[j], s.dst[i]
	if s.data != nil {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

func (g *Graph[N, E]) sorter(n uint32) *edgeSorter[E] {
	r := g.Edges(n)
	s := &edgeSorter[E]{dst: g.edgeDst.Slice()[r.Begin:r.End]}
	if !g.voidEdges {
		s.data = g.edgeData.Slice()[r.Begin:r.End]
	}
	return s
}

// SortEdgesByDst sorts node n's edges by ascending destination.
func (g *Graph[N, E]) SortEdgesByDst(n uint32) {
	s := g.sorter(n)
	if s.data == nil {
		slices.Sort(s.dst)
		return
	}
	s.less = func(i, j int) bool { return s.dst[i] < s.dst[j] }
	sort.Sort(s)
}

// SortAllEdgesByDst sorts every node's edges by destination in parallel.
func (g *Graph[N, E]) SortAllEdgesByDst(ctx context.Context) {
	g.expectState("SortAllEdgesByDst", stateEdgesPopulated)
	parallel.For(ctx, 0, g.numNodes, func(n uint64) {
		g.SortEdgesByDst(uint32(n))
	}, g.passOptions("csr.SortAllEdgesByDst", g.numNodes)...)
}

// SortEdges sorts node n's edges with less over (destination, payload) pairs.
func (g *Graph[N, E]) SortEdges(n uint32, less func(a, b EdgeSortValue[E]) bool) {
	s := g.sorter(n)
	var zero E
	val := func(i int) EdgeSortValue[E] {
		if s.data == nil {
			return EdgeSortValue[E]{Dst: s.dst[i], Data: zero}
		}
		return EdgeSortValue[E]{Dst: s.dst[i], Data: s.data[i]}
	}
	s.less = func(i, j int) bool { return less(val(i), val(j)) }
	sort.Sort(s)
}

// SortEdgesByEdgeData sorts node n's edges by payload using cmp
// (negative, zero or positive as in slices.SortFunc). Void edges are left as is.
func (g *Graph[N, E]) SortEdgesByEdgeData(n uint32, cmp func(a, b E) int) {
	s := g.sorter(n)
	if s.data == nil {
		return
	}
	s.less = func(i, j int) bool { return cmp(s.data[i], s.data[j]) < 0 }
	sort.Sort(s)
}
