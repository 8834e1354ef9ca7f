// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// ranges.go - partition queries against the graph's own edge index.

package csr

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvcsr/partition"
)

// DivideByNode splits the whole node space into total parts of equal
// nodeWeight*nodes + edgeWeight*edges cost and returns part id.
func (g *Graph[N, E]) DivideByNode(nodeWeight, edgeWeight int64, id, total int) partition.Range {
	return g.DivideByNodeRange(nodeWeight, edgeWeight, id, total, 0, g.numNodes)
}

// DivideByNodeRange is DivideByNode restricted to nodes [begin, end).
func (g *Graph[N, E]) DivideByNodeRange(nodeWeight, edgeWeight int64, id, total int, begin, end uint64) partition.Range {
	p := partition.Plan{NodeWeight: nodeWeight, EdgeWeight: edgeWeight, Begin: begin, End: min(end, g.numNodes), Prefix: g}
	return p.Divide(id, total)
}

// DetermineThreadRanges computes and caches thread ranges for total workers,
// weighting each node nodeAlpha times an edge. The graph must be populated.
func (g *Graph[N, E]) DetermineThreadRanges(total int, nodeAlpha int64) partition.Ranges {
	const method = "DetermineThreadRanges"
	g.expectState(method, stateEdgesPopulated)
	r := g.DetermineThreadRangesRange(0, g.numNodes, total, nodeAlpha)
	g.ranges, g.rangeWeights = r, [2]int64{nodeAlpha, 1}
	g.logRanges(method, r)
	g.assertInvariants(method)
	return r.Clone()
}

// DetermineThreadRangesRange computes thread ranges over nodes [begin, end)
// without caching them.
func (g *Graph[N, E]) DetermineThreadRangesRange(begin, end uint64, total int, nodeAlpha int64) partition.Ranges {
	p := partition.Plan{NodeWeight: nodeAlpha, EdgeWeight: 1, Begin: begin, End: min(end, g.numNodes), Prefix: g}
	return p.Ranges(total)
}

// ThreadRanges returns the cached thread ranges, computing them with the
// configured worker count and node alpha if none are cached.
func (g *Graph[N, E]) ThreadRanges() partition.Ranges {
	if g.ranges.Empty() {
		return g.DetermineThreadRanges(g.cfg.workers, g.cfg.nodeAlpha)
	}
	return g.ranges.Clone()
}

// ClearRanges drops the cached thread ranges.
func (g *Graph[N, E]) ClearRanges() { g.ranges = partition.Ranges{} }

// SetLocalRange records that worker tid owns nodes [begin, end).
func (g *Graph[N, E]) SetLocalRange(tid int, begin, end uint64) error {
	if tid < 0 || tid >= len(g.local) {
		return fmt.Errorf("SetLocalRange: %w: %d of %d", ErrWorker, tid, len(g.local))
	}
	g.local[tid] = localRange{begin: begin, end: end, set: true}
	return nil
}

// LocalRange returns the node range recorded for worker tid.
func (g *Graph[N, E]) LocalRange(tid int) (begin, end uint64, ok bool) {
	if tid < 0 || tid >= len(g.local) || !g.local[tid].set {
		return 0, 0, false
	}
	lr := g.local[tid]
	return lr.begin, lr.end, true
}

// LocalNodes returns an iterator over worker tid's recorded nodes; it yields
// nothing if no range was recorded.
func (g *Graph[N, E]) LocalNodes(tid int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		b, e, ok := g.LocalRange(tid)
		if !ok {
			return
		}
		for n := b; n < e; n++ {
			if !yield(uint32(n)) {
				return
			}
		}
	}
}
