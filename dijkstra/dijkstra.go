// SPDX-License-Identifier: MIT
// Package: lvcsr/dijkstra
//
// dijkstra.go - lazy-decrease-key Dijkstra over the CSR adjacency.
//
// Implementation choices:
//   • An upfront parallel scan of all edge weights fails fast on negative
//     or NaN weights.
//   • Edges with weight ≥ InfEdgeThreshold are walls.
//   • Exploration stops once the heap minimum exceeds MaxDistance.
//   • Stale heap entries are skipped via the settled bitmap.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/parallel"
)

// Dijkstra computes shortest distances from Options.Source to every node of
// g. Edge data is the edge weight.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, +Inf if v was not reached.
//   - prev: predecessor slice if ReturnPath is set (nil otherwise);
//     prev[v] == NoParent for the source and unreached nodes.
//   - err:  validation failure or cancellation.
//
// Validation order: ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key.
func Dijkstra[N any](ctx context.Context, g *csr.Graph[N, float64], opts ...Option) ([]float64, []uint32, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if uint64(cfg.Source) >= g.Size() {
		return nil, nil, fmt.Errorf("%w: %d (size %d)", ErrVertexNotFound, cfg.Source, g.Size())
	}
	if err := scanWeights(ctx, g, cfg.Workers); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg)
	if err := r.process(ctx); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// scanWeights rejects any edge whose weight is negative or NaN.
func scanWeights[N any](ctx context.Context, g *csr.Graph[N, float64], workers int) error {
	if workers < 1 {
		workers = g.Workers()
	}
	return parallel.ForErr(ctx, 0, g.SizeEdges(), func(e uint64) error {
		if w := g.EdgeData(e); !(w >= 0) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, edgeSource(g, e), g.EdgeDst(e), w)
		}
		return nil
	}, parallel.WithWorkers(workers), parallel.WithLoopName("dijkstra.scan"))
}

// edgeSource recovers the owning node of edge e by binary search over the
// inclusive prefix. Only used for error messages.
func edgeSource[N any](g *csr.Graph[N, float64], e uint64) uint32 {
	lo, hi := uint64(0), g.Size()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if g.PrefixAt(mid) <= e {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N any] struct {
	g       *csr.Graph[N, float64]
	options Options
	dist    []float64
	prev    []uint32
	settled []bool
	pq      nodePQ
}

func newRunner[N any](g *csr.Graph[N, float64], cfg Options) *runner[N] {
	n := g.Size()
	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, 64),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	if cfg.ReturnPath {
		r.prev = make([]uint32, n)
		for i := range r.prev {
			r.prev[i] = NoParent
		}
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process pops nodes in distance order until the heap drains or the
// minimum exceeds MaxDistance. The context is polled once per settled node.
func (r *runner[N]) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.settled[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		r.settled[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax examines each out-edge of u. Assumes dist[u] is final.
func (r *runner[N]) relax(u uint32) {
	du := r.dist[u]
	for e := range r.g.Edges(u).All() {
		w := r.g.EdgeData(e)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.g.EdgeDst(e)
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// PathTo rebuilds the node sequence source→…→target from a predecessor
// slice returned with WithReturnPath.
func PathTo(prev []uint32, source, target uint32) ([]uint32, error) {
	if uint64(target) >= uint64(len(prev)) || uint64(source) >= uint64(len(prev)) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, target)
	}
	var path []uint32
	for at := target; ; at = prev[at] {
		path = append(path, at)
		if at == source {
			break
		}
		if prev[at] == NoParent || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem is a heap entry; duplicates for the same id are allowed.
type nodeItem struct {
	id   uint32
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
