// SPDX-License-Identifier: MIT
// Package: lvcsr/bfs

package bfs

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/parallel"
)

// Parallel runs a level-synchronous BFS. Each level's frontier is split into
// contiguous blocks, one per worker; a node is claimed by the first worker
// whose CAS moves its depth off Unreached. Depths equal those of BFS; parents
// may differ among equally short predecessors. Order lists nodes level by
// level, each level in worker order.
//
// FilterNeighbor and OnVisit must be safe for concurrent use; OnEnqueue and
// OnDequeue are not called.
func Parallel[N, E any](g *csr.Graph[N, E], start uint32, opts ...Option) (*BFSResult, error) {
	o, err := resolve(g, start, opts)
	if err != nil {
		return nil, err
	}
	workers := o.Workers
	if workers == 0 {
		workers = g.Workers()
	}

	n := g.Size()
	depth := make([]atomic.Int64, n)
	for i := range depth {
		depth[i].Store(Unreached)
	}
	res := newResult(n)
	defer func() {
		for i := range depth {
			res.Depth[i] = int(depth[i].Load())
		}
	}()

	depth[start].Store(0)
	frontier := []uint32{start}
	next := make([][]uint32, workers)

	for level := 0; len(frontier) > 0; level++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		res.Order = append(res.Order, frontier...)
		expand := o.MaxDepth == 0 || level < o.MaxDepth

		for i := range next {
			next[i] = next[i][:0]
		}
		err := parallel.Blocks(o.Ctx, 0, uint64(len(frontier)), func(tid int, lo, hi uint64) error {
			for _, u := range frontier[lo:hi] {
				if err := o.OnVisit(u, level); err != nil {
					return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
				}
				if !expand {
					continue
				}
				for v := range g.Neighbors(u) {
					if !o.FilterNeighbor(u, v) {
						continue
					}
					if depth[v].Load() == Unreached && depth[v].CompareAndSwap(Unreached, int64(level+1)) {
						res.Parent[v] = u
						next[tid] = append(next[tid], v)
					}
				}
			}
			return nil
		},
			parallel.WithLoopName("bfs.Parallel"),
			parallel.WithWorkers(workers),
		)
		if err != nil {
			return res, err
		}
		frontier = slices.Concat(next...)
	}
	return res, nil
}
