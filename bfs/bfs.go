// Package bfs provides breadth-first search over a csr.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcsr/csr"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    uint32
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N, E any] struct {
	graph *csr.Graph[N, E]
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Neighbors are enqueued in edge order, so the visit sequence is
// reproducible.
func BFS[N, E any](g *csr.Graph[N, E], start uint32, opts ...Option) (*BFSResult, error) {
	o, err := resolve(g, start, opts)
	if err != nil {
		return nil, err
	}

	w := &walker[N, E]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		res:   newResult(g.Size()),
	}
	w.enqueue(start, 0, NoParent)
	return w.res, w.loop()
}

func resolve[N, E any](g *csr.Graph[N, E], start uint32, opts []Option) (BFSOptions, error) {
	if g == nil {
		return BFSOptions{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if uint64(start) >= g.Size() {
		return o, fmt.Errorf("%w: %d with %d nodes", ErrStartVertexNotFound, start, g.Size())
	}
	return o, nil
}

// enqueue marks id as reached, records depth and parent, and pushes it to the queue.
func (w *walker[N, E]) enqueue(id uint32, d int, parent uint32) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, cancellation, or a hook error.
func (w *walker[N, E]) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

func (w *walker[N, E]) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

func (w *walker[N, E]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

func (w *walker[N, E]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, item.id)
		}
	}
}
