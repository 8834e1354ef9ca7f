// Package bfs provides tunable options and error definitions
// for breadth-first search over a csr.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is not below Size().
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

const (
	// Unreached is the Depth of a node the search never reached.
	Unreached = -1
	// NoParent is the Parent of the start node and of unreached nodes.
	NoParent = math.MaxUint32
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Sequential BFS only.
	OnEnqueue func(id uint32, depth int)

	// OnDequeue is called immediately before visiting a node.
	// Sequential BFS only.
	OnDequeue func(id uint32, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error. Parallel calls it from
	// several goroutines at once.
	OnVisit func(id uint32, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor uint32) bool

	// Workers overrides the graph's worker count in Parallel; 0 keeps it.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(uint32, int) {},
		OnDequeue:      func(uint32, int) {},
		OnVisit:        func(uint32, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ uint32) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id uint32, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id uint32, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id uint32, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor uint32) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithWorkers sets the worker count for Parallel.
func WithWorkers(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence (level order for Parallel).
//   - Depth: distance in edges from the start, Unreached if not reached.
//   - Parent: predecessor in the BFS tree, NoParent for the start.
type BFSResult struct {
	Order  []uint32
	Depth  []int
	Parent []uint32
}

func newResult(n uint64) *BFSResult {
	r := &BFSResult{
		Depth:  make([]int, n),
		Parent: make([]uint32, n),
	}
	for i := range r.Depth {
		r.Depth[i] = Unreached
		r.Parent[i] = NoParent
	}
	return r
}

// Reached reports whether n was reached.
func (r *BFSResult) Reached(n uint32) bool {
	return int(n) < len(r.Depth) && r.Depth[n] != Unreached
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest uint32) ([]uint32, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]uint32, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev := r.Parent[cur]
		if prev == NoParent {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
