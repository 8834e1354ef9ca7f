// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// graph.go - Graph type, lifecycle state and unprotected accessors.

package csr

import (
	"iter"
	"sync"
	"unsafe"

	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/partition"
	"github.com/katalvlaran/lvcsr/ranged"
)

// state is the container lifecycle.
type state uint8

const (
	stateUnallocated state = iota
	stateAllocated
	stateNodesConstructed
	stateEdgesPopulated
)

func (s state) String() string {
	switch s {
	case stateUnallocated:
		return "Unallocated"
	case stateAllocated:
		return "Allocated"
	case stateNodesConstructed:
		return "NodesConstructed"
	case stateEdgesPopulated:
		return "EdgesPopulated"
	default:
		return "unknown"
	}
}

// localRange is the node range a construction worker filled.
type localRange struct {
	begin, end uint64
	set        bool
}

// Graph is a CSR graph with node payload N and edge payload E.
// Use struct{} for E when edges carry no value.
type Graph[N, E any] struct {
	cfg config

	numNodes uint64
	numEdges uint64

	nodes     nodeStore[N]
	edgeIndex ranged.Array[uint64]
	edgeDst   ranged.Array[uint32]
	edgeData  ranged.Array[E]
	voidEdges bool

	ranges       partition.Ranges
	rangeWeights [2]int64
	local        []localRange

	state  state
	txPool sync.Pool
}

// New returns an empty, unallocated graph.
func New[N, E any](opts ...Option) *Graph[N, E] {
	cfg := newConfig(opts)
	g := &Graph[N, E]{
		cfg:       cfg,
		nodes:     newNodeStore[N](cfg.lockKind),
		voidEdges: unsafe.Sizeof(*new(E)) == 0,
		local:     make([]localRange, cfg.workers),
	}
	g.txPool.New = func() any { return &Tx[N, E]{g: g, held: lock.NewHeld()} }
	return g
}

// Size returns the number of nodes.
func (g *Graph[N, E]) Size() uint64 { return g.numNodes }

// SizeEdges returns the number of edges.
func (g *Graph[N, E]) SizeEdges() uint64 { return g.numEdges }

// LockKind returns the node lock policy chosen at creation.
func (g *Graph[N, E]) LockKind() lock.Kind { return g.cfg.lockKind }

// Workers returns the configured worker count.
func (g *Graph[N, E]) Workers() int { return g.cfg.workers }

// VoidEdges reports whether E carries no value (no edge-data storage exists).
func (g *Graph[N, E]) VoidEdges() bool { return g.voidEdges }

// Data returns node n's payload without locking.
func (g *Graph[N, E]) Data(n uint32) *N { return g.nodes.data(uint64(n)) }

// EdgeRange is a half-open range of edge ids.
type EdgeRange struct {
	Begin, End uint64
}

// Len returns the number of edges in the range.
func (r EdgeRange) Len() uint64 { return r.End - r.Begin }

// All yields every edge id in the range.
func (r EdgeRange) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for e := r.Begin; e < r.End; e++ {
			if !yield(e) {
				return
			}
		}
	}
}

// EdgeBegin returns the id of node n's first edge.
func (g *Graph[N, E]) EdgeBegin(n uint32) uint64 {
	if n == 0 {
		return 0
	}
	return g.edgeIndex.Get(uint64(n) - 1)
}

// EdgeEnd returns one past node n's last edge id.
func (g *Graph[N, E]) EdgeEnd(n uint32) uint64 { return g.edgeIndex.Get(uint64(n)) }

// Edges returns node n's edge range without locking.
func (g *Graph[N, E]) Edges(n uint32) EdgeRange {
	return EdgeRange{Begin: g.EdgeBegin(n), End: g.EdgeEnd(n)}
}

// OutDegree returns the number of edges leaving n.
func (g *Graph[N, E]) OutDegree(n uint32) uint64 { return g.EdgeEnd(n) - g.EdgeBegin(n) }

// PrefixAt returns edgeIndex[n], the number of edges owned by nodes [0, n].
// It makes a Graph usable as a partition.Prefix.
func (g *Graph[N, E]) PrefixAt(n uint64) uint64 { return g.edgeIndex.Get(n) }

// EdgeDst returns the destination of edge e.
func (g *Graph[N, E]) EdgeDst(e uint64) uint32 { return g.edgeDst.Get(e) }

// EdgeData returns the payload of edge e (the zero value for void edges).
func (g *Graph[N, E]) EdgeData(e uint64) E {
	if g.voidEdges {
		var zero E
		return zero
	}
	return g.edgeData.Get(e)
}

// Nodes yields every node id in ascending order.
func (g *Graph[N, E]) Nodes() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for n := uint64(0); n < g.numNodes; n++ {
			if !yield(uint32(n)) {
				return
			}
		}
	}
}

// Neighbors yields the destinations of n's edges in storage order.
func (g *Graph[N, E]) Neighbors(n uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		r := g.Edges(n)
		for e := r.Begin; e < r.End; e++ {
			if !yield(g.edgeDst.Get(e)) {
				return
			}
		}
	}
}

// Placement reports the allocation modes of the node and edge arrays.
func (g *Graph[N, E]) Placement() (nodes, edges ranged.Mode) {
	return g.nodes.mode(), g.edgeDst.Mode()
}

// nodeBytes and edgeBytes are the storage cost of one node and one edge,
// used as planner weights when placing arrays.
func (g *Graph[N, E]) nodeBytes() int64 {
	return int64(g.nodes.bytesPerNode()) + int64(unsafe.Sizeof(uint64(0)))
}

func (g *Graph[N, E]) edgeBytes() int64 {
	return int64(unsafe.Sizeof(uint32(0))) + int64(unsafe.Sizeof(*new(E)))
}

// Deallocate releases all storage and returns the graph to Unallocated.
func (g *Graph[N, E]) Deallocate() {
	g.nodes.deallocate()
	g.edgeIndex.Deallocate()
	g.edgeDst.Deallocate()
	g.edgeData.Deallocate()
	g.numNodes, g.numEdges = 0, 0
	g.ranges = partition.Ranges{}
	clear(g.local)
	g.state = stateUnallocated
}
