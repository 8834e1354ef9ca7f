// SPDX-License-Identifier: MIT
// Package: lvcsr/source

package source

import (
	"fmt"
	"iter"
	"math"
)

// Source is a node-partitioned edge enumeration.
type Source[E any] interface {
	NumNodes() uint64
	NumEdges() uint64
	// EdgeBegin returns the index of node n's first edge.
	EdgeBegin(n uint64) uint64
	// EdgeEnd returns one past the index of node n's last edge.
	EdgeEnd(n uint64) uint64
	// EdgeDst returns the destination of edge e.
	EdgeDst(e uint64) uint32
	// EdgeData returns the payload of edge e.
	EdgeData(e uint64) E
}

// Edge is one directed edge with its payload.
type Edge[E any] struct {
	Src, Dst uint32
	Data     E
}

// EdgeList is an immutable in-memory Source with CSR layout.
type EdgeList[E any] struct {
	index []uint64 // inclusive prefix of out-degrees
	dst   []uint32
	data  []E
}

var _ Source[float64] = (*EdgeList[float64])(nil)

// NewEdgeList groups edges by source with a stable counting sort, so edges of
// one node keep their input order.
func NewEdgeList[E any](numNodes uint64, edges []Edge[E]) (*EdgeList[E], error) {
	const method = "NewEdgeList"
	if numNodes > math.MaxUint32+1 {
		return nil, fmt.Errorf("%s: %w: %d", method, ErrTooManyNodes, numNodes)
	}
	l := &EdgeList[E]{
		index: make([]uint64, numNodes),
		dst:   make([]uint32, len(edges)),
		data:  make([]E, len(edges)),
	}
	for i, e := range edges {
		if uint64(e.Src) >= numNodes || uint64(e.Dst) >= numNodes {
			return nil, fmt.Errorf("%s: %w: edge %d (%d→%d) with %d nodes", method, ErrNodeOutOfRange, i, e.Src, e.Dst, numNodes)
		}
		l.index[e.Src]++
	}
	var acc uint64
	for n := range l.index {
		acc += l.index[n]
		l.index[n] = acc
	}
	next := make([]uint64, numNodes)
	for n := uint64(1); n < numNodes; n++ {
		next[n] = l.index[n-1]
	}
	for _, e := range edges {
		at := next[e.Src]
		next[e.Src]++
		l.dst[at] = e.Dst
		l.data[at] = e.Data
	}
	return l, nil
}

// NumNodes implements Source.
func (l *EdgeList[E]) NumNodes() uint64 { return uint64(len(l.index)) }

// NumEdges implements Source.
func (l *EdgeList[E]) NumEdges() uint64 { return uint64(len(l.dst)) }

// EdgeBegin implements Source.
func (l *EdgeList[E]) EdgeBegin(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return l.index[n-1]
}

// EdgeEnd implements Source.
func (l *EdgeList[E]) EdgeEnd(n uint64) uint64 { return l.index[n] }

// EdgeDst implements Source.
func (l *EdgeList[E]) EdgeDst(e uint64) uint32 { return l.dst[e] }

// EdgeData implements Source.
func (l *EdgeList[E]) EdgeData(e uint64) E { return l.data[e] }

// OutDegree returns the number of edges leaving n.
func (l *EdgeList[E]) OutDegree(n uint64) uint64 { return l.EdgeEnd(n) - l.EdgeBegin(n) }

// PrefixAt returns the number of edges owned by nodes [0, n], so an EdgeList
// can be partitioned before any container exists.
func (l *EdgeList[E]) PrefixAt(n uint64) uint64 { return l.index[n] }

// Edges yields every edge in source order.
func (l *EdgeList[E]) Edges() iter.Seq[Edge[E]] {
	return func(yield func(Edge[E]) bool) {
		var e uint64
		for n := range l.index {
			for ; e < l.index[n]; e++ {
				if !yield(Edge[E]{Src: uint32(n), Dst: l.dst[e], Data: l.data[e]}) {
					return
				}
			}
		}
	}
}

// Unweighted returns a view of the same topology with no edge payload.
func (l *EdgeList[E]) Unweighted() *EdgeList[struct{}] {
	return &EdgeList[struct{}]{index: l.index, dst: l.dst, data: make([]struct{}, len(l.dst))}
}

// MapData returns a copy of l whose payloads are f applied to the originals.
func MapData[E, F any](l *EdgeList[E], f func(E) F) *EdgeList[F] {
	out := &EdgeList[F]{index: l.index, dst: l.dst, data: make([]F, len(l.data))}
	for i, d := range l.data {
		out.data[i] = f(d)
	}
	return out
}
