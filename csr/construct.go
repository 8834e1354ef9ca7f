// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// construct.go - functional and streaming construction.

package csr

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvcsr/parallel"
	"github.com/katalvlaran/lvcsr/source"
)

// NewFunctional builds a graph serially from callbacks: outDegree(n) edges
// leave node n, and its k-th edge goes to dst(n, k) carrying data(n, k).
// data may be nil, in which case edges carry the zero value of E.
//
// Complexity: O(V) for the prefix sum plus O(E) for the edge arrays.
func NewFunctional[N, E any](
	ctx context.Context,
	numNodes, numEdges uint64,
	outDegree func(n uint32) uint64,
	dst func(n uint32, k uint64) uint32,
	data func(n uint32, k uint64) E,
	opts ...Option,
) (*Graph[N, E], error) {
	const method = "NewFunctional"
	start := time.Now()
	ctx, span := tracer.Start(ctx, "csr.NewFunctional",
		trace.WithAttributes(
			attribute.Int64("graph.nodes", int64(numNodes)),
			attribute.Int64("graph.edges", int64(numEdges)),
		),
	)
	defer span.End()

	g := New[N, E](opts...)
	err := g.constructFunctional(ctx, method, numNodes, numEdges, outDegree, dst, data)
	recordConstruct(ctx, "functional", time.Since(start), numEdges, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return g, nil
}

func (g *Graph[N, E]) constructFunctional(
	ctx context.Context, method string,
	numNodes, numEdges uint64,
	outDegree func(uint32) uint64,
	dst func(uint32, uint64) uint32,
	data func(uint32, uint64) E,
) error {
	if err := g.AllocateFrom(numNodes, numEdges); err != nil {
		return err
	}
	var acc uint64
	for n := uint64(0); n < numNodes; n++ {
		acc += outDegree(uint32(n))
		if acc > numEdges {
			g.Deallocate()
			return fmt.Errorf("%s: %w: degrees of nodes [0,%d] exceed %d edges", method, ErrSizeMismatch, n, numEdges)
		}
		g.FixEndEdge(uint32(n), acc)
	}
	if acc != numEdges {
		g.Deallocate()
		return fmt.Errorf("%s: %w: degrees sum to %d, want %d", method, ErrSizeMismatch, acc, numEdges)
	}
	if err := g.ConstructNodes(ctx); err != nil {
		return err
	}

	var zero E
	var e uint64
	for n := uint64(0); n < numNodes; n++ {
		end := g.edgeIndex.Get(n)
		for k := uint64(0); e < end; k, e = k+1, e+1 {
			d := dst(uint32(n), k)
			if uint64(d) >= numNodes {
				g.Deallocate()
				return fmt.Errorf("%s: %w: edge %d of node %d points at %d", method, ErrNodeOutOfRange, k, n, d)
			}
			v := zero
			if data != nil && !g.voidEdges {
				v = data(uint32(n), k)
			}
			g.ConstructEdge(e, d, v)
		}
	}
	return g.Seal()
}

// FromSource builds a graph from src with parallel streaming construction:
// one worker per planned partition, each filling its own node and edge range.
func FromSource[N, E any](ctx context.Context, src source.Source[E], opts ...Option) (*Graph[N, E], error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "csr.FromSource",
		trace.WithAttributes(
			attribute.Int64("graph.nodes", int64(src.NumNodes())),
			attribute.Int64("graph.edges", int64(src.NumEdges())),
		),
	)
	defer span.End()

	g := New[N, E](opts...)
	err := g.ConstructFrom(ctx, src)
	recordConstruct(ctx, "stream", time.Since(start), src.NumEdges(), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("graph.workers", g.ranges.Workers()))
	return g, nil
}

// sourcePrefix exposes a source's per-node edge ends as a prefix sum.
type sourcePrefix[E any] struct{ src source.Source[E] }

func (p sourcePrefix[E]) PrefixAt(n uint64) uint64 { return p.src.EdgeEnd(n) }

// ConstructFrom runs the streaming construction on an Unallocated graph:
// AllocateFromByNode, ConstructNodes, a parallel fill of each worker's
// range, then Seal. On error the graph is left Unallocated.
func (g *Graph[N, E]) ConstructFrom(ctx context.Context, src source.Source[E]) error {
	const method = "ConstructFrom"
	nn, ne := src.NumNodes(), src.NumEdges()
	if err := g.AllocateFromByNode(nn, ne, sourcePrefix[E]{src}); err != nil {
		return err
	}
	if err := g.ConstructNodes(ctx); err != nil {
		return err
	}
	err := parallel.Blocks(ctx, 0, nn, func(tid int, lo, hi uint64) error {
		for n := lo; n < hi; n++ {
			end := src.EdgeEnd(n)
			for e := src.EdgeBegin(n); e < end; e++ {
				d := src.EdgeDst(e)
				if uint64(d) >= nn {
					return fmt.Errorf("%s: %w: edge %d of node %d points at %d", method, ErrNodeOutOfRange, e, n, d)
				}
				if g.voidEdges {
					g.edgeDst.Set(e, d)
				} else {
					g.ConstructEdge(e, d, src.EdgeData(e))
				}
			}
			g.FixEndEdge(uint32(n), end)
		}
		return g.SetLocalRange(tid, lo, hi)
	}, parallel.WithLoopName("csr.ConstructFrom"), parallel.WithRanges(g.ranges.Nodes),
		parallel.WithPinning(g.cfg.pin), parallel.WithLogger(g.cfg.logger))
	if err != nil {
		g.Deallocate()
		return err
	}
	return g.Seal()
}

// ConstructEdge writes edge e. Workers may call it concurrently for disjoint e.
func (g *Graph[N, E]) ConstructEdge(e uint64, dst uint32, data E) {
	g.edgeDst.Set(e, dst)
	if !g.voidEdges {
		g.edgeData.Set(e, data)
	}
}

// FixEndEdge records that node n's edges end just before edge id end.
func (g *Graph[N, E]) FixEndEdge(n uint32, end uint64) {
	g.edgeIndex.Set(uint64(n), end)
}

// Seal marks a manually populated graph as ready for traversal.
// The graph must be NodesConstructed.
func (g *Graph[N, E]) Seal() error {
	g.expectState("Seal", stateNodesConstructed)
	g.state = stateEdgesPopulated
	g.assertInvariants("Seal")
	return nil
}
