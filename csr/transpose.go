// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// transpose.go - in-memory edge reversal.
//
// Steps:
//  1. histogram of incoming edges per node (serial, O(E));
//  2. inclusive prefix sum of the histogram (serial, O(V));
//  3. thread ranges re-planned against the new degree distribution;
//  4. every edge written into its destination's next free slot, scanning
//     sources in ascending order (serial, O(E));
//  5. with reallocate, fresh storage placed by the new ranges receives the
//     result and node payloads are copied across; otherwise the existing
//     arrays are overwritten.
//
// Edge payloads travel with their edges and are skipped for void E.
// After transposition every node's edges are sorted by destination.

package csr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvcsr/parallel"
	"github.com/katalvlaran/lvcsr/partition"
	"github.com/katalvlaran/lvcsr/ranged"
)

// Transpose reverses every edge. Edge ids, slices and node pointers obtained
// before the call are invalid afterwards. No traversal may run concurrently.
func (g *Graph[N, E]) Transpose(ctx context.Context, reallocate bool) error {
	g.expectState("Transpose", stateEdgesPopulated)
	start := time.Now()
	ctx, span := tracer.Start(ctx, "csr.Transpose",
		trace.WithAttributes(
			attribute.Int64("graph.nodes", int64(g.numNodes)),
			attribute.Int64("graph.edges", int64(g.numEdges)),
			attribute.Bool("reallocate", reallocate),
		),
	)
	defer span.End()

	nn, ne := g.numNodes, g.numEdges
	counts := make(partition.PrefixSlice, nn)
	for e := uint64(0); e < ne; e++ {
		counts[g.edgeDst.Get(e)]++
	}
	next := make([]uint64, nn)
	var acc uint64
	for n := range counts {
		next[n] = acc
		acc += counts[n]
		counts[n] = acc
	}

	total := g.ranges.Workers()
	if total == 0 {
		total = g.cfg.workers
	}
	w := g.rangeWeights
	if w == [2]int64{} {
		w = [2]int64{g.nodeBytes(), g.edgeBytes()}
	}
	plan := partition.Plan{NodeWeight: w[0], EdgeWeight: w[1], Begin: 0, End: nn, Prefix: counts}
	r := plan.Ranges(total)

	var err error
	if reallocate {
		err = g.transposeInto(ctx, r, counts, next)
	} else {
		g.transposeInPlace(counts, next)
	}
	if err != nil {
		return fmt.Errorf("Transpose: %w", err)
	}

	g.ranges, g.rangeWeights = r, w
	clear(g.local)
	g.logRanges("Transpose", r)
	g.cfg.logger.Debug("csr: transposed",
		slog.Uint64("nodes", nn),
		slog.Uint64("edges", ne),
		slog.Bool("reallocate", reallocate),
		slog.Duration("elapsed", time.Since(start)),
	)
	g.assertInvariants("Transpose")
	recordTranspose(ctx, time.Since(start), reallocate)
	return nil
}

// scatter writes the reversed edges through put, advancing next.
func (g *Graph[N, E]) scatter(next []uint64, put func(pos uint64, src uint32, e uint64)) {
	var e uint64
	for n := uint64(0); n < g.numNodes; n++ {
		end := g.edgeIndex.Get(n)
		for ; e < end; e++ {
			d := g.edgeDst.Get(e)
			pos := next[d]
			next[d]++
			put(pos, uint32(n), e)
		}
	}
}

func (g *Graph[N, E]) transposeInPlace(counts partition.PrefixSlice, next []uint64) {
	dst := make([]uint32, g.numEdges)
	var data []E
	if !g.voidEdges {
		data = make([]E, g.numEdges)
	}
	g.scatter(next, func(pos uint64, src uint32, e uint64) {
		dst[pos] = src
		if data != nil {
			data[pos] = g.edgeData.Get(e)
		}
	})
	copy(g.edgeDst.Slice(), dst)
	if data != nil {
		copy(g.edgeData.Slice(), data)
	}
	copy(g.edgeIndex.Slice(), counts)
}

func (g *Graph[N, E]) transposeInto(ctx context.Context, r partition.Ranges, counts partition.PrefixSlice, next []uint64) error {
	nn, ne := g.numNodes, g.numEdges
	nodeMode, edgeMode := ranged.Interleaved(), ranged.Interleaved()
	if g.cfg.numa {
		nodeMode, edgeMode = ranged.Specified(r.Nodes), ranged.Specified(r.Edges)
	}

	var (
		idx  ranged.Array[uint64]
		dst  ranged.Array[uint32]
		data ranged.Array[E]
	)
	if err := idx.Allocate(nodeMode, nn); err != nil {
		return err
	}
	if err := dst.Allocate(edgeMode, ne); err != nil {
		idx.Deallocate()
		return err
	}
	if !g.voidEdges {
		if err := data.Allocate(edgeMode, ne); err != nil {
			idx.Deallocate()
			dst.Deallocate()
			return err
		}
	}
	nodes := newNodeStore[N](g.cfg.lockKind)
	if err := nodes.allocate(nodeMode, nn); err != nil {
		idx.Deallocate()
		dst.Deallocate()
		data.Deallocate()
		return err
	}

	g.scatter(next, func(pos uint64, src uint32, e uint64) {
		dst.Set(pos, src)
		if !g.voidEdges {
			data.Set(pos, g.edgeData.Get(e))
		}
	})
	copy(idx.Slice(), counts)

	old := g.nodes
	parallel.For(ctx, 0, nn, func(n uint64) {
		nodes.constructAt(n)
		*nodes.data(n) = *old.data(n)
	}, g.passOptions("csr.Transpose.nodes", nn)...)

	old.deallocate()
	g.edgeIndex.Deallocate()
	g.edgeDst.Deallocate()
	g.edgeData.Deallocate()
	g.nodes, g.edgeIndex, g.edgeDst, g.edgeData = nodes, idx, dst, data
	return nil
}
