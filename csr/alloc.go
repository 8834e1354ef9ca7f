// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// alloc.go - storage allocation, with or without a partition plan.

package csr

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvcsr/parallel"
	"github.com/katalvlaran/lvcsr/partition"
	"github.com/katalvlaran/lvcsr/ranged"
)

// AllocateFrom reserves storage for numNodes nodes and numEdges edges
// without a partition plan. With NUMA placement on, every array lives on the
// home node of partition 0 (the allocating worker); otherwise pages are
// interleaved. The graph must be Unallocated.
func (g *Graph[N, E]) AllocateFrom(numNodes, numEdges uint64) error {
	g.expectState("AllocateFrom", stateUnallocated)
	if err := checkNodeCount("AllocateFrom", numNodes); err != nil {
		return err
	}
	mode := ranged.Interleaved()
	if g.cfg.numa {
		mode = ranged.Local(0)
	}
	return g.allocate("AllocateFrom", numNodes, numEdges, mode, mode)
}

// AllocateFromByNode plans the node space over the configured workers with
// byte-size weights (one node costs its payload, index and lock bytes, one
// edge its destination and payload bytes), caches the resulting thread
// ranges, and places each worker's share of every array on its home NUMA
// node. prefix must describe exactly numEdges edges.
func (g *Graph[N, E]) AllocateFromByNode(numNodes, numEdges uint64, prefix partition.Prefix) error {
	const method = "AllocateFromByNode"
	g.expectState(method, stateUnallocated)
	if err := checkNodeCount(method, numNodes); err != nil {
		return err
	}
	var total uint64
	if numNodes > 0 {
		total = prefix.PrefixAt(numNodes - 1)
	}
	if total != numEdges {
		return fmt.Errorf("%s: %w: prefix describes %d edges, want %d", method, ErrSizeMismatch, total, numEdges)
	}

	nw, ew := g.nodeBytes(), g.edgeBytes()
	plan := partition.Plan{NodeWeight: nw, EdgeWeight: ew, Begin: 0, End: numNodes, Prefix: prefix}
	r := plan.Ranges(g.cfg.workers)
	g.ranges, g.rangeWeights = r, [2]int64{nw, ew}
	g.logRanges(method, r)

	nodeMode, edgeMode := ranged.Interleaved(), ranged.Interleaved()
	if g.cfg.numa {
		nodeMode, edgeMode = ranged.Specified(r.Nodes), ranged.Specified(r.Edges)
	}
	return g.allocate(method, numNodes, numEdges, nodeMode, edgeMode)
}

func (g *Graph[N, E]) allocate(method string, numNodes, numEdges uint64, nodeMode, edgeMode ranged.Mode) error {
	if err := g.nodes.allocate(nodeMode, numNodes); err != nil {
		return fmt.Errorf("%s: nodes: %w", method, err)
	}
	if err := g.edgeIndex.Allocate(nodeMode, numNodes); err != nil {
		g.nodes.deallocate()
		return fmt.Errorf("%s: edge index: %w", method, err)
	}
	if err := g.edgeDst.Allocate(edgeMode, numEdges); err != nil {
		g.nodes.deallocate()
		g.edgeIndex.Deallocate()
		return fmt.Errorf("%s: edge destinations: %w", method, err)
	}
	if !g.voidEdges {
		if err := g.edgeData.Allocate(edgeMode, numEdges); err != nil {
			g.nodes.deallocate()
			g.edgeIndex.Deallocate()
			g.edgeDst.Deallocate()
			return fmt.Errorf("%s: edge data: %w", method, err)
		}
	}
	g.numNodes, g.numEdges = numNodes, numEdges
	g.state = stateAllocated
	g.cfg.logger.Debug("csr: allocated",
		slog.String("method", method),
		slog.Uint64("nodes", numNodes),
		slog.Uint64("edges", numEdges),
		slog.String("lock", g.cfg.lockKind.String()),
		slog.String("node_placement", nodeMode.String()),
		slog.String("edge_placement", edgeMode.String()),
		slog.Bool("void_edges", g.voidEdges),
	)
	return nil
}

// ConstructNodes initialises every node payload (and lock) in parallel.
// The graph must be Allocated.
func (g *Graph[N, E]) ConstructNodes(ctx context.Context) error {
	g.expectState("ConstructNodes", stateAllocated)
	parallel.For(ctx, 0, g.numNodes, func(n uint64) {
		g.nodes.constructAt(n)
	}, g.passOptions("csr.ConstructNodes", g.numNodes)...)
	g.state = stateNodesConstructed
	return nil
}

// passOptions returns scheduler options for a pass over [0, size).
// The cached node ranges are used when they span the pass.
func (g *Graph[N, E]) passOptions(name string, size uint64) []parallel.Option {
	opts := []parallel.Option{
		parallel.WithLoopName(name),
		parallel.WithWorkers(g.cfg.workers),
		parallel.WithSteal(g.cfg.steal),
		parallel.WithPinning(g.cfg.pin),
		parallel.WithLogger(g.cfg.logger),
	}
	if r := g.ranges.Nodes; len(r) >= 2 && r[0] == 0 && r[len(r)-1] == size {
		opts = append(opts, parallel.WithRanges(r))
	}
	return opts
}

func (g *Graph[N, E]) logRanges(method string, r partition.Ranges) {
	if !g.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for i := 0; i < r.Workers(); i++ {
		w := r.Worker(i)
		g.cfg.logger.Debug("csr: thread range",
			slog.String("method", method),
			slog.Int("tid", i),
			slog.Uint64("node_begin", w.NodeBegin),
			slog.Uint64("node_end", w.NodeEnd),
			slog.Uint64("edge_begin", w.EdgeBegin),
			slog.Uint64("edge_end", w.EdgeEnd),
		)
	}
}

func checkNodeCount(method string, n uint64) error {
	if n > math.MaxUint32+1 {
		return fmt.Errorf("%s: %w: %d", method, ErrTooManyNodes, n)
	}
	return nil
}
