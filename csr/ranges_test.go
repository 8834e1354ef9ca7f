// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/partition"
	"github.com/katalvlaran/lvcsr/ranged"
	"github.com/katalvlaran/lvcsr/source"
)

func TestDivideByNode_Cycle(t *testing.T) {
	g := cycle4(t)
	assert.Equal(t, partition.Range{NodeBegin: 0, NodeEnd: 2, EdgeBegin: 0, EdgeEnd: 2}, g.DivideByNode(0, 1, 0, 2))
	assert.Equal(t, partition.Range{NodeBegin: 2, NodeEnd: 4, EdgeBegin: 2, EdgeEnd: 4}, g.DivideByNode(0, 1, 1, 2))
}

func TestDivideByNodeRange_StarLeaves(t *testing.T) {
	edges := make([]source.Edge[struct{}], 5)
	for i := range edges {
		edges[i] = source.Edge[struct{}]{Src: 0, Dst: uint32(i + 1)}
	}
	src, err := source.NewEdgeList(6, edges)
	require.NoError(t, err)
	g, err := FromSource[int, struct{}](context.Background(), src, WithWorkers(5))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		r := g.DivideByNodeRange(1, 0, i, 5, 1, 6)
		assert.EqualValues(t, 1, r.Nodes(), "worker %d", i)
		assert.EqualValues(t, i+1, r.NodeBegin)
	}
	rt := g.DetermineThreadRangesRange(1, 6, 5, 1)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6}, rt.Nodes)
}

func TestThreadRanges_CacheAndClear(t *testing.T) {
	g := cycle4(t, WithWorkers(2), WithNodeAlpha(0))
	rt := g.ThreadRanges()
	assert.Equal(t, []uint64{0, 2, 4}, rt.Nodes)

	rt.Nodes[1] = 3
	assert.Equal(t, []uint64{0, 2, 4}, g.ThreadRanges().Nodes, "callers get a copy")

	g.DetermineThreadRanges(4, 0)
	assert.Equal(t, 4, g.ThreadRanges().Workers())
	g.ClearRanges()
	assert.Equal(t, 2, g.ThreadRanges().Workers(), "recomputed with the configured worker count")
}

func TestLocalRange(t *testing.T) {
	g := cycle4(t, WithWorkers(2))
	_, _, ok := g.LocalRange(0)
	assert.False(t, ok, "functional construction records no local ranges")

	require.NoError(t, g.SetLocalRange(1, 2, 4))
	b, e, ok := g.LocalRange(1)
	require.True(t, ok)
	assert.EqualValues(t, 2, b)
	assert.EqualValues(t, 4, e)
	var got []uint32
	for n := range g.LocalNodes(1) {
		got = append(got, n)
	}
	assert.Equal(t, []uint32{2, 3}, got)

	assert.ErrorIs(t, g.SetLocalRange(2, 0, 1), ErrWorker)
	assert.ErrorIs(t, g.SetLocalRange(-1, 0, 1), ErrWorker)
}

func TestAllocateFrom_Placement(t *testing.T) {
	for _, kind := range []lock.Kind{lock.NoLock, lock.OutOfLine} {
		g := New[uint64, uint32](WithWorkers(2), WithLockKind(kind))
		require.NoError(t, g.AllocateFrom(4, 8))
		nodes, edges := g.Placement()
		assert.Equal(t, ranged.KindLocal, nodes.Kind(), kind.String())
		assert.Equal(t, ranged.KindLocal, edges.Kind(), kind.String())
		assert.Equal(t, 0, nodes.Partition())
		g.Deallocate()

		flat := New[uint64, uint32](WithWorkers(2), WithLockKind(kind), WithNUMA(false))
		require.NoError(t, flat.AllocateFrom(4, 8))
		nodes, edges = flat.Placement()
		assert.Equal(t, ranged.KindInterleaved, nodes.Kind(), kind.String())
		assert.Equal(t, ranged.KindInterleaved, edges.Kind(), kind.String())
	}

	g, err := NewFunctional[int, struct{}](context.Background(), 3, 3,
		func(uint32) uint64 { return 1 },
		func(n uint32, _ uint64) uint32 { return (n + 1) % 3 },
		nil)
	require.NoError(t, err)
	nodes, _ := g.Placement()
	assert.Equal(t, ranged.KindLocal, nodes.Kind(), "functional construction allocates locally")
}

func TestAllocateFromByNode_Placement(t *testing.T) {
	g := New[uint64, uint32](WithWorkers(2))
	prefix := partition.PrefixFromDegrees([]uint64{3, 1, 0, 4})
	require.NoError(t, g.AllocateFromByNode(4, 8, prefix))
	nodes, edges := g.Placement()
	assert.Equal(t, g.ThreadRanges().Nodes, nodes.Ranges())
	assert.Equal(t, g.ThreadRanges().Edges, edges.Ranges())
	g.Deallocate()

	assert.ErrorIs(t, g.AllocateFromByNode(4, 7, prefix), ErrSizeMismatch)

	flat := New[uint64, uint32](WithWorkers(2), WithNUMA(false))
	require.NoError(t, flat.AllocateFromByNode(4, 8, prefix))
	nodes, _ = flat.Placement()
	assert.Nil(t, nodes.Ranges())
}
