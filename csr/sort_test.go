// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"cmp"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAllEdgesByDst_FindMatchesLinearScan(t *testing.T) {
	g, _ := buildRandom[struct{}](t, 5, 40, 500, WithWorkers(3))
	before := triples(g)
	g.SortAllEdgesByDst(context.Background())
	assert.Equal(t, before, triples(g), "sorting permutes edges within nodes only")

	for src := range g.Nodes() {
		r := g.Edges(src)
		for e := r.Begin + 1; e < r.End; e++ {
			require.LessOrEqual(t, g.EdgeDst(e-1), g.EdgeDst(e))
		}
		for e := r.Begin; e < r.End; e++ {
			d := g.EdgeDst(e)
			require.Equal(t, d, uint32(g.EdgeData(e)%100000), "payload moved with its edge")
		}
		for dst := uint32(0); dst < uint32(g.Size()); dst++ {
			le, lok := g.FindEdge(src, dst)
			be, bok := g.FindEdgeSortedByDst(src, dst)
			require.Equal(t, lok, bok, "src=%d dst=%d", src, dst)
			if lok {
				require.Equal(t, le, be, "src=%d dst=%d", src, dst)
				require.Equal(t, dst, g.EdgeDst(be))
			}
		}
	}
}

func TestSortAllEdgesByDst_Void(t *testing.T) {
	g, err := NewFunctional[int, struct{}](context.Background(), 4, 4,
		func(n uint32) uint64 {
			if n == 0 {
				return 4
			}
			return 0
		},
		func(_ uint32, k uint64) uint32 { return uint32(3 - k) },
		nil)
	require.NoError(t, err)
	g.SortAllEdgesByDst(context.Background())
	for k := uint64(0); k < 4; k++ {
		assert.EqualValues(t, k, g.EdgeDst(k))
	}
	e, ok := g.FindEdgeSortedByDst(0, 2)
	assert.True(t, ok)
	assert.EqualValues(t, 2, e)
	_, ok = g.FindEdgeSortedByDst(1, 2)
	assert.False(t, ok)
}

func threeEdgeNode(t *testing.T) *Graph[int, int64] {
	t.Helper()
	dsts := []uint32{2, 0, 1}
	data := []int64{5, 9, 7}
	g, err := NewFunctional[int, int64](context.Background(), 3, 3,
		func(n uint32) uint64 {
			if n == 0 {
				return 3
			}
			return 0
		},
		func(_ uint32, k uint64) uint32 { return dsts[k] },
		func(_ uint32, k uint64) int64 { return data[k] })
	require.NoError(t, err)
	return g
}

func TestSortEdgesByEdgeData(t *testing.T) {
	g := threeEdgeNode(t)
	g.SortEdgesByEdgeData(0, cmp.Compare[int64])
	assert.Equal(t, []int64{5, 7, 9}, []int64{g.EdgeData(0), g.EdgeData(1), g.EdgeData(2)})
	assert.Equal(t, []uint32{2, 1, 0}, []uint32{g.EdgeDst(0), g.EdgeDst(1), g.EdgeDst(2)})
}

func TestSortEdges_CustomOrder(t *testing.T) {
	g := threeEdgeNode(t)
	g.SortEdges(0, func(a, b EdgeSortValue[int64]) bool { return a.Dst > b.Dst })
	assert.Equal(t, []uint32{2, 1, 0}, []uint32{g.EdgeDst(0), g.EdgeDst(1), g.EdgeDst(2)})
	assert.Equal(t, []int64{5, 7, 9}, []int64{g.EdgeData(0), g.EdgeData(1), g.EdgeData(2)})
}

func TestPartitionNeighbors(t *testing.T) {
	g := threeEdgeNode(t)
	split := g.PartitionNeighbors(0, func(d uint32) bool { return d != 2 })
	require.EqualValues(t, 2, split)
	for e := uint64(0); e < 3; e++ {
		d := g.EdgeDst(e)
		assert.Equal(t, e < split, d != 2)
		want := map[uint32]int64{2: 5, 0: 9, 1: 7}[d]
		assert.Equal(t, want, g.EdgeData(e), "payload follows destination %d", d)
	}
	assert.EqualValues(t, 3, g.PartitionNeighbors(0, func(uint32) bool { return true }))
	assert.EqualValues(t, 0, g.PartitionNeighbors(0, func(uint32) bool { return false }))
	assert.EqualValues(t, 3, g.PartitionNeighbors(1, func(uint32) bool { return true }), "empty node returns its begin")
}
