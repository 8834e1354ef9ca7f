// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/source"
)

var allLockKinds = []lock.Kind{lock.NoLock, lock.Inline, lock.OutOfLine}

type triple struct {
	Src, Dst uint32
	Data     int64
}

func cmpTriple(a, b triple) int {
	if c := cmp.Compare(a.Src, b.Src); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Dst, b.Dst); c != 0 {
		return c
	}
	return cmp.Compare(a.Data, b.Data)
}

// triples returns the graph's edges as a sorted multiset.
func triples[N any](g *Graph[N, int64]) []triple {
	var out []triple
	for n := range g.Nodes() {
		for e := range g.Edges(n).All() {
			out = append(out, triple{Src: n, Dst: g.EdgeDst(e), Data: g.EdgeData(e)})
		}
	}
	slices.SortFunc(out, cmpTriple)
	return out
}

func reversed(ts []triple) []triple {
	out := make([]triple, len(ts))
	for i, t := range ts {
		out[i] = triple{Src: t.Dst, Dst: t.Src, Data: t.Data}
	}
	slices.SortFunc(out, cmpTriple)
	return out
}

// randomEdges returns a random multigraph with self-loops and parallel edges.
// Payloads encode the edge's original endpoints.
func randomEdges(seed uint64, n, m int) []source.Edge[int64] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]source.Edge[int64], m)
	for i := range out {
		s, d := uint32(rng.IntN(n)), uint32(rng.IntN(n))
		if i%5 == 0 {
			s = 0 // skew: node 0 is a hub
		}
		out[i] = source.Edge[int64]{Src: s, Dst: d, Data: int64(s)*100000 + int64(d)}
	}
	return out
}

func buildRandom[N any](t *testing.T, seed uint64, n, m int, opts ...Option) (*Graph[N, int64], *source.EdgeList[int64]) {
	t.Helper()
	src, err := source.NewEdgeList(uint64(n), randomEdges(seed, n, m))
	require.NoError(t, err)
	g, err := FromSource[N, int64](context.Background(), src, opts...)
	require.NoError(t, err)
	return g, src
}

// cycle4 builds 0→1→2→3→0 with void edges.
func cycle4(t *testing.T, opts ...Option) *Graph[int64, struct{}] {
	t.Helper()
	g, err := NewFunctional[int64, struct{}](context.Background(), 4, 4,
		func(uint32) uint64 { return 1 },
		func(n uint32, _ uint64) uint32 { return (n + 1) % 4 },
		nil, opts...)
	require.NoError(t, err)
	return g
}
