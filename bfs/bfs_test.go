// SPDX-License-Identifier: MIT
// Package: lvcsr/bfs

package bfs_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcsr/bfs"
	"github.com/katalvlaran/lvcsr/builder"
	"github.com/katalvlaran/lvcsr/csr"
)

type graph = csr.Graph[struct{}, float64]

func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *graph {
	t.Helper()
	el, err := builder.Build(bopts, cons...)
	require.NoError(t, err)
	g, err := csr.FromSource[struct{}, float64](context.Background(), el, csr.WithWorkers(4))
	require.NoError(t, err)
	return g
}

// drivers runs every test against both BFS drivers.
var drivers = []struct {
	name string
	run  func(g *graph, start uint32, opts ...bfs.Option) (*bfs.BFSResult, error)
}{
	{"BFS", bfs.BFS[struct{}, float64]},
	{"Parallel", bfs.Parallel[struct{}, float64]},
}

func TestBFS_DirectedPath(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithDirected()}, builder.Path(5))
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			res, err := d.run(g, 0)
			require.NoError(t, err)
			assert.Equal(t, []uint32{0, 1, 2, 3, 4}, res.Order)
			assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Depth)
			path, err := res.PathTo(4)
			require.NoError(t, err)
			assert.Equal(t, []uint32{0, 1, 2, 3, 4}, path)

			res, err = d.run(g, 3)
			require.NoError(t, err)
			assert.False(t, res.Reached(0))
			_, err = res.PathTo(0)
			require.ErrorIs(t, err, bfs.ErrNoPath)
		})
	}
}

func TestBFS_GridDepths(t *testing.T) {
	const rows, cols = 5, 7
	g := build(t, nil, builder.Grid(rows, cols))
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			res, err := d.run(g, 0)
			require.NoError(t, err)
			require.Len(t, res.Order, rows*cols)
			for v := uint32(0); v < rows*cols; v++ {
				r, c := int(v)/cols, int(v)%cols
				assert.Equal(t, r+c, res.Depth[v], "cell (%d,%d)", r, c)
				if v == 0 {
					assert.Equal(t, uint32(bfs.NoParent), res.Parent[v])
					continue
				}
				p := res.Parent[v]
				assert.Equal(t, res.Depth[v]-1, res.Depth[p])
				assert.Contains(t, slices.Collect(g.Neighbors(p)), v)
			}
		})
	}
}

func TestBFS_SequentialOrderFollowsEdges(t *testing.T) {
	g := build(t, nil, builder.Star(4))
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 0, 1, 3}, res.Order)
	assert.Equal(t, []int{1, 2, 0, 2}, res.Depth)
}

func TestBFS_DisjointComponents(t *testing.T) {
	g := build(t, nil, builder.Cycle(3), builder.Cycle(3))
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			res, err := d.run(g, 4)
			require.NoError(t, err)
			assert.ElementsMatch(t, []uint32{3, 4, 5}, res.Order)
			for v := uint32(0); v < 3; v++ {
				assert.Equal(t, bfs.Unreached, res.Depth[v])
				assert.Equal(t, uint32(bfs.NoParent), res.Parent[v])
			}
		})
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	star := build(t, nil, builder.Star(5))
	path := build(t, nil, builder.Path(4))
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			res, err := d.run(star, 1, bfs.WithMaxDepth(1))
			require.NoError(t, err)
			assert.ElementsMatch(t, []uint32{1, 0}, res.Order)
			assert.False(t, res.Reached(2))

			res, err = d.run(path, 0, bfs.WithFilterNeighbor(func(_, nbr uint32) bool { return nbr != 2 }))
			require.NoError(t, err)
			assert.ElementsMatch(t, []uint32{0, 1}, res.Order)
		})
	}
}

func TestBFS_Hooks(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithDirected()}, builder.Path(3))

	var enq, deq []uint32
	res, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id uint32, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id uint32, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, enq)
	assert.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			_, err := d.run(g, 0, bfs.WithOnVisit(func(id uint32, _ int) error {
				if id == 1 {
					return stop
				}
				return nil
			}))
			require.ErrorIs(t, err, stop)
		})
	}
}

func TestBFS_Errors(t *testing.T) {
	g := build(t, nil, builder.Cycle(3))
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			_, err := d.run(nil, 0)
			require.ErrorIs(t, err, bfs.ErrGraphNil)
			_, err = d.run(g, 3)
			require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
			_, err = d.run(g, 0, bfs.WithMaxDepth(-1))
			require.ErrorIs(t, err, bfs.ErrOptionViolation)
			_, err = d.run(g, 0, bfs.WithWorkers(-2))
			require.ErrorIs(t, err, bfs.ErrOptionViolation)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = d.run(g, 0, bfs.WithContext(ctx))
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestParallel_MatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed), builder.WithDirected()}, builder.RandomSparse(300, 0.01))
		want, err := bfs.BFS(g, 0)
		require.NoError(t, err)
		for _, workers := range []int{1, 3, 8} {
			got, err := bfs.Parallel(g, 0, bfs.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, want.Depth, got.Depth, "seed %d workers %d", seed, workers)
			assert.ElementsMatch(t, want.Order, got.Order)
		}
	}
}
