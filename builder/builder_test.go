// SPDX-License-Identifier: MIT
// Package: lvcsr/builder

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcsr/builder"
	"github.com/katalvlaran/lvcsr/source"
)

// dsts returns the destinations of n in list order.
func dsts(el *source.EdgeList[float64], n uint64) []uint32 {
	out := []uint32{}
	for e := el.EdgeBegin(n); e < el.EdgeEnd(n); e++ {
		out = append(out, el.EdgeDst(e))
	}
	return out
}

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []builder.BuilderOption
		ctor   builder.Constructor
		wantV  uint64
		wantE  uint64
		sample func(t *testing.T, el *source.EdgeList[float64])
	}{
		{
			name: "Cycle(4)", ctor: builder.Cycle(4), wantV: 4, wantE: 8,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{1, 3}, dsts(el, 0))
				assert.Equal(t, []uint32{0, 2}, dsts(el, 1))
				assert.Equal(t, []uint32{2, 0}, dsts(el, 3))
			},
		},
		{
			name: "Cycle(4)/directed", opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.Cycle(4), wantV: 4, wantE: 4,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				for n := uint64(0); n < 4; n++ {
					assert.Equal(t, []uint32{uint32((n + 1) % 4)}, dsts(el, n))
				}
			},
		},
		{
			name: "Path(3)/directed", opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.Path(3), wantV: 3, wantE: 2,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Zero(t, el.OutDegree(2))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 8,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{1, 2, 3, 4}, dsts(el, 0))
				for n := uint64(1); n < 5; n++ {
					assert.Equal(t, []uint32{0}, dsts(el, n))
				}
			},
		},
		{
			name: "Star(3)/directed keeps spokes", opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.Star(3), wantV: 3, wantE: 4,
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 16,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{0, 1, 2, 3}, dsts(el, 4))
				for n := uint64(0); n < 4; n++ {
					assert.EqualValues(t, 3, el.OutDegree(n))
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{1, 2, 3}, dsts(el, 0))
				assert.Equal(t, []uint32{0, 1, 2}, dsts(el, 3))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 12,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{2, 3, 4}, dsts(el, 0))
				assert.Equal(t, []uint32{0, 1}, dsts(el, 4))
			},
		},
		{
			name: "CompleteBipartite(2,3)/directed", opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 14,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{1, 3}, dsts(el, 0))
				assert.Equal(t, []uint32{0, 2, 4}, dsts(el, 1))
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0,
		},
		{
			name: "RandomSparse(4,1)", ctor: builder.RandomSparse(4, 1), wantV: 4, wantE: 12,
		},
		{
			name: "RandomSparse(4,0)", ctor: builder.RandomSparse(4, 0), wantV: 4, wantE: 0,
		},
		{
			name: "RandomSparse(3,1)/directed", opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.RandomSparse(3, 1), wantV: 3, wantE: 6,
		},
		{
			name: "RandomSparse(3,1)/directed+loops", opts: []builder.BuilderOption{builder.WithDirected(), builder.WithLoops()},
			ctor: builder.RandomSparse(3, 1), wantV: 3, wantE: 9,
		},
		{
			name: "RandomRegular(2,1)", opts: []builder.BuilderOption{builder.WithSeed(1)},
			ctor: builder.RandomRegular(2, 1), wantV: 2, wantE: 2,
			sample: func(t *testing.T, el *source.EdgeList[float64]) {
				assert.Equal(t, []uint32{1}, dsts(el, 0))
				assert.Equal(t, []uint32{0}, dsts(el, 1))
			},
		},
		{
			name: "RandomRegular(5,0)", opts: []builder.BuilderOption{builder.WithSeed(1)},
			ctor: builder.RandomRegular(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			el, err := builder.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, el.NumNodes())
			assert.Equal(t, tc.wantE, el.NumEdges())
			for e := range el.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Data)
			}
			if tc.sample != nil {
				tc.sample(t, el)
			}
		})
	}
}

func TestBuild_DisjointUnion(t *testing.T) {
	t.Parallel()

	el, err := builder.Build(nil, builder.Cycle(3), builder.Star(3))
	require.NoError(t, err)
	assert.EqualValues(t, 6, el.NumNodes())
	assert.EqualValues(t, 10, el.NumEdges())
	assert.Equal(t, []uint32{4, 5}, dsts(el, 3), "star hub is the first id of its block")
	for n := uint64(0); n < 3; n++ {
		for _, d := range dsts(el, n) {
			assert.Less(t, d, uint32(3), "cycle edges stay inside their block")
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid too large", nil, builder.Grid(1<<16, 1<<16+1), builder.ErrTooManyVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse p<0", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular directed", []builder.BuilderOption{builder.WithDirected(), builder.WithSeed(1)}, builder.RandomRegular(4, 2), builder.ErrUnsupportedGraphMode},
		{"RandomRegular odd", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(3, 1), builder.ErrTooFewVertices},
		{"RandomRegular d>=n", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(3, 3), builder.ErrTooFewVertices},
		{"RandomRegular no rng", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []source.Edge[float64] {
		el, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
			builder.RandomSparse(30, 0.2),
		)
		require.NoError(t, err)
		var out []source.Edge[float64]
		for e := range el.Edges() {
			out = append(out, e)
		}
		return out
	}
	a, b := build(), build()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
	for _, e := range a {
		assert.NotEqual(t, e.Src, e.Dst)
		assert.GreaterOrEqual(t, e.Data, 1.0)
		assert.Less(t, e.Data, 10.0)
	}
}

func TestRandomRegular_Properties(t *testing.T) {
	t.Parallel()

	const n, d = 10, 2
	for seed := int64(1); seed <= 20; seed++ {
		el, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomRegular(n, d))
		if err != nil {
			require.ErrorIs(t, err, builder.ErrConstructFailed)
			continue
		}
		for v := uint64(0); v < n; v++ {
			got := dsts(el, v)
			assert.Len(t, got, d, "seed %d node %d", seed, v)
			seen := map[uint32]bool{}
			for _, u := range got {
				assert.NotEqual(t, uint32(v), u)
				assert.False(t, seen[u], "repeated neighbour")
				seen[u] = true
			}
		}
	}
}

func TestBuild_Weights(t *testing.T) {
	t.Parallel()

	el, err := builder.Build([]builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Cycle(3))
	require.NoError(t, err)
	for e := range el.Edges() {
		assert.Equal(t, 2.5, e.Data)
	}

	// The reverse of an undirected edge carries the same weight.
	el, err = builder.Build(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 100)},
		builder.Path(5),
	)
	require.NoError(t, err)
	w := map[[2]uint32]float64{}
	for e := range el.Edges() {
		w[[2]uint32{e.Src, e.Dst}] = e.Data
	}
	for i := uint32(0); i < 4; i++ {
		assert.Equal(t, w[[2]uint32{i, i + 1}], w[[2]uint32{i + 1, i}])
	}
}
