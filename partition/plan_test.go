// SPDX-License-Identifier: MIT
// Package: lvcsr/partition

package partition

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle4 is 0→1→2→3→0: one edge per node.
var cycle4 = PrefixFromDegrees([]uint64{1, 1, 1, 1})

// star6 is a star with center 0 pointing at leaves 1..5.
var star6 = PrefixFromDegrees([]uint64{5, 0, 0, 0, 0, 0})

func TestDivide_CycleByEdges(t *testing.T) {
	p := Plan{NodeWeight: 0, EdgeWeight: 1, Begin: 0, End: 4, Prefix: cycle4}

	r0 := p.Divide(0, 2)
	r1 := p.Divide(1, 2)
	assert.Equal(t, Range{NodeBegin: 0, NodeEnd: 2, EdgeBegin: 0, EdgeEnd: 2}, r0)
	assert.Equal(t, Range{NodeBegin: 2, NodeEnd: 4, EdgeBegin: 2, EdgeEnd: 4}, r1)
	assert.EqualValues(t, 2, r0.Edges())
	assert.EqualValues(t, 2, r1.Edges())

	rt := p.Ranges(2)
	assert.Equal(t, []uint64{0, 2, 4}, rt.Nodes)
	assert.Equal(t, []uint64{0, 2, 4}, rt.Edges)
	require.NoError(t, rt.Validate(0, 4, cycle4))
}

func TestDivide_StarLeavesOnePerWorker(t *testing.T) {
	p := Plan{NodeWeight: 1, EdgeWeight: 0, Begin: 1, End: 6, Prefix: star6}
	rt := p.Ranges(5)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6}, rt.Nodes)
	assert.Equal(t, []uint64{5, 5, 5, 5, 5, 5}, rt.Edges)
	for i := 0; i < 5; i++ {
		assert.EqualValues(t, 1, rt.Worker(i).Nodes(), "worker %d", i)
	}
	require.NoError(t, rt.Validate(1, 6, star6))
}

func TestDivide_StarWholeGraphBounded(t *testing.T) {
	p := Plan{NodeWeight: 1, EdgeWeight: 0, Begin: 0, End: 6, Prefix: star6}
	rt := p.Ranges(5)
	require.NoError(t, rt.Validate(0, 6, star6))
	assertBalanced(t, p, rt)
}

func TestDivide_CornerCases(t *testing.T) {
	t.Run("empty range", func(t *testing.T) {
		p := Plan{NodeWeight: 1, EdgeWeight: 1, Begin: 3, End: 3, Prefix: cycle4}
		rt := p.Ranges(4)
		assert.Equal(t, []uint64{3, 3, 3, 3, 3}, rt.Nodes)
		for i := 0; i < 4; i++ {
			assert.True(t, rt.Worker(i).Empty())
		}
	})
	t.Run("more workers than nodes", func(t *testing.T) {
		p := Plan{NodeWeight: 0, EdgeWeight: 1, Begin: 0, End: 4, Prefix: cycle4}
		rt := p.Ranges(7)
		assert.Equal(t, []uint64{0, 1, 2, 3, 4, 4, 4, 4}, rt.Nodes)
		assert.Equal(t, []uint64{0, 1, 2, 3, 4, 4, 4, 4}, rt.Edges)
	})
	t.Run("single worker", func(t *testing.T) {
		p := Plan{NodeWeight: 3, EdgeWeight: 5, Begin: 0, End: 6, Prefix: star6}
		assert.Equal(t, Range{NodeBegin: 0, NodeEnd: 6, EdgeBegin: 0, EdgeEnd: 5}, p.Divide(0, 1))
		assert.Equal(t, p.Divide(0, 1), p.Divide(0, 0), "total<1 behaves as 1")
	})
	t.Run("negative and zero weights", func(t *testing.T) {
		neg := Plan{NodeWeight: -4, EdgeWeight: -1, Begin: 0, End: 4, Prefix: cycle4}
		byNode := Plan{NodeWeight: 1, Begin: 0, End: 4, Prefix: cycle4}
		assert.Equal(t, byNode.Ranges(2), neg.Ranges(2))
	})
	t.Run("edge weight only, no edges", func(t *testing.T) {
		none := PrefixFromDegrees(make([]uint64, 8))
		p := Plan{EdgeWeight: 1, Begin: 0, End: 8, Prefix: none}
		assert.Equal(t, []uint64{0, 2, 4, 6, 8}, p.Ranges(4).Nodes)
	})
	t.Run("out of range worker id", func(t *testing.T) {
		p := Plan{NodeWeight: 1, Begin: 0, End: 4, Prefix: cycle4}
		assert.True(t, p.Divide(5, 2).Empty())
		assert.True(t, p.Divide(-1, 2).Empty())
	})
	t.Run("nil prefix counts nodes", func(t *testing.T) {
		p := Plan{NodeWeight: 1, EdgeWeight: 1, Begin: 0, End: 10}
		assert.Equal(t, []uint64{0, 5, 10}, p.Ranges(2).Nodes)
	})
}

func TestDivide_TieBreakPrefersSmallestBoundary(t *testing.T) {
	// Nodes 1 and 2 have no edges, so with edge-only weights boundaries at
	// 1, 2 and 3 all cost the same; the smallest is chosen.
	pre := PrefixFromDegrees([]uint64{2, 0, 0, 2})
	p := Plan{EdgeWeight: 1, Begin: 0, End: 4, Prefix: pre}
	assert.Equal(t, []uint64{0, 1, 4}, p.Ranges(2).Nodes)
}

func TestDivide_SubRangeMatchesShiftedGraph(t *testing.T) {
	deg := []uint64{9, 1, 2, 3, 4, 5, 6, 7}
	pre := PrefixFromDegrees(deg)
	sub := Plan{NodeWeight: 2, EdgeWeight: 1, Begin: 3, End: 8, Prefix: pre}
	shift := Plan{NodeWeight: 2, EdgeWeight: 1, Begin: 0, End: 5, Prefix: PrefixFromDegrees(deg[3:])}
	for total := 1; total <= 6; total++ {
		a, b := sub.Ranges(total), shift.Ranges(total)
		for i := range a.Nodes {
			assert.Equal(t, b.Nodes[i]+3, a.Nodes[i], "total=%d i=%d", total, i)
		}
	}
}

// TestDivide_Properties checks the cover and bounded-imbalance properties on
// random degree sequences, weights and worker counts.
func TestDivide_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 300; trial++ {
		n := rng.IntN(60)
		deg := make([]uint64, n)
		for i := range deg {
			if rng.IntN(4) == 0 {
				deg[i] = uint64(rng.IntN(40))
			} else {
				deg[i] = uint64(rng.IntN(4))
			}
		}
		pre := PrefixFromDegrees(deg)
		begin := uint64(0)
		if n > 0 {
			begin = uint64(rng.IntN(n/2 + 1))
		}
		p := Plan{
			NodeWeight: int64(rng.IntN(5)),
			EdgeWeight: int64(rng.IntN(5)),
			Begin:      begin,
			End:        uint64(n),
			Prefix:     pre,
		}
		total := 1 + rng.IntN(12)
		rt := p.Ranges(total)
		require.NoError(t, rt.Validate(p.Begin, p.End, pre), "trial %d: %+v total=%d", trial, p, total)
		for i := 0; i < total; i++ {
			require.Equal(t, rt.Worker(i), p.Divide(i, total), "trial %d worker %d", trial, i)
		}
		assertBalanced(t, p, rt)
	}
}

func TestDivide_HugeWeights(t *testing.T) {
	flat := PrefixFromDegrees(make([]uint64, 8))
	unit := Plan{NodeWeight: 1, Begin: 0, End: 8, Prefix: flat}
	huge := Plan{NodeWeight: math.MaxInt64, Begin: 0, End: 8, Prefix: flat}
	assert.Equal(t, []uint64{0, 2, 5, 8}, unit.Ranges(3).Nodes)
	assert.Equal(t, []uint64{0, 2, 5, 8}, huge.Ranges(3).Nodes)
	assert.Equal(t, uint64(math.MaxUint64), huge.TotalCost())
	assert.Equal(t, uint64(math.MaxInt64), huge.MaxUnitCost())
	assert.Equal(t, uint64(2*math.MaxInt64), huge.Cost(0, 2))
}

// TestDivide_ScaleInvariant checks that multiplying both weights by a common
// factor never moves a boundary, up to the largest int64 weights.
func TestDivide_ScaleInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(50)
		deg := make([]uint64, n)
		for i := range deg {
			deg[i] = uint64(rng.IntN(30))
		}
		pre := PrefixFromDegrees(deg)
		nw, ew := int64(rng.IntN(4)), int64(rng.IntN(4))
		top := max(nw, ew, 1)
		k := math.MaxInt64 / top
		if rng.IntN(2) == 0 {
			k = 1 + rng.Int64N(k)
		}
		small := Plan{NodeWeight: nw, EdgeWeight: ew, Begin: 0, End: uint64(n), Prefix: pre}
		if nw == 0 && ew == 0 {
			nw = 1
		}
		big := Plan{NodeWeight: nw * k, EdgeWeight: ew * k, Begin: 0, End: uint64(n), Prefix: pre}
		total := 1 + rng.IntN(10)
		want, got := small.Ranges(total), big.Ranges(total)
		require.Equal(t, want.Nodes, got.Nodes, "trial %d: nw=%d ew=%d k=%d total=%d", trial, nw, ew, k, total)
		require.NoError(t, got.Validate(0, uint64(n), pre))
	}
}

// assertBalanced checks |cost_i - W/T| <= u for every worker, where u is the
// largest single-node cost.
func assertBalanced(t *testing.T, p Plan, rt Ranges) {
	t.Helper()
	total := uint64(rt.Workers())
	w := p.TotalCost()
	u := p.MaxUnitCost()
	for i := 0; i < rt.Workers(); i++ {
		r := rt.Worker(i)
		c := p.Cost(r.NodeBegin, r.NodeEnd)
		// compare c*T against W ± u*T in integers
		lhs := c * total
		assert.LessOrEqual(t, lhs, w+u*total, "worker %d over budget (plan %+v)", i, p)
		assert.GreaterOrEqual(t, lhs+u*total, w, "worker %d under budget (plan %+v)", i, p)
	}
}

func TestRanges_Validate(t *testing.T) {
	good := Ranges{Nodes: []uint64{0, 2, 4}, Edges: []uint64{0, 2, 4}}
	require.NoError(t, good.Validate(0, 4, cycle4))

	bad := []Ranges{
		{Nodes: []uint64{0}, Edges: []uint64{0}},
		{Nodes: []uint64{0, 2, 4}, Edges: []uint64{0, 2}},
		{Nodes: []uint64{1, 2, 4}, Edges: []uint64{1, 2, 4}},
		{Nodes: []uint64{0, 3, 2, 4}, Edges: []uint64{0, 3, 2, 4}},
		{Nodes: []uint64{0, 2, 4}, Edges: []uint64{0, 1, 4}},
	}
	for i, r := range bad {
		assert.ErrorIs(t, r.Validate(0, 4, cycle4), ErrInvalidRanges, "case %d", i)
	}

	c := good.Clone()
	c.Nodes[1] = 3
	assert.EqualValues(t, 2, good.Nodes[1])
	assert.Equal(t, 2, good.Workers())
	assert.True(t, Ranges{}.Empty())
}
