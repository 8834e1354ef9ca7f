// SPDX-License-Identifier: MIT
// Package: lvcsr/builder

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a, b := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, DefaultEdgeWeight, newBuilderConfig().weightFn(nil))

	cfg := newBuilderConfig(WithConstantWeight(9))
	assert.Equal(t, 9.0, cfg.weightFn(nil))
	assert.Equal(t, 9.0, cfg.weightFn(rng))

	cfg = newBuilderConfig(WithUniformWeight(2, 4))
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	v := cfg.weightFn(rng)
	assert.GreaterOrEqual(t, v, 2.0)
	assert.Less(t, v, 4.0)

	// Last option wins.
	cfg = newBuilderConfig(WithUniformWeight(2, 4), WithConstantWeight(1))
	assert.Equal(t, 1.0, cfg.weightFn(rng))

	assert.Panics(t, func() { WithWeightFn(nil) })
}

func TestModeOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.False(t, cfg.directed)
	assert.False(t, cfg.loops)

	cfg = newBuilderConfig(WithDirected(), WithLoops())
	assert.True(t, cfg.directed)
	assert.True(t, cfg.loops)
}

func TestSketchReserve(t *testing.T) {
	t.Parallel()

	s := &sketch{}
	b, err := s.reserve(MethodCycle, 3)
	require.NoError(t, err)
	assert.Zero(t, b)
	b, err = s.reserve(MethodStar, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, b)
	assert.EqualValues(t, 5, s.nodes)

	s.nodes = 1 << 32
	_, err = s.reserve(MethodPath, 1)
	require.ErrorIs(t, err, ErrTooManyVertices)
}

func TestSimplePairing(t *testing.T) {
	t.Parallel()

	assert.True(t, simplePairing([]int{0, 1, 2, 3}, false))
	assert.False(t, simplePairing([]int{0, 0}, false))
	assert.True(t, simplePairing([]int{0, 0}, true))
	assert.False(t, simplePairing([]int{0, 1, 1, 0}, false))
}
