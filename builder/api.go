// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh sketch, then freezes the sketch into a source.EdgeList.
//   - Each constructor owns a fresh block of dense node ids, so composing
//     constructors yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcsr/source"
)

// Constructor appends one topology to the sketch using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before reserving ids and return sentinel errors.
//   - Reserve their node ids through sketch.reserve.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(s *sketch, cfg builderConfig) error

// Build resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting edge list with
// float64 payloads. Any constructor error is wrapped with "Build: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Freezing: O(V+E) counting sort inside source.NewEdgeList.
func Build(bopts []BuilderOption, cons ...Constructor) (*source.EdgeList[float64], error) {
	cfg := newBuilderConfig(bopts...)

	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	el, err := source.NewEdgeList(s.nodes, s.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return el, nil
}

// sketch accumulates nodes and directed edges while constructors run.
type sketch struct {
	nodes uint64
	edges []source.Edge[float64]
}

// reserve hands out n consecutive fresh ids and returns the first one.
func (s *sketch) reserve(method string, n int) (uint32, error) {
	if uint64(n) > math.MaxUint32+1-s.nodes {
		return 0, fmt.Errorf("%s: %d more nodes on top of %d: %w", method, n, s.nodes, ErrTooManyVertices)
	}
	base := uint32(s.nodes)
	s.nodes += uint64(n)
	return base, nil
}

// grow hints the edge capacity the next constructor needs.
func (s *sketch) grow(extra int) {
	if free := cap(s.edges) - len(s.edges); free < extra {
		next := make([]source.Edge[float64], len(s.edges), len(s.edges)+extra)
		copy(next, s.edges)
		s.edges = next
	}
}

func (s *sketch) add(u, v uint32, w float64) {
	s.edges = append(s.edges, source.Edge[float64]{Src: u, Dst: v, Data: w})
}

// link emits u→v and, unless the config is directed, v→u with the same
// weight. Self-loops are emitted once.
func (s *sketch) link(cfg builderConfig, u, v uint32) {
	w := cfg.weightFn(cfg.rng)
	s.add(u, v, w)
	if !cfg.directed && u != v {
		s.add(v, u, w)
	}
}

// linkBoth emits u→v and v→u regardless of direction mode. Used for
// topologies that are symmetric by definition (stars, grids, K_n).
func (s *sketch) linkBoth(cfg builderConfig, u, v uint32) {
	w := cfg.weightFn(cfg.rng)
	s.add(u, v, w)
	if u != v {
		s.add(v, u, w)
	}
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Cycle builds an n-node ring (n ≥ 3).
//func Cycle(n int) Constructor
//
// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor
//
// Star builds a star with hub at the block's first id and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor
//
// Wheel builds W_n = C_{n-1} + hub at the block's last id (n ≥ 4).
//func Wheel(n int) Constructor
//
// Complete builds K_n (n ≥ 1).
//func Complete(n int) Constructor
//
// CompleteBipartite builds K_{n1,n2}; left block first, right block second.
//func CompleteBipartite(n1, n2 int) Constructor
//
// Grid builds an R×C 4-neighbourhood grid in row-major id order.
//func Grid(rows, cols int) Constructor
//
// RandomSparse builds an Erdős–Rényi-like graph. Requires 0 ≤ p ≤ 1 and an RNG
// when 0 < p < 1.
//func RandomSparse(n int, p float64) Constructor
//
// RandomRegular builds an undirected d-regular simple graph via stub matching.
//func RandomRegular(n, d int) Constructor
