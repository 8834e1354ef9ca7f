// Package builder generates synthetic graphs as source.EdgeList values with
// dense uint32 node ids, ready to feed csr.FromSource or the partition planner.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:             resolves options and runs constructors in order.
//     – Constructor:       one topology appended as a fresh id block, so
//     composing constructors yields a disjoint union.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithDirected, WithLoops, WithWeightFn.
//   - Topologies:
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse (Erdős–Rényi), RandomRegular (stub matching).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped at 0.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed give identical lists.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the constructor name for errors.Is filtering.
//   - Edges of one node keep their emission order in the resulting list.
//
// Star places its hub first, which makes it the canonical skewed-degree input
// for the partition planner.
package builder
