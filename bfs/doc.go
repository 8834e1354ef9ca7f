// Package bfs provides breadth-first search over a csr.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-node distance from start, Unreached when not reached
//   - Parent: per-node predecessor in the BFS tree, NoParent for the start
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Two drivers share the options:
//
//   - BFS walks a single queue and is fully deterministic: neighbors are
//     enqueued in CSR edge order.
//   - Parallel expands one level at a time over the worker pool of package
//     parallel, claiming nodes with an atomic compare-and-swap on their depth.
//
// Complexity (V = Size(), E = SizeEdges())
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	g, _ := csr.FromSource[struct{}, float64](ctx, list)
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start id is not below Size().
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
