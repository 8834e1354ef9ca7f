// Package pagerank implements residual (push-based) PageRank over a
// csr.Graph whose node payload is NodeData.
//
// Every node starts with value 1-α and pushes α·value/outdeg into each
// out-neighbour's residual. Each iteration then, for every node in parallel,
// atomically swaps its residual for 0, folds it into its value and pushes
// α·residual/outdeg onward. Residuals are atomic adds, so concurrent
// pushes to one destination never lose updates.
//
// α is the share of a node's value that propagates. The default 0.85 follows
// the usual damping convention: nodes seed 0.15 and push 85%. WithAlpha(0.15)
// swaps the roles (seed 0.85, push 15%), which reproduces the constants of
// residual PageRank implementations that store 1-d as their alpha.
//
// Termination is explicit: Iterate returns IterationResult{DidWork}, set when
// some push lifted a destination's residual across the tolerance. Run loops
// until an iteration does no work or the iteration cap is hit; both checks
// happen only between passes.
//
// With WithProtected(true) every push happens inside a csr.Tx holding the
// source's and its neighbours' locks, exercising the graph's lock policy.
package pagerank
