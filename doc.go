// Package lvcsr is a static graph storage engine for parallel analytics:
// graphs are loaded once into compressed sparse row form, partitioned
// between workers, and then traversed by data-parallel algorithms.
//
// What is in the box
//
//	• ranged     – large arrays placed on NUMA nodes (local, interleaved or per worker range)
//	• lock       – per-node locks: none, inline next to the payload, or out of line
//	• partition  – weighted divide-by-node planner producing per-worker node/edge ranges
//	• parallel   – the worker pool: For / ForErr / OnEach / Blocks with optional stealing and pinning
//	• source     – edge sources, an in-memory EdgeList and a text edge-list reader
//	• csr        – the container: construction, traversal, sorting, transpose, thread ranges
//	• pagerank   – residual push PageRank over csr.Graph
//	• bfs        – sequential and level-synchronous breadth-first search
//	• dijkstra   – single-source shortest paths over float64 edge weights
//	• builder    – synthetic topologies (cycle, star, grid, Erdős–Rényi, ...)
//	• cmd/lvcsr  – command-line front end with YAML config and Prometheus metrics
//
// Lifecycle of a container
//
//	Unallocated → Allocated → NodesConstructed → EdgesPopulated
//
// csr.FromSource drives the whole lifecycle from a source.Source: it plans
// per-worker ranges by byte size, places every array accordingly, and
// copies each worker's share in parallel.
//
// Quick example:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └──── 2
//
//	el, _ := source.NewEdgeList(3, []source.Edge[struct{}]{{0, 1, struct{}{}}, {1, 2, struct{}{}}, {2, 0, struct{}{}}})
//	g, _ := csr.FromSource[pagerank.NodeData, struct{}](ctx, el)
//	res, _ := pagerank.Run(ctx, g)
//
//	go get github.com/katalvlaran/lvcsr
package lvcsr
