// Package csr implements a static, shared-memory graph container in
// compressed-sparse-row form, the substrate for parallel graph analytics.
//
// A Graph[N, E] owns four backing arrays:
//
//	nodes      N per node (plus a lock word under the Inline policy)
//	edgeIndex  inclusive prefix sum of out-degrees; node n owns edges
//	           [edgeIndex[n-1], edgeIndex[n]) with edgeIndex[-1] = 0
//	edgeDst    uint32 destination per edge
//	edgeData   E per edge; not allocated when E has zero size
//
// Node ids are uint32 and edge ids are uint64.
//
// # Construction
//
// NewFunctional builds a graph from a node count, an edge count and
// out-degree/destination/payload callbacks, serially.
//
// FromSource streams a source.Source in parallel: the id space is split by the
// partition planner with byte-size weights, storage is allocated with each
// worker's share placed on that worker's NUMA node, and each worker fills its
// own node and edge range without synchronisation. The same steps are
// available individually (AllocateFromByNode, ConstructNodes, ConstructEdge,
// FixEndEdge, Seal) for custom loaders.
//
// # Lifecycle
//
//	Unallocated → Allocated → NodesConstructed → EdgesPopulated ⇄ (Transpose)
//
// Calling an operation in the wrong state is a programming error. Builds with
// the lvcsrdebug tag check every transition and panic on violations; regular
// builds do not check.
//
// # Concurrency
//
// The node lock policy (lock.NoLock, lock.Inline or lock.OutOfLine) is fixed
// by WithLockKind when the graph is created. Data and Edges on the Graph are
// unprotected. Protected access goes through a Tx:
//
//	tx := g.Begin()
//	defer tx.Release()
//	for e := range tx.Edges(n, lock.Write).All() { ... }
//
// Under a locking mode, Tx.Edges acquires n and all of its neighbours in
// ascending id order. Locks stay held until Release. Edge arrays are read-only
// after Seal except during Transpose and the sort family, which must not run
// concurrently with traversals.
//
// Pointers, slices and edge ids obtained before Transpose are invalid after it.
package csr
