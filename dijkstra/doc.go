// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// static csr.Graph whose edge data is a float64 weight.
//
// Overview:
//
//   - Computes the minimum-cost distance from one source node to every
//     reachable node in O((V + E) log V) time.
//   - Uses a container/heap min-heap with lazy decrease-key: improved
//     distances push a fresh entry and stale entries are skipped on pop.
//   - Weights are validated up front by a parallel scan of the edge array,
//     so a negative or NaN weight fails before any node is settled.
//
// Key features:
//
//   - ReturnPath: returns a predecessor slice; PathTo rebuilds one path.
//   - MaxDistance: nodes farther than the cap stay at +Inf.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is a wall.
//
// Ties between equal distances are broken by the smaller node id, so runs
// over the same graph are reproducible.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  source id not below g.Size().
//   - ErrNegativeWeight:  some edge weight is negative or NaN.
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative cap.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on a non-positive threshold.
//   - ErrNoPath:          PathTo on an unreached target.
//
// Thread safety:
//
//   - A sealed csr.Graph is read-only, so concurrent Dijkstra calls over the
//     same graph are safe.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(ctx, g,
//	    dijkstra.Source(0),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	path, _ := dijkstra.PathTo(prev, 0, 7)
//	fmt.Println(dist[7], path)
package dijkstra
