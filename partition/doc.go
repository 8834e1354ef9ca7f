// Package partition divides a contiguous node id range into per-worker
// sub-ranges of (approximately) equal weighted cost.
//
// Cost model:
//
//	cost([lo,hi)) = NodeWeight*(hi-lo) + EdgeWeight*(edgesBefore(hi) - edgesBefore(lo))
//
// where edgesBefore(x) is the number of edges owned by nodes [0,x), read from an
// inclusive prefix sum of out-degrees (the CSR edge-index array). Both terms are
// monotone in hi, so each boundary is found by binary search.
//
// Boundary rule for worker i of T over a range of total cost W:
//
//	boundary(i) = smallest h whose cost equals the largest prefix cost <= i*W/T
//
// Comparisons are exact (128-bit products), so plans are deterministic and
// independent of floating-point rounding. The last worker absorbs the
// remainder. Every worker's cost lies strictly within one unit of the average,
// where a unit is the largest cost of any single node in the range.
//
// Degenerate inputs never fail:
//   - an empty range gives every worker an empty range at its start;
//   - with more workers than nodes the first n workers get one node each;
//   - a single worker gets the whole range;
//   - negative weights count as 0, and if both are 0 nodes are counted.
//
// The package allocates nothing but the returned tables and keeps no state.
package partition
