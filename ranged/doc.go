// Package ranged provides fixed-capacity, contiguous arrays whose backing
// memory is placed according to an explicit allocation mode.
//
// An Array[T] is the storage primitive behind every CSR backing array
// (node payloads, the edge-index prefix sum, edge destinations, edge payloads
// and out-of-line lock tables). Three placement modes are supported:
//
//	Local(p)        - whole array on the NUMA node that is home to partition p
//	Interleaved()   - pages round-robin across all NUMA nodes (default)
//	Specified(tbl)  - element range [tbl[w], tbl[w+1]) on worker w's home node
//
// Placement is best-effort. On Linux, arrays of pointer-free element types that
// span at least one page are backed by an anonymous mapping and bound with
// mbind(2); everywhere else the Go heap is used and the mode is recorded only.
// Allocation itself never reports an out-of-memory condition: exhaustion is
// fatal, exactly like make.
//
// Lifecycle:
//
//	var a ranged.Array[uint64]
//	_ = a.Allocate(ranged.Interleaved(), n) // raw storage, zeroed
//	a.ConstructAt(i)                        // in-place (re)initialisation
//	a.Deallocate()                          // release; views become invalid
//
// Slices and pointers obtained from an Array are invalidated by Deallocate.
package ranged
