// Package lock implements the per-node lock policy of the CSR container.
//
// A container chooses one Kind for its lifetime:
//
//	NoLock     - no lock words exist; protected access degenerates to plain access
//	Inline     - each node payload is co-located with its lock Word
//	OutOfLine  - lock Words live in a separate dense Table indexed by node id
//
// Access requests carry a Mode. Any mode other than Unprotected acquires the
// node's lock exclusively; Read and Write are not distinguished.
//
// Locks are owned by a Held set, one per logical activity. Acquiring a word the
// set already owns is a no-op, so a node may be named twice in one activity.
// Every word in the set is released together by ReleaseAll.
package lock
