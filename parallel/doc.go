// Package parallel is the data-parallel scheduler used by the CSR container and
// its algorithms: run a function over an index range across N workers, with
// optional work-stealing, and return only after every worker has finished.
//
// Each call is one pass. The return of For, ForErr or OnEach is a full
// barrier, so writes made inside a pass are visible to whatever runs next.
// Passes are never interrupted midway: the context is used for tracing and is
// only consulted before a pass starts.
//
// Work distribution:
//
//	default      - [begin,end) split into N equal blocks, one per worker
//	WithRanges   - blocks taken from an explicit (N+1)-entry boundary table,
//	               typically a partition plan
//	WithSteal    - a worker that drains its own block takes chunks from the
//	               blocks of other workers
//
// Assignment is deterministic without stealing: worker i always processes
// block i.
package parallel
