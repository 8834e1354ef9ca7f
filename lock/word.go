// SPDX-License-Identifier: MIT
// Package: lvcsr/lock

package lock

import (
	"runtime"
	"sync/atomic"
)

// spinsBeforeYield bounds busy-waiting before handing the P back to the scheduler.
const spinsBeforeYield = 64

// Word is a spin lock that records its owner. The zero value is unlocked.
//
// Word holds no pointers, so arrays of Words (and payloads that embed one)
// may be placed in NUMA-bound memory.
type Word struct {
	owner atomic.Uint32
}

// TryAcquire attempts to take the lock for owner without waiting.
// It reports (acquired, alreadyHeld).
func (w *Word) TryAcquire(owner uint32) (acquired, alreadyHeld bool) {
	if w.owner.CompareAndSwap(0, owner) {
		return true, false
	}
	return false, w.owner.Load() == owner
}

// Acquire blocks until owner holds the lock. It returns false when owner
// already held it on entry, in which case nothing changes.
func (w *Word) Acquire(owner uint32) bool {
	for i := 1; ; i++ {
		got, held := w.TryAcquire(owner)
		if got {
			return true
		}
		if held {
			return false
		}
		if i%spinsBeforeYield == 0 {
			runtime.Gosched()
		}
	}
}

// Release unlocks the word if owner holds it and reports whether it did.
func (w *Word) Release(owner uint32) bool {
	return w.owner.CompareAndSwap(owner, 0)
}

// Owner returns the current owner id (0 when unlocked).
func (w *Word) Owner() uint32 { return w.owner.Load() }

// Locked reports whether anyone holds the word.
func (w *Word) Locked() bool { return w.owner.Load() != 0 }
