// SPDX-License-Identifier: MIT
// Package: lvcsr/lock

package lock

import "sync/atomic"

var ownerSeq atomic.Uint32

// nextOwner hands out non-zero owner ids. Wrap-around is harmless as long as
// fewer than 2^32-1 activities are alive at once.
func nextOwner() uint32 {
	for {
		if id := ownerSeq.Add(1); id != 0 {
			return id
		}
	}
}

// Held is the set of locks owned by one activity.
// A Held must not be shared between goroutines.
type Held struct {
	owner uint32
	words []*Word
}

// NewHeld returns an empty set with a fresh owner id.
func NewHeld() *Held { return &Held{owner: nextOwner()} }

// Owner returns the id written into acquired words.
func (h *Held) Owner() uint32 { return h.owner }

// Acquire takes w for this set, blocking while another owner holds it.
// Acquiring a word already in the set is a no-op.
func (h *Held) Acquire(w *Word) {
	if w.Acquire(h.owner) {
		h.words = append(h.words, w)
	}
}

// Release unlocks w and drops it from the set. It reports false if the set
// does not hold w.
func (h *Held) Release(w *Word) bool {
	for i, x := range h.words {
		if x != w {
			continue
		}
		w.Release(h.owner)
		last := len(h.words) - 1
		h.words[i] = h.words[last]
		h.words[last] = nil
		h.words = h.words[:last]
		return true
	}
	return false
}

// Len returns the number of words currently held.
func (h *Held) Len() int { return len(h.words) }

// ReleaseAll unlocks every word in the set and leaves it empty and reusable.
// A fresh owner id is drawn so a recycled set never aliases stale ownership.
func (h *Held) ReleaseAll() {
	for i, w := range h.words {
		w.Release(h.owner)
		h.words[i] = nil
	}
	h.words = h.words[:0]
	h.owner = nextOwner()
}
