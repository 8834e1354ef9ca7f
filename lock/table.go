// SPDX-License-Identifier: MIT
// Package: lvcsr/lock

package lock

import "github.com/katalvlaran/lvcsr/ranged"

// Table is a dense array of lock words, one per node id, used by the
// OutOfLine policy. It shares the node array's allocation mode.
type Table struct {
	words ranged.Array[Word]
}

// Allocate reserves n unlocked words.
func (t *Table) Allocate(mode ranged.Mode, n uint64) error {
	return t.words.Allocate(mode, n)
}

// Deallocate releases the table.
func (t *Table) Deallocate() { t.words.Deallocate() }

// ConstructAt resets word i to unlocked.
func (t *Table) ConstructAt(i uint64) { t.words.ConstructAt(i) }

// Len returns the number of words.
func (t *Table) Len() uint64 { return t.words.Len() }

// Word returns the lock word of node i.
func (t *Table) Word(i uint64) *Word { return t.words.At(i) }

// Acquire takes node i's lock for h.
func (t *Table) Acquire(h *Held, i uint64) { h.Acquire(t.words.At(i)) }

// Release unlocks node i if h holds it. Held.ReleaseAll drops every lock at once.
func (t *Table) Release(h *Held, i uint64) bool { return h.Release(t.words.At(i)) }

// Mode returns the allocation mode of the table.
func (t *Table) Mode() ranged.Mode { return t.words.Mode() }
