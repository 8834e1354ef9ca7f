// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// tx.go - protected access under the graph's node lock policy.

package csr

import (
	"slices"

	"github.com/katalvlaran/lvcsr/lock"
)

// Tx is one activity's view of the graph under the lock policy. Locks taken
// through a Tx are held until Release. A Tx must not be shared between
// goroutines or used after Release.
type Tx[N, E any] struct {
	g       *Graph[N, E]
	held    *lock.Held
	scratch []uint32
}

// Begin returns a Tx from the graph's pool.
func (g *Graph[N, E]) Begin() *Tx[N, E] {
	return g.txPool.Get().(*Tx[N, E])
}

// Release unlocks everything the Tx acquired and returns it to the pool.
func (tx *Tx[N, E]) Release() {
	tx.held.ReleaseAll()
	tx.scratch = tx.scratch[:0]
	tx.g.txPool.Put(tx)
}

// Held returns the number of node locks currently owned by the Tx.
func (tx *Tx[N, E]) Held() int { return tx.held.Len() }

// Acquire takes node n's lock if mode requires it. Under lock.NoLock it does
// nothing.
func (tx *Tx[N, E]) Acquire(n uint32, mode lock.Mode) {
	if mode.Locks() {
		tx.g.nodes.acquire(tx.held, uint64(n))
	}
}

// Data returns node n's payload after acquiring its lock as mode requires.
func (tx *Tx[N, E]) Data(n uint32, mode lock.Mode) *N {
	tx.Acquire(n, mode)
	return tx.g.nodes.data(uint64(n))
}

// Edges returns n's edge range. Under a locking mode, n and every neighbour
// are acquired in ascending id order before returning.
func (tx *Tx[N, E]) Edges(n uint32, mode lock.Mode) EdgeRange {
	g := tx.g
	r := g.Edges(n)
	if !mode.Locks() || g.cfg.lockKind == lock.NoLock {
		return r
	}
	ids := append(tx.scratch[:0], n)
	for e := r.Begin; e < r.End; e++ {
		ids = append(ids, g.edgeDst.Get(e))
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for _, id := range ids {
		g.nodes.acquire(tx.held, uint64(id))
	}
	tx.scratch = ids
	return r
}
