// SPDX-License-Identifier: MIT
// Package: lvcsr/pagerank

package pagerank

import (
	"math"
	"sync/atomic"
)

// AtomicFloat64 is a float64 updated with compare-and-swap.
// The zero value is 0.
type AtomicFloat64 struct {
	bits atomic.Uint64
}

// Load returns the current value.
func (a *AtomicFloat64) Load() float64 { return math.Float64frombits(a.bits.Load()) }

// Store sets the value.
func (a *AtomicFloat64) Store(v float64) { a.bits.Store(math.Float64bits(v)) }

// Swap sets v and returns the previous value.
func (a *AtomicFloat64) Swap(v float64) float64 {
	return math.Float64frombits(a.bits.Swap(math.Float64bits(v)))
}

// Add adds delta and returns the value before the addition.
func (a *AtomicFloat64) Add(delta float64) float64 {
	for {
		old := a.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if a.bits.CompareAndSwap(old, next) {
			return math.Float64frombits(old)
		}
	}
}
