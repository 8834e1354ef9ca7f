// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged
//
// array.go - Array[T]: fixed-capacity storage with an allocation mode.
//
// Complexity:
//   - Allocate: O(n) for zeroing (kernel zero pages for mapped storage).
//   - ConstructAt/Set/At/Get: O(1).
//   - Deallocate: O(1) plus the munmap cost.

package ranged

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"reflect"
	"unsafe"
)

// Array is a contiguous sequence of T with a placement mode.
// The zero value is an unallocated, empty array.
//
// Array is not safe for concurrent Allocate/Deallocate. Concurrent access to
// distinct elements is safe, as with a slice.
type Array[T any] struct {
	data      []T
	mapped    []byte
	mode      Mode
	allocated bool
	bound     bool
}

// Allocate obtains zeroed storage for n elements under mode.
//
// The only reported errors are ErrAllocated and ErrBadRanges (for a Specified
// table that does not describe [0,n)). Memory exhaustion is fatal.
func (a *Array[T]) Allocate(mode Mode, n uint64) error {
	if a.allocated {
		return fmt.Errorf("Allocate: %w", ErrAllocated)
	}
	if err := mode.validate(n); err != nil {
		return fmt.Errorf("Allocate(%s, %d): %w", mode, n, err)
	}
	a.mode = mode
	a.allocated = true
	a.bound = false

	elem := unsafe.Sizeof(*new(T))
	if n == 0 || elem == 0 {
		a.data = make([]T, n)
		return nil
	}
	if n > uint64(math.MaxInt)/uint64(elem) {
		panic(fmt.Sprintf("ranged: Allocate(%d) of %d-byte elements overflows", n, elem))
	}
	size := int(n) * int(elem)
	if a.wantMapping(size) {
		buf, err := mapAnon(size)
		if err == nil {
			a.mapped = buf
			a.data = unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), int(n))
			a.place(elem)
			return nil
		}
		slog.Debug("ranged: anonymous mapping failed, using heap", "bytes", size, "err", err)
	}
	a.data = make([]T, n)
	return nil
}

func (a *Array[T]) wantMapping(size int) bool {
	if size < os.Getpagesize() {
		return false
	}
	if NodeCount() <= 1 && !mapEvenOnSingleNode {
		return false
	}
	return pointerFree(reflect.TypeFor[T]())
}

// place binds the mapping according to the mode. Failures only lose locality.
func (a *Array[T]) place(elem uintptr) {
	spans := planPlacement(len(a.mapped), elem, a.mode, topology(), HomeNode)
	bound := len(spans) > 0
	for _, s := range spans {
		if err := bind(a.mapped, s); err != nil {
			slog.Debug("ranged: placement not applied", "mode", a.mode.String(), "err", err)
			bound = false
			break
		}
	}
	a.bound = bound
}

// Deallocate releases the storage. The array may be allocated again.
// Deallocating an unallocated array is a no-op.
func (a *Array[T]) Deallocate() {
	if !a.allocated {
		return
	}
	if a.mapped != nil {
		if err := unmapAnon(a.mapped); err != nil {
			slog.Debug("ranged: munmap failed", "bytes", len(a.mapped), "err", err)
		}
	}
	a.data, a.mapped = nil, nil
	a.allocated, a.bound = false, false
	a.mode = Mode{}
}

// ConstructAt resets element i to the zero value of T.
func (a *Array[T]) ConstructAt(i uint64) {
	var zero T
	a.data[i] = zero
}

// Set stores v at index i.
func (a *Array[T]) Set(i uint64, v T) { a.data[i] = v }

// Get returns the element at index i.
func (a *Array[T]) Get(i uint64) T { return a.data[i] }

// At returns a pointer to element i. The pointer is invalidated by Deallocate.
func (a *Array[T]) At(i uint64) *T { return &a.data[i] }

// Slice exposes the whole array as a slice. Invalidated by Deallocate.
func (a *Array[T]) Slice() []T { return a.data }

// Len returns the capacity chosen at Allocate (0 when unallocated).
func (a *Array[T]) Len() uint64 { return uint64(len(a.data)) }

// Allocated reports whether the array currently owns storage.
func (a *Array[T]) Allocated() bool { return a.allocated }

// Mode returns the allocation mode passed to Allocate.
func (a *Array[T]) Mode() Mode { return a.mode }

// Mapped reports whether the storage lives in an anonymous mapping
// rather than on the Go heap.
func (a *Array[T]) Mapped() bool { return a.mapped != nil }

// Bound reports whether NUMA placement was applied to the mapping.
func (a *Array[T]) Bound() bool { return a.bound }
