// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// store.go - node storage, one variant per lock policy.

package csr

import (
	"unsafe"

	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/ranged"
)

// nodeStore owns node payloads and, depending on the policy, their locks.
type nodeStore[N any] interface {
	allocate(mode ranged.Mode, n uint64) error
	deallocate()
	constructAt(n uint64)
	data(n uint64) *N
	acquire(h *lock.Held, n uint64)
	kind() lock.Kind
	mode() ranged.Mode
	bytesPerNode() uintptr
}

func newNodeStore[N any](k lock.Kind) nodeStore[N] {
	switch k {
	case lock.Inline:
		return &inlineNodes[N]{}
	case lock.OutOfLine:
		return &outOfLineNodes[N]{}
	default:
		return &plainNodes[N]{}
	}
}

// plainNodes stores bare payloads (lock.NoLock).
type plainNodes[N any] struct {
	arr ranged.Array[N]
}

func (s *plainNodes[N]) allocate(m ranged.Mode, n uint64) error { return s.arr.Allocate(m, n) }
func (s *plainNodes[N]) deallocate()                            { s.arr.Deallocate() }
func (s *plainNodes[N]) constructAt(n uint64)                   { s.arr.ConstructAt(n) }
func (s *plainNodes[N]) data(n uint64) *N                       { return s.arr.At(n) }
func (s *plainNodes[N]) acquire(*lock.Held, uint64)             {}
func (s *plainNodes[N]) kind() lock.Kind                        { return lock.NoLock }
func (s *plainNodes[N]) mode() ranged.Mode                      { return s.arr.Mode() }
func (s *plainNodes[N]) bytesPerNode() uintptr                  { return unsafe.Sizeof(*new(N)) }

// inlineSlot co-locates a node's lock with its payload.
type inlineSlot[N any] struct {
	lk   lock.Word
	data N
}

// inlineNodes stores payloads with embedded locks (lock.Inline).
type inlineNodes[N any] struct {
	arr ranged.Array[inlineSlot[N]]
}

func (s *inlineNodes[N]) allocate(m ranged.Mode, n uint64) error { return s.arr.Allocate(m, n) }
func (s *inlineNodes[N]) deallocate()                            { s.arr.Deallocate() }
func (s *inlineNodes[N]) constructAt(n uint64)                   { s.arr.ConstructAt(n) }
func (s *inlineNodes[N]) data(n uint64) *N                       { return &s.arr.At(n).data }
func (s *inlineNodes[N]) acquire(h *lock.Held, n uint64)         { h.Acquire(&s.arr.At(n).lk) }
func (s *inlineNodes[N]) kind() lock.Kind                        { return lock.Inline }
func (s *inlineNodes[N]) mode() ranged.Mode                      { return s.arr.Mode() }
func (s *inlineNodes[N]) bytesPerNode() uintptr                  { return unsafe.Sizeof(inlineSlot[N]{}) }

// outOfLineNodes keeps payloads bare and locks in a parallel table (lock.OutOfLine).
type outOfLineNodes[N any] struct {
	plainNodes[N]
	locks lock.Table
}

func (s *outOfLineNodes[N]) allocate(m ranged.Mode, n uint64) error {
	if err := s.arr.Allocate(m, n); err != nil {
		return err
	}
	if err := s.locks.Allocate(m, n); err != nil {
		s.arr.Deallocate()
		return err
	}
	return nil
}

func (s *outOfLineNodes[N]) deallocate() {
	s.arr.Deallocate()
	s.locks.Deallocate()
}

func (s *outOfLineNodes[N]) constructAt(n uint64) {
	s.arr.ConstructAt(n)
	s.locks.ConstructAt(n)
}

func (s *outOfLineNodes[N]) acquire(h *lock.Held, n uint64) { s.locks.Acquire(h, n) }
func (s *outOfLineNodes[N]) kind() lock.Kind                { return lock.OutOfLine }

func (s *outOfLineNodes[N]) bytesPerNode() uintptr {
	return unsafe.Sizeof(*new(N)) + unsafe.Sizeof(lock.Word{})
}
