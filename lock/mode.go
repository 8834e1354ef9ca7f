// SPDX-License-Identifier: MIT
// Package: lvcsr/lock

package lock

import (
	"fmt"
	"strings"
)

// Kind selects where node locks are stored.
type Kind uint8

const (
	// NoLock stores no lock state at all.
	NoLock Kind = iota
	// Inline packs a lock word next to each node payload.
	Inline
	// OutOfLine keeps lock words in a separate table indexed by node id.
	OutOfLine
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case NoLock:
		return "nolock"
	case Inline:
		return "inline"
	case OutOfLine:
		return "outofline"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String. It accepts a few common spellings.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nolock", "none", "":
		return NoLock, nil
	case "inline":
		return Inline, nil
	case "outofline", "out-of-line", "out_of_line":
		return OutOfLine, nil
	}
	return NoLock, fmt.Errorf("lock: unknown kind %q", s)
}

// Mode is the access mode of a single request.
type Mode uint8

const (
	// Unprotected performs no locking.
	Unprotected Mode = iota
	// Read acquires the lock (exclusively).
	Read
	// Write acquires the lock (exclusively).
	Write
)

// Locks reports whether m requires acquiring the lock.
func (m Mode) Locks() bool { return m != Unprotected }

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Unprotected:
		return "unprotected"
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
