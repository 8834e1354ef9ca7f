// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged
//
// errors.go - sentinel errors for the ranged package.

package ranged

import "errors"

// ErrBadRanges is returned when a Specified range table is malformed:
// fewer than two entries, not starting at 0, not ending at the array size,
// or not monotonically non-decreasing.
var ErrBadRanges = errors.New("ranged: malformed range table")

// ErrAllocated is returned by Allocate when the array already owns storage.
// Call Deallocate first.
var ErrAllocated = errors.New("ranged: array already allocated")
