// SPDX-License-Identifier: MIT
// Package: lvcsr/partition

package partition

import "errors"

// ErrInvalidRanges is returned by Ranges.Validate for a table that is not a
// contiguous, gap-free cover of the requested node range or whose edge table
// disagrees with the prefix sum.
var ErrInvalidRanges = errors.New("partition: invalid range table")
