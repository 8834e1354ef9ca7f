// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// errors.go - sentinel errors for the csr package.
//
// Error policy:
//   - Malformed inputs (counts that disagree, ids out of range) return these
//     sentinels wrapped with the failing method's name; match with errors.Is.
//   - Allocation failure is fatal.
//   - Lifecycle misuse is undefined; the lvcsrdebug build panics on it.

package csr

import "errors"

var (
	// ErrSizeMismatch indicates that declared node/edge counts disagree with
	// the degrees or prefix sum supplied.
	ErrSizeMismatch = errors.New("csr: node/edge counts disagree with degrees")

	// ErrNodeOutOfRange indicates an edge destination or node id >= Size().
	ErrNodeOutOfRange = errors.New("csr: node id out of range")

	// ErrTooManyNodes indicates a node count that does not fit 32-bit ids.
	ErrTooManyNodes = errors.New("csr: node count exceeds 32-bit ids")

	// ErrInvariant is returned by Validate when the structure is inconsistent.
	ErrInvariant = errors.New("csr: structural invariant violated")

	// ErrWorker indicates a worker id outside the configured range.
	ErrWorker = errors.New("csr: worker id out of range")
)
