// SPDX-License-Identifier: MIT
// Package: lvcsr/source

package source

import "errors"

var (
	// ErrNodeOutOfRange is returned when an edge names a node id not below
	// the node count.
	ErrNodeOutOfRange = errors.New("source: node id out of range")

	// ErrParse is returned for a malformed line in a text edge list.
	ErrParse = errors.New("source: malformed edge line")

	// ErrTooManyNodes is returned when a node count does not fit a uint32 id.
	ErrTooManyNodes = errors.New("source: node count exceeds 32-bit ids")
)
