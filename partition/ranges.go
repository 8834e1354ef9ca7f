// SPDX-License-Identifier: MIT
// Package: lvcsr/partition

package partition

import "fmt"

// Ranges is a thread-range table for T workers: worker i owns nodes
// [Nodes[i], Nodes[i+1]) and edges [Edges[i], Edges[i+1]).
type Ranges struct {
	Nodes []uint64
	Edges []uint64
}

// Workers returns T, the number of workers the table describes.
func (r Ranges) Workers() int {
	if len(r.Nodes) == 0 {
		return 0
	}
	return len(r.Nodes) - 1
}

// Worker returns worker i's share.
func (r Ranges) Worker(i int) Range {
	return Range{
		NodeBegin: r.Nodes[i], NodeEnd: r.Nodes[i+1],
		EdgeBegin: r.Edges[i], EdgeEnd: r.Edges[i+1],
	}
}

// Empty reports whether no table has been computed.
func (r Ranges) Empty() bool { return len(r.Nodes) == 0 }

// Clone returns a deep copy.
func (r Ranges) Clone() Ranges {
	return Ranges{Nodes: append([]uint64(nil), r.Nodes...), Edges: append([]uint64(nil), r.Edges...)}
}

// Validate checks that the table covers [begin, end) contiguously with
// non-decreasing boundaries and that every edge boundary matches prefix.
func (r Ranges) Validate(begin, end uint64, prefix Prefix) error {
	const method = "Validate"
	if len(r.Nodes) < 2 || len(r.Nodes) != len(r.Edges) {
		return fmt.Errorf("%s: %w: %d node / %d edge entries", method, ErrInvalidRanges, len(r.Nodes), len(r.Edges))
	}
	last := len(r.Nodes) - 1
	if r.Nodes[0] != begin || r.Nodes[last] != end {
		return fmt.Errorf("%s: %w: covers [%d,%d), want [%d,%d)", method, ErrInvalidRanges, r.Nodes[0], r.Nodes[last], begin, end)
	}
	for i := 0; i <= last; i++ {
		if i > 0 && r.Nodes[i] < r.Nodes[i-1] {
			return fmt.Errorf("%s: %w: node boundary %d decreases (%d < %d)", method, ErrInvalidRanges, i, r.Nodes[i], r.Nodes[i-1])
		}
		if want := edgesBefore(prefix, r.Nodes[i]); r.Edges[i] != want {
			return fmt.Errorf("%s: %w: edge boundary %d is %d, prefix says %d", method, ErrInvalidRanges, i, r.Edges[i], want)
		}
	}
	return nil
}
