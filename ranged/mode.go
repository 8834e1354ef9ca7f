// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged
//
// mode.go - allocation modes.

package ranged

import "fmt"

// Kind enumerates placement strategies.
type Kind uint8

const (
	// KindInterleaved round-robins pages across all NUMA nodes.
	KindInterleaved Kind = iota
	// KindLocal places the whole array on one partition's home node.
	KindLocal
	// KindSpecified places each worker's sub-range on that worker's home node.
	KindSpecified
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInterleaved:
		return "interleaved"
	case KindLocal:
		return "local"
	case KindSpecified:
		return "specified"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Mode is an immutable allocation request. The zero value is Interleaved.
type Mode struct {
	kind      Kind
	partition int
	ranges    []uint64
}

// Interleaved returns the default placement used before a partition plan exists.
func Interleaved() Mode { return Mode{kind: KindInterleaved} }

// Local returns a placement that keeps the whole array on the home node of
// the given partition. Negative partitions panic (programmer error).
func Local(partition int) Mode {
	if partition < 0 {
		panic("ranged: Local(partition<0)")
	}
	return Mode{kind: KindLocal, partition: partition}
}

// Specified returns a placement driven by a per-worker range table of length
// T+1: worker w owns elements [ranges[w], ranges[w+1]). The table is copied.
func Specified(ranges []uint64) Mode {
	cp := make([]uint64, len(ranges))
	copy(cp, ranges)
	return Mode{kind: KindSpecified, ranges: cp}
}

// Kind reports the placement strategy.
func (m Mode) Kind() Kind { return m.kind }

// Partition reports the partition of a Local mode (0 otherwise).
func (m Mode) Partition() int { return m.partition }

// Ranges returns a copy of the range table of a Specified mode.
func (m Mode) Ranges() []uint64 {
	if m.ranges == nil {
		return nil
	}
	cp := make([]uint64, len(m.ranges))
	copy(cp, m.ranges)
	return cp
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m.kind {
	case KindLocal:
		return fmt.Sprintf("local(%d)", m.partition)
	case KindSpecified:
		return fmt.Sprintf("specified(%d workers)", len(m.ranges)-1)
	default:
		return m.kind.String()
	}
}

// validate checks a Specified table against the array size n.
func (m Mode) validate(n uint64) error {
	if m.kind != KindSpecified {
		return nil
	}
	r := m.ranges
	if len(r) < 2 {
		return fmt.Errorf("%w: need at least 2 entries, got %d", ErrBadRanges, len(r))
	}
	if r[0] != 0 || r[len(r)-1] != n {
		return fmt.Errorf("%w: table spans [%d,%d), array has %d elements", ErrBadRanges, r[0], r[len(r)-1], n)
	}
	for i := 1; i < len(r); i++ {
		if r[i] < r[i-1] {
			return fmt.Errorf("%w: entry %d (%d) < entry %d (%d)", ErrBadRanges, i, r[i], i-1, r[i-1])
		}
	}
	return nil
}
