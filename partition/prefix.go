// SPDX-License-Identifier: MIT
// Package: lvcsr/partition

package partition

// Prefix is an inclusive prefix sum of out-degrees: PrefixAt(n) is the number
// of edges owned by nodes [0, n]. A CSR container's edge-index array is one.
type Prefix interface {
	PrefixAt(n uint64) uint64
}

// PrefixSlice adapts a plain slice to Prefix.
type PrefixSlice []uint64

// PrefixAt implements Prefix.
func (s PrefixSlice) PrefixAt(n uint64) uint64 { return s[n] }

// PrefixFromDegrees builds an inclusive prefix sum from per-node out-degrees.
func PrefixFromDegrees(degrees []uint64) PrefixSlice {
	out := make(PrefixSlice, len(degrees))
	var acc uint64
	for i, d := range degrees {
		acc += d
		out[i] = acc
	}
	return out
}

// edgesBefore returns the number of edges owned by nodes [0, x).
func edgesBefore(p Prefix, x uint64) uint64 {
	if x == 0 || p == nil {
		return 0
	}
	return p.PrefixAt(x - 1)
}
