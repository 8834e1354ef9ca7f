// SPDX-License-Identifier: MIT
// Package: lvcsr/partition
//
// wide.go - 128-bit cost arithmetic. A cost is nw*nodes + ew*edges with both
// weights below 2^63 and both counts below 2^64, so it always fits 128 bits.

package partition

import (
	"math"
	"math/bits"
)

type u128 struct{ hi, lo uint64 }

func mul64(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{hi, lo}
}

func (x u128) add(y u128) u128 {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	return u128{hi, lo}
}

func (x u128) less(y u128) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo < y.lo)
}

func (x u128) zero() bool { return x.hi == 0 && x.lo == 0 }

// mulDiv returns floor(x*m/d). Requires m <= d, so the quotient fits 128 bits.
func (x u128) mulDiv(m, d uint64) u128 {
	c1, w0 := bits.Mul64(x.lo, m)
	c2, w1 := bits.Mul64(x.hi, m)
	w1, carry := bits.Add64(w1, c1, 0)
	w2 := c2 + carry
	_, r := bits.Div64(0, w2, d)
	q1, r := bits.Div64(r, w1, d)
	q0, _ := bits.Div64(r, w0, d)
	return u128{q1, q0}
}

// saturate clamps x to uint64.
func (x u128) saturate() uint64 {
	if x.hi != 0 {
		return math.MaxUint64
	}
	return x.lo
}
