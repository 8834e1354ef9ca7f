// SPDX-License-Identifier: MIT
// Package: lvcsr/partition
//
// plan.go - weighted divide-by-node.
//
// Complexity: Divide is O(log n) prefix lookups, Ranges(T) is O(T log n).

package partition

// Plan describes one partitioning problem: the node range [Begin, End) of a
// graph whose degrees are given by Prefix, and the relative cost of one node
// versus one edge.
type Plan struct {
	NodeWeight int64
	EdgeWeight int64
	Begin      uint64
	End        uint64
	Prefix     Prefix
}

// Range is one worker's share: nodes [NodeBegin, NodeEnd) and the edges they
// own, [EdgeBegin, EdgeEnd).
type Range struct {
	NodeBegin, NodeEnd uint64
	EdgeBegin, EdgeEnd uint64
}

// Nodes returns the number of nodes in the range.
func (r Range) Nodes() uint64 { return r.NodeEnd - r.NodeBegin }

// Edges returns the number of edges in the range.
func (r Range) Edges() uint64 { return r.EdgeEnd - r.EdgeBegin }

// Empty reports whether the range has no nodes.
func (r Range) Empty() bool { return r.NodeBegin == r.NodeEnd }

// weights returns the sanitised (node, edge) weights.
func (p Plan) weights() (uint64, uint64) {
	nw, ew := p.NodeWeight, p.EdgeWeight
	if nw < 0 {
		nw = 0
	}
	if ew < 0 {
		ew = 0
	}
	if nw == 0 && ew == 0 {
		nw = 1
	}
	return uint64(nw), uint64(ew)
}

func (p Plan) size() uint64 {
	if p.End <= p.Begin {
		return 0
	}
	return p.End - p.Begin
}

// offsetCost is the cost of the first h nodes of the plan's range.
func (p Plan) offsetCost(h, nw, ew, base uint64) u128 {
	return mul64(nw, h).add(mul64(ew, edgesBefore(p.Prefix, p.Begin+h)-base))
}

// Cost returns the weighted cost of the absolute node range [lo, hi),
// saturated at math.MaxUint64. Boundaries are computed on the exact value.
func (p Plan) Cost(lo, hi uint64) uint64 {
	if hi <= lo {
		return 0
	}
	nw, ew := p.weights()
	return mul64(nw, hi-lo).add(mul64(ew, edgesBefore(p.Prefix, hi)-edgesBefore(p.Prefix, lo))).saturate()
}

// TotalCost returns the cost of the whole range.
func (p Plan) TotalCost() uint64 { return p.Cost(p.Begin, p.Begin+p.size()) }

// MaxUnitCost returns the largest cost of a single node in the range, the
// granularity of the imbalance guarantee.
func (p Plan) MaxUnitCost() uint64 {
	var m uint64
	for n := p.Begin; n < p.Begin+p.size(); n++ {
		if c := p.Cost(n, n+1); c > m {
			m = c
		}
	}
	return m
}

// Boundary returns the first node of worker i out of total. Boundary(0) is
// Begin and Boundary(total) is End. total < 1 is treated as 1.
func (p Plan) Boundary(i, total int) uint64 {
	if total < 1 {
		total = 1
	}
	n := p.size()
	switch {
	case i <= 0 || n == 0:
		return p.Begin
	case i >= total:
		return p.Begin + n
	case uint64(total) > n:
		return p.Begin + min(uint64(i), n)
	}

	nw, ew := p.weights()
	base := edgesBefore(p.Prefix, p.Begin)
	cost := func(h uint64) u128 { return p.offsetCost(h, nw, ew, base) }
	w := cost(n)
	ui, ut := uint64(i), uint64(total)
	if w.zero() {
		return p.Begin + u128{0, n}.mulDiv(ui, ut).lo
	}

	// cost(h)*total > i*W  <=>  cost(h) > floor(i*W/total) for integers.
	// h1: smallest such h in [0,n] (n+1 if none).
	th := w.mulDiv(ui, ut)
	h1 := search(0, n+1, func(h uint64) bool { return th.less(cost(h)) })
	c := h1 - 1
	cc := cost(c)
	return p.Begin + search(0, c+1, func(h uint64) bool { return !cost(h).less(cc) })
}

// Divide returns worker id's share of the range when it is split into total
// parts (divideByNode). Out-of-range ids yield an empty range at the nearest end.
func (p Plan) Divide(id, total int) Range {
	if total < 1 {
		total = 1
	}
	lo := p.Boundary(id, total)
	hi := lo
	if id >= 0 && id < total {
		hi = p.Boundary(id+1, total)
	}
	return Range{
		NodeBegin: lo,
		NodeEnd:   hi,
		EdgeBegin: edgesBefore(p.Prefix, lo),
		EdgeEnd:   edgesBefore(p.Prefix, hi),
	}
}

// Ranges computes the full (total+1)-entry node and edge tables.
func (p Plan) Ranges(total int) Ranges {
	if total < 1 {
		total = 1
	}
	r := Ranges{Nodes: make([]uint64, total+1), Edges: make([]uint64, total+1)}
	for i := 0; i <= total; i++ {
		b := p.Boundary(i, total)
		r.Nodes[i] = b
		r.Edges[i] = edgesBefore(p.Prefix, b)
	}
	return r
}

// search returns the smallest x in [lo, hi) for which f is true, or hi.
// f must be monotone (false...false true...true).
func search(lo, hi uint64, f func(uint64) bool) uint64 {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if f(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
