// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged
//
// numa.go - NUMA topology discovery and placement planning.
//
// Topology is read once per process. Planning is pure and platform-neutral:
// it turns (size, element size, Mode, node count) into a list of page-aligned
// spans with a memory policy each. Only the binding step is Linux specific.

package ranged

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Memory policies understood by mbind(2).
const (
	mpolPreferred  = 1
	mpolBind       = 2
	mpolInterleave = 3
)

// mapEvenOnSingleNode forces the anonymous-mapping path on machines with a
// single NUMA node. Binding is still skipped there.
var mapEvenOnSingleNode = false

var topology = sync.OnceValue(func() []int {
	nodes, err := readOnlineNodes()
	if err != nil || len(nodes) == 0 {
		return []int{0}
	}
	return nodes
})

// NodeCount returns the number of online NUMA nodes (at least 1).
func NodeCount() int { return len(topology()) }

// HomeNode returns the NUMA node that worker w is considered local to.
// Workers are assigned round-robin over the online nodes.
func HomeNode(w int) int {
	nodes := topology()
	if w < 0 {
		w = -w
	}
	return nodes[w%len(nodes)]
}

// parseNodeList parses the kernel's cpulist/nodelist format, e.g. "0-3,6,8-9".
func parseNodeList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		lo, hi, isRange := strings.Cut(part, "-")
		a, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("ranged: bad node list %q: %w", s, err)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf("ranged: bad node list %q: %w", s, err)
			}
		}
		if b < a {
			return nil, fmt.Errorf("ranged: bad node list %q: descending range", s)
		}
		for n := a; n <= b; n++ {
			out = append(out, n)
		}
	}
	return out, nil
}

// span is one placement request over a byte range of a mapping.
type span struct {
	off    int
	length int
	policy int
	nodes  []int
}

// planPlacement computes the mbind requests for a mapping of size bytes that
// stores elements of elem bytes under mode. home maps worker/partition ids to
// NUMA nodes and all lists the online nodes. Offsets are page-aligned.
func planPlacement(size int, elem uintptr, mode Mode, all []int, home func(int) int) []span {
	if size == 0 || len(all) <= 1 {
		return nil
	}
	page := os.Getpagesize()
	switch mode.kind {
	case KindLocal:
		return []span{{off: 0, length: size, policy: mpolPreferred, nodes: []int{home(mode.partition)}}}
	case KindSpecified:
		var out []span
		r := mode.ranges
		for w := 0; w+1 < len(r); w++ {
			lo := int(r[w]) * int(elem)
			hi := int(r[w+1]) * int(elem)
			if lo >= hi {
				continue
			}
			off := lo &^ (page - 1)
			out = append(out, span{off: off, length: hi - off, policy: mpolPreferred, nodes: []int{home(w)}})
		}
		return out
	default:
		nodes := make([]int, len(all))
		copy(nodes, all)
		return []span{{off: 0, length: size, policy: mpolInterleave, nodes: nodes}}
	}
}

// pointerFree reports whether values of t contain no Go pointers, which is
// what allows them to live outside the garbage-collected heap.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
