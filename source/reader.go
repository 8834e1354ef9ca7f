// SPDX-License-Identifier: MIT
// Package: lvcsr/source

package source

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadOption configures ReadEdgeList.
type ReadOption func(*readOptions)

type readOptions struct {
	numNodes  uint64
	fixed     bool
	symmetric bool
}

// WithNodeCount fixes the node count instead of deriving it from the ids.
func WithNodeCount(n uint64) ReadOption {
	return func(o *readOptions) { o.numNodes, o.fixed = n, true }
}

// WithSymmetric adds the reverse of every edge read (except self-loops).
func WithSymmetric() ReadOption {
	return func(o *readOptions) { o.symmetric = true }
}

// ReadEdgeList parses a whitespace-separated text edge list.
func ReadEdgeList(r io.Reader, opts ...ReadOption) (*EdgeList[float64], error) {
	const method = "ReadEdgeList"
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	var edges []Edge[float64]
	var maxID uint64
	seen := false
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		f := strings.Fields(text)
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("%s: %w: line %d: want 2 or 3 fields, got %d", method, ErrParse, line, len(f))
		}
		src, err := strconv.ParseUint(f[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: line %d: %v", method, ErrParse, line, err)
		}
		dst, err := strconv.ParseUint(f[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: line %d: %v", method, ErrParse, line, err)
		}
		w := 1.0
		if len(f) == 3 {
			if w, err = strconv.ParseFloat(f[2], 64); err != nil || math.IsNaN(w) {
				return nil, fmt.Errorf("%s: %w: line %d: bad weight %q", method, ErrParse, line, f[2])
			}
		}
		seen = true
		maxID = max(maxID, src, dst)
		edges = append(edges, Edge[float64]{Src: uint32(src), Dst: uint32(dst), Data: w})
		if o.symmetric && src != dst {
			edges = append(edges, Edge[float64]{Src: uint32(dst), Dst: uint32(src), Data: w})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	n := o.numNodes
	if !o.fixed && seen {
		n = maxID + 1
	}
	return NewEdgeList(n, edges)
}

// ReadEdgeListFile opens path and reads it with ReadEdgeList.
func ReadEdgeListFile(path string, opts ...ReadOption) (*EdgeList[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadEdgeListFile: %w", err)
	}
	defer f.Close()
	return ReadEdgeList(f, opts...)
}
