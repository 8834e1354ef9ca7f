// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvcsr/source"
)

func benchSource(b *testing.B) *source.EdgeList[int64] {
	b.Helper()
	src, err := source.NewEdgeList(1<<14, randomEdges(99, 1<<14, 1<<17))
	if err != nil {
		b.Fatal(err)
	}
	return src
}

func BenchmarkFromSource(b *testing.B) {
	src := benchSource(b)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := FromSource[uint64, int64](ctx, src)
		if err != nil {
			b.Fatal(err)
		}
		g.Deallocate()
	}
}

func BenchmarkTranspose(b *testing.B) {
	src := benchSource(b)
	ctx := context.Background()
	g, err := FromSource[uint64, int64](ctx, src)
	if err != nil {
		b.Fatal(err)
	}
	for _, realloc := range []bool{false, true} {
		name := "inplace"
		if realloc {
			name = "reallocate"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := g.Transpose(ctx, realloc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
