// SPDX-License-Identifier: MIT
// Package: lvcsr/dijkstra

package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/dijkstra"
	"github.com/katalvlaran/lvcsr/source"
)

// ExampleDijkstra routes around an expensive direct edge.
func ExampleDijkstra() {
	el, _ := source.NewEdgeList(4, []source.Edge[float64]{
		{Src: 0, Dst: 1, Data: 2},
		{Src: 0, Dst: 2, Data: 1},
		{Src: 2, Dst: 1, Data: 1},
		{Src: 1, Dst: 3, Data: 3},
		{Src: 2, Dst: 3, Data: 5},
	})
	g, _ := csr.FromSource[struct{}, float64](context.Background(), el, csr.WithWorkers(2))

	dist, prev, _ := dijkstra.Dijkstra(context.Background(), g, dijkstra.WithReturnPath())
	path, _ := dijkstra.PathTo(prev, 0, 3)
	fmt.Println("dist:", dist)
	fmt.Println("path:", path)
	// Output:
	// dist: [0 2 1 5]
	// path: [0 1 3]
}
