// SPDX-License-Identifier: MIT
// Package: lvcsr/cmd/lvcsr

// Command lvcsr loads a graph into the CSR container and runs PageRank,
// partition planning, transpose or BFS over it.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
