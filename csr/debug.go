// SPDX-License-Identifier: MIT
// Package: lvcsr/csr
//
// debug.go - lifecycle and invariant assertions, active with -tags lvcsrdebug.

package csr

import (
	"fmt"
	"slices"
)

// expectState panics if the graph is not in one of want.
func (g *Graph[N, E]) expectState(method string, want ...state) {
	if !debugChecks {
		return
	}
	if !slices.Contains(want, g.state) {
		panic(fmt.Sprintf("csr: %s called in state %s, want one of %v", method, g.state, want))
	}
}

// assertInvariants panics if Validate fails.
func (g *Graph[N, E]) assertInvariants(method string) {
	if !debugChecks {
		return
	}
	if err := g.Validate(); err != nil {
		panic(fmt.Sprintf("csr: after %s: %v", method, err))
	}
}
