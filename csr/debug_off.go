//go:build !lvcsrdebug

// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

const debugChecks = false
