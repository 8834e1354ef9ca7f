//go:build !linux

// SPDX-License-Identifier: MIT
// Package: lvcsr/parallel

package parallel

import (
	"log/slog"
	"runtime"
)

func pin(int, *slog.Logger) func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
