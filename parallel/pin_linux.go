//go:build linux

// SPDX-License-Identifier: MIT
// Package: lvcsr/parallel

package parallel

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"
)

// pin locks the calling goroutine to its OS thread and restricts that thread
// to one CPU of the process's affinity set, chosen round-robin by tid.
// The returned function restores the previous affinity and unlocks the thread.
func pin(tid int, logger *slog.Logger) func() {
	runtime.LockOSThread()
	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		logger.Debug("parallel: affinity unavailable", slog.Int("tid", tid), slog.Any("err", err))
		return runtime.UnlockOSThread
	}
	cpus := make([]int, 0, prev.Count())
	for c := 0; c < len(prev)*64; c++ {
		if prev.IsSet(c) {
			cpus = append(cpus, c)
		}
	}
	if len(cpus) == 0 {
		return runtime.UnlockOSThread
	}
	var one unix.CPUSet
	one.Set(cpus[tid%len(cpus)])
	if err := unix.SchedSetaffinity(0, &one); err != nil {
		logger.Debug("parallel: pinning failed", slog.Int("tid", tid), slog.Any("err", err))
		return runtime.UnlockOSThread
	}
	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}
}
