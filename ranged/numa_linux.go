//go:build linux

// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged

package ranged

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const onlineNodesPath = "/sys/devices/system/node/online"

func readOnlineNodes() ([]int, error) {
	raw, err := os.ReadFile(onlineNodesPath)
	if err != nil {
		return nil, err
	}
	return parseNodeList(string(raw))
}

func mapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

func unmapAnon(b []byte) error { return unix.Munmap(b) }

// bind applies one placement span to buf with mbind(2).
func bind(buf []byte, s span) error {
	maxNode := 0
	for _, n := range s.nodes {
		if n > maxNode {
			maxNode = n
		}
	}
	mask := make([]uint64, maxNode/64+1)
	for _, n := range s.nodes {
		mask[n/64] |= 1 << (uint(n) % 64)
	}
	addr := unsafe.Pointer(&buf[s.off])
	_, _, errno := unix.Syscall6(unix.SYS_MBIND,
		uintptr(addr), uintptr(s.length), uintptr(s.policy),
		uintptr(unsafe.Pointer(&mask[0])), uintptr(len(mask)*64+1), 0)
	if errno != 0 {
		return fmt.Errorf("mbind(off=%d len=%d policy=%d): %w", s.off, s.length, s.policy, errno)
	}
	return nil
}
