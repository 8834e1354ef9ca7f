//go:build !linux

// SPDX-License-Identifier: MIT
// Package: lvcsr/ranged

package ranged

import "errors"

var errNoMapping = errors.New("ranged: anonymous mappings unsupported on this platform")

func readOnlineNodes() ([]int, error) { return []int{0}, nil }

func mapAnon(int) ([]byte, error) { return nil, errNoMapping }

func unmapAnon([]byte) error { return nil }

func bind([]byte, span) error { return errNoMapping }
