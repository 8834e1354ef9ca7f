// SPDX-License-Identifier: MIT
// Package: lvcsr/parallel

package parallel

import "errors"

// ErrBadRanges is returned when a WithRanges table does not fit the pass.
var ErrBadRanges = errors.New("parallel: range table does not fit the index range")
