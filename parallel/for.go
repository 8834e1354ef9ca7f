// SPDX-License-Identifier: MIT
// Package: lvcsr/parallel

package parallel

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("lvcsr.parallel")

// block is one worker's share with a shared claim cursor.
type block struct {
	next atomic.Uint64
	end  uint64
	_    [48]byte // keep cursors of neighbouring blocks on separate cache lines
}

// claim takes up to n indices from the block.
func (b *block) claim(n uint64) (lo, hi uint64, ok bool) {
	for {
		cur := b.next.Load()
		if cur >= b.end {
			return 0, 0, false
		}
		hi := min(cur+n, b.end)
		if b.next.CompareAndSwap(cur, hi) {
			return cur, hi, true
		}
	}
}

// For runs body(i) for every i in [begin, end). body cannot fail, so the
// only possible error is a WithRanges table that does not fit the pass; For
// panics on it, like the option constructors do on bad arguments.
func For(ctx context.Context, begin, end uint64, body func(i uint64), opts ...Option) {
	err := ForErr(ctx, begin, end, func(i uint64) error {
		body(i)
		return nil
	}, opts...)
	if err != nil {
		panic(err)
	}
}

// ForErr runs body(i) for every i in [begin, end) and returns the first error.
// After an error, workers stop claiming new indices; indices already claimed
// are finished.
func ForErr(ctx context.Context, begin, end uint64, body func(i uint64) error, opts ...Option) error {
	o := newOptions(opts)
	if end < begin {
		end = begin
	}
	bounds, err := blockBounds(begin, end, o)
	if err != nil {
		return fmt.Errorf("ForErr(%s): %w", o.name, err)
	}

	ctx, span := tracer.Start(ctx, "parallel.For",
		trace.WithAttributes(
			attribute.String("loop", o.name),
			attribute.Int("workers", o.workers),
			attribute.Bool("steal", o.steal),
			attribute.Int64("items", int64(end-begin)),
		),
	)
	defer span.End()

	blocks := make([]block, o.workers)
	for i := range blocks {
		blocks[i].next.Store(bounds[i])
		blocks[i].end = bounds[i+1]
	}

	var failed atomic.Bool
	run := func(b *block, chunk uint64) error {
		for !failed.Load() {
			lo, hi, ok := b.claim(chunk)
			if !ok {
				return nil
			}
			for i := lo; i < hi; i++ {
				if err := body(i); err != nil {
					failed.Store(true)
					return err
				}
			}
		}
		return nil
	}

	err = onEach(ctx, o, func(tid, total int) error {
		own := &blocks[tid]
		o.logger.Debug("parallel: worker range",
			slog.String("loop", o.name),
			slog.Int("tid", tid),
			slog.Uint64("begin", bounds[tid]),
			slog.Uint64("end", bounds[tid+1]),
		)
		if !o.steal {
			return run(own, own.end-bounds[tid]+1)
		}
		if err := run(own, o.chunk); err != nil {
			return err
		}
		for k := 1; k < total; k++ {
			if err := run(&blocks[(tid+k)%total], o.chunk); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// OnEach runs body once per worker, passing the worker id and the worker count.
func OnEach(ctx context.Context, body func(tid, total int) error, opts ...Option) error {
	o := newOptions(opts)
	ctx, span := tracer.Start(ctx, "parallel.OnEach",
		trace.WithAttributes(
			attribute.String("loop", o.name),
			attribute.Int("workers", o.workers),
		),
	)
	defer span.End()
	err := onEach(ctx, o, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Blocks runs body once per worker over the worker's block [lo, hi) of
// [begin, end) without stealing.
func Blocks(ctx context.Context, begin, end uint64, body func(tid int, lo, hi uint64) error, opts ...Option) error {
	o := newOptions(opts)
	if end < begin {
		end = begin
	}
	bounds, err := blockBounds(begin, end, o)
	if err != nil {
		return fmt.Errorf("Blocks(%s): %w", o.name, err)
	}
	ctx, span := tracer.Start(ctx, "parallel.Blocks",
		trace.WithAttributes(
			attribute.String("loop", o.name),
			attribute.Int("workers", o.workers),
		),
	)
	defer span.End()
	err = onEach(ctx, o, func(tid, _ int) error {
		return body(tid, bounds[tid], bounds[tid+1])
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func onEach(ctx context.Context, o options, body func(tid, total int) error) error {
	g, _ := errgroup.WithContext(ctx)
	for tid := 0; tid < o.workers; tid++ {
		g.Go(func() error {
			if o.pin {
				defer pin(tid, o.logger)()
			}
			return body(tid, o.workers)
		})
	}
	return g.Wait()
}

// blockBounds returns the (workers+1)-entry block table for [begin, end).
func blockBounds(begin, end uint64, o options) ([]uint64, error) {
	if o.ranges != nil {
		r := o.ranges
		if r[0] != begin || r[len(r)-1] != end {
			return nil, fmt.Errorf("%w: table spans [%d,%d), pass is [%d,%d)", ErrBadRanges, r[0], r[len(r)-1], begin, end)
		}
		for i := 1; i < len(r); i++ {
			if r[i] < r[i-1] {
				return nil, fmt.Errorf("%w: entry %d decreases", ErrBadRanges, i)
			}
		}
		return r, nil
	}
	n := end - begin
	w := uint64(o.workers)
	out := make([]uint64, o.workers+1)
	for i := uint64(0); i <= w; i++ {
		out[i] = begin + n/w*i + min(i, n%w)
	}
	return out, nil
}
