// SPDX-License-Identifier: MIT
// Package: lvcsr/pagerank

package pagerank

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/parallel"
)

var tracer = otel.Tracer("lvcsr.pagerank")

// passOptions builds scheduler options for one pass over g, following the
// graph's thread ranges when their width matches the requested workers.
func passOptions[E any](g *csr.Graph[NodeData, E], o Options, name string) []parallel.Option {
	opts := []parallel.Option{
		parallel.WithLoopName(name),
		parallel.WithWorkers(max(o.Workers, 1)),
		parallel.WithSteal(o.Steal),
		parallel.WithLogger(o.Logger),
	}
	if rt := g.ThreadRanges(); rt.Workers() == o.Workers {
		opts = append(opts, parallel.WithRanges(rt.Nodes))
	}
	return opts
}

// Initialize seeds every node with value 1-α, records its out-degree, clears
// its residual, and then pushes α·value/outdeg to each out-neighbour.
func Initialize[E any](ctx context.Context, g *csr.Graph[NodeData, E], opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return fmt.Errorf("Initialize: %w", err)
	}
	ctx, span := tracer.Start(ctx, "pagerank.Initialize",
		trace.WithAttributes(attribute.Int64("graph.nodes", int64(g.Size()))))
	defer span.End()
	initialize(ctx, g, o)
	return nil
}

func initialize[E any](ctx context.Context, g *csr.Graph[NodeData, E], o Options) {
	parallel.For(ctx, 0, g.Size(), func(i uint64) {
		n := uint32(i)
		d := g.Data(n)
		d.Value = 1 - o.Alpha
		d.NOut = uint32(g.OutDegree(n))
		d.Residual.Store(0)
	}, passOptions(g, o, "pagerank.Reset")...)

	parallel.For(ctx, 0, g.Size(), func(i uint64) {
		n := uint32(i)
		d := g.Data(n)
		if d.NOut == 0 {
			return
		}
		delta := d.Value * o.Alpha / float64(d.NOut)
		for dst := range g.Neighbors(n) {
			g.Data(dst).Residual.Add(delta)
		}
	}, passOptions(g, o, "pagerank.Initialize")...)
}

// Iterate runs one residual pass over every node.
func Iterate[E any](ctx context.Context, g *csr.Graph[NodeData, E], opts ...Option) (IterationResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return IterationResult{}, fmt.Errorf("Iterate: %w", err)
	}
	return iterate(ctx, g, o), nil
}

func iterate[E any](ctx context.Context, g *csr.Graph[NodeData, E], o Options) IterationResult {
	start := time.Now()
	var didWork atomic.Bool
	parallel.For(ctx, 0, g.Size(), func(i uint64) {
		push(g, uint32(i), o, &didWork)
	}, passOptions(g, o, "pagerank.Iterate")...)

	res := IterationResult{DidWork: didWork.Load()}
	iterationDuration.Observe(time.Since(start).Seconds())
	iterationTotal.WithLabelValues(strconv.FormatBool(res.DidWork)).Inc()
	return res
}

// push folds n's residual into its value and forwards α of it.
func push[E any](g *csr.Graph[NodeData, E], n uint32, o Options, didWork *atomic.Bool) {
	var (
		src *NodeData
		r   csr.EdgeRange
	)
	if o.Protected {
		tx := g.Begin()
		defer tx.Release()
		r = tx.Edges(n, lock.Write)
		src = tx.Data(n, lock.Write)
	} else {
		r = g.Edges(n)
		src = g.Data(n)
	}

	old := src.Residual.Swap(0)
	if old == 0 {
		return
	}
	src.Value += old
	if src.NOut == 0 {
		return
	}
	delta := old * o.Alpha / float64(src.NOut)
	for e := r.Begin; e < r.End; e++ {
		prev := g.Data(g.EdgeDst(e)).Residual.Add(delta)
		if !didWork.Load() && prev <= o.Tolerance && prev+delta >= o.Tolerance {
			didWork.Store(true)
		}
	}
}

// Run initialises the graph and iterates until a pass does no work or the
// iteration cap is reached.
func Run[E any](ctx context.Context, g *csr.Graph[NodeData, E], opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	start := time.Now()
	ctx, span := tracer.Start(ctx, "pagerank.Run",
		trace.WithAttributes(
			attribute.Int64("graph.nodes", int64(g.Size())),
			attribute.Int64("graph.edges", int64(g.SizeEdges())),
			attribute.Float64("alpha", o.Alpha),
			attribute.Float64("tolerance", o.Tolerance),
			attribute.Bool("protected", o.Protected),
		),
	)
	defer span.End()

	initialize(ctx, g, o)
	var res Result
	for res.Iterations < o.MaxIterations {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			res.Duration = time.Since(start)
			return res, fmt.Errorf("Run: %w", err)
		}
		it := iterate(ctx, g, o)
		res.Iterations++
		o.Logger.Debug("pagerank: iteration",
			slog.Int("iteration", res.Iterations),
			slog.Bool("did_work", it.DidWork),
		)
		if !it.DidWork {
			res.Converged = true
			break
		}
	}
	res.Duration = time.Since(start)

	runTotal.WithLabelValues(strconv.FormatBool(res.Converged)).Inc()
	runIterations.Observe(float64(res.Iterations))
	span.SetAttributes(
		attribute.Int("iterations", res.Iterations),
		attribute.Bool("converged", res.Converged),
	)
	o.Logger.Debug("pagerank: done",
		slog.Int("iterations", res.Iterations),
		slog.Bool("converged", res.Converged),
		slog.Duration("elapsed", res.Duration),
	)
	return res, nil
}

// Values returns every node's value, indexed by node id.
func Values[E any](g *csr.Graph[NodeData, E]) []float64 {
	out := make([]float64, g.Size())
	for n := range g.Nodes() {
		out[n] = g.Data(n).Value
	}
	return out
}
