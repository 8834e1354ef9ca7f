// SPDX-License-Identifier: MIT
// Package: lvcsr/cmd/lvcsr

package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"runtime"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvcsr/bfs"
	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/dijkstra"
	"github.com/katalvlaran/lvcsr/pagerank"
	"github.com/katalvlaran/lvcsr/partition"
	"github.com/katalvlaran/lvcsr/source"
)

// app carries the resolved configuration between cobra hooks and commands.
type app struct {
	cfg        Config
	configPath string
	logger     *slog.Logger
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "lvcsr",
		Short: "Static CSR graph engine",
		Long: `Load a graph into the CSR container and run an analysis over it.

Input is either a whitespace-separated edge list ("src dst [weight]" per line,
# and % start comments) or a synthetic generator:

  cycle:N path:N star:N wheel:N complete:N grid:RxC
  bipartite:N1xN2 random:N:P regular:N:D

Generated edges weigh 1 unless --weights picks a distribution:

  unit const:W uniform:A:B normal:M:S exp:R 1to100

Examples:
  lvcsr pagerank --input web.txt --workers 8 --top 20
  lvcsr partition --generate star:6 --threads 5 --node-weight 1 --edge-weight 1
  lvcsr bfs --generate grid:100x100 --start 0 --parallel
  lvcsr transpose --input graph.txt --reallocate --print
  lvcsr sssp --input roads.txt --source 3 --to 97
  lvcsr sssp --generate grid:50x50 --weights uniform:1:10 --to 2499`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file; flags override it")
	pf.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "worker count (0 = GOMAXPROCS)")
	pf.StringVar(&a.cfg.Locks, "locks", a.cfg.Locks, "node lock policy: nolock, inline, outofline")
	pf.BoolVar(&a.cfg.NUMA, "numa", a.cfg.NUMA, "place storage per worker on NUMA nodes")
	pf.BoolVar(&a.cfg.Steal, "steal", a.cfg.Steal, "work stealing in parallel passes")
	pf.BoolVar(&a.cfg.Pin, "pin", a.cfg.Pin, "pin workers to CPUs")
	pf.Int64Var(&a.cfg.NodeAlpha, "node-alpha", a.cfg.NodeAlpha, "node weight relative to an edge for thread ranges")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.cfg.MetricsAddr, "metrics-addr", a.cfg.MetricsAddr, "serve Prometheus /metrics on this address while running")
	pf.StringVar(&a.cfg.Input.Path, "input", a.cfg.Input.Path, "edge list file")
	pf.BoolVar(&a.cfg.Input.Symmetric, "symmetric", a.cfg.Input.Symmetric, "add the reverse of every input edge")
	pf.Uint64Var(&a.cfg.Input.Nodes, "nodes", a.cfg.Input.Nodes, "fix the node count of the input")
	pf.StringVar(&a.cfg.Input.Generate, "generate", a.cfg.Input.Generate, "synthetic graph spec")
	pf.Int64Var(&a.cfg.Input.Seed, "seed", a.cfg.Input.Seed, "generator seed")
	pf.BoolVar(&a.cfg.Input.Directed, "directed", a.cfg.Input.Directed, "emit only forward edges for asymmetric generators")
	pf.StringVar(&a.cfg.Input.Weights, "weights", a.cfg.Input.Weights, "edge weight distribution for generated graphs")

	root.AddCommand(a.pagerankCmd(), a.partitionCmd(), a.transposeCmd(), a.bfsCmd(), a.ssspCmd())
	return root
}

// setup merges the config file under the flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		changed := map[string]string{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
		fileCfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = fileCfg
		for name, v := range changed {
			if err := cmd.Flags().Set(name, v); err != nil {
				return fmt.Errorf("re-applying --%s: %w", name, err)
			}
		}
	}
	logger, err := newLogger(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	slog.SetDefault(logger)
	return nil
}

// withMetrics serves /metrics for the duration of fn when configured.
func (a *app) withMetrics(fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if a.cfg.MetricsAddr == "" {
			return fn(ctx)
		}
		srv := &http.Server{Addr: a.cfg.MetricsAddr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", slog.String("addr", a.cfg.MetricsAddr), slog.Any("error", err))
			}
		}()
		a.logger.Info("serving metrics", slog.String("addr", a.cfg.MetricsAddr))
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
		return fn(ctx)
	}
}

func (a *app) workers() int {
	if a.cfg.Workers > 0 {
		return a.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// load reads the input and builds a container over it.
func load[N, E any](ctx context.Context, a *app, conv func(*source.EdgeList[float64]) source.Source[E]) (*csr.Graph[N, E], error) {
	el, err := loadEdgeList(a.cfg.Input)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.graphOptions(a.logger)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	g, err := csr.FromSource[N, E](ctx, conv(el), opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("graph loaded",
		slog.Uint64("nodes", g.Size()),
		slog.Uint64("edges", g.SizeEdges()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return g, nil
}

func unweighted(el *source.EdgeList[float64]) source.Source[struct{}] { return el.Unweighted() }
func weighted(el *source.EdgeList[float64]) source.Source[float64]    { return el }

func (a *app) pagerankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerank",
		Short: "Run residual PageRank and print the top-ranked nodes",
	}
	f := cmd.Flags()
	f.Float64Var(&a.cfg.PageRank.Alpha, "alpha", a.cfg.PageRank.Alpha, "damping factor")
	f.Float64Var(&a.cfg.PageRank.Tolerance, "tolerance", a.cfg.PageRank.Tolerance, "residual tolerance")
	f.IntVar(&a.cfg.PageRank.MaxIterations, "max-iterations", a.cfg.PageRank.MaxIterations, "iteration cap")
	f.BoolVar(&a.cfg.PageRank.Protected, "protected", a.cfg.PageRank.Protected, "access nodes through the lock policy")
	f.IntVar(&a.cfg.PageRank.Top, "top", a.cfg.PageRank.Top, "number of nodes to print")
	cmd.RunE = a.withMetrics(func(ctx context.Context) error {
		g, err := load[pagerank.NodeData](ctx, a, unweighted)
		if err != nil {
			return err
		}
		defer g.Deallocate()
		res, err := pagerank.Run(ctx, g, a.cfg.pagerankOptions(a.logger)...)
		if err != nil {
			return err
		}
		return printRanks(cmd.OutOrStdout(), g, res, a.cfg.PageRank.Top)
	})
	return cmd
}

func printRanks(w io.Writer, g *csr.Graph[pagerank.NodeData, struct{}], res pagerank.Result, top int) error {
	values := pagerank.Values(g)
	order := make([]uint32, len(values))
	for i := range order {
		order[i] = uint32(i)
	}
	slices.SortStableFunc(order, func(x, y uint32) int { return cmp.Compare(values[y], values[x]) })
	if top > len(order) || top < 0 {
		top = len(order)
	}
	if _, err := fmt.Fprintf(w, "nodes=%d edges=%d iterations=%d converged=%t elapsed=%s\n",
		g.Size(), g.SizeEdges(), res.Iterations, res.Converged, res.Duration.Round(time.Microsecond)); err != nil {
		return err
	}
	for rank, n := range order[:top] {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%.6f\n", rank+1, n, values[n]); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) partitionCmd() *cobra.Command {
	var (
		threads            int
		nodeWeight, weight int64
	)
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Print the weighted divide-by-node plan for the input",
	}
	f := cmd.Flags()
	f.IntVar(&threads, "threads", 0, "number of ranges (0 = workers)")
	f.Int64Var(&nodeWeight, "node-weight", 1, "cost of one node")
	f.Int64Var(&weight, "edge-weight", 1, "cost of one edge")
	cmd.RunE = a.withMetrics(func(context.Context) error {
		el, err := loadEdgeList(a.cfg.Input)
		if err != nil {
			return err
		}
		if threads <= 0 {
			threads = a.workers()
		}
		plan := partition.Plan{NodeWeight: nodeWeight, EdgeWeight: weight, Begin: 0, End: el.NumNodes(), Prefix: el}
		rt := plan.Ranges(threads)
		if err := rt.Validate(0, el.NumNodes(), el); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "nodes=%d edges=%d total_cost=%d max_unit_cost=%d\n",
			el.NumNodes(), el.NumEdges(), plan.TotalCost(), plan.MaxUnitCost())
		for i := 0; i < rt.Workers(); i++ {
			r := rt.Worker(i)
			fmt.Fprintf(w, "worker %d: nodes [%d,%d) edges [%d,%d) cost %d\n",
				i, r.NodeBegin, r.NodeEnd, r.EdgeBegin, r.EdgeEnd, plan.Cost(r.NodeBegin, r.NodeEnd))
		}
		return nil
	})
	return cmd
}

func (a *app) transposeCmd() *cobra.Command {
	var reallocate, printEdges bool
	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Reverse every edge of the input",
	}
	cmd.Flags().BoolVar(&reallocate, "reallocate", false, "write the result into freshly placed storage")
	cmd.Flags().BoolVar(&printEdges, "print", false, "print the transposed edge list")
	cmd.RunE = a.withMetrics(func(ctx context.Context) error {
		g, err := load[struct{}](ctx, a, weighted)
		if err != nil {
			return err
		}
		defer g.Deallocate()
		start := time.Now()
		if err := g.Transpose(ctx, reallocate); err != nil {
			return err
		}
		if err := g.Validate(); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "nodes=%d edges=%d elapsed=%s\n", g.Size(), g.SizeEdges(), time.Since(start).Round(time.Microsecond))
		if !printEdges {
			return nil
		}
		for n := range g.Nodes() {
			for e := range g.Edges(n).All() {
				fmt.Fprintf(w, "%d %d %g\n", n, g.EdgeDst(e), g.EdgeData(e))
			}
		}
		return nil
	})
	return cmd
}

func (a *app) bfsCmd() *cobra.Command {
	var (
		start, to uint32
		maxDepth  int
		par, path bool
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first search from a start node",
	}
	f := cmd.Flags()
	f.Uint32Var(&start, "start", 0, "start node")
	f.IntVar(&maxDepth, "max-depth", 0, "depth limit (0 = none)")
	f.BoolVar(&par, "parallel", false, "level-synchronous parallel search")
	f.Uint32Var(&to, "to", 0, "destination for --path")
	f.BoolVar(&path, "path", false, "print the path to --to")
	cmd.RunE = a.withMetrics(func(ctx context.Context) error {
		g, err := load[struct{}](ctx, a, unweighted)
		if err != nil {
			return err
		}
		defer g.Deallocate()
		opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxDepth(maxDepth)}
		run := bfs.BFS[struct{}, struct{}]
		if par {
			run = bfs.Parallel[struct{}, struct{}]
		}
		res, err := run(g, start, opts...)
		if err != nil {
			return err
		}
		deepest := 0
		for _, d := range res.Depth {
			deepest = max(deepest, d)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "reached=%d max_depth=%d\n", len(res.Order), deepest)
		if path {
			p, err := res.PathTo(to)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "path: %v\n", p)
		}
		return nil
	})
	return cmd
}

func (a *app) ssspCmd() *cobra.Command {
	var (
		src, to     uint32
		maxDistance float64
	)
	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Weighted shortest paths from a source node",
	}
	f := cmd.Flags()
	f.Uint32Var(&src, "source", 0, "source node")
	f.Uint32Var(&to, "to", 0, "print the distance and path to this node")
	f.Float64Var(&maxDistance, "max-distance", 0, "distance cap (0 = none)")
	cmd.RunE = a.withMetrics(func(ctx context.Context) error {
		hasTo := cmd.Flags().Changed("to")
		g, err := load[struct{}](ctx, a, weighted)
		if err != nil {
			return err
		}
		defer g.Deallocate()
		opts := []dijkstra.Option{dijkstra.Source(src), dijkstra.WithWorkers(a.workers())}
		if maxDistance > 0 {
			opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
		}
		if hasTo {
			opts = append(opts, dijkstra.WithReturnPath())
		}
		start := time.Now()
		dist, prev, err := dijkstra.Dijkstra(ctx, g, opts...)
		if err != nil {
			return err
		}
		reached, farthest := 0, 0.0
		for _, d := range dist {
			if math.IsInf(d, 1) {
				continue
			}
			reached++
			farthest = max(farthest, d)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "reached=%d farthest=%g elapsed=%s\n", reached, farthest, time.Since(start).Round(time.Microsecond))
		if !hasTo {
			return nil
		}
		p, err := dijkstra.PathTo(prev, src, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "distance=%g path: %v\n", dist[to], p)
		return nil
	})
	return cmd
}
