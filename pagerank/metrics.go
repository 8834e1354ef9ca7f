// SPDX-License-Identifier: MIT
// Package: lvcsr/pagerank

package pagerank

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// iterationTotal counts passes by whether they did work
	iterationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvcsr_pagerank_iterations_total",
		Help: "Total PageRank iterations by outcome",
	}, []string{"did_work"})

	// iterationDuration tracks per-pass latency
	iterationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvcsr_pagerank_iteration_duration_seconds",
		Help:    "PageRank iteration duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// runTotal counts Run calls by convergence
	runTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvcsr_pagerank_runs_total",
		Help: "Total PageRank runs by convergence",
	}, []string{"converged"})

	// runIterations tracks iterations needed per run
	runIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvcsr_pagerank_run_iterations",
		Help:    "Iterations per PageRank run",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)
