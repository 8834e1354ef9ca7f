// SPDX-License-Identifier: MIT
// Package: lvcsr/csr

package csr

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for container operations.
var (
	tracer = otel.Tracer("lvcsr.csr")
	meter  = otel.Meter("lvcsr.csr")
)

var (
	constructLatency metric.Float64Histogram
	transposeLatency metric.Float64Histogram
	edgesBuilt       metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		constructLatency, err = meter.Float64Histogram(
			"csr_construct_duration_seconds",
			metric.WithDescription("Duration of graph construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		transposeLatency, err = meter.Float64Histogram(
			"csr_transpose_duration_seconds",
			metric.WithDescription("Duration of graph transposition"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesBuilt, err = meter.Int64Counter(
			"csr_edges_constructed_total",
			metric.WithDescription("Edges written by construction"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordConstruct(ctx context.Context, path string, d time.Duration, edges uint64, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("path", path), attribute.Bool("success", success))
	constructLatency.Record(ctx, d.Seconds(), attrs)
	if success {
		edgesBuilt.Add(ctx, int64(edges), metric.WithAttributes(attribute.String("path", path)))
	}
}

func recordTranspose(ctx context.Context, d time.Duration, reallocate bool) {
	if err := initMetrics(); err != nil {
		return
	}
	transposeLatency.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("reallocate", reallocate)))
}
