// SPDX-License-Identifier: MIT
// Package: lvcsr/cmd/lvcsr

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcsr/csr"
	"github.com/katalvlaran/lvcsr/lock"
	"github.com/katalvlaran/lvcsr/pagerank"
)

// Config is the YAML configuration file. Flags given on the command line
// override the file.
type Config struct {
	Workers     int            `yaml:"workers"`
	Locks       string         `yaml:"locks"`
	NUMA        bool           `yaml:"numa"`
	Steal       bool           `yaml:"steal"`
	Pin         bool           `yaml:"pin"`
	NodeAlpha   int64          `yaml:"node_alpha"`
	LogLevel    string         `yaml:"log_level"`
	MetricsAddr string         `yaml:"metrics_addr"`
	Input       InputConfig    `yaml:"input"`
	PageRank    PageRankConfig `yaml:"pagerank"`
}

// InputConfig selects the graph: a text edge list or a generator spec.
type InputConfig struct {
	Path      string `yaml:"path"`
	Symmetric bool   `yaml:"symmetric"`
	Nodes     uint64 `yaml:"nodes"`
	Generate  string `yaml:"generate"`
	Seed      int64  `yaml:"seed"`
	Directed  bool   `yaml:"directed"`
	Weights   string `yaml:"weights"`
}

// PageRankConfig mirrors pagerank.Options.
type PageRankConfig struct {
	Alpha         float64 `yaml:"alpha"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	Protected     bool    `yaml:"protected"`
	Top           int     `yaml:"top"`
}

func defaultConfig() Config {
	pr := pagerank.DefaultOptions()
	return Config{
		Locks:    lock.NoLock.String(),
		NUMA:     true,
		Steal:    true,
		LogLevel: "info",
		Input: InputConfig{
			Seed: 1,
		},
		PageRank: PageRankConfig{
			Alpha:         pr.Alpha,
			Tolerance:     pr.Tolerance,
			MaxIterations: pr.MaxIterations,
			Top:           10,
		},
	}
}

// loadConfig reads path over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// graphOptions translates the container knobs into csr options.
func (c Config) graphOptions(logger *slog.Logger) ([]csr.Option, error) {
	kind, err := lock.ParseKind(c.Locks)
	if err != nil {
		return nil, err
	}
	if c.NodeAlpha < 0 {
		return nil, fmt.Errorf("node alpha must be ≥ 0, got %d", c.NodeAlpha)
	}
	opts := []csr.Option{
		csr.WithLockKind(kind),
		csr.WithNUMA(c.NUMA),
		csr.WithSteal(c.Steal),
		csr.WithPinning(c.Pin),
		csr.WithNodeAlpha(c.NodeAlpha),
		csr.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, csr.WithWorkers(c.Workers))
	}
	return opts, nil
}

func (c Config) pagerankOptions(logger *slog.Logger) []pagerank.Option {
	opts := []pagerank.Option{
		pagerank.WithAlpha(c.PageRank.Alpha),
		pagerank.WithTolerance(c.PageRank.Tolerance),
		pagerank.WithMaxIterations(c.PageRank.MaxIterations),
		pagerank.WithProtected(c.PageRank.Protected),
		pagerank.WithSteal(c.Steal),
		pagerank.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, pagerank.WithWorkers(c.Workers))
	}
	return opts
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
