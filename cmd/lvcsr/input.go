// SPDX-License-Identifier: MIT
// Package: lvcsr/cmd/lvcsr

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcsr/builder"
	"github.com/katalvlaran/lvcsr/source"
)

var errNoInput = errors.New("no input: set --input or --generate")

// loadEdgeList reads the configured edge list file or runs the configured
// generator.
func loadEdgeList(in InputConfig) (*source.EdgeList[float64], error) {
	switch {
	case in.Path != "" && in.Generate != "":
		return nil, errors.New("--input and --generate are mutually exclusive")
	case in.Path != "" && in.Weights != "":
		return nil, errors.New("--weights applies to --generate; edge list files carry their own weights")
	case in.Path != "":
		var opts []source.ReadOption
		if in.Symmetric {
			opts = append(opts, source.WithSymmetric())
		}
		if in.Nodes > 0 {
			opts = append(opts, source.WithNodeCount(in.Nodes))
		}
		return source.ReadEdgeListFile(in.Path, opts...)
	case in.Generate != "":
		ctor, err := parseGenerator(in.Generate)
		if err != nil {
			return nil, err
		}
		weights, err := builder.ParseWeightFn(in.Weights)
		if err != nil {
			return nil, err
		}
		bopts := []builder.BuilderOption{builder.WithSeed(in.Seed), builder.WithWeightFn(weights)}
		if in.Directed {
			bopts = append(bopts, builder.WithDirected())
		}
		return builder.Build(bopts, ctor)
	}
	return nil, errNoInput
}

// parseGenerator turns "kind:args" into a builder constructor:
//
//	cycle:N path:N star:N wheel:N complete:N grid:RxC
//	bipartite:N1xN2 random:N:P regular:N:D
func parseGenerator(spec string) (builder.Constructor, error) {
	kind, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	ints := func(s, sep string, want int) ([]int, error) {
		parts := strings.Split(s, sep)
		if len(parts) != want {
			return nil, fmt.Errorf("generator %q: want %d values separated by %q", spec, want, sep)
		}
		out := make([]int, want)
		for i, p := range parts {
			v, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("generator %q: %w", spec, err)
			}
			out[i] = v
		}
		return out, nil
	}

	switch kind {
	case "cycle", "path", "star", "wheel", "complete":
		v, err := ints(args, ":", 1)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) builder.Constructor{
			"cycle":    builder.Cycle,
			"path":     builder.Path,
			"star":     builder.Star,
			"wheel":    builder.Wheel,
			"complete": builder.Complete,
		}[kind](v[0]), nil
	case "grid", "bipartite":
		v, err := ints(args, "x", 2)
		if err != nil {
			return nil, err
		}
		if kind == "grid" {
			return builder.Grid(v[0], v[1]), nil
		}
		return builder.CompleteBipartite(v[0], v[1]), nil
	case "random":
		n, p, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("generator %q: want random:N:P", spec)
		}
		nn, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", spec, err)
		}
		pp, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", spec, err)
		}
		return builder.RandomSparse(nn, pp), nil
	case "regular":
		v, err := ints(args, ":", 2)
		if err != nil {
			return nil, err
		}
		return builder.RandomRegular(v[0], v[1]), nil
	}
	return nil, fmt.Errorf("generator %q: unknown kind %q", spec, kind)
}
