// SPDX-License-Identifier: MIT
// Package: lvcsr/builder
//
// weight_fn.go - edge weight distributions sampled while a graph is built.
//
// Every WeightFn draws from the builder's *rand.Rand so a fixed seed
// reproduces the same weights. With a nil source each falls back to
// DefaultEdgeWeight. Constructors panic on bad arguments; ParseWeightFn
// validates first and reports ErrBadWeightSpec instead.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces one edge weight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		switch {
		case rng == nil:
			return DefaultEdgeWeight
		case max == min:
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// From1To100WeightFn samples uniformly in [1, 100).
func From1To100WeightFn(rng *rand.Rand) float64 {
	return UniformWeightFn(1, 100)(rng)
}

// NormalWeightFn samples N(mean, stddev) clipped below at 0, so shortest
// path searches never see a negative edge. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if s := rng.NormFloat64()*stddev + mean; s > 0 {
			return s
		}
		return 0
	}
}

// ExponentialWeightFn samples Exp(rate), mean 1/rate. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// ParseWeightFn turns a distribution spec into a WeightFn:
//
//	unit          every edge weighs DefaultEdgeWeight (also "")
//	const:W       every edge weighs W
//	uniform:A:B   U[A,B)
//	normal:M:S    N(M,S) clipped at 0
//	exp:R         Exp(R)
//	1to100        U[1,100)
func ParseWeightFn(spec string) (WeightFn, error) {
	kind, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	nums := func(want int) ([]float64, error) {
		var parts []string
		if args != "" {
			parts = strings.Split(args, ":")
		}
		if len(parts) != want {
			return nil, fmt.Errorf("%w: %q wants %d values", ErrBadWeightSpec, spec, want)
		}
		out := make([]float64, want)
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadWeightSpec, spec, err)
			}
			out[i] = v
		}
		return out, nil
	}
	bad := func(why string) error {
		return fmt.Errorf("%w: %q: %s", ErrBadWeightSpec, spec, why)
	}

	switch kind {
	case "", "unit":
		if args != "" {
			return nil, bad("unit takes no values")
		}
		return DefaultWeightFn, nil
	case "1to100":
		if args != "" {
			return nil, bad("1to100 takes no values")
		}
		return From1To100WeightFn, nil
	case "const":
		v, err := nums(1)
		if err != nil {
			return nil, err
		}
		if !(v[0] >= 0) {
			return nil, bad("weight must be ≥ 0")
		}
		return ConstantWeightFn(v[0]), nil
	case "uniform":
		v, err := nums(2)
		if err != nil {
			return nil, err
		}
		if !(v[0] >= 0 && v[1] >= v[0]) {
			return nil, bad("require 0 ≤ A ≤ B")
		}
		return UniformWeightFn(v[0], v[1]), nil
	case "normal":
		v, err := nums(2)
		if err != nil {
			return nil, err
		}
		if !(v[1] >= 0) {
			return nil, bad("stddev must be ≥ 0")
		}
		return NormalWeightFn(v[0], v[1]), nil
	case "exp":
		v, err := nums(1)
		if err != nil {
			return nil, err
		}
		if !(v[0] > 0) {
			return nil, bad("rate must be > 0")
		}
		return ExponentialWeightFn(v[0]), nil
	}
	return nil, bad("unknown distribution " + strconv.Quote(kind))
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
