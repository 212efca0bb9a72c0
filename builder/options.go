// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/dijkstraviz/geometry"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-edge cost policy. The function receives the
// endpoint positions and must return a non-negative cost. Panics on nil.
func WithCostFn(fn func(a, b geometry.Point) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithSpacing sets the distance between neighbouring Chain/Grid nodes.
// Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// UnitCost is a cost policy giving every edge cost 1.
func UnitCost(_, _ geometry.Point) float64 { return 1 }
