// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = nil                 (pure/deterministic unless seeded)
//   • costFn  = geometry.Distance   (Euclidean)
//   • spacing = defaultSpacing

package builder

import (
	"math/rand"

	"github.com/katalvlaran/dijkstraviz/geometry"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cost policy for an edge between two positions.
	costFn func(a, b geometry.Point) float64
	// Distance between neighbouring nodes for Chain/Grid layouts.
	spacing float64
}

// defaultSpacing matches the scale of the original canvas (one grid unit = 60px).
const defaultSpacing = 60.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		costFn:  geometry.Distance,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
