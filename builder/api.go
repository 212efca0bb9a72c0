// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g and its layout, resolves cfg,
//     runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic in constructors; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
)

// Constructor applies a deterministic mutation to g and its layout l using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters before touching g.
//   - Place every node they add in l.
//   - Emit edges in a stable order.
type Constructor func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error

// BuildGraph creates an empty graph and layout, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor error
// is wrapped as "BuildGraph: %w" and returned; no partial cleanup is attempted.
//
// Complexity: Σ cost of constructors; wrapper overhead O(len(cons)).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, *geometry.Layout, error) {
	g := core.NewGraph()
	l := geometry.NewLayout()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, l, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, l, nil
}

// addPlaced adds one node at p and returns its ID.
func addPlaced(g *core.Graph, l *geometry.Layout, p geometry.Point) core.NodeID {
	id := g.AddNode()
	l.Set(id, p)

	return id
}

// addCosted adds from→to with the cost policy of cfg applied to their positions.
func addCosted(g *core.Graph, l *geometry.Layout, cfg builderConfig, method string, from, to core.NodeID) error {
	a, _ := l.Position(from)
	b, _ := l.Position(to)
	c := cfg.costFn(a, b)
	if _, err := g.AddEdge(from, to, c); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, c=%g): %w", method, from, to, c, err)
	}

	return nil
}
