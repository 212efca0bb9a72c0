// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_topologies.go - Chain, Grid and RandomSparse constructors.
//
// Determinism:
//   - Nodes are added in ascending local index order.
//   - Chain emits i→i+1 for i asc.
//   - Grid emits, per cell in row-major order: right, left-back, down, up-back.
//   - RandomSparse draws all positions first, then trials ordered pairs (i asc, j asc).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
)

const (
	methodChain        = "Chain"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minChainNodes  = 1
	minGridDim     = 1
	minSparseNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// Chain returns a Constructor for the directed path 0→1→…→n-1 laid out on a
// horizontal line, cfg.spacing apart.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		ids := make([]core.NodeID, n)
		for i := 0; i < n; i++ {
			ids[i] = addPlaced(g, l, geometry.Point{X: float64(i) * cfg.spacing})
		}
		for i := 1; i < n; i++ {
			if err := addCosted(g, l, cfg, methodChain, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid where every
// neighbouring pair is linked in both directions. Node (r,c) has local index r*cols+c.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = addPlaced(g, l, geometry.Point{
					X: float64(c) * cfg.spacing,
					Y: float64(r) * cfg.spacing,
				})
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					v := ids[r*cols+c+1]
					if err := link(g, l, cfg, u, v); err != nil {
						return err
					}
				}
				if r+1 < rows {
					v := ids[(r+1)*cols+c]
					if err := link(g, l, cfg, u, v); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// link adds u→v then v→u.
func link(g *core.Graph, l *geometry.Layout, cfg builderConfig, u, v core.NodeID) error {
	if err := addCosted(g, l, cfg, methodGrid, u, v); err != nil {
		return err
	}

	return addCosted(g, l, cfg, methodGrid, v, u)
}

// RandomSparse returns a Constructor sampling n nodes uniformly inside a square of
// side cfg.spacing*n and adding each ordered pair (i,j), i≠j, with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); positions are random.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error {
		// 1) Validate before touching g.
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Place nodes.
		side := cfg.spacing * float64(n)
		ids := make([]core.NodeID, n)
		for i := 0; i < n; i++ {
			ids[i] = addPlaced(g, l, geometry.Point{
				X: cfg.rng.Float64() * side,
				Y: cfg.rng.Float64() * side,
			})
		}

		// 3) Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := addCosted(g, l, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// wrapAdd decorates an AddEdge failure with method context.
func wrapAdd(method string, from, to core.NodeID, err error) error {
	return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, from, to, err)
}
