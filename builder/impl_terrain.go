// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_terrain.go - Terrain constructor over a gridgraph.GridGraph.
//
// Determinism:
//   - Nodes follow gg.Cells() (row-major, walls skipped), so local index i is
//     gg.NodeIndex of the i-th open cell.
//   - Edges are emitted per cell in row-major order, neighbours clockwise from north.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/gridgraph"
)

const methodTerrain = "Terrain"

// Terrain returns a Constructor with one node per open cell of gg, placed at
// (x·spacing, y·spacing), and one directed edge from every open cell to each
// open neighbour. An edge costs cfg.costFn of its endpoints scaled by the mean
// terrain weight of the two cells, so crossing heavy ground is dearer.
// Complexity: O(W×H×d).
func Terrain(gg *gridgraph.GridGraph) Constructor {
	return func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error {
		if gg == nil {
			return fmt.Errorf("%s: nil grid: %w", methodTerrain, ErrConstructFailed)
		}
		cells := gg.Cells()
		if len(cells) == 0 {
			return fmt.Errorf("%s: no open cells: %w", methodTerrain, ErrTooFewNodes)
		}

		ids := make(map[[2]int]core.NodeID, len(cells))
		for _, c := range cells {
			ids[[2]int{c.X, c.Y}] = addPlaced(g, l, geometry.Point{
				X: float64(c.X) * cfg.spacing,
				Y: float64(c.Y) * cfg.spacing,
			})
		}

		for _, c := range cells {
			u := ids[[2]int{c.X, c.Y}]
			a, _ := l.Position(u)
			for _, nb := range gg.Neighbors(c.X, c.Y) {
				v := ids[[2]int{nb.X, nb.Y}]
				b, _ := l.Position(v)
				cost := cfg.costFn(a, b) * float64(c.Value+nb.Value) / 2
				if _, err := g.AddEdge(u, v, cost); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, c=%g): %w", methodTerrain, u, v, cost, err)
				}
			}
		}

		return nil
	}
}
