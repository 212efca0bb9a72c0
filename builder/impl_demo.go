// SPDX-License-Identifier: MIT
// Package: dijkstraviz/builder
//
// impl_demo.go - the shipped teaching graph.
//
// Topology (7 nodes, 10 directed edges, emitted in this order):
//
//	0→1, 0→2, 2→4, 5→3, 3→5, 1→3, 4→6, 6→5, 5→1, 1→6
//
// Positions (canvas pixels):
//
//	0:(50,100) 1:(50,220) 2:(110,160) 3:(170,400) 4:(170,40) 5:(290,340) 6:(350,220)

package builder

import (
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
)

const (
	methodDemo         = "Demo"
	methodDemoWeighted = "DemoWeighted"
)

// DemoPoints are the node positions of the demo graph, indexed by local node number.
var DemoPoints = []geometry.Point{
	{X: 50, Y: 100},
	{X: 50, Y: 220},
	{X: 110, Y: 160},
	{X: 170, Y: 400},
	{X: 170, Y: 40},
	{X: 290, Y: 340},
	{X: 350, Y: 220},
}

// DemoEdges lists the demo edges as local (from, to) pairs in emission order.
var DemoEdges = [][2]int{
	{0, 1}, {0, 2}, {2, 4}, {5, 3}, {3, 5}, {1, 3}, {4, 6}, {6, 5}, {5, 1}, {1, 6},
}

// demoWeights are the fixed weights of the first demo cut, aligned with DemoEdges.
var demoWeights = []float64{50, 5, 150, 15, 2005, 75, 555, 1005, 15, 255}

// Demo returns a Constructor for the teaching graph with costs from cfg.costFn
// (Euclidean by default). The canonical run is start=0, end=5.
func Demo() Constructor {
	return func(g *core.Graph, l *geometry.Layout, cfg builderConfig) error {
		ids := placeDemo(g, l)
		for _, e := range DemoEdges {
			if err := addCosted(g, l, cfg, methodDemo, ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// DemoWeighted returns a Constructor for the demo topology with fixed weights
// instead of positional costs.
func DemoWeighted() Constructor {
	return func(g *core.Graph, l *geometry.Layout, _ builderConfig) error {
		ids := placeDemo(g, l)
		for i, e := range DemoEdges {
			if _, err := g.AddEdge(ids[e[0]], ids[e[1]], demoWeights[i]); err != nil {
				return wrapAdd(methodDemoWeighted, ids[e[0]], ids[e[1]], err)
			}
		}

		return nil
	}
}

// placeDemo adds the seven demo nodes and returns their IDs.
func placeDemo(g *core.Graph, l *geometry.Layout) []core.NodeID {
	ids := make([]core.NodeID, len(DemoPoints))
	for i, p := range DemoPoints {
		ids[i] = addPlaced(g, l, p)
	}

	return ids
}
