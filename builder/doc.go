// Package builder assembles deterministic fixture graphs together with their
// planar layouts.
//
// Every Constructor appends nodes to a core.Graph, places them in a
// geometry.Layout, and emits directed edges in a stable, documented order. Edge
// costs come from the resolved cost function, which defaults to the Euclidean
// distance between endpoints. That reproduces the animated demo, where arrows were
// as long as their cost.
//
// Constructors:
//
//   - Demo():              the shipped 7-node, 10-edge teaching graph.
//   - DemoWeighted():      same topology with the fixed weights of the first demo cut.
//   - Chain(n):            0→1→…→n-1 on a horizontal line.
//   - Grid(rows, cols):    4-neighbourhood grid, both directions, row-major IDs.
//   - RandomSparse(n, p):  each ordered pair (i≠j) gets an edge with probability p.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse (positions and edge trials).
//   - WithCostFn:          replace the Euclidean cost policy.
//   - WithSpacing:         distance between neighbouring nodes of Chain/Grid.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with "%w".
//     Option constructors panic on meaningless input (nil functions, spacing ≤ 0).
//   - NodeIDs are offset by the graph's size when a constructor starts, so several
//     constructors compose into one graph.
package builder
