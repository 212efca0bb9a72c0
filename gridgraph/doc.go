// Package gridgraph treats a 2D terrain grid as a graph source.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. A cell value is its terrain
//     weight; cells below LandThreshold are walls and never become nodes.
//   - Neighbours follow Conn4 (N, E, S, W) or Conn8 (with diagonals).
//   - Parse reads ASCII maps: '.' is open ground (weight 1), '1'..'9' heavier
//     ground, '#' a wall.
//   - ConnectedComponents groups open cells into islands, so a caller can tell
//     before running a search that two cells can never be joined.
//
// builder.Terrain turns a GridGraph into a placed, costed graph: one node per
// open cell in row-major order, one directed edge each way between open
// neighbours, cost = distance × mean weight of the two cells.
//
// Complexity:
//
//   - NewGridGraph, Parse: O(W×H).
//   - ConnectedComponents: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a character it does not know.
package gridgraph
