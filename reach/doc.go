// Package reach answers "which nodes can the start ever reach?" with a
// breadth-first walk over outgoing edges of a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  NodeID → hops from start
//   - Parent: NodeID → predecessor in the BFS tree
//   - Costs are ignored; only edge direction matters.
//   - Optional MaxDepth limit, edge filter, OnVisit hook and context cancellation.
//
// Why
//
//	A shortest-path run ends in StateDoneUnreachable when the target lies outside
//	the start's reachable set. Callers use Reachable to warn before animating such
//	a run, to grey out unreachable nodes in a frame, and in tests to cross-check
//	the engine's verdict independently.
//
// Determinism
//
//	Outgoing edges are followed in insertion order, so Order is fully reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNotFound       if the start node does not exist.
//   - ErrOptionViolation     for invalid options (e.g. negative MaxDepth).
//   - context errors         when the context passed WithContext is done.
//   - wrapped OnVisit errors.
package reach
