// Package dijkstra implements Dijkstra's shortest-path algorithm as a resumable,
// observable state machine.
//
// Overview:
//
//   - An Engine owns all per-run state (tentative distances, predecessor links,
//     visited set, ordered frontier, current node) for one (start, end) pair over a
//     core.Graph.
//   - Each call to Step expands exactly one node: it relaxes the node's outgoing edges
//     in insertion order, finalizes it, and picks the next node. The call returns a
//     StepReport describing what happened, so any driver (a test, a batch job, an
//     animated renderer) can consume progress without callbacks or timers.
//   - Reconstruct walks predecessor links back from a finalized node and returns the
//     path in start→end order.
//
// State machine:
//
//	StateReady ──Initialize──▶ StateExpanding ──Step…──▶ StateDoneFound
//	                                                └───▶ StateDoneUnreachable
//
// Selection of the next node:
//
//	The next node is the frontier node with minimal tentative distance. Candidates
//	are scanned in frontier order (ascending NodeID, as nodes were created) and the
//	first candidate whose distance is numerically closest to that minimum wins. With
//	exact ties this picks the earliest-created node, which keeps runs reproducible.
//
// Complexity:
//
//   - Step: O(deg⁺(u) + V): relaxation plus a linear frontier scan. Graphs here are
//     small (tens of nodes) and a heap would obscure the per-step story.
//   - RunToCompletion: O(V² + E).
//   - Space: O(V).
//
// Preconditions:
//
//	Edge costs must be non-negative. This is not validated at runtime; a safety bound
//	of |V| expansions turns a runaway run into ErrAlgorithmExhausted instead of a
//	loop.
//
// Errors (sentinel):
//
//   - ErrNilGraph:           New received a nil graph.
//   - ErrInvalidReference:   a node ID is not in the graph (alias of core.ErrInvalidReference).
//   - ErrInvalidState:       an operation was called in the wrong phase.
//   - ErrAlgorithmExhausted: the internal consistency guard tripped.
//
// StateDoneUnreachable is not an error: it is the normal outcome when no path exists.
// Check FinalResult.Found (or StepReport.Found) before calling Reconstruct.
//
// Example usage:
//
//	e, _ := dijkstra.New(g)
//	if err := e.Initialize(0, 5); err != nil {
//	    log.Fatal(err)
//	}
//	for e.State() == dijkstra.StateExpanding {
//	    rep, err := e.Step()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    draw(rep)
//	}
//	path, err := dijkstra.Reconstruct(e, 5)
package dijkstra
