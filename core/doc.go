// Package core provides the in-memory Graph model consumed by the step-wise
// shortest-path engine and its renderers.
//
// The Graph G = (V,E) is deliberately small and predictable:
//
//   - Nodes carry a dense NodeID assigned in creation order (0, 1, 2, …) and a Role
//     tag (RoleNormal, RoleStart, RoleEnd). Positions and display data are owned by
//     collaborators (see package geometry and package driver), never by core.
//   - Edges are directed and weighted with a real Cost ≥ 0. A bidirectional link is
//     two edges. Parallel edges and self-loops are permitted.
//   - OutgoingEdges returns edges in insertion order. Relaxation order inside one
//     expansion is therefore reproducible and can be asserted in tests.
//   - Costs may be changed after creation (SetCost). Readers always see the current
//     value; nothing downstream caches it.
//   - Edges carry transient observation flags (Relaxed, Improved, OnPath). They exist
//     only so a renderer can highlight what happened; algorithms never read them.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes and edges. Any number of readers (for example
//	several engines over one graph) may run in parallel. Writers (AddNode, AddEdge,
//	SetCost, SetRole, Mark*) take the write lock. Mutating costs during an active run
//	is legal at the memory level but its meaning is up to the caller.
//
// Errors:
//
//	ErrInvalidReference - a NodeID or EdgeID does not exist in the graph.
//	ErrUnknownRole      - SetRole received a value outside the Role enum.
//
// Example:
//
//	g := core.NewGraph()
//	a, b := g.AddNode(), g.AddNode()
//	if _, err := g.AddEdge(a, b, 2.5); err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := g.OutgoingEdges(a) // [{ID:0 From:0 To:1 Cost:2.5}]
package core
