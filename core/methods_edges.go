// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/OutgoingEdges/SetCost.
//
// Determinism:
//   - Edges() returns edges in EdgeID order.
//   - OutgoingEdges(u) returns edges leaving u in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//   - Queries return value copies, so callers never observe a half-written edge.
//
// AI-HINT (file):
//   - Cost validation is the caller's concern: negative costs are accepted here and
//     simply void Dijkstra's optimality guarantee.
package core

import "fmt"

// AddEdge creates a directed edge from → to with the given cost.
//
// Implementation:
//   - Stage 1: Under the write lock, verify both endpoints exist (ErrInvalidReference).
//   - Stage 2: Assign the next sequential EdgeID and store the edge.
//   - Stage 3: Append the EdgeID to from's outgoing bucket (keeps insertion order).
//
// Behavior highlights:
//   - Self-loops (from == to) are permitted.
//   - Parallel edges between the same ordered pair are permitted; each is independent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, cost float64) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Validate endpoints.
	if !g.hasNode(from) || !g.hasNode(to) {
		return -1, fmt.Errorf("%w: edge %d→%d", ErrInvalidReference, from, to)
	}

	// 2) Store the edge.
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Cost: cost})

	// 3) Index it under its tail.
	g.outgoing[from] = append(g.outgoing[from], id)

	return id, nil
}

// hasEdge reports whether id names an edge; callers must hold mu.
func (g *Graph) hasEdge(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges)
}

// Edge returns a copy of edge id.
// Returns ErrInvalidReference if id is absent.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasEdge(id) {
		return Edge{}, fmt.Errorf("%w: edge %d", ErrInvalidReference, id)
	}

	return g.edges[id], nil
}

// Edges returns a snapshot of all edges in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// OutgoingEdges returns every edge whose From == id, in insertion order.
//
// The returned slice holds copies carrying the cost as of this call, which is
// what the engine reads at relaxation time.
// Returns ErrInvalidReference if id is absent.
// Complexity: O(deg⁺(id)).
func (g *Graph) OutgoingEdges(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, fmt.Errorf("%w: node %d", ErrInvalidReference, id)
	}

	ids := g.outgoing[id]
	out := make([]Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// SetCost replaces the cost of edge id. The new value is what the next relaxation
// of that edge reads.
// Returns ErrInvalidReference if id is absent.
func (g *Graph) SetCost(id EdgeID, cost float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdge(id) {
		return fmt.Errorf("%w: edge %d", ErrInvalidReference, id)
	}
	g.edges[id].Cost = cost

	return nil
}
