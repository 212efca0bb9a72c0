// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Node/Nodes/NodeCount, role tags.
//
// Determinism:
//   - Nodes() returns nodes in NodeID order (creation order).
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import "fmt"

// AddNode appends a node with RoleNormal and returns its sequential ID.
//
// Implementation:
//   - Stage 1: Under the write lock, take len(nodes) as the new ID.
//   - Stage 2: Append the node and an empty outgoing bucket.
//
// There is no failure mode; IDs are only exhausted by memory.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Role: RoleNormal})
	g.outgoing = append(g.outgoing, nil)

	return id
}

// HasNode reports whether id names a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(id)
}

// hasNode is HasNode without locking; callers must hold mu.
func (g *Graph) hasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a copy of the node record for id.
// Returns ErrInvalidReference if id is absent.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return Node{}, fmt.Errorf("%w: node %d", ErrInvalidReference, id)
	}

	return g.nodes[id], nil
}

// Nodes returns a snapshot of all nodes in ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetRole tags node id with role.
// Returns ErrInvalidReference for a missing node and ErrUnknownRole for an out-of-range role.
func (g *Graph) SetRole(id NodeID, role Role) error {
	if role < RoleNormal || role > RoleEnd {
		return fmt.Errorf("%w: %d", ErrUnknownRole, role)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(id) {
		return fmt.Errorf("%w: node %d", ErrInvalidReference, id)
	}
	g.nodes[id].Role = role

	return nil
}

// ResetRoles puts every node back to RoleNormal.
// Complexity: O(V).
func (g *Graph) ResetRoles() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.nodes {
		g.nodes[i].Role = RoleNormal
	}
}
