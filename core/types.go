// File: types.go
// Role: NodeID/EdgeID/Role enums, Node and Edge records, Graph, sentinel errors, NewGraph.
//
// Determinism:
//   - NodeID and EdgeID are dense counters starting at 0, assigned in creation order.
//
// Concurrency:
//   - Graph.mu guards nodes, edges and the outgoing index.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidReference indicates an operation referenced a node or edge that does not exist.
	ErrInvalidReference = errors.New("core: invalid reference")

	// ErrUnknownRole indicates SetRole received a value outside the Role enum.
	ErrUnknownRole = errors.New("core: unknown node role")
)

// NodeID identifies a node inside its Graph. IDs are small non-negative integers
// handed out sequentially by AddNode.
type NodeID int

// NoNode is the "none" value for NodeID (e.g. the predecessor of an unreached node).
const NoNode NodeID = -1

// Valid reports whether id could name a node (non-negative).
func (id NodeID) Valid() bool { return id >= 0 }

// EdgeID identifies an edge inside its Graph, sequential in AddEdge order.
type EdgeID int

// Role tags a node for the current run.
type Role int

const (
	// RoleNormal is the default role of every node.
	RoleNormal Role = iota
	// RoleStart marks the source of the current run.
	RoleStart
	// RoleEnd marks the target of the current run.
	RoleEnd
)

// String returns a lower-case label suitable for logs and scenario files.
func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Node is a graph vertex. Display attributes are not part of core.
type Node struct {
	// ID is the stable identity assigned at creation.
	ID NodeID

	// Role is RoleStart/RoleEnd for the endpoints of the current run, RoleNormal otherwise.
	Role Role
}

// Edge is a directed, weighted connection From → To.
//
// Relaxed, Improved and OnPath are transient per-run flags used only for
// observation. They never influence algorithm correctness.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the tail node.
	From NodeID

	// To is the head node.
	To NodeID

	// Cost is the non-negative traversal cost read at relaxation time.
	Cost float64

	// Relaxed is set when the edge was examined during the most recent step.
	Relaxed bool

	// Improved is set when that examination lowered the head's tentative distance.
	Improved bool

	// OnPath is set when the edge belongs to the reconstructed final path.
	OnPath bool
}

// Graph is the core in-memory graph.
//
// nodes is indexed by NodeID and edges by EdgeID (both dense).
// outgoing[id] lists EdgeIDs leaving id in insertion order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes    []Node
	edges    []Edge
	outgoing [][]EdgeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:    make([]Node, 0),
		edges:    make([]Edge, 0),
		outgoing: make([][]EdgeID, 0),
	}
}
