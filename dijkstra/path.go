package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Reconstruct returns the shortest path from the run's start to end, inclusive,
// by walking predecessor links backwards.
//
// Errors:
//   - ErrInvalidReference if end is not a node of the graph.
//   - ErrInvalidState if the engine was never initialized or never finalized end
//     (a StateDoneUnreachable run for its own end lands here).
//   - ErrAlgorithmExhausted if the walk exceeds |V| hops or hits a missing link.
func Reconstruct(e *Engine, end core.NodeID) ([]core.NodeID, error) {
	hops, err := walk(e, end)
	if err != nil {
		return nil, err
	}

	path := make([]core.NodeID, 0, len(hops)+1)
	path = append(path, e.start)
	for _, h := range hops {
		path = append(path, h.to)
	}

	return path, nil
}

// ReconstructEdges is Reconstruct returning the edges that produced each
// predecessor link, in start→end order. With parallel edges it returns exactly the
// edge that set the final distance.
func ReconstructEdges(e *Engine, end core.NodeID) ([]core.EdgeID, error) {
	hops, err := walk(e, end)
	if err != nil {
		return nil, err
	}

	out := make([]core.EdgeID, len(hops))
	for i, h := range hops {
		out[i] = h.edge
	}

	return out, nil
}

// hop is one predecessor link prev → to reached via edge.
type hop struct {
	to   core.NodeID
	edge core.EdgeID
}

// walk follows prev/via from end to start and returns the hops in forward order.
func walk(e *Engine, end core.NodeID) ([]hop, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil engine", ErrInvalidState)
	}
	if e.state == StateReady {
		return nil, fmt.Errorf("%w: Reconstruct before Initialize", ErrInvalidState)
	}
	if !e.g.HasNode(end) {
		return nil, fmt.Errorf("%w: node %d", ErrInvalidReference, end)
	}
	if !e.Visited(end) {
		return nil, fmt.Errorf("%w: node %d was never reached (state %s)", ErrInvalidState, end, e.state)
	}

	var rev []hop
	for v := end; v != e.start; {
		if len(rev) >= e.n {
			return nil, fmt.Errorf("%w: predecessor walk from %d exceeded %d hops", ErrAlgorithmExhausted, end, e.n)
		}
		p := e.prev[v]
		if p == core.NoNode {
			return nil, fmt.Errorf("%w: node %d has no predecessor", ErrAlgorithmExhausted, v)
		}
		rev = append(rev, hop{to: v, edge: e.via[v]})
		v = p
	}

	// Reverse into start→end order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// PathCost sums the current costs of edges in order, starting from zero, which
// mirrors how the engine accumulated the distance.
func PathCost(g *core.Graph, edges []core.EdgeID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total float64
	for _, id := range edges {
		e, err := g.Edge(id)
		if err != nil {
			return 0, err
		}
		total += e.Cost
	}

	return total, nil
}

// MarkPath flags every edge in edges as OnPath.
func MarkPath(g *core.Graph, edges []core.EdgeID) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range edges {
		if err := g.MarkOnPath(id); err != nil {
			return err
		}
	}

	return nil
}
