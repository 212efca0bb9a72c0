package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Step performs one "expand the current frontier node" unit of work.
//
// Implementation:
//  1. u = current (start on the first call).
//  2. Relax every outgoing edge of u in insertion order; an edge improves iff
//     distance[u]+cost < distance[v]. Every examined edge is reported.
//  3. Move u from the frontier to the visited set.
//  4. u == end ⇒ StateDoneFound.
//  5. Empty frontier, or minimal frontier distance +Inf ⇒ StateDoneUnreachable.
//  6. Otherwise pick the next node by nearest-value scan and set current.
//
// Returns ErrInvalidState unless the engine is in StateExpanding. If more than |V|
// expansions would occur (impossible for a consistent run) the engine moves to
// StateDoneUnreachable and the error wraps ErrAlgorithmExhausted.
func (e *Engine) Step() (StepReport, error) {
	if e.state != StateExpanding {
		return StepReport{Expanded: core.NoNode, Next: core.NoNode},
			fmt.Errorf("%w: Step in state %s", ErrInvalidState, e.state)
	}

	u := e.current
	rep := StepReport{Index: e.steps + 1, Expanded: u, Next: core.NoNode}

	// Safety bound: each expansion finalizes a distinct node, so neither condition
	// can hold unless the run state was corrupted.
	if e.steps >= e.n || e.visited[u] {
		e.state = StateDoneUnreachable
		rep.Expanded = core.NoNode
		rep.Terminal = true
		rep.Exhausted = true

		return rep, fmt.Errorf("%w: %d expansions over %d nodes (current %d)",
			ErrAlgorithmExhausted, e.steps, e.n, u)
	}

	// 2) Relax.
	relaxed, err := e.relax(u)
	if err != nil {
		return rep, err
	}
	rep.Relaxed = relaxed

	// 3) Finalize u.
	e.finalize(u)
	e.steps++

	// 4) Target reached.
	if u == e.end {
		e.state = StateDoneFound
		rep.Terminal = true
		rep.Found = true

		return rep, nil
	}

	// 5-6) Choose the next node or stop.
	next, ok := e.selectNext()
	if !ok {
		e.state = StateDoneUnreachable
		rep.Terminal = true

		return rep, nil
	}
	e.current = next
	rep.Next = next
	rep.HasNext = true

	return rep, nil
}

// relax examines each edge leaving u and lowers tentative distances where possible.
// Costs are read from the graph on every call; nothing is cached.
func (e *Engine) relax(u core.NodeID) ([]RelaxedEdge, error) {
	edges, err := e.g.OutgoingEdges(u)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: outgoing edges of %d: %w", u, err)
	}
	if e.cfg.marking {
		e.g.ClearRelaxed()
	}

	out := make([]RelaxedEdge, 0, len(edges))
	for _, edge := range edges {
		re := RelaxedEdge{
			Edge:      edge.ID,
			From:      u,
			To:        edge.To,
			Cost:      edge.Cost,
			Candidate: e.dist[u] + edge.Cost,
		}

		// Heads added after Initialize are outside the run and never improve.
		if int(edge.To) < e.n && re.Candidate < e.dist[edge.To] {
			e.dist[edge.To] = re.Candidate
			e.prev[edge.To] = u
			e.via[edge.To] = edge.ID
			re.Improved = true
		}

		if e.cfg.marking {
			if err := e.g.MarkRelaxed(edge.ID, re.Improved); err != nil {
				return nil, err
			}
		}
		out = append(out, re)
	}

	return out, nil
}

// finalize moves u from the frontier to the visited set, keeping frontier order.
func (e *Engine) finalize(u core.NodeID) {
	e.visited[u] = true
	for i, v := range e.unvisited {
		if v == u {
			e.unvisited = append(e.unvisited[:i], e.unvisited[i+1:]...)
			break
		}
	}
}

// selectNext returns the frontier node to expand next, or false when the frontier
// is empty or every remaining node is at +Inf.
//
// The minimum is found first; then the frontier is scanned in order and the first
// node whose distance is numerically closest to that minimum is chosen.
func (e *Engine) selectNext() (core.NodeID, bool) {
	if len(e.unvisited) == 0 {
		return core.NoNode, false
	}

	lowest := math.Inf(1)
	for _, v := range e.unvisited {
		if e.dist[v] < lowest {
			lowest = e.dist[v]
		}
	}
	if math.IsInf(lowest, 1) {
		return core.NoNode, false
	}

	best, bestGap := core.NoNode, math.Inf(1)
	for _, v := range e.unvisited {
		if gap := math.Abs(e.dist[v] - lowest); gap < bestGap {
			best, bestGap = v, gap
		}
	}

	return best, best != core.NoNode
}
