package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Engine runs Dijkstra's algorithm over a core.Graph one expansion at a time.
//
// An Engine holds exactly one run state. Concurrent calls on the same Engine are
// not supported; callers serialize access. Independent Engines over the same graph
// may run in parallel when created WithMarking(false).
type Engine struct {
	g   *core.Graph
	cfg config

	state   State
	start   core.NodeID
	end     core.NodeID
	current core.NodeID
	steps   int

	// n is |V| snapshotted at Initialize; nodes added later do not join the run.
	n         int
	dist      []float64     // NodeID → best known distance from start
	prev      []core.NodeID // NodeID → predecessor on the best known path
	via       []core.EdgeID // NodeID → edge that produced prev
	visited   []bool        // NodeID → finalized
	unvisited []core.NodeID // frontier, kept in ascending NodeID order
}

// New returns an Engine in StateReady over g.
// Returns ErrNilGraph if g is nil.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		g:       g,
		cfg:     cfg,
		state:   StateReady,
		start:   core.NoNode,
		end:     core.NoNode,
		current: core.NoNode,
	}, nil
}

// Initialize resets the run state for (start, end) and moves to StateExpanding.
//
// Implementation:
//  1. Validate both IDs (ErrInvalidReference).
//  2. Snapshot |V|; distance[start]=0, every other distance +Inf; no predecessors;
//     visited empty; frontier = all nodes in ID order.
//  3. With marking on, reset roles and edge flags, then tag start/end on the graph.
//
// Initialize may be called from any state to restart the run.
func (e *Engine) Initialize(start, end core.NodeID) error {
	// 1) Validate endpoints.
	if !e.g.HasNode(start) {
		return fmt.Errorf("%w: start node %d", ErrInvalidReference, start)
	}
	if !e.g.HasNode(end) {
		return fmt.Errorf("%w: end node %d", ErrInvalidReference, end)
	}

	// 2) Reset run state.
	n := e.g.NodeCount()
	e.n = n
	e.dist = make([]float64, n)
	e.prev = make([]core.NodeID, n)
	e.via = make([]core.EdgeID, n)
	e.visited = make([]bool, n)
	e.unvisited = make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		e.dist[i] = math.Inf(1)
		e.prev[i] = core.NoNode
		e.via[i] = -1
		e.unvisited[i] = core.NodeID(i)
	}
	e.dist[start] = 0
	e.start, e.end, e.current = start, end, start
	e.steps = 0
	e.state = StateExpanding

	// 3) Designate roles for the renderer.
	if e.cfg.marking {
		e.g.ResetRoles()
		e.g.ClearMarks()
		if err := e.g.SetRole(start, core.RoleStart); err != nil {
			return err
		}
		if err := e.g.SetRole(end, core.RoleEnd); err != nil {
			return err
		}
	}

	return nil
}

// RunToCompletion calls Step until the engine reaches a terminal state.
//
// Returns ErrInvalidState before Initialize. Calling it on an already finished
// engine returns the final result again. A tripped safety bound yields the
// (terminal) result together with an error wrapping ErrAlgorithmExhausted.
func (e *Engine) RunToCompletion() (FinalResult, error) {
	if e.state == StateReady {
		return FinalResult{State: e.state, Distance: math.Inf(1)},
			fmt.Errorf("%w: RunToCompletion before Initialize", ErrInvalidState)
	}

	exhausted := false
	for e.state == StateExpanding {
		rep, err := e.Step()
		if err != nil {
			return e.result(rep.Exhausted), err
		}
		exhausted = exhausted || rep.Exhausted
	}

	return e.result(exhausted), nil
}

// result builds a FinalResult from the current state.
func (e *Engine) result(exhausted bool) FinalResult {
	d := math.Inf(1)
	if e.end.Valid() && int(e.end) < e.n {
		d = e.dist[e.end]
	}

	return FinalResult{
		State:     e.state,
		Found:     e.state == StateDoneFound,
		Steps:     e.steps,
		Distance:  d,
		Exhausted: exhausted,
	}
}

// DistanceOf returns the best known distance from start to id (+Inf if unreached).
// Returns ErrInvalidState before Initialize and ErrInvalidReference for unknown IDs.
func (e *Engine) DistanceOf(id core.NodeID) (float64, error) {
	if err := e.checkQuery(id); err != nil {
		return math.Inf(1), err
	}
	if int(id) >= e.n {
		return math.Inf(1), nil
	}

	return e.dist[id], nil
}

// PredecessorOf returns the previous hop on the best known path to id, or
// core.NoNode when id is the start or unreached.
// Returns ErrInvalidState before Initialize and ErrInvalidReference for unknown IDs.
func (e *Engine) PredecessorOf(id core.NodeID) (core.NodeID, error) {
	if err := e.checkQuery(id); err != nil {
		return core.NoNode, err
	}
	if int(id) >= e.n {
		return core.NoNode, nil
	}

	return e.prev[id], nil
}

// checkQuery validates the phase and the ID for read-only accessors.
func (e *Engine) checkQuery(id core.NodeID) error {
	if e.state == StateReady {
		return fmt.Errorf("%w: query before Initialize", ErrInvalidState)
	}
	if !e.g.HasNode(id) {
		return fmt.Errorf("%w: node %d", ErrInvalidReference, id)
	}

	return nil
}

// Visited reports whether id has been finalized in the current run.
func (e *Engine) Visited(id core.NodeID) bool {
	return id.Valid() && int(id) < e.n && e.visited[id]
}

// Distances returns a snapshot of all tentative distances indexed by NodeID.
// It is nil before Initialize.
func (e *Engine) Distances() []float64 {
	if e.dist == nil {
		return nil
	}
	out := make([]float64, len(e.dist))
	copy(out, e.dist)

	return out
}

// Frontier returns a snapshot of the unvisited nodes in scan order.
func (e *Engine) Frontier() []core.NodeID {
	out := make([]core.NodeID, len(e.unvisited))
	copy(out, e.unvisited)

	return out
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Start returns the start node of the current run (core.NoNode before Initialize).
func (e *Engine) Start() core.NodeID { return e.start }

// End returns the end node of the current run (core.NoNode before Initialize).
func (e *Engine) End() core.NodeID { return e.end }

// Current returns the node the next Step will expand.
func (e *Engine) Current() core.NodeID { return e.current }

// Steps returns how many nodes have been expanded so far.
func (e *Engine) Steps() int { return e.steps }

// Graph returns the graph the engine reads.
func (e *Engine) Graph() *core.Graph { return e.g }
