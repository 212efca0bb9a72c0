package dijkstra

import (
	"errors"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Sentinel errors returned by the engine and the path reconstructor.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidReference indicates a node ID absent from the graph.
	// It is the same value as core.ErrInvalidReference so callers can match either.
	ErrInvalidReference = core.ErrInvalidReference

	// ErrInvalidState indicates an operation called in the wrong state-machine phase,
	// e.g. Step before Initialize, or Reconstruct for a node that was never finalized.
	ErrInvalidState = errors.New("dijkstra: invalid state")

	// ErrAlgorithmExhausted indicates the internal consistency guard tripped:
	// more expansions than nodes, or a predecessor chain that does not reach start.
	ErrAlgorithmExhausted = errors.New("dijkstra: algorithm exhausted")
)

// State is the phase of an Engine.
type State int

const (
	// StateReady means constructed but not yet initialized.
	StateReady State = iota
	// StateExpanding means Step may be called.
	StateExpanding
	// StateDoneFound means the end node was expanded.
	StateDoneFound
	// StateDoneUnreachable means the frontier ran dry (or the guard tripped) before end.
	StateDoneUnreachable
)

// String returns a short label for logs.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateExpanding:
		return "expanding"
	case StateDoneFound:
		return "done-found"
	case StateDoneUnreachable:
		return "done-unreachable"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is one of the done states.
func (s State) Terminal() bool {
	return s == StateDoneFound || s == StateDoneUnreachable
}

// RelaxedEdge records one edge examined during a step.
type RelaxedEdge struct {
	Edge      core.EdgeID // examined edge
	From      core.NodeID // the expanded node
	To        core.NodeID // head of the edge
	Cost      float64     // cost read at relaxation time
	Candidate float64     // distance[From] + Cost
	Improved  bool        // true iff Candidate lowered distance[To]
}

// StepReport is the delta produced by one Step.
//
// Relaxed lists every examined edge, improving or not; this drives the
// "edges examined" animation, distinct from "edges that improved a distance".
type StepReport struct {
	// Index is the 1-based step number within the run.
	Index int

	// Expanded is the node finalized by this step (core.NoNode when the guard tripped).
	Expanded core.NodeID

	// Relaxed lists the examined edges in insertion order.
	Relaxed []RelaxedEdge

	// Next is the node the following Step will expand; core.NoNode when Terminal.
	Next core.NodeID

	// HasNext is true iff Next is meaningful.
	HasNext bool

	// Terminal is true when this step moved the engine into a done state.
	Terminal bool

	// Found is true when the run terminated by expanding the end node.
	Found bool

	// Exhausted is true when the safety bound forced termination.
	Exhausted bool
}

// Improved returns the subset of Relaxed that lowered a distance.
func (r StepReport) Improved() []RelaxedEdge {
	var out []RelaxedEdge
	for _, re := range r.Relaxed {
		if re.Improved {
			out = append(out, re)
		}
	}

	return out
}

// FinalResult summarizes a finished (or stopped) run.
type FinalResult struct {
	State     State   // terminal state reached
	Found     bool    // State == StateDoneFound
	Steps     int     // number of Step calls that expanded a node
	Distance  float64 // distance to end (+Inf when not found)
	Exhausted bool    // the safety bound tripped
}

// Option configures an Engine.
type Option func(*config)

// config holds engine knobs resolved from Options.
type config struct {
	marking bool
}

// defaultConfig returns the defaults: marking on.
func defaultConfig() config {
	return config{marking: true}
}

// WithMarking controls whether the engine writes observation state into the graph:
// start/end roles on Initialize, Relaxed/Improved edge flags on every Step.
// Engines sharing one graph concurrently should pass false.
// Default: true.
func WithMarking(on bool) Option {
	return func(c *config) {
		c.marking = on
	}
}
