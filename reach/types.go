package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Sentinel errors for reachability walks.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("reach: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Reachable.
type Option func(*Options)

// Options holds parameters and callbacks of one walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. A non-nil error aborts the walk.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterEdge skips an outgoing edge when it returns false.
	FilterEdge func(e core.Edge) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering and a
// no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.NodeID, int) error { return nil },
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; returning an error stops the walk.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reaches reports whether id was visited.
func (r *Result) Reaches(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// Unreached returns, in ID order, every node of g the walk did not visit.
func (r *Result) Unreached(g *core.Graph) []core.NodeID {
	var out []core.NodeID
	for i := 0; i < g.NodeCount(); i++ {
		if id := core.NodeID(i); !r.Reaches(id) {
			out = append(out, id)
		}
	}

	return out
}

// PathTo reconstructs the fewest-hops path from the start node to dest.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reaches(dest) {
		return nil, fmt.Errorf("reach: no path to %d", dest)
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
