// Package driver runs a dijkstra.Engine over time for a viewer.
//
// The engine is passive: it does one expansion per Step and knows nothing about
// pacing or display. A Driver owns one engine and its graph, calls Step on a
// schedule set by a Pacer, forwards reports to dijkstra.Observers, keeps the
// per-node "Cost: …" annotations and their fading, and publishes a Frame to
// every FrameSink after each step. When the run finds the end node the driver
// reconstructs the path and marks it on the graph.
//
// A Driver serializes its own methods, so one run may be stepped from several
// goroutines (an HTTP handler and a background ticker, say) without corrupting
// the engine.
package driver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/reach"
)

// DefaultFadeSteps keeps a new annotation highlighted for the step that wrote it.
const DefaultFadeSteps = 1

// Options configures a Driver. The zero value is usable.
type Options struct {
	// FadeSteps is how many steps an annotation stays fresh. <= 0 means DefaultFadeSteps.
	FadeSteps int

	// Pacer paces Run. nil means NoDelay.
	Pacer Pacer

	// Logger receives driver diagnostics. nil means log.Default().
	Logger *log.Logger

	// RunID tags frames and log lines. Empty means a new UUID.
	RunID string

	// Observers receive every StepReport and the FinalResult.
	Observers []dijkstra.Observer

	// Sinks receive every Frame.
	Sinks []FrameSink
}

// comment is a node annotation and the step that wrote it.
type comment struct {
	text string
	step int
}

// Driver owns one run.
type Driver struct {
	mu sync.Mutex

	id     string
	g      *core.Graph
	layout *geometry.Layout
	engine *dijkstra.Engine
	opts   Options
	logger *log.Logger

	start, end core.NodeID
	reachable  *reach.Result
	comments   map[core.NodeID]comment
	path       []core.NodeID
	result     *dijkstra.FinalResult
}

// New creates a driver over g and initializes a run from start to end.
// layout may be nil when positions are irrelevant.
func New(g *core.Graph, layout *geometry.Layout, start, end core.NodeID, opts Options) (*Driver, error) {
	engine, err := dijkstra.New(g)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		layout = geometry.NewLayout()
	}
	if opts.FadeSteps <= 0 {
		opts.FadeSteps = DefaultFadeSteps
	}
	if opts.Pacer == nil {
		opts.Pacer = NoDelay()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	d := &Driver{
		id:     opts.RunID,
		g:      g,
		layout: layout,
		engine: engine,
		opts:   opts,
		logger: opts.Logger.With("run", opts.RunID),
	}
	if err := d.restart(start, end); err != nil {
		return nil, err
	}

	return d, nil
}

// ID returns the run ID.
func (d *Driver) ID() string { return d.id }

// Graph returns the graph the run reads.
func (d *Driver) Graph() *core.Graph { return d.g }

// Layout returns node positions.
func (d *Driver) Layout() *geometry.Layout { return d.layout }

// Restart re-initializes the run for a new (start, end) pair.
func (d *Driver) Restart(start, end core.NodeID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.restart(start, end)
}

// Reset restarts the run with the current endpoints.
func (d *Driver) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.restart(d.start, d.end)
}

func (d *Driver) restart(start, end core.NodeID) error {
	if err := d.engine.Initialize(start, end); err != nil {
		return err
	}
	r, err := reach.Reachable(d.g, start)
	if err != nil {
		return err
	}

	d.start, d.end = start, end
	d.reachable = r
	d.comments = make(map[core.NodeID]comment)
	d.path = nil
	d.result = nil

	if !r.Reaches(end) {
		d.logger.Warn("end is not reachable from start", "start", start, "end", end)
	}
	d.logger.Debug("run initialized", "start", start, "end", end, "nodes", d.g.NodeCount())

	return nil
}

// Step performs one expansion, notifies observers and sinks, and returns the
// report together with the resulting frame.
//
// Returns dijkstra.ErrInvalidState once the run is done. A tripped safety bound
// finishes the run and returns an error wrapping dijkstra.ErrAlgorithmExhausted.
func (d *Driver) Step(ctx context.Context) (dijkstra.StepReport, Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.step(ctx)
}

func (d *Driver) step(ctx context.Context) (dijkstra.StepReport, Frame, error) {
	rep, stepErr := d.engine.Step()
	if stepErr != nil && !rep.Exhausted {
		return rep, Frame{}, stepErr
	}

	for _, re := range rep.Improved() {
		d.comments[re.To] = comment{text: fmt.Sprintf("Cost: %.1f", re.Candidate), step: rep.Index}
	}
	for _, o := range d.opts.Observers {
		o.OnStep(rep)
	}

	if rep.Terminal {
		if err := d.finish(rep.Exhausted); err != nil {
			return rep, Frame{}, err
		}
	}

	frame := d.snapshot()
	if err := d.publish(ctx, frame); err != nil {
		return rep, frame, err
	}

	return rep, frame, stepErr
}

// finish records the final result, marks the path, and notifies observers.
func (d *Driver) finish(exhausted bool) error {
	res, err := d.engine.RunToCompletion()
	if err != nil {
		return err
	}
	res.Exhausted = res.Exhausted || exhausted
	d.result = &res

	d.g.ClearRelaxed()
	if res.Found {
		path, err := dijkstra.Reconstruct(d.engine, d.end)
		if err != nil {
			return err
		}
		edges, err := dijkstra.ReconstructEdges(d.engine, d.end)
		if err != nil {
			return err
		}
		if err := dijkstra.MarkPath(d.g, edges); err != nil {
			return err
		}
		d.path = path
	}

	for _, o := range d.opts.Observers {
		o.OnFinish(res)
	}

	return nil
}

func (d *Driver) publish(ctx context.Context, f Frame) error {
	for _, s := range d.opts.Sinks {
		if err := s.Publish(ctx, f); err != nil {
			return fmt.Errorf("driver: publish frame %d: %w", f.Step, err)
		}
	}
	return nil
}

// Run publishes the current frame, then steps until the run is done, waiting on
// the Pacer before every step. Cancelling ctx stops stepping and returns ctx.Err().
func (d *Driver) Run(ctx context.Context) (dijkstra.FinalResult, error) {
	d.mu.Lock()
	first := d.snapshot()
	err := d.publish(ctx, first)
	d.mu.Unlock()
	if err != nil {
		return d.currentResult(), err
	}

	for !d.Done() {
		if err := d.opts.Pacer.Wait(ctx); err != nil {
			d.logger.Debug("run interrupted", "err", err)
			return d.currentResult(), err
		}
		if _, _, err := d.Step(ctx); err != nil {
			return d.currentResult(), err
		}
	}

	return d.currentResult(), nil
}

// Finish steps to the end without pacing.
func (d *Driver) Finish(ctx context.Context) (dijkstra.FinalResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for d.result == nil {
		if err := ctx.Err(); err != nil {
			return d.resultLocked(), err
		}
		if _, _, err := d.step(ctx); err != nil {
			return d.resultLocked(), err
		}
	}

	return *d.result, nil
}

// Done reports whether the run has terminated.
func (d *Driver) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.result != nil
}

// Result returns the final result once the run is done.
func (d *Driver) Result() (dijkstra.FinalResult, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.result == nil {
		return dijkstra.FinalResult{}, false
	}
	return *d.result, true
}

// Path returns the node path once found.
func (d *Driver) Path() ([]core.NodeID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == nil {
		return nil, false
	}
	out := make([]core.NodeID, len(d.path))
	copy(out, d.path)

	return out, true
}

// PathEdges returns the edges of the found path in start→end order.
func (d *Driver) PathEdges() ([]core.EdgeID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return dijkstra.ReconstructEdges(d.engine, d.end)
}

// Move repositions node id and updates the cost of its incident edges. The
// engine reads the new costs on its next relaxation.
func (d *Driver) Move(id core.NodeID, p geometry.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return geometry.Move(d.g, d.layout, id, p)
}

// Snapshot returns the current frame.
func (d *Driver) Snapshot() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.snapshot()
}

func (d *Driver) currentResult() dijkstra.FinalResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.resultLocked()
}

func (d *Driver) resultLocked() dijkstra.FinalResult {
	if d.result != nil {
		return *d.result
	}
	dist, _ := d.engine.DistanceOf(d.end)
	if !d.engine.Visited(d.end) {
		dist = math.Inf(1)
	}

	return dijkstra.FinalResult{State: d.engine.State(), Steps: d.engine.Steps(), Distance: dist}
}

func (d *Driver) snapshot() Frame {
	e := d.engine
	steps := e.Steps()
	dist := e.Distances()

	f := Frame{
		RunID:   d.id,
		Step:    steps,
		State:   e.State().String(),
		Start:   d.start,
		End:     d.end,
		Current: e.Current(),
		Done:    d.result != nil,
	}
	if f.Done {
		f.Current = core.NoNode
		f.Found = d.result.Found
		f.Exhausted = d.result.Exhausted
		if f.Found {
			f.Cost = d.result.Distance
			f.Path = append([]core.NodeID(nil), d.path...)
		}
	}

	for _, n := range d.g.Nodes() {
		p, _ := d.layout.Position(n.ID)
		v := NodeView{
			ID:          n.ID,
			Role:        n.Role.String(),
			X:           p.X,
			Y:           p.Y,
			Predecessor: core.NoNode,
			Visited:     e.Visited(n.ID),
			Current:     !f.Done && n.ID == f.Current,
			Reachable:   d.reachable.Reaches(n.ID),
		}
		if int(n.ID) < len(dist) && !math.IsInf(dist[n.ID], 1) {
			dv := dist[n.ID]
			v.Distance = &dv
		}
		if pred, err := e.PredecessorOf(n.ID); err == nil {
			v.Predecessor = pred
		}
		if c, ok := d.comments[n.ID]; ok {
			v.Comment = c.text
			v.CommentFresh = steps-c.step < d.opts.FadeSteps
		}
		f.Nodes = append(f.Nodes, v)
	}

	for _, edge := range d.g.Edges() {
		f.Edges = append(f.Edges, EdgeView{
			ID:       edge.ID,
			From:     edge.From,
			To:       edge.To,
			Cost:     edge.Cost,
			Relaxed:  edge.Relaxed,
			Improved: edge.Improved,
			OnPath:   edge.OnPath,
		})
	}

	return f
}

// IsExhausted reports whether err came from the engine's safety bound.
func IsExhausted(err error) bool { return errors.Is(err, dijkstra.ErrAlgorithmExhausted) }
