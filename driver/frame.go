package driver

import (
	"context"

	"github.com/katalvlaran/dijkstraviz/core"
)

// NodeView is the renderable state of one node.
type NodeView struct {
	ID   core.NodeID `json:"id"`
	Role string      `json:"role"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`

	// Distance is nil while the node is unreached.
	Distance    *float64    `json:"distance"`
	Predecessor core.NodeID `json:"predecessor"`
	Visited     bool        `json:"visited"`
	Current     bool        `json:"current"`

	// Reachable is false when no directed path leads here from the start.
	Reachable bool `json:"reachable"`

	// Comment is the last "Cost: …" annotation; CommentFresh is true for
	// FadeSteps steps after it was written.
	Comment      string `json:"comment,omitempty"`
	CommentFresh bool   `json:"commentFresh,omitempty"`
}

// EdgeView is the renderable state of one edge.
type EdgeView struct {
	ID       core.EdgeID `json:"id"`
	From     core.NodeID `json:"from"`
	To       core.NodeID `json:"to"`
	Cost     float64     `json:"cost"`
	Relaxed  bool        `json:"relaxed"`
	Improved bool        `json:"improved"`
	OnPath   bool        `json:"onPath"`
}

// Frame is a self-contained snapshot of a run, suitable for any renderer.
type Frame struct {
	RunID   string      `json:"runId"`
	Step    int         `json:"step"`
	State   string      `json:"state"`
	Start   core.NodeID `json:"start"`
	End     core.NodeID `json:"end"`
	Current core.NodeID `json:"current"`

	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`

	// Path is set once the run found the end node.
	Path []core.NodeID `json:"path,omitempty"`

	Done      bool    `json:"done"`
	Found     bool    `json:"found"`
	Cost      float64 `json:"cost,omitempty"`
	Exhausted bool    `json:"exhausted,omitempty"`
}

// Node returns the view of id, if present.
func (f Frame) Node(id core.NodeID) (NodeView, bool) {
	if id < 0 || int(id) >= len(f.Nodes) {
		return NodeView{}, false
	}
	return f.Nodes[id], true
}

// FrameSink receives every frame a driver produces, in order.
type FrameSink interface {
	Publish(ctx context.Context, f Frame) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(ctx context.Context, f Frame) error

// Publish calls fn.
func (fn FrameSinkFunc) Publish(ctx context.Context, f Frame) error { return fn(ctx, f) }

// NullSink drops frames.
type NullSink struct{}

// Publish does nothing.
func (NullSink) Publish(context.Context, Frame) error { return nil }

// Collector keeps every published frame in memory.
type Collector struct {
	Frames []Frame
}

// Publish appends f.
func (c *Collector) Publish(_ context.Context, f Frame) error {
	c.Frames = append(c.Frames, f)
	return nil
}

// Last returns the most recent frame.
func (c *Collector) Last() (Frame, bool) {
	if len(c.Frames) == 0 {
		return Frame{}, false
	}
	return c.Frames[len(c.Frames)-1], true
}
