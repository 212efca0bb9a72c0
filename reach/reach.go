package reach

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// queueItem pairs a node with its depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// Reachable walks g breadth-first from start along outgoing edges.
// The partial Result is returned together with any error.
func Reachable(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueHeads(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueHeads follows each outgoing edge of item that passes the filter and
// depth limit, enqueuing unseen heads.
func (w *walker) enqueueHeads(item queueItem) error {
	edges, err := w.graph.OutgoingEdges(item.id)
	if err != nil {
		return fmt.Errorf("reach: outgoing edges of %d: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		// Heads created after the walk started are outside its snapshot.
		if int(e.To) >= len(w.visited) || w.visited[e.To] {
			continue
		}
		if !w.opts.FilterEdge(e) {
			continue
		}
		w.enqueue(e.To, next, item.id)
	}

	return nil
}
