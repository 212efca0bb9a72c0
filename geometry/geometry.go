// Package geometry owns the planar positions of nodes and derives edge costs from
// them.
//
// Positions are display data, so they live here rather than in package core. When a
// node moves, Move rewrites the cost of every incident edge through
// core.Graph.SetCost; the engine picks the new values up on its next relaxation.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Sentinel errors for layout operations.
var (
	// ErrNilLayout indicates a nil *Layout or *core.Graph argument.
	ErrNilLayout = errors.New("geometry: nil layout or graph")

	// ErrMissingPosition indicates an edge endpoint without a position.
	ErrMissingPosition = errors.New("geometry: node has no position")
)

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Layout maps nodes to positions.
type Layout struct {
	points map[core.NodeID]Point
}

// NewLayout returns a layout where points[i] is the position of NodeID i.
func NewLayout(points ...Point) *Layout {
	l := &Layout{points: make(map[core.NodeID]Point, len(points))}
	for i, p := range points {
		l.points[core.NodeID(i)] = p
	}

	return l
}

// Set places id at p.
func (l *Layout) Set(id core.NodeID, p Point) {
	l.points[id] = p
}

// Position returns the position of id and whether it is known.
func (l *Layout) Position(id core.NodeID) (Point, bool) {
	p, ok := l.points[id]
	return p, ok
}

// Len returns the number of positioned nodes.
func (l *Layout) Len() int { return len(l.points) }

// IDs returns the positioned nodes in ascending order.
func (l *Layout) IDs() []core.NodeID {
	ids := make([]core.NodeID, 0, len(l.points))
	for id := range l.points {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Bounds returns the bottom-left and top-right corners of the layout's bounding box.
// An empty layout yields two zero points.
func (l *Layout) Bounds() (lo, hi Point) {
	first := true
	for _, p := range l.points {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}

	return lo, hi
}

// EdgeCost returns the Euclidean distance between from and to.
func (l *Layout) EdgeCost(from, to core.NodeID) (float64, error) {
	a, ok := l.points[from]
	if !ok {
		return 0, fmt.Errorf("%w: node %d", ErrMissingPosition, from)
	}
	b, ok := l.points[to]
	if !ok {
		return 0, fmt.Errorf("%w: node %d", ErrMissingPosition, to)
	}

	return Distance(a, b), nil
}

// ApplyCosts sets every edge cost of g to the distance between its endpoints.
func ApplyCosts(g *core.Graph, l *Layout) error {
	if g == nil || l == nil {
		return ErrNilLayout
	}
	for _, e := range g.Edges() {
		if err := applyEdge(g, l, e); err != nil {
			return err
		}
	}

	return nil
}

// Move places id at p and recomputes the cost of every edge touching id.
// Edges not incident to id keep their cost.
func Move(g *core.Graph, l *Layout, id core.NodeID, p Point) error {
	if g == nil || l == nil {
		return ErrNilLayout
	}
	if !g.HasNode(id) {
		return fmt.Errorf("%w: node %d", core.ErrInvalidReference, id)
	}
	l.Set(id, p)

	for _, e := range g.Edges() {
		if e.From != id && e.To != id {
			continue
		}
		if err := applyEdge(g, l, e); err != nil {
			return err
		}
	}

	return nil
}

// applyEdge recomputes the cost of a single edge.
func applyEdge(g *core.Graph, l *Layout, e core.Edge) error {
	c, err := l.EdgeCost(e.From, e.To)
	if err != nil {
		return fmt.Errorf("edge %d: %w", e.ID, err)
	}

	return g.SetCost(e.ID, c)
}
