// File: marks.go
// Role: transient observation flags on edges (Relaxed, Improved, OnPath).
//
// These flags mirror the original highlight/select state of the animated demo.
// Nothing algorithmic reads them.
package core

import "fmt"

// MarkRelaxed flags edge id as examined in the current step, and as improving
// when improved is true.
func (g *Graph) MarkRelaxed(id EdgeID, improved bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdge(id) {
		return fmt.Errorf("%w: edge %d", ErrInvalidReference, id)
	}
	g.edges[id].Relaxed = true
	g.edges[id].Improved = improved

	return nil
}

// ClearRelaxed drops the Relaxed and Improved flags from every edge.
func (g *Graph) ClearRelaxed() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.edges {
		g.edges[i].Relaxed = false
		g.edges[i].Improved = false
	}
}

// MarkOnPath flags edge id as part of the final path.
func (g *Graph) MarkOnPath(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdge(id) {
		return fmt.Errorf("%w: edge %d", ErrInvalidReference, id)
	}
	g.edges[id].OnPath = true

	return nil
}

// ClearMarks drops every observation flag from every edge.
func (g *Graph) ClearMarks() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.edges {
		g.edges[i].Relaxed = false
		g.edges[i].Improved = false
		g.edges[i].OnPath = false
	}
}
