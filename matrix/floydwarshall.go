// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) over a core.Graph, with a
//     deterministic k → i → j loop order.
//   - An independent oracle for the step-wise engine: Compare reports every
//     node whose engine distance disagrees with the closure.
//
// Contract:
//   - Distance matrices are square; +Inf means "no path"; the diagonal starts at 0.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstraviz/core"
)

const opFloydWarshall = "FloydWarshall"

// FromGraph builds the direct-cost matrix of g: 0 on the diagonal, the cheapest
// parallel edge i→j off it, +Inf where no edge exists. Self-loops are ignored.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("FromGraph: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		k := int(e.From)*n + int(e.To)
		if e.Cost < d.data[k] {
			d.data[k] = e.Cost
		}
	}

	return d, nil
}

// floydWarshallInPlace closes d under path composition.
// +Inf entries are skipped so no Inf+(-x) arithmetic happens.
// Time: O(n³); extra space O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// Returns ErrNonSquare for a non-square m and ErrNegativeCycle when some
// diagonal entry ends below zero.
func FloydWarshall(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, m.r, m.c, ErrNonSquare)
	}
	floydWarshallInPlace(m)
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+i] < 0 {
			return fmt.Errorf("%s: through node %d: %w", opFloydWarshall, i, ErrNegativeCycle)
		}
	}

	return nil
}

// AllPairs is FromGraph followed by FloydWarshall.
func AllPairs(g *core.Graph) (*Dense, error) {
	d, err := FromGraph(g)
	if err != nil {
		return nil, err
	}
	if err := FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}

// Mismatch is a node whose checked distance differs from the closure.
type Mismatch struct {
	Node core.NodeID
	Got  float64
	Want float64
}

// Compare checks dist, indexed by node ID, against row start of the closure d.
// NaN entries in dist are skipped; +Inf must match +Inf exactly; finite values
// must agree within eps.
func Compare(d *Dense, start core.NodeID, dist []float64, eps float64) ([]Mismatch, error) {
	want, err := d.Row(int(start))
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}
	if len(dist) > len(want) {
		return nil, fmt.Errorf("Compare: %d distances for %d nodes: %w", len(dist), len(want), ErrOutOfRange)
	}

	var out []Mismatch
	for i, got := range dist {
		w := want[i]
		switch {
		case math.IsNaN(got):
			continue
		case math.IsInf(got, 1) || math.IsInf(w, 1):
			if got != w {
				out = append(out, Mismatch{Node: core.NodeID(i), Got: got, Want: w})
			}
		case math.Abs(got-w) > eps:
			out = append(out, Mismatch{Node: core.NodeID(i), Got: got, Want: w})
		}
	}

	return out, nil
}
