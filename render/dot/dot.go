// Package dot renders driver frames as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] turns a [driver.Frame] into DOT source, colored the way the animated
// demo drew its canvas:
//
//   - start node red, end node blue, finalized nodes grey
//   - the node to be expanded next outlined in orange
//   - edges examined in the last step green (solid when they improved a distance)
//   - edges of the final path amber
//   - nodes the start cannot reach drawn dashed
//
// Node labels carry the ID and the tentative distance ("∞" when unreached);
// edge labels carry the cost.
//
// # Layout
//
// With Options.Positions the layout coordinates are pinned and rendering uses
// the neato engine, reproducing the hand-placed demo. Otherwise dot lays the
// graph out left to right.
//
// # Dependencies
//
// [RenderSVG] and [RenderPNG] use [github.com/goccy/go-graphviz] in-process.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/dijkstraviz/driver"
)

// Options configures DOT generation and rendering.
type Options struct {
	// Positions pins nodes at their layout coordinates and renders with neato.
	Positions bool

	// Comments adds fresh "Cost: …" annotations to node labels.
	Comments bool

	// Title overrides the graph label. Empty means "step N: state".
	Title string
}

const (
	colorStart   = "#e74c3c"
	colorEnd     = "#3498db"
	colorVisited = "#d5d8dc"
	colorCurrent = "#f39c12"
	colorPath    = "#f1c40f"
	colorRelaxed = "#2ecc71"
	colorImprove = "#27ae60"
	colorEdge    = "#7f8c8d"
)

// ToDOT converts a frame to DOT source. Output is deterministic for a given frame.
func ToDOT(f driver.Frame, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dijkstra {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if !opts.Positions {
		buf.WriteString("  rankdir=LR;\n")
	}
	fmt.Fprintf(&buf, "  label=%q;\n", title(f, opts))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	fmt.Fprintf(&buf, "  edge [fontname=\"Helvetica\", fontsize=10, color=%q];\n", colorEdge)
	buf.WriteString("\n")

	for _, n := range f.Nodes {
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range f.Edges {
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", e.From, e.To, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func title(f driver.Frame, opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}
	t := fmt.Sprintf("step %d: %s", f.Step, f.State)
	if f.Found {
		t += fmt.Sprintf(", cost %.1f", f.Cost)
	}
	return t
}

func nodeAttrs(n driver.NodeView, opts Options) []string {
	dist := "∞"
	if n.Distance != nil {
		dist = fmt.Sprintf("%.1f", *n.Distance)
	}
	label := fmt.Sprintf("%d\n%s", n.ID, dist)
	if opts.Comments && n.CommentFresh && n.Comment != "" {
		label += "\n" + n.Comment
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.Role {
	case "start":
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorStart), "fontcolor=white")
	case "end":
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorEnd), "fontcolor=white")
	default:
		if n.Visited {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorVisited))
		}
	}
	if !n.Reachable {
		attrs = append(attrs, `style="filled,dashed"`)
	}
	if n.Current {
		attrs = append(attrs, fmt.Sprintf("color=%q", colorCurrent), "penwidth=3")
	}
	if opts.Positions {
		// Canvas y grows downwards, Graphviz y upwards.
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", num(n.X), num(-n.Y)))
	}
	return attrs
}

func edgeAttrs(e driver.EdgeView) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%.1f", e.Cost))}
	switch {
	case e.OnPath:
		attrs = append(attrs, fmt.Sprintf("color=%q", colorPath), "penwidth=3")
	case e.Improved:
		attrs = append(attrs, fmt.Sprintf("color=%q", colorImprove), "penwidth=2")
	case e.Relaxed:
		attrs = append(attrs, fmt.Sprintf("color=%q", colorRelaxed), "style=dashed")
	}
	return attrs
}

func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG, opts)
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG, opts)
}

func render(ctx context.Context, dot string, format graphviz.Format, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	if opts.Positions {
		gv.SetLayout(graphviz.NEATO)
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
