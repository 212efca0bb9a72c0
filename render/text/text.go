// Package text renders driver frames for terminals using lipgloss.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/driver"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleStart   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleEnd     = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleCurrent = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleDone    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleFresh   = lipgloss.NewStyle().Foreground(colorGreen)
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePath    = lipgloss.NewStyle().Foreground(colorYellow)
)

// Node states shown in the State column.
const (
	stateCurrent     = "current"
	stateDone        = "done"
	stateOpen        = "open"
	stateUnreachable = "unreachable"
)

// Headers are the Table column titles.
var Headers = []string{"Node", "Role", "Distance", "Via", "State", "Note"}

// Rows returns the unstyled table cells for f, one row per node.
func Rows(f driver.Frame) [][]string {
	rows := make([][]string, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		rows = append(rows, []string{
			strconv.Itoa(int(n.ID)),
			n.Role,
			distance(n.Distance),
			via(n.Predecessor),
			nodeState(n),
			n.Comment,
		})
	}
	return rows
}

// Table renders f as a bordered table.
func Table(f driver.Frame) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(Headers...).
		Rows(Rows(f)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row < 0 || row >= len(f.Nodes) {
				return lipgloss.NewStyle()
			}
			n := f.Nodes[row]
			switch {
			case col == 1 && n.Role == core.RoleStart.String():
				return styleStart
			case col == 1 && n.Role == core.RoleEnd.String():
				return styleEnd
			case col == 5 && n.CommentFresh:
				return styleFresh
			case col == 5:
				return styleDim
			case n.Current:
				return styleCurrent
			case n.Visited:
				return styleDone
			case !n.Reachable:
				return styleDim
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// Summary is a one-line status: step, state, and the outcome once done.
func Summary(f driver.Frame) string {
	parts := []string{fmt.Sprintf("step %d", f.Step), f.State}
	switch {
	case f.Found:
		parts = append(parts, fmt.Sprintf("cost %.1f", f.Cost))
	case f.Done:
		parts = append(parts, fmt.Sprintf("node %d unreachable from %d", f.End, f.Start))
	case f.Current != core.NoNode:
		parts = append(parts, fmt.Sprintf("next %d", f.Current))
	}
	if f.Exhausted {
		parts = append(parts, "safety bound tripped")
	}

	return styleTitle.Render(strings.Join(parts, styleDim.Render(" · ")))
}

// PathLine renders the found path as "0 → 1 → 3 → 5", or a dim placeholder.
func PathLine(f driver.Frame) string {
	if len(f.Path) == 0 {
		return styleDim.Render("no path")
	}
	ids := make([]string, len(f.Path))
	for i, id := range f.Path {
		ids[i] = strconv.Itoa(int(id))
	}
	return stylePath.Render(strings.Join(ids, " → "))
}

func distance(d *float64) string {
	if d == nil {
		return "∞"
	}
	return strconv.FormatFloat(*d, 'f', 1, 64)
}

func via(p core.NodeID) string {
	if p == core.NoNode {
		return "-"
	}
	return strconv.Itoa(int(p))
}

func nodeState(n driver.NodeView) string {
	switch {
	case n.Current:
		return stateCurrent
	case n.Visited:
		return stateDone
	case !n.Reachable:
		return stateUnreachable
	default:
		return stateOpen
	}
}
