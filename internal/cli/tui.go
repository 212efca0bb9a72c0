package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/render/text"
)

var (
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiPausedStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// tickMsg advances the animation.
type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// AnimateModel is the bubbletea model behind the animate command: one
// expansion per tick, with pause, single step, and restart.
type AnimateModel struct {
	ctx      context.Context
	d        *driver.Driver
	title    string
	interval time.Duration

	Frame  driver.Frame
	Paused bool
	Err    error
}

// NewAnimateModel wraps d. interval <= 0 falls back to 500ms.
func NewAnimateModel(ctx context.Context, d *driver.Driver, title string, interval time.Duration) AnimateModel {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return AnimateModel{
		ctx:      ctx,
		d:        d,
		title:    title,
		interval: interval,
		Frame:    d.Snapshot(),
	}
}

func (m AnimateModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m AnimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.Paused = !m.Paused
		case "n", "right":
			m = m.advance()
		case "r":
			if err := m.d.Reset(); err != nil {
				m.Err = err
				return m, nil
			}
			m.Err = nil
			m.Frame = m.d.Snapshot()
		}
	case tickMsg:
		if !m.Paused && !m.Frame.Done {
			m = m.advance()
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// advance runs one step. Stepping a finished run is a no-op.
func (m AnimateModel) advance() AnimateModel {
	if m.Frame.Done {
		return m
	}
	_, f, err := m.d.Step(m.ctx)
	switch {
	case errors.Is(err, dijkstra.ErrInvalidState):
		m.Frame = m.d.Snapshot()
	case err != nil:
		m.Err = err
		m.Frame = m.d.Snapshot()
	default:
		m.Frame = f
	}
	return m
}

func (m AnimateModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	if m.Paused {
		b.WriteString("  " + tuiPausedStyle.Render("paused"))
	}
	b.WriteString("\n")
	b.WriteString(text.Summary(m.Frame))
	b.WriteString("\n\n")
	b.WriteString(text.Table(m.Frame))
	b.WriteString("\n")
	b.WriteString(text.PathLine(m.Frame))
	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(tuiErrorStyle.Render(fmt.Sprintf("error: %v", m.Err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("space pause · n step · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}
