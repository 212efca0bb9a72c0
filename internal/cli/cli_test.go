package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/scenario"
	"github.com/katalvlaran/dijkstraviz/server"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	out, logs, err := execute(t, "run", "-s", "demo-weighted")
	require.NoError(t, err)

	assert.Contains(t, out, "0 → 1 → 6 → 5")
	assert.Contains(t, out, "1310.0")
	assert.NotContains(t, out, "fewer edges", "the cheapest route is also a fewest-edge route")
	assert.Contains(t, logs, "expanded")
	assert.NotContains(t, logs, "relaxed edge", "per-edge lines are debug only")
}

func TestRunCommandVerboseQuiet(t *testing.T) {
	_, logs, err := execute(t, "run", "-s", "chain", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "relaxed edge")

	_, logs, err = execute(t, "run", "-s", "chain", "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, logs, "expanded")
}

func TestRunCommandUnreachable(t *testing.T) {
	out, _, err := execute(t, "run", "-s", "demo-weighted", "--start", "4", "--end", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "end node 0 is not reachable from 4")
	assert.Contains(t, out, "unreachable from 4: 0, 2")
	assert.Contains(t, out, "node 0 cannot be reached from 4")
}

func TestRunCommandVerify(t *testing.T) {
	for _, args := range [][]string{
		{"run", "-q", "--verify", "-s", "demo-weighted"},
		{"run", "-q", "--verify", "-s", "demo-weighted", "--start", "4", "--end", "0"},
		{"run", "-q", "--verify", "-s", "terrain"},
	} {
		out, _, err := execute(t, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "distances match Floyd–Warshall", args)
	}
}

func TestRunCommandErrors(t *testing.T) {
	_, _, err := execute(t, "run", "-s", "no-such-scenario.yaml")
	require.Error(t, err)

	_, _, err = execute(t, "run", "-s", "demo", "--end", "42")
	require.Error(t, err)

	_, _, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo", "--format", "toml")
	require.NoError(t, err)

	sc, err := scenario.Parse([]byte(out), scenario.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	assert.Len(t, sc.Nodes, 7)

	out, _, err = execute(t, "demo", "--list")
	require.NoError(t, err)
	for _, name := range scenario.Names() {
		assert.Contains(t, out, name)
	}

	_, _, err = execute(t, "demo", "--format", "json")
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)
}

func TestDemoListKeepsLongNamesOnOneLine(t *testing.T) {
	out, _, err := execute(t, "demo", "--list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(scenario.Names()))
	for i, name := range scenario.Names() {
		assert.True(t, strings.HasPrefix(lines[i], name+" "), "line %q", lines[i])
	}
}

func TestPrintKeyValueLongKey(t *testing.T) {
	var buf bytes.Buffer
	printKeyValue(&buf, "a-key-longer-than-twelve", "v")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "a-key-longer-than-twelve")

	buf.Reset()
	printKeyValue(&buf, "steps", "6")
	assert.Contains(t, buf.String(), "steps        ")
}

func TestDemoRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weighted.yaml")
	out, _, err := execute(t, "demo", "-s", "demo-weighted", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, _, err = execute(t, "run", "-s", path, "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "0 → 1 → 6 → 5")
}

func TestRenderCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	out, _, err := execute(t, "render", "-s", "chain", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 7 files for 6 steps")

	for i := 0; i <= 6; i++ {
		_, err := os.Stat(filepath.Join(dir, "step-00"+string(rune('0'+i))+".dot"))
		assert.NoError(t, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "step-006.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "done-found")
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	quiet := newLogger(io.Discard, log.InfoLevel)
	ctx, cancel := context.WithCancel(withLogger(context.Background(), quiet))
	srv := &http.Server{Handler: server.New(server.WithLogger(quiet)), ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func animateModel(t *testing.T) AnimateModel {
	t.Helper()
	g, l, err := builder.BuildGraph(nil, builder.Chain(3))
	require.NoError(t, err)
	d, err := driver.New(g, l, 0, 2, driver.Options{Logger: newLogger(io.Discard, log.InfoLevel)})
	require.NoError(t, err)

	return NewAnimateModel(context.Background(), d, "chain", time.Millisecond)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m AnimateModel, msg tea.Msg) (AnimateModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AnimateModel), cmd
}

func TestAnimateModel(t *testing.T) {
	m := animateModel(t)
	require.NotNil(t, m.Init())
	assert.Equal(t, 0, m.Frame.Step)

	m, _ = update(m, key("n"))
	assert.Equal(t, 1, m.Frame.Step)

	m, _ = update(m, key(" "))
	assert.True(t, m.Paused)
	assert.Contains(t, m.View(), "paused")

	m, cmd := update(m, tickMsg(time.Now()))
	assert.Equal(t, 1, m.Frame.Step, "paused ticks do not step")
	assert.NotNil(t, cmd, "ticking continues while paused")

	m, _ = update(m, key(" "))
	m, _ = update(m, tickMsg(time.Now()))
	m, _ = update(m, tickMsg(time.Now()))
	assert.True(t, m.Frame.Done)
	assert.True(t, m.Frame.Found)
	assert.Contains(t, m.View(), "0 → 1 → 2")

	// Stepping a finished run changes nothing.
	m, _ = update(m, key("n"))
	assert.Equal(t, 3, m.Frame.Step)
	assert.NoError(t, m.Err)

	m, _ = update(m, key("r"))
	assert.Equal(t, 0, m.Frame.Step)
	assert.False(t, m.Frame.Done)

	_, cmd = update(m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAnimateModelView(t *testing.T) {
	view := animateModel(t).View()
	assert.Contains(t, view, "chain")
	assert.Contains(t, view, "space pause")
	assert.Contains(t, view, "no path")
	assert.NotContains(t, view, "paused")
}
