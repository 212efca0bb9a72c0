package text_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/render/text"
)

func demo(t *testing.T, end core.NodeID) *driver.Driver {
	t.Helper()
	g, l, err := builder.BuildGraph(nil, builder.DemoWeighted())
	require.NoError(t, err)
	d, err := driver.New(g, l, 0, end, driver.Options{Logger: log.NewWithOptions(&bytes.Buffer{}, log.Options{})})
	require.NoError(t, err)

	return d
}

func TestRows(t *testing.T) {
	d := demo(t, 5)
	_, f, err := d.Step(context.Background())
	require.NoError(t, err)

	rows := text.Rows(f)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"0", "start", "0.0", "-", "done", ""}, rows[0])
	assert.Equal(t, []string{"1", "normal", "50.0", "0", "open", "Cost: 50.0"}, rows[1])
	assert.Equal(t, []string{"2", "normal", "5.0", "0", "current", "Cost: 5.0"}, rows[2])
	assert.Equal(t, []string{"5", "end", "∞", "-", "open", ""}, rows[5])
}

func TestTable(t *testing.T) {
	d := demo(t, 5)
	out := text.Table(d.Snapshot())
	for _, h := range text.Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "∞")
}

func TestSummaryAndPath(t *testing.T) {
	d := demo(t, 5)
	f := d.Snapshot()
	assert.Contains(t, text.Summary(f), "step 0")
	assert.Contains(t, text.Summary(f), "next 0")
	assert.Contains(t, text.PathLine(f), "no path")

	_, err := d.Finish(context.Background())
	require.NoError(t, err)
	f = d.Snapshot()
	assert.Contains(t, text.Summary(f), "cost 1310.0")
	assert.Contains(t, text.PathLine(f), "0 → 1 → 6 → 5")
}

func TestSummaryUnreachable(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(), g.AddNode()
	d, err := driver.New(g, nil, a, b, driver.Options{Logger: log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.ErrorLevel})})
	require.NoError(t, err)
	_, err = d.Finish(context.Background())
	require.NoError(t, err)

	f := d.Snapshot()
	assert.Contains(t, text.Summary(f), "node 1 unreachable from 0")
	rows := text.Rows(f)
	assert.Equal(t, "unreachable", rows[1][4])
}
