package dot_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/render/dot"
)

func chainDriver(t *testing.T, opts driver.Options) *driver.Driver {
	t.Helper()
	g, l, err := builder.BuildGraph(nil, builder.Chain(3))
	require.NoError(t, err)
	opts.Logger = log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	d, err := driver.New(g, l, 0, 2, opts)
	require.NoError(t, err)

	return d
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestToDOT_Golden(t *testing.T) {
	d := chainDriver(t, driver.Options{})
	_, f, err := d.Step(context.Background())
	require.NoError(t, err)
	golden(t).Assert(t, "chain_step1", []byte(dot.ToDOT(f, dot.Options{Positions: true, Comments: true})))

	_, err = d.Finish(context.Background())
	require.NoError(t, err)
	golden(t).Assert(t, "chain_done", []byte(dot.ToDOT(d.Snapshot(), dot.Options{})))
}

func TestToDOT_DemoColors(t *testing.T) {
	g, l, err := builder.BuildGraph(nil, builder.Demo())
	require.NoError(t, err)
	g.AddNode()
	d, err := driver.New(g, l, 0, 5, driver.Options{Logger: log.NewWithOptions(&bytes.Buffer{}, log.Options{})})
	require.NoError(t, err)
	_, err = d.Finish(context.Background())
	require.NoError(t, err)

	src := dot.ToDOT(d.Snapshot(), dot.Options{Title: "demo"})
	assert.Contains(t, src, `label="demo";`)
	assert.Equal(t, 3, strings.Count(src, `color="#f1c40f"`), "three path edges")
	assert.Contains(t, src, `n7 [label="7\n∞", style="filled,dashed"];`)
	assert.Contains(t, src, `n0 -> n1 [label="120.0", color="#f1c40f", penwidth=3];`)
	assert.NotContains(t, src, "pos=")
}

func TestFrameWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	w, err := dot.NewFrameWriter(dir, false, dot.Options{})
	require.NoError(t, err)

	d := chainDriver(t, driver.Options{Sinks: []driver.FrameSink{w}})
	_, err = d.Run(context.Background())
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "step-000.dot"),
		filepath.Join(dir, "step-001.dot"),
		filepath.Join(dir, "step-002.dot"),
		filepath.Join(dir, "step-003.dot"),
	}
	assert.Equal(t, want, w.Written())

	data, err := os.ReadFile(want[3])
	require.NoError(t, err)
	assert.Contains(t, string(data), "done-found")
}

func TestRenderSVG(t *testing.T) {
	d := chainDriver(t, driver.Options{})
	src := dot.ToDOT(d.Snapshot(), dot.Options{Positions: true})

	svg, err := dot.RenderSVG(context.Background(), src, dot.Options{Positions: true})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = dot.RenderSVG(context.Background(), "digraph {", dot.Options{})
	require.Error(t, err)
}
