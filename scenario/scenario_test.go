package scenario_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/scenario"
)

func TestLoad_DemoYAMLMatchesBuiltin(t *testing.T) {
	fromFile, err := scenario.Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	builtin, err := scenario.Builtin("demo")
	require.NoError(t, err)
	assert.Equal(t, builtin, fromFile)

	g, l, err := fromFile.Build()
	require.NoError(t, err)
	want, _, err := builder.BuildGraph(nil, builder.Demo())
	require.NoError(t, err)
	assert.Equal(t, want.Edges(), g.Edges())
	assert.Equal(t, 7, l.Len())
}

func TestLoad_TOMLWithExplicitCost(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "triangle.toml"))
	require.NoError(t, err)
	assert.Equal(t, "triangle", s.Name)
	require.Len(t, s.Edges, 3)
	assert.Nil(t, s.Edges[0].Cost)
	require.NotNil(t, s.Edges[2].Cost)

	g, _, err := s.Build()
	require.NoError(t, err)
	edges := g.Edges()
	assert.Equal(t, 30.0, edges[0].Cost)
	assert.Equal(t, 40.0, edges[1].Cost)
	assert.Equal(t, 100.0, edges[2].Cost)

	e, err := dijkstra.New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(s.StartID(), s.EndID()))
	res, err := e.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, 70.0, res.Distance)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "typo.yaml"))
	require.Error(t, err, "unknown YAML fields are rejected")

	_, err = scenario.Load(filepath.Join("testdata", "bad_end.toml"))
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)

	_, err = scenario.Load("graph.json")
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = scenario.Parse([]byte("name = \"x\"\nstart = 0\nend = 0\nextra = 1\n[[nodes]]\nx = 0.0\ny = 0.0\n"), scenario.FormatTOML)
	require.Error(t, err, "unknown TOML keys are rejected")

	_, err = scenario.Parse([]byte("name: nan\nstart: 0\nend: 1\nnodes:\n  - {x: 0, y: 0}\n  - {x: .nan, y: 0}\nedges:\n  - {from: 0, to: 1}\n"), scenario.FormatYAML)
	require.ErrorIs(t, err, scenario.ErrInvalidScenario, "non-finite positions are rejected")

	_, err = scenario.Parse(nil, scenario.Format("xml"))
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	neg := -1.0
	cases := map[string]scenario.Scenario{
		"no nodes":      {},
		"bad start":     {Start: -1, Nodes: make([]geometry.Point, 1)},
		"dangling edge": {Nodes: make([]geometry.Point, 2), Edges: []scenario.EdgeSpec{{From: 0, To: 2}}},
		"negative cost": {Nodes: make([]geometry.Point, 2), Edges: []scenario.EdgeSpec{{From: 0, To: 1, Cost: &neg}}},
		"NaN position":  {Nodes: []geometry.Point{{}, {X: math.NaN()}}, Edges: []scenario.EdgeSpec{{From: 0, To: 1}}},
		"Inf position":  {Nodes: []geometry.Point{{Y: math.Inf(-1)}, {}}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, s.Validate(), scenario.ErrInvalidScenario)
			_, _, err := s.Build()
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []scenario.Format{scenario.FormatYAML, scenario.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			s, err := scenario.Builtin("demo-weighted")
			require.NoError(t, err)

			data, err := scenario.Encode(s, format)
			require.NoError(t, err)
			back, err := scenario.Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"chain", "demo", "demo-weighted", "grid", "terrain"}, scenario.Names())
	for _, name := range scenario.Names() {
		s, err := scenario.Builtin(name)
		require.NoError(t, err, name)
		require.NoError(t, s.Validate(), name)
		assert.Equal(t, name, s.Name)
	}

	_, err := scenario.Builtin("nope")
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)

	// Builtins are independent values.
	a, _ := scenario.Builtin("demo")
	a.Nodes[0].X = -1
	b, _ := scenario.Builtin("demo")
	assert.Equal(t, 50.0, b.Nodes[0].X)
}

func TestResolve(t *testing.T) {
	s, err := scenario.Resolve("grid")
	require.NoError(t, err)
	assert.Equal(t, 16, len(s.Nodes))

	s, err = scenario.Resolve(filepath.Join("testdata", "triangle.toml"))
	require.NoError(t, err)
	assert.Equal(t, "triangle", s.Name)
}

func TestFromGraph(t *testing.T) {
	g, l, err := builder.BuildGraph(nil, builder.Chain(3))
	require.NoError(t, err)
	s := scenario.FromGraph("c", g, l, 0, core.NodeID(2))
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 2)
	require.NotNil(t, s.Edges[1].Cost)
	assert.Equal(t, 60.0, *s.Edges[1].Cost)
	assert.Equal(t, 2, s.End)
}

func TestTerrainBuiltin(t *testing.T) {
	s, err := scenario.Builtin("terrain")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Start)
	assert.Equal(t, 29, s.End, "bottom-right is the last of 30 open cells")

	g, _, err := s.Build()
	require.NoError(t, err)
	require.Equal(t, 30, g.NodeCount())

	e, err := dijkstra.New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(s.StartID(), s.EndID()))
	res, err := e.RunToCompletion()
	require.NoError(t, err)
	assert.True(t, res.Found)
}
