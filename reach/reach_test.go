package reach_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/reach"
)

func TestReachable_Errors(t *testing.T) {
	_, err := reach.Reachable(nil, 0)
	require.ErrorIs(t, err, reach.ErrGraphNil)

	g := core.NewGraph()
	_, err = reach.Reachable(g, 0)
	require.ErrorIs(t, err, reach.ErrStartNotFound)

	g.AddNode()
	_, err = reach.Reachable(g, 0, reach.WithMaxDepth(-1))
	require.ErrorIs(t, err, reach.ErrOptionViolation)
}

func TestReachable_Demo(t *testing.T) {
	g, _, err := builder.BuildGraph(nil, builder.Demo())
	require.NoError(t, err)

	res, err := reach.Reachable(g, 0)
	require.NoError(t, err)
	// 0→1, 0→2 first; then 1→3, 1→6; 2→4; then 3→5.
	require.Equal(t, []core.NodeID{0, 1, 2, 3, 6, 4, 5}, res.Order)
	require.Equal(t, 2, res.Depth[6])
	require.Equal(t, 3, res.Depth[5])
	require.Empty(t, res.Unreached(g))

	path, err := res.PathTo(5)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 3, 5}, path)

	// From 4 only 6, 5, 3, 1 are reachable: 0 and 2 are not.
	res, err = reach.Reachable(g, 4)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 2}, res.Unreached(g))
	_, err = res.PathTo(0)
	require.Error(t, err)
}

func TestReachable_DirectionMatters(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(), g.AddNode()
	_, _ = g.AddEdge(b, a, 1)

	res, err := reach.Reachable(g, a)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{a}, res.Order)
	require.False(t, res.Reaches(b))
}

func TestReachable_MaxDepthAndFilter(t *testing.T) {
	g, _, err := builder.BuildGraph(nil, builder.Chain(4))
	require.NoError(t, err)

	res, err := reach.Reachable(g, 0, reach.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2}, res.Order)

	res, err = reach.Reachable(g, 0, reach.WithFilterEdge(func(e core.Edge) bool { return e.To != 2 }))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1}, res.Order)
}

func TestReachable_HookAndContext(t *testing.T) {
	g, _, err := builder.BuildGraph(nil, builder.Chain(3))
	require.NoError(t, err)

	stop := errors.New("stop")
	res, err := reach.Reachable(g, 0, reach.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []core.NodeID{0, 1}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reach.Reachable(g, 0, reach.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// The engine declares a target unreachable exactly when the walk misses it.
func TestReachable_AgreesWithEngine(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, _, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(10, 0.15),
		)
		require.NoError(t, err)

		res, err := reach.Reachable(g, 0)
		require.NoError(t, err)

		for end := 0; end < g.NodeCount(); end++ {
			e, err := dijkstra.New(g, dijkstra.WithMarking(false))
			require.NoError(t, err)
			require.NoError(t, e.Initialize(0, core.NodeID(end)))
			out, err := e.RunToCompletion()
			require.NoError(t, err)
			require.Equal(t, res.Reaches(core.NodeID(end)), out.Found, "seed %d end %d", seed, end)
		}
	}
}
