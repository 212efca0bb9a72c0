package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/gridgraph"
)

// builtins maps names to scenario factories. Each call returns a fresh value.
var builtins = map[string]func() (*Scenario, error){
	"demo": func() (*Scenario, error) {
		s := &Scenario{
			Name:        "demo",
			Description: "Seven nodes, ten directed edges, costs equal to arrow length.",
			Start:       0,
			End:         5,
			Nodes:       append([]geometry.Point(nil), builder.DemoPoints...),
		}
		for _, e := range builder.DemoEdges {
			s.Edges = append(s.Edges, EdgeSpec{From: e[0], To: e[1]})
		}
		return s, nil
	},
	"demo-weighted": func() (*Scenario, error) {
		return fromBuilder("demo-weighted", "The demo topology with fixed weights.", 0, 5, builder.DemoWeighted())
	},
	"grid": func() (*Scenario, error) {
		return fromBuilder("grid", "A 4x4 grid, corner to corner.", 0, 15, builder.Grid(4, 4))
	},
	"chain": func() (*Scenario, error) {
		return fromBuilder("chain", "Six nodes in a line.", 0, 5, builder.Chain(6))
	},
	"terrain": func() (*Scenario, error) {
		gg, err := terrainGrid()
		if err != nil {
			return nil, err
		}
		start, _ := gg.NodeIndex(0, 0)
		end, _ := gg.NodeIndex(gg.Width-1, gg.Height-1)
		return fromBuilder("terrain", "A walled map with heavy ground; corner to corner.", start, end, builder.Terrain(gg))
	},
}

// terrainMap is the "terrain" builtin: '#' walls, digits heavier ground.
var terrainMap = []string{
	"..#.....",
	".##.33#.",
	"....3.#.",
	"#.###.#.",
	"......9.",
}

func terrainGrid() (*gridgraph.GridGraph, error) {
	values, err := gridgraph.Parse(terrainMap)
	if err != nil {
		return nil, err
	}
	return gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
}

// Builtin returns the named builtin scenario.
func Builtin(name string) (*Scenario, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: no builtin named %q", ErrInvalidScenario, name)
	}

	return fn()
}

// Names lists the builtin scenarios in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Resolve returns the builtin called ref, or loads ref as a file path.
func Resolve(ref string) (*Scenario, error) {
	if _, ok := builtins[ref]; ok {
		return Builtin(ref)
	}

	return Load(ref)
}

func fromBuilder(name, desc string, start, end int, con builder.Constructor) (*Scenario, error) {
	g, l, err := builder.BuildGraph(nil, con)
	if err != nil {
		return nil, err
	}
	s := FromGraph(name, g, l, core.NodeID(start), core.NodeID(end))
	s.Description = desc

	return s, nil
}
