package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

// ExampleEngine_Step drives the weighted demo graph one expansion at a time.
func ExampleEngine_Step() {
	g, _, _ := builder.BuildGraph(nil, builder.DemoWeighted())
	e, _ := dijkstra.New(g)
	_ = e.Initialize(0, 5)

	for e.State() == dijkstra.StateExpanding {
		rep, _ := e.Step()
		fmt.Printf("step %d: expand %d, %d improved\n", rep.Index, rep.Expanded, len(rep.Improved()))
	}

	path, _ := dijkstra.Reconstruct(e, 5)
	d, _ := e.DistanceOf(5)
	fmt.Println(e.State(), path, d)
	// Output:
	// step 1: expand 0, 2 improved
	// step 2: expand 2, 1 improved
	// step 3: expand 1, 2 improved
	// step 4: expand 3, 1 improved
	// step 5: expand 4, 0 improved
	// step 6: expand 6, 1 improved
	// step 7: expand 5, 0 improved
	// done-found [0 1 6 5] 1310
}
