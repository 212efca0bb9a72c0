package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/dijkstraviz/gridgraph"
)

func mustGrid(t *testing.T, opts gridgraph.GridOptions, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	values, err := gridgraph.Parse(rows)
	if err != nil {
		t.Fatalf("Parse(%q): %v", rows, err)
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		t.Fatalf("NewGridGraph: %v", err)
	}
	return gg
}

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

func TestNewGridGraph_CopiesInput(t *testing.T) {
	values := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	values[0][0] = 0
	if !gg.Open(0, 0) {
		t.Error("mutating the input changed the grid")
	}
}

func TestParse(t *testing.T) {
	got, err := gridgraph.Parse([]string{".#", "39"})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1, 0}, {3, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v; want %v", got, want)
	}

	if _, err := gridgraph.Parse([]string{"..", ".x"}); !errors.Is(err, gridgraph.ErrBadCell) {
		t.Errorf("Parse with 'x' error = %v; want ErrBadCell", err)
	}
}

func TestInBoundsAndOpen(t *testing.T) {
	gg := mustGrid(t, gridgraph.DefaultGridOptions(), "#.#", ".#.")

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.Open(0, 0) || !gg.Open(1, 0) || gg.Open(5, 5) {
		t.Error("Open disagrees with the map")
	}
}

func TestLandThreshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 2
	gg := mustGrid(t, opts, ".3")

	cells := gg.Cells()
	if len(cells) != 1 || cells[0] != (gridgraph.Cell{X: 1, Y: 0, Value: 3}) {
		t.Errorf("Cells = %v; want only (1,0)", cells)
	}
}

func TestCellsAndNodeIndex(t *testing.T) {
	gg := mustGrid(t, gridgraph.DefaultGridOptions(), ".3", "#.")

	want := []gridgraph.Cell{{X: 0, Y: 0, Value: 1}, {X: 1, Y: 0, Value: 3}, {X: 1, Y: 1, Value: 1}}
	if got := gg.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells = %v; want %v", got, want)
	}
	for i, c := range want {
		idx, ok := gg.NodeIndex(c.X, c.Y)
		if !ok || idx != i {
			t.Errorf("NodeIndex(%d,%d) = %d,%v; want %d,true", c.X, c.Y, idx, ok, i)
		}
	}
	if _, ok := gg.NodeIndex(0, 1); ok {
		t.Error("NodeIndex of a wall should fail")
	}
}

func TestNeighbors(t *testing.T) {
	conn4 := mustGrid(t, gridgraph.DefaultGridOptions(), "...", "...", "...")
	if n := len(conn4.Neighbors(1, 1)); n != 4 {
		t.Errorf("Conn4 centre has %d neighbours; want 4", n)
	}
	if n := len(conn4.Neighbors(0, 0)); n != 2 {
		t.Errorf("Conn4 corner has %d neighbours; want 2", n)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	conn8 := mustGrid(t, opts, "...", ".#.", "...")
	got := conn8.Neighbors(0, 0)
	want := []gridgraph.Cell{{X: 1, Y: 0, Value: 1}, {X: 0, Y: 1, Value: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Conn8 corner beside a wall: %v; want %v", got, want)
	}
	if n := len(conn8.Neighbors(1, 0)); n != 4 {
		t.Errorf("Conn8 top edge has %d neighbours; want 4", n)
	}
}

func TestComponents(t *testing.T) {
	gg := mustGrid(t, gridgraph.DefaultGridOptions(), "..#..")

	if got := gg.Labels(); !reflect.DeepEqual(got, []int{0, 0, -1, 1, 1}) {
		t.Errorf("Labels = %v", got)
	}
	if !gg.SameComponent(0, 0, 1, 0) {
		t.Error("(0,0) and (1,0) are adjacent")
	}
	if gg.SameComponent(0, 0, 4, 0) {
		t.Error("the wall separates (0,0) from (4,0)")
	}
	if gg.SameComponent(0, 0, 2, 0) {
		t.Error("a wall is on no island")
	}

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	diag := mustGrid(t, opts, ".#", "#.")
	if len(diag.ConnectedComponents()) != 1 {
		t.Error("Conn8 joins diagonal cells")
	}
}
