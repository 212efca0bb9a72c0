package gridgraph

import (
	"fmt"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// Parse reads an ASCII map into cell values: '.' → 1, '1'..'9' → 1..9, '#' → 0.
// Row lengths are checked by NewGridGraph, not here.
func Parse(rows []string) ([][]int, error) {
	out := make([][]int, len(rows))
	for y, row := range rows {
		out[y] = make([]int, 0, len(row))
		for x, ch := range row {
			switch {
			case ch == '.':
				out[y] = append(out[y], 1)
			case ch == '#':
				out[y] = append(out[y], 0)
			case ch >= '1' && ch <= '9':
				out[y] = append(out[y], int(ch-'0'))
			default:
				return nil, fmt.Errorf("%q at (%d,%d): %w", ch, x, y, ErrBadCell)
			}
		}
	}

	return out, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is in bounds and walkable.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) offsets for gg.Conn in clockwise order from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Cells returns the open cells in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Cells() []Cell {
	var out []Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Open(x, y) {
				out = append(out, Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
			}
		}
	}
	return out
}

// NodeIndex returns the position of open cell (x,y) in Cells order, which is
// the local node index builder.Terrain assigns it.
func (gg *GridGraph) NodeIndex(x, y int) (int, bool) {
	if !gg.Open(x, y) {
		return 0, false
	}
	n := 0
	for i := 0; i < gg.index(x, y); i++ {
		cx, cy := gg.Coordinate(i)
		if gg.Open(cx, cy) {
			n++
		}
	}
	return n, true
}

// Neighbors returns the open neighbours of (x,y) in NeighborOffsets order.
func (gg *GridGraph) Neighbors(x, y int) []Cell {
	var out []Cell
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.Open(nx, ny) {
			out = append(out, Cell{X: nx, Y: ny, Value: gg.CellValues[ny][nx]})
		}
	}
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
