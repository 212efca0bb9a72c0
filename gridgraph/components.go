package gridgraph

// ConnectedComponents finds the islands of open cells under gg.Conn.
// Components are listed in order of their first cell (row-major), and each
// holds row-major cell indices in BFS order; convert with Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.Open(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, c := range gg.Neighbors(ux, uy) {
					vi := gg.index(c.X, c.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Labels returns, per row-major cell index, the index of its component in
// ConnectedComponents, or -1 for walls.
func (gg *GridGraph) Labels() []int {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = c
		}
	}
	return labels
}

// SameComponent reports whether open cells a and b lie on the same island.
func (gg *GridGraph) SameComponent(ax, ay, bx, by int) bool {
	if !gg.Open(ax, ay) || !gg.Open(bx, by) {
		return false
	}
	labels := gg.Labels()
	return labels[gg.index(ax, ay)] == labels[gg.index(bx, by)]
}
