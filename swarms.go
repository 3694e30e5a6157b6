package beeclust

// offsets4 lists the four von-Neumann neighbor offsets used for swarm
// connectivity. Unlike the 8-connected heat BFS, swarms only connect
// through shared edges, not corners.
var offsets4 = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// computeSwarms partitions every bee cell in g into maximal 4-connected
// components via BFS from each unvisited bee cell. Neither outer nor
// inner ordering is contractually specified; callers that need a
// canonical order should sort.
func computeSwarms(g *Grid) [][]Point {
	rows, cols := g.Shape()
	visited := make([]bool, rows*cols)
	idx := func(r, c int) int { return r*cols + c }

	var swarms [][]Point
	var queue []Point

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if visited[idx(r, c)] || !g.At(r, c).IsBee() {
				continue
			}

			queue = queue[:0]
			queue = append(queue, Point{r, c})
			visited[idx(r, c)] = true
			swarm := []Point{{r, c}}

			for head := 0; head < len(queue); head++ {
				p := queue[head]
				for _, off := range offsets4 {
					nr, nc := p.Row+off[0], p.Col+off[1]
					if !g.InBounds(nr, nc) || visited[idx(nr, nc)] {
						continue
					}
					if !g.At(nr, nc).IsBee() {
						continue
					}
					visited[idx(nr, nc)] = true
					swarm = append(swarm, Point{nr, nc})
					queue = append(queue, Point{nr, nc})
				}
			}

			swarms = append(swarms, swarm)
		}
	}

	return swarms
}
