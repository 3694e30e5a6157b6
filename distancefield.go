package beeclust

// offsets8 lists the eight Chebyshev neighbor offsets (cardinals first,
// then diagonals); diagonal moves count as a single hop, same as the
// cardinals.
var offsets8 = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// DistanceField holds, for every grid cell, the minimum number of
// 8-connected hops to the nearest source cell of a given kind, or -1 if
// unreachable (including the source cell's own walls, which are never
// traversed).
type DistanceField struct {
	rows, cols int
	dist       []int
}

func newDistanceField(rows, cols int) *DistanceField {
	d := make([]int, rows*cols)
	for i := range d {
		d[i] = -1
	}
	return &DistanceField{rows: rows, cols: cols, dist: d}
}

func (d *DistanceField) idx(r, c int) int { return r*d.cols + c }

// At returns the hop distance to the nearest source at (r, c): 0 for a
// source cell, a positive hop count, or -1 if unreachable.
func (d *DistanceField) At(r, c int) int {
	return d.dist[d.idx(r, c)]
}

// computeDistanceField runs a multi-source BFS over g seeded at every
// cell equal to kind, treating walls as barriers that are never enqueued
// and never updated. All other cell kinds (empty, bee, the other source
// kind) are ordinary passable cells: the metric is purely geometric and
// does not depend on occupant.
func computeDistanceField(g *Grid, kind Cell) *DistanceField {
	rows, cols := g.Shape()
	d := newDistanceField(rows, cols)

	// BFS frontier as a slice-backed queue; rows*cols is a safe upper
	// bound on ever-enqueued cells, since a cell is enqueued once when
	// first reached.
	queue := make([]Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.At(r, c) == kind {
				d.dist[d.idx(r, c)] = 0
				queue = append(queue, Point{r, c})
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		nd := d.At(p.Row, p.Col) + 1
		for _, off := range offsets8 {
			nr, nc := p.Row+off[0], p.Col+off[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if g.At(nr, nc) == CellWall {
				continue
			}
			cur := d.At(nr, nc)
			if cur < 0 || cur > nd {
				d.dist[d.idx(nr, nc)] = nd
				queue = append(queue, Point{nr, nc})
			}
		}
	}

	return d
}
