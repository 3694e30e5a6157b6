package beeclust

// movement classifies what a directed bee's target cell allows.
type movement int

const (
	movementWallHit movement = iota
	movementBeeMeet
	movementMove
	movementWait
)

// runTick performs one simulation step over g using heat for wait-time
// lookups, mutating g in place and returning the number of bees that
// transitioned to MOVE this tick.
//
// Traversal is row-major with a `done` mask: a cell
// that a move has just written into is marked done so the single pass
// never reactivates a bee twice in the same tick. This is a deliberate
// contract, not an optimization — double-buffering the grid instead would
// change which bees get to act this tick.
func runTick(g *Grid, heat *HeatField, p Params, rng RNG) int {
	rows, cols := g.Shape()
	done := make([]bool, rows*cols)
	moved := 0

	at := func(r, c int) bool { return done[r*cols+c] }
	mark := func(r, c int) { done[r*cols+c] = true }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if at(r, c) {
				continue
			}
			v := g.At(r, c)

			switch {
			case v == CellUnknown:
				v = randomDirection(rng)
				g.Set(r, c, v)
				fallthrough
			case v >= CellNorth && v <= CellWest:
				v = stepDirectedBee(g, heat, p, rng, r, c, v, &moved, mark)
			case v < CellUnknown:
				g.Set(r, c, v+1)
			default:
				// CellEmpty, CellWall, CellHeater, CellCooler: no action.
			}
			mark(r, c)
		}
	}

	return moved
}

// stepDirectedBee executes the per-bee decision for a directed bee
// currently at (r, c) holding direction v. It returns the (possibly
// unchanged) resulting cell value purely for symmetry with the caller's
// switch; the grid has already been mutated by the time it returns.
func stepDirectedBee(g *Grid, heat *HeatField, p Params, rng RNG, r, c int, v Cell, moved *int, mark func(int, int)) Cell {
	// 2a. Maybe change direction.
	if rng.Float64() < p.PChangeDir {
		v = otherDirection(rng, v)
		g.Set(r, c, v)
	}

	// 2b. Compute target.
	dr, dc := v.Direction()
	nr, nc := r+dr, c+dc

	// 2c. Classify movement.
	var mv movement
	switch {
	case !g.InBounds(nr, nc):
		mv = movementWallHit
	case g.At(nr, nc).IsBee():
		mv = movementBeeMeet
	case g.At(nr, nc).IsEmpty():
		mv = movementMove
	default:
		// wall, heater, or cooler cell
		mv = movementWallHit
	}

	// 2d. Resolve.
	switch mv {
	case movementWallHit:
		if rng.Float64() < p.PWall {
			mv = movementWait
		} else {
			v = oppositeDirection(v)
			g.Set(r, c, v)
		}
	case movementBeeMeet:
		if rng.Float64() < p.PMeet {
			mv = movementWait
		}
		// else: bee stays in place, direction unchanged.
	case movementMove:
		g.Set(nr, nc, v)
		g.Set(r, c, CellEmpty)
		*moved++
		mark(nr, nc)
		return CellEmpty
	}

	if mv == movementWait {
		wait := waitDuration(heat.At(r, c), p)
		v = -wait
		g.Set(r, c, v)
	}

	return v
}

// waitDuration computes how long a bee waits: max(min_wait,
// floor(k_stay / (1 + |heat - T_ideal|))).
func waitDuration(cellHeat float64, p Params) Cell {
	delta := cellHeat - p.TIdeal
	if delta < 0 {
		delta = -delta
	}
	wait := int(p.KStay / (1 + delta))
	if wait < p.MinWait {
		wait = p.MinWait
	}
	return Cell(wait)
}
