package beeclust

import "math"

// HeatField holds, for every grid cell, a finite temperature, or the NaN
// sentinel for wall cells. It is recomputed only on an explicit
// recalculation and is not affected by bee motion.
type HeatField struct {
	rows, cols int
	temp       []float64
}

func newHeatField(rows, cols int) *HeatField {
	return &HeatField{rows: rows, cols: cols, temp: make([]float64, rows*cols)}
}

func (h *HeatField) idx(r, c int) int { return r*h.cols + c }

// At returns the temperature at (r, c): the NaN sentinel for a wall cell,
// otherwise a finite value.
func (h *HeatField) At(r, c int) float64 {
	return h.temp[h.idx(r, c)]
}

// Shape returns (rows, cols).
func (h *HeatField) Shape() (int, int) {
	return h.rows, h.cols
}

// computeHeatField combines heater and cooler distance fields into a
// per-cell temperature per the formula:
//
//	wall             -> NaN
//	Dh == 0          -> T_heater
//	Dc == 0          -> T_cooler (only checked once Dh != 0)
//	otherwise        -> T_env + k_temp * (max(0, heating) - max(0, cooling))
//
// where heating = (1/Dh)*|T_heater-T_env| if Dh > 0 else 0, and similarly
// for cooling with Dc and T_cooler. An unreachable source (Dh or Dc == -1)
// contributes 0 to its term, per the "1/(-1) contributes 0 after the
// clamp" convention.
func computeHeatField(g *Grid, p Params) *HeatField {
	rows, cols := g.Shape()
	dh := computeDistanceField(g, CellHeater)
	dc := computeDistanceField(g, CellCooler)

	h := newHeatField(rows, cols)
	thk := math.Abs(p.THeater - p.TEnv)
	tck := math.Abs(p.TCooler - p.TEnv)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := h.idx(r, c)
			switch {
			case g.At(r, c) == CellWall:
				h.temp[i] = math.NaN()
			case dh.At(r, c) == 0:
				h.temp[i] = p.THeater
			case dc.At(r, c) == 0:
				h.temp[i] = p.TCooler
			default:
				heating := 0.0
				if hd := dh.At(r, c); hd > 0 {
					heating = (1 / float64(hd)) * thk
				}
				cooling := 0.0
				if cd := dc.At(r, c); cd > 0 {
					cooling = (1 / float64(cd)) * tck
				}
				delta := math.Max(0, heating) - math.Max(0, cooling)
				h.temp[i] = p.TEnv + p.KTemp*delta
			}
		}
	}
	return h
}
