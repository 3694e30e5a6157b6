package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"beeclust"
)

const pixelScale = 8

// game implements ebiten.Game, rendering the heat field as a color
// gradient with walls, sources, and bees overlaid.
type game struct {
	sim           *beeclust.Simulation
	cfg           *config
	framesPerTick int
	frame         int
	tick          int
}

func newGUICmd(cfg *config) *cobra.Command {
	var framesPerTick int

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Launch an ebiten window visualizing the heat field and bees",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(cfg.seed))
			grid := generateGrid(cfg.size, cfg.bees, cfg.heaters, cfg.coolers, cfg.walls, rng)

			sim, err := beeclust.New(grid, cfg.params(), beeclust.NewRNG(cfg.seed))
			if err != nil {
				return err
			}

			g := &game{sim: sim, cfg: cfg, framesPerTick: framesPerTick}
			rows, cols := sim.Shape()
			ebiten.SetWindowSize(cols*pixelScale, rows*pixelScale)
			ebiten.SetWindowTitle(fmt.Sprintf("BeeClust | %dx%d | bees=%d", rows, cols, len(sim.Bees())))
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().IntVar(&framesPerTick, "frames-per-tick", 4, "ebiten frames per simulation tick (lower is faster)")
	return cmd
}

func (g *game) Update() error {
	g.frame++
	if g.frame%g.framesPerTick != 0 {
		return nil
	}
	g.sim.Tick()
	g.tick++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	grid := g.sim.Grid()
	heat := g.sim.Heatmap()
	rows, cols := grid.Shape()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := grid.At(r, c)
			var col color.Color
			switch {
			case v.IsWall():
				col = colornames.Dimgray
			case v.IsSource(beeclust.CellHeater):
				col = colornames.Orangered
			case v.IsSource(beeclust.CellCooler):
				col = colornames.Deepskyblue
			case v.IsBee():
				col = colornames.Gold
			default:
				col = heatColor(heat.At(r, c), g.cfg.tCooler, g.cfg.tHeater)
			}
			fillCell(screen, r, c, col)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick=%d bees=%d", g.tick, len(g.sim.Bees())), 4, 4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.sim.Shape()
	return cols * pixelScale, rows * pixelScale
}

func fillCell(screen *ebiten.Image, r, c int, col color.Color) {
	for dy := 0; dy < pixelScale; dy++ {
		for dx := 0; dx < pixelScale; dx++ {
			screen.Set(c*pixelScale+dx, r*pixelScale+dy, col)
		}
	}
}

// heatColor interpolates between a cool and a hot named color based on
// where temp falls between tCooler and tHeater, clamped to [0, 1]. NaN
// (wall) temperatures are handled by the caller before reaching here.
func heatColor(temp, tCooler, tHeater float64) color.Color {
	span := tHeater - tCooler
	frac := 0.5
	if span > 0 {
		frac = (temp - tCooler) / span
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	cold := colornames.Midnightblue
	hot := colornames.Crimson
	return lerpColor(cold, hot, frac)
}

func lerpColor(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	lerp := func(x, y uint32) uint8 {
		return uint8((float64(x)*(1-t) + float64(y)*t) / 257)
	}
	return color.RGBA{
		R: lerp(ar, br),
		G: lerp(ag, bg),
		B: lerp(ab, bb),
		A: lerp(aa, ba),
	}
}
