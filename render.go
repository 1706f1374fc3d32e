package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridcaster/internal/raycast"
)

var (
	minimapWallColor  = color.RGBA{140, 140, 140, 220}
	minimapFloorColor = color.RGBA{40, 40, 40, 200}
	minimapPlayer     = color.RGBA{255, 0, 0, 255}
	minimapHeading    = color.RGBA{255, 255, 0, 200}
)

// Draw presents the last rendered frame and the optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.view.frame
	screen.WritePixels(frame.Pix)

	if g.showMinimap {
		g.drawMinimap(screen)
	}

	if *debugFlag {
		snap := g.view.stats.Snapshot()
		p := g.view.pose
		backend := backendCPU
		if g.view.gpu != nil {
			backend = backendOpenCL
		}
		debugMsg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nFrame: %.2f ms (avg %.2f, worst %.2f)\nBackend: %s  workers: %d\nPos: %.2f, %.2f  Dir: %.2f, %.2f",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			msec(snap.LastFrame), msec(snap.AvgFrame), msec(snap.Slowest),
			backend, g.view.renderer.Workers,
			p.PosX, p.PosY, p.DirX, p.DirY)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the frame size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.view.frame.Width, g.view.frame.Height
}

// minimapCellSize shrinks cells so the minimap fits in minimapMaxSide.
func minimapCellSize(gridW, gridH int) int {
	side := gridW
	if gridH > side {
		side = gridH
	}
	cell := minimapCell
	if side*cell > minimapMaxSide {
		cell = minimapMaxSide / side
	}
	if cell < 1 {
		cell = 1
	}
	return cell
}

// buildMinimap draws the static map once.
func buildMinimap(grid raycast.Grid) *ebiten.Image {
	cell := minimapCellSize(grid.Width(), grid.Height())
	img := ebiten.NewImage(grid.Width()*cell, grid.Height()*cell)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := minimapFloorColor
			if grid.IsWall(x, y) {
				c = minimapWallColor
			}
			vector.DrawFilledRect(img, float32(x*cell), float32(y*cell), float32(cell), float32(cell), c, false)
		}
	}
	return img
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	grid := g.view.grid
	if g.minimap == nil {
		g.minimap = buildMinimap(grid)
	}
	cell := float32(minimapCellSize(grid.Width(), grid.Height()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(minimapMargin, minimapMargin)
	screen.DrawImage(g.minimap, op)

	p := g.view.pose
	px := minimapMargin + float32(p.PosX)*cell
	py := minimapMargin + float32(p.PosY)*cell
	vector.StrokeLine(screen, px, py, px+float32(p.DirX)*cell*2, py+float32(p.DirY)*cell*2, 1, minimapHeading, false)
	vector.DrawFilledCircle(screen, px, py, cell/2+1, minimapPlayer, false)
}

func msec(d time.Duration) float64 {
	return d.Seconds() * 1000
}
