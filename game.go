package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a viewer to ebiten's Update/Draw/Layout loop.
type Game struct {
	view *viewer

	showMinimap bool
	minimap     *ebiten.Image

	mouseLook   bool
	lastCursorX int
	cursorKnown bool
}

func newGame(v *viewer, showMinimap, mouseLook bool) *Game {
	return &Game{view: v, showMinimap: showMinimap, mouseLook: mouseLook}
}

// Update applies one tick of input and renders the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleToggles()

	c := readControls(ebiten.IsKeyPressed)
	c.MouseDX = g.mouseDelta()
	return g.view.step(c, time.Now())
}

// handleToggles processes the overlay and shading hotkeys.
func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.view.toggleFlat()
	}
}

// mouseDelta returns horizontal cursor motion since the previous tick.
func (g *Game) mouseDelta() float64 {
	if !g.mouseLook {
		return 0
	}
	x, _ := ebiten.CursorPosition()
	if !g.cursorKnown {
		g.lastCursorX, g.cursorKnown = x, true
		return 0
	}
	dx := x - g.lastCursorX
	g.lastCursorX = x
	return float64(dx)
}
