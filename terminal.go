package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/logging"
	"gridcaster/internal/raycast"
)

// halfBlock draws two frame rows per terminal cell: the foreground colors
// the upper half and the background the lower half.
const halfBlock = '▀'

// Terminals deliver key repeats instead of held state, so each key event
// moves further than one window tick.
const terminalKeyScale = 4

var terminalKeys = map[tcell.Key]raycast.Action{
	tcell.KeyUp:    raycast.ActionForward,
	tcell.KeyDown:  raycast.ActionBackward,
	tcell.KeyLeft:  raycast.ActionRotateLeft,
	tcell.KeyRight: raycast.ActionRotateRight,
}

var terminalRunes = map[rune]raycast.Action{
	'w': raycast.ActionForward,
	's': raycast.ActionBackward,
	'a': raycast.ActionStrafeLeft,
	'd': raycast.ActionStrafeRight,
	'q': raycast.ActionRotateLeft,
	'e': raycast.ActionRotateRight,
}

// terminalAction maps a key event to an action.
func terminalAction(ev *tcell.EventKey) (raycast.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := terminalRunes[ev.Rune()]
		return a, ok
	}
	a, ok := terminalKeys[ev.Key()]
	return a, ok
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// runTerminal renders v into the controlling terminal until Esc or Ctrl-C.
func runTerminal(v *viewer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	kin := v.kin
	kin.MoveSpeed *= terminalKeyScale
	kin.RotSpeed *= terminalKeyScale
	v.kin = kin

	cols, rows := screen.Size()
	v.resize(cols, rows*2)
	logging.Log.Infow("terminal renderer started", "cols", cols, "rows", rows)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(terminalTick)
	defer ticker.Stop()
	var pending raycast.Controls
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
				if ev.Key() == tcell.KeyTab {
					v.toggleFlat()
					continue
				}
				if a, ok := terminalAction(ev); ok {
					pending.Press(a)
				}
			case *tcell.EventResize:
				cols, rows = screen.Size()
				v.resize(cols, rows*2)
				screen.Sync()
			}
		case now := <-ticker.C:
			if err := v.step(pending, now); err != nil {
				return err
			}
			pending = raycast.Controls{}
			drawHalfBlocks(screen, v.frame)
			screen.Show()
		}
	}
}

// drawHalfBlocks copies fb into screen, two pixel rows per cell row.
func drawHalfBlocks(screen tcell.Screen, fb *raycast.FrameBuffer) {
	cols, rows := screen.Size()
	if cols > fb.Width {
		cols = fb.Width
	}
	for row := 0; row < rows; row++ {
		top := row * 2
		if top >= fb.Height {
			break
		}
		bottom := top + 1
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.Foreground(termColor(fb.At(x, top)))
			if bottom < fb.Height {
				style = style.Background(termColor(fb.At(x, bottom)))
			}
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

func termColor(c uint32) tcell.Color {
	r, g, b := raycast.UnpackRGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
