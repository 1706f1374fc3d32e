package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/raycast"
)

type keyBinding struct {
	key    ebiten.Key
	action raycast.Action
}

// keyBindings maps window keys to kinematics actions. Several keys may share
// an action.
var keyBindings = []keyBinding{
	{ebiten.KeyW, raycast.ActionForward},
	{ebiten.KeyArrowUp, raycast.ActionForward},
	{ebiten.KeyS, raycast.ActionBackward},
	{ebiten.KeyArrowDown, raycast.ActionBackward},
	{ebiten.KeyA, raycast.ActionStrafeLeft},
	{ebiten.KeyD, raycast.ActionStrafeRight},
	{ebiten.KeyArrowLeft, raycast.ActionRotateLeft},
	{ebiten.KeyQ, raycast.ActionRotateLeft},
	{ebiten.KeyArrowRight, raycast.ActionRotateRight},
	{ebiten.KeyE, raycast.ActionRotateRight},
}

// readControls samples the bound keys through pressed, normally
// ebiten.IsKeyPressed.
func readControls(pressed func(ebiten.Key) bool) raycast.Controls {
	var c raycast.Controls
	for _, b := range keyBindings {
		if pressed(b.key) {
			c.Press(b.action)
		}
	}
	return c
}

// autoWalker drives the pose without input: it walks forward in segments of
// random length, sometimes curving, and turns in place when blocked.
type autoWalker struct {
	rng      *rand.Rand
	deadline time.Time
	frames   int
	turn     raycast.Action
	curving  bool
}

// newAutoWalker walks for d from now, or forever when d is zero.
func newAutoWalker(seed int64, d time.Duration, now time.Time) *autoWalker {
	a := &autoWalker{rng: rand.New(rand.NewSource(seed))}
	if d > 0 {
		a.deadline = now.Add(d)
	}
	return a
}

func (a *autoWalker) active(now time.Time) bool {
	return a.deadline.IsZero() || now.Before(a.deadline)
}

// controls returns the scripted input for one tick. Mouse motion still
// turns the view.
func (a *autoWalker) controls(g raycast.Grid, p raycast.Pose, mouseDX float64) raycast.Controls {
	if a.frames <= 0 {
		a.randomizeSegment()
	}
	a.frames--

	c := raycast.Controls{MouseDX: mouseDX}
	probe := p
	probe.MoveForward(g, moveSpeed*4)
	if probe.PosX == p.PosX && probe.PosY == p.PosY {
		c.Press(a.turn)
		return c
	}
	c.Press(raycast.ActionForward)
	if a.curving {
		c.Press(a.turn)
	}
	return c
}

// randomizeSegment chooses the length and turn of the next walk segment.
func (a *autoWalker) randomizeSegment() {
	a.frames = autoWalkMinFrames + a.rng.Intn(autoWalkMaxFrames-autoWalkMinFrames)
	a.turn = raycast.ActionRotateLeft
	if a.rng.Intn(2) == 0 {
		a.turn = raycast.ActionRotateRight
	}
	a.curving = a.rng.Intn(3) == 0
}
