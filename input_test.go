package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/raycast"
)

func TestReadControls(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []raycast.Action
	}{
		{"none", nil, nil},
		{"wasd forward", []ebiten.Key{ebiten.KeyW}, []raycast.Action{raycast.ActionForward}},
		{"arrow forward", []ebiten.Key{ebiten.KeyArrowUp}, []raycast.Action{raycast.ActionForward}},
		{"strafe and turn", []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowLeft}, []raycast.Action{raycast.ActionStrafeRight, raycast.ActionRotateLeft}},
		{"q e rotate", []ebiten.Key{ebiten.KeyQ, ebiten.KeyE}, []raycast.Action{raycast.ActionRotateLeft, raycast.ActionRotateRight}},
		{"unbound key", []ebiten.Key{ebiten.KeyZ}, nil},
	}
	for _, tc := range tests {
		down := map[ebiten.Key]bool{}
		for _, k := range tc.keys {
			down[k] = true
		}
		c := readControls(func(k ebiten.Key) bool { return down[k] })
		wantHeld := map[raycast.Action]bool{}
		for _, a := range tc.want {
			wantHeld[a] = true
		}
		for a := raycast.ActionForward; a <= raycast.ActionRotateRight; a++ {
			if c.Held(a) != wantHeld[a] {
				t.Errorf("%s: Held(%v) = %v, want %v", tc.name, a, c.Held(a), wantHeld[a])
			}
		}
		if c.MouseDX != 0 {
			t.Errorf("%s: MouseDX = %v, want 0", tc.name, c.MouseDX)
		}
	}
}

func TestAutoWalkerDeadline(t *testing.T) {
	now := time.Unix(1000, 0)
	a := newAutoWalker(1, time.Second, now)
	if !a.active(now.Add(999 * time.Millisecond)) {
		t.Error("walker inactive before its deadline")
	}
	if a.active(now.Add(time.Second)) {
		t.Error("walker still active at its deadline")
	}
	forever := newAutoWalker(1, 0, now)
	if !forever.active(now.Add(24 * time.Hour)) {
		t.Error("walker without a duration should never expire")
	}
}

func TestAutoWalkerWalksWhenClear(t *testing.T) {
	g := raycast.GridFromRows([]string{
		"1111111",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1111111",
	})
	p, _ := raycast.PoseAt(3, 5, 'N')
	a := newAutoWalker(7, 0, time.Now())
	c := a.controls(g, p, 3)
	if !c.Held(raycast.ActionForward) {
		t.Error("walker did not move forward through open space")
	}
	if c.MouseDX != 3 {
		t.Errorf("MouseDX = %v, want the passed-through 3", c.MouseDX)
	}
}

func TestAutoWalkerTurnsWhenBlocked(t *testing.T) {
	g := raycast.GridFromRows([]string{
		"111",
		"101",
		"111",
	})
	p, _ := raycast.PoseAt(1, 1, 'N')
	p.PosY = 1.05
	a := newAutoWalker(7, 0, time.Now())
	for i := 0; i < 100; i++ {
		c := a.controls(g, p, 0)
		if c.Held(raycast.ActionForward) {
			t.Fatalf("tick %d: walker pushed into a wall", i)
		}
		if !c.Held(raycast.ActionRotateLeft) && !c.Held(raycast.ActionRotateRight) {
			t.Fatalf("tick %d: blocked walker did not turn", i)
		}
	}
}
