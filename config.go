package main

import (
	"time"

	"gridcaster/internal/raycast"
)

// Window, timing, and movement configuration. Screen size and worker count
// can be overridden with flags; everything else is fixed at build time.
const (
	defaultWidth, defaultHeight = 480, 320
	windowScale                 = 2
	defaultTPS                  = 60
	windowTitle                 = "gridcaster"

	moveSpeed        = 0.05
	rotSpeed         = 0.035
	mouseSensitivity = 0.002

	autoWalkMinFrames = 20
	autoWalkMaxFrames = 70
	pgoRecordDuration = 15 * time.Second
	statsLogInterval  = 5 * time.Second

	minimapCell    = 4
	minimapMargin  = 8
	minimapMaxSide = 160

	terminalTick = 15 * time.Millisecond
)

var kinematics = raycast.Kinematics{
	MoveSpeed:        moveSpeed,
	RotSpeed:         rotSpeed,
	MouseSensitivity: mouseSensitivity,
}
