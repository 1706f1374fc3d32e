package main

import (
	"flag"
	"runtime"
)

// Command-line flags. The scene file is the single positional argument.
var (
	// widthFlag and heightFlag set the logical frame size in pixels.
	widthFlag  = flag.Int("width", defaultWidth, "frame width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "frame height in pixels")

	// workersFlag splits the frame into that many column bands.
	workersFlag = flag.Int("workers", runtime.NumCPU(), "column bands rendered in parallel (1 renders serially)")

	// backendFlag selects where rays are cast.
	backendFlag = flag.String("backend", "cpu", "ray casting backend: cpu or opencl")

	// flatWallsFlag paints walls with one color per facing instead of textures.
	flatWallsFlag = flag.Bool("flat-walls", false, "draw walls with flat direction colors (F toggles)")

	// debugFlag enables the FPS and frame timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, pose, and frame timing overlay")

	minimapFlag = flag.Bool("minimap", false, "show the minimap overlay (Tab toggles)")

	// mouseLookFlag captures the cursor and turns with horizontal mouse motion.
	mouseLookFlag = flag.Bool("mouse-look", false, "capture the cursor and rotate with the mouse")

	// terminalFlag renders into the terminal instead of opening a window.
	terminalFlag = flag.Bool("terminal", false, "render in the terminal with half-block characters")

	logFileFlag = flag.String("log-file", "", "also write logs to this rolling file")

	// recordPGOFlag walks automatically while capturing a CPU profile.
	recordPGOFlag = flag.String("record-pgo", "", "auto-walk for 15s while writing a CPU profile to this path (e.g. default.pgo)")

	autoWalkFlag = flag.Bool("auto-walk", false, "walk around automatically")
)
