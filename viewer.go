package main

import (
	"fmt"
	"time"

	"gridcaster/internal/cubfile"
	"gridcaster/internal/logging"
	"gridcaster/internal/raycast"
)

type viewerOptions struct {
	Width, Height int
	Workers       int
	Backend       string
	Flat          bool
}

// viewer owns the pose and the frame buffer and is shared by the window and
// terminal front ends. Each step applies one tick of input and renders.
type viewer struct {
	grid     *raycast.CellGrid
	pose     raycast.Pose
	kin      raycast.Kinematics
	renderer *raycast.Renderer
	frame    *raycast.FrameBuffer

	gpu     *openCLRayCaster
	results []raycast.RayResult

	walker   *autoWalker
	stats    frameStats
	statsLog statsLogger
}

func newViewer(scene *cubfile.Scene, textures raycast.TextureProvider, opts viewerOptions) (*viewer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	r := raycast.NewRenderer(opts.Width, opts.Height, textures, scene.Colors)
	r.Flat = opts.Flat
	if opts.Workers > 1 {
		r.Workers = opts.Workers
	}
	v := &viewer{
		grid:     scene.Grid,
		pose:     scene.Start,
		kin:      kinematics,
		renderer: r,
		frame:    raycast.NewFrameBuffer(opts.Width, opts.Height),
	}
	v.statsLog = statsLogger{stats: &v.stats, interval: statsLogInterval}

	switch opts.Backend {
	case "", backendCPU:
	case backendOpenCL:
		gpu, err := newOpenCLRayCaster(scene.Grid, opts.Width)
		if err != nil {
			logging.Log.Warnw("OpenCL backend unavailable, casting on the CPU", "error", err)
			break
		}
		logging.Log.Infow("OpenCL ray backend enabled", "device", gpu.DeviceName())
		v.gpu = gpu
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", opts.Backend, backendCPU, backendOpenCL)
	}
	return v, nil
}

// enableAutoWalk hands control to the scripted walker. A zero duration
// walks until the program exits.
func (v *viewer) enableAutoWalk(d time.Duration, now time.Time, seed int64) {
	v.walker = newAutoWalker(seed, d, now)
}

// step advances the pose by one tick and renders the resulting frame.
func (v *viewer) step(c raycast.Controls, now time.Time) error {
	if v.walker != nil {
		if v.walker.active(now) {
			c = v.walker.controls(v.grid, v.pose, c.MouseDX)
		} else {
			logging.Log.Infow("auto-walk finished")
			v.walker = nil
		}
	}
	v.pose.Apply(v.grid, c, v.kin)
	return v.render(now)
}

func (v *viewer) render(now time.Time) error {
	start := time.Now()
	if v.gpu != nil {
		results, err := v.gpu.Cast(v.pose, v.renderer.Width, v.results)
		if err != nil {
			return fmt.Errorf("casting rays: %w", err)
		}
		v.results = results
		for x, res := range results {
			v.renderer.DrawColumn(v.frame, x, res)
		}
	} else {
		v.renderer.Render(v.grid, v.pose, v.frame)
	}
	v.stats.addFrame(time.Since(start))
	v.statsLog.maybeLog(now)
	return nil
}

// resize changes the frame size, for example when the terminal is resized.
func (v *viewer) resize(width, height int) {
	if width <= 0 || height <= 0 || (width == v.frame.Width && height == v.frame.Height) {
		return
	}
	v.renderer.Width, v.renderer.Height = width, height
	v.frame = raycast.NewFrameBuffer(width, height)
	logging.Log.Debugw("frame resized", "width", width, "height", height)
}

func (v *viewer) toggleFlat() {
	v.renderer.Flat = !v.renderer.Flat
}

func (v *viewer) close() {
	if v.gpu != nil {
		v.gpu.Close()
		v.gpu = nil
	}
}
