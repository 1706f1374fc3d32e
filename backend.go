package main

import "gridcaster/internal/raycast"

// Ray backends. "cpu" casts with raycast.Renderer directly; "opencl" casts
// all columns in one kernel dispatch and only shades on the host.
const (
	backendCPU    = "cpu"
	backendOpenCL = "opencl"
)

// rayStride is the number of float32 values the kernel writes per column:
// distance, side, direction, wall offset, hit cell x, hit cell y.
const rayStride = 6

// gridWallBytes flattens g row-major into one byte per cell, 1 for walls.
func gridWallBytes(g raycast.Grid) []uint8 {
	w, h := g.Width(), g.Height()
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.IsWall(x, y) {
				out[y*w+x] = 1
			}
		}
	}
	return out
}

// decodeRayResults unpacks kernel output into dst, reusing its storage.
func decodeRayResults(out []float32, columns int, dst []raycast.RayResult) []raycast.RayResult {
	if cap(dst) < columns {
		dst = make([]raycast.RayResult, columns)
	}
	dst = dst[:columns]
	for x := range dst {
		v := out[x*rayStride : x*rayStride+rayStride]
		dst[x] = raycast.RayResult{
			Distance: float64(v[0]),
			Side:     raycast.Side(v[1]),
			Dir:      raycast.Direction(v[2]),
			WallX:    float64(v[3]),
			MapX:     int(v[4]),
			MapY:     int(v[5]),
		}
	}
	return dst
}
