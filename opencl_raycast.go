//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"gridcaster/internal/raycast"
)

// openCLRayCaster casts one ray per screen column on an OpenCL device. The
// grid is uploaded once; each frame only sends the pose.
type openCLRayCaster struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	wallBuf    *cl.MemObject
	outBuf     *cl.MemObject
	outColumns int
	out        []float32
	mapWidth   int
	mapHeight  int
	deviceName string
}

const rayKernelSource = `__kernel void cast_columns(
    const int screen_width,
    const int map_width,
    const int map_height,
    const float pos_x,
    const float pos_y,
    const float dir_x,
    const float dir_y,
    const float plane_x,
    const float plane_y,
    __global const uchar* walls,
    __global float* out)
{
    int x = get_global_id(0);
    if (x >= screen_width) {
        return;
    }
    float camera_x = 2.0f * (float)x / (float)screen_width - 1.0f;
    float ray_x = dir_x + plane_x * camera_x;
    float ray_y = dir_y + plane_y * camera_x;
    int map_x = (int)floor(pos_x);
    int map_y = (int)floor(pos_y);
    float delta_x = ray_x == 0.0f ? 1e30f : fabs(1.0f / ray_x);
    float delta_y = ray_y == 0.0f ? 1e30f : fabs(1.0f / ray_y);
    int step_x = 1;
    int step_y = 1;
    float side_x = ((float)map_x + 1.0f - pos_x) * delta_x;
    float side_y = ((float)map_y + 1.0f - pos_y) * delta_y;
    if (ray_x < 0.0f) {
        step_x = -1;
        side_x = (pos_x - (float)map_x) * delta_x;
    }
    if (ray_y < 0.0f) {
        step_y = -1;
        side_y = (pos_y - (float)map_y) * delta_y;
    }
    int side = 0;
    int limit = map_width + map_height + 2;
    for (int i = 0; i < limit; i++) {
        if (side_x < side_y) {
            side_x += delta_x;
            map_x += step_x;
            side = 0;
        } else {
            side_y += delta_y;
            map_y += step_y;
            side = 1;
        }
        if (map_x < 0 || map_y < 0 || map_x >= map_width || map_y >= map_height) {
            break;
        }
        if (walls[map_y * map_width + map_x]) {
            break;
        }
    }
    float dist = side == 0 ? side_x - delta_x : side_y - delta_y;
    int dir = side == 0 ? (step_x > 0 ? 3 : 2) : (step_y > 0 ? 1 : 0);
    float hit = side == 0 ? pos_y + dist * ray_y : pos_x + dist * ray_x;
    float wall_x = hit - floor(hit);
    int base = x * 6;
    out[base] = dist;
    out[base + 1] = (float)side;
    out[base + 2] = (float)dir;
    out[base + 3] = wall_x;
    out[base + 4] = (float)map_x;
    out[base + 5] = (float)map_y;
}
`

// pickOpenCLDevice prefers the first GPU and falls back to the first CPU.
func pickOpenCLDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLRayCaster(grid raycast.Grid, width int) (*openCLRayCaster, error) {
	device, err := pickOpenCLDevice()
	if err != nil {
		return nil, err
	}
	s := &openCLRayCaster{
		mapWidth:   grid.Width(),
		mapHeight:  grid.Height(),
		deviceName: device.Name(),
	}
	s.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	s.queue, err = s.context.CreateCommandQueue(device, 0)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = s.context.CreateProgramWithSource([]string{rayKernelSource})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	s.kernel, err = s.program.CreateKernel("cast_columns")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	walls := gridWallBytes(grid)
	s.wallBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, len(walls))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating wall buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBuffer(s.wallBuf, true, 0, len(walls), unsafe.Pointer(&walls[0]), nil); err != nil {
		s.Close()
		return nil, fmt.Errorf("writing wall buffer: %w", err)
	}
	if err := s.ensureOutput(width); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// ensureOutput grows the result buffer to hold width columns.
func (s *openCLRayCaster) ensureOutput(width int) error {
	if width <= s.outColumns {
		return nil
	}
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	n := width * rayStride
	buf, err := s.context.CreateEmptyBuffer(cl.MemWriteOnly, n*int(unsafe.Sizeof(float32(0))))
	if err != nil {
		return fmt.Errorf("allocating result buffer: %w", err)
	}
	s.outBuf = buf
	s.outColumns = width
	s.out = make([]float32, n)
	return nil
}

// Cast runs the kernel for width columns of pose p and decodes the results
// into dst.
func (s *openCLRayCaster) Cast(p raycast.Pose, width int, dst []raycast.RayResult) ([]raycast.RayResult, error) {
	if err := s.ensureOutput(width); err != nil {
		return dst, err
	}
	if err := s.kernel.SetArgs(
		int32(width),
		int32(s.mapWidth),
		int32(s.mapHeight),
		float32(p.PosX),
		float32(p.PosY),
		float32(p.DirX),
		float32(p.DirY),
		float32(p.PlaneX),
		float32(p.PlaneY),
		s.wallBuf,
		s.outBuf,
	); err != nil {
		return dst, fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{width}, nil, nil); err != nil {
		return dst, fmt.Errorf("enqueueing kernel: %w", err)
	}
	out := s.out[:width*rayStride]
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, out, nil); err != nil {
		return dst, fmt.Errorf("reading result buffer: %w", err)
	}
	return decodeRayResults(out, width, dst), nil
}

func (s *openCLRayCaster) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.wallBuf != nil {
		s.wallBuf.Release()
		s.wallBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLRayCaster) DeviceName() string {
	return s.deviceName
}
