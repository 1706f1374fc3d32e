package raycast

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PixelSink accepts packed 0xRRGGBB colors. Callers keep coordinates in
// range; sinks are not required to check them.
type PixelSink interface {
	SetPixel(x, y int, color uint32)
}

// FrameBuffer is an RGBA8 pixel buffer laid out for direct upload to a
// window surface. Distinct columns may be written concurrently.
type FrameBuffer struct {
	Width, Height int
	Pix           []byte
}

// NewFrameBuffer allocates an opaque black buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{Width: width, Height: height, Pix: make([]byte, width*height*4)}
	for i := 3; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = 0xFF
	}
	return fb
}

// SetPixel writes an opaque pixel.
func (fb *FrameBuffer) SetPixel(x, y int, color uint32) {
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = byte(color >> 16)
	fb.Pix[i+1] = byte(color >> 8)
	fb.Pix[i+2] = byte(color)
	fb.Pix[i+3] = 0xFF
}

// At returns the packed color stored at (x, y).
func (fb *FrameBuffer) At(x, y int) uint32 {
	i := (y*fb.Width + x) * 4
	return PackRGB(fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2])
}

// Colors are the packed floor and ceiling fills.
type Colors struct {
	Ceiling uint32
	Floor   uint32
}

// Column is the draw record for one screen column.
type Column struct {
	X int
	Projection
	Colors
	Dir   Direction
	WallX float64
}

// Renderer composes frames of a fixed size. A Renderer holds no per-frame
// state beyond scratch buffers, so it never retains the grid or the pose.
type Renderer struct {
	Width, Height int
	Textures      TextureProvider
	Colors        Colors
	// Flat paints walls with the direction palette instead of textures.
	Flat bool
	// Workers above one renders contiguous column bands concurrently.
	Workers int
}

// NewRenderer returns a serial renderer for a width×height screen.
func NewRenderer(width, height int, textures TextureProvider, colors Colors) *Renderer {
	return &Renderer{Width: width, Height: height, Textures: textures, Colors: colors, Workers: 1}
}

// RenderFrame renders one frame into a freshly allocated buffer.
func RenderFrame(g Grid, p Pose, textures TextureProvider, colors Colors, width, height int) *FrameBuffer {
	fb := NewFrameBuffer(width, height)
	NewRenderer(width, height, textures, colors).Render(g, p, fb)
	return fb
}

// Render casts one ray per column and paints the full frame into sink.
func (r *Renderer) Render(g Grid, p Pose, sink PixelSink) {
	if r.Workers <= 1 || r.Width < 2 {
		r.renderBand(g, p, sink, 0, r.Width)
		return
	}
	bands := columnBands(r.Width, r.Workers)
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(r.Workers)
	for _, b := range bands {
		b := b
		eg.Go(func() error {
			r.renderBand(g, p, sink, b.start, b.end)
			return nil
		})
	}
	_ = eg.Wait()
}

func (r *Renderer) renderBand(g Grid, p Pose, sink PixelSink, x0, x1 int) {
	scratch := make([]uint32, r.Height)
	for x := x0; x < x1; x++ {
		dirX, dirY := p.RayDir(x, r.Width)
		res := CastRay(g, p.PosX, p.PosY, dirX, dirY)
		scratch = r.drawColumn(sink, r.Column(x, res), scratch)
	}
}

// CameraX maps column x of a width-wide screen onto [-1, 1).
func CameraX(x, width int) float64 {
	return 2*float64(x)/float64(width) - 1
}

// Column projects a ray result into the draw record for column x.
func (r *Renderer) Column(x int, res RayResult) Column {
	return Column{
		X:          x,
		Projection: Project(res, r.Height),
		Colors:     r.Colors,
		Dir:        res.Dir,
		WallX:      res.WallX,
	}
}

// DrawColumn paints column x from a result computed elsewhere, such as a
// batch ray backend.
func (r *Renderer) DrawColumn(sink PixelSink, x int, res RayResult) {
	r.drawColumn(sink, r.Column(x, res), nil)
}

func (r *Renderer) drawColumn(sink PixelSink, c Column, scratch []uint32) []uint32 {
	for y := 0; y < c.DrawStart; y++ {
		sink.SetPixel(c.X, y, c.Ceiling)
	}
	if r.Flat {
		color := FlatColor(c.Dir)
		for y := c.DrawStart; y <= c.DrawEnd; y++ {
			sink.SetPixel(c.X, y, color)
		}
	} else {
		var tex *Texture
		if r.Textures != nil {
			tex = r.Textures.TextureFor(c.Dir)
		}
		scratch = SampleColumn(tex, c.WallX, c.Projection, r.Height, scratch)
		for i, color := range scratch {
			sink.SetPixel(c.X, c.DrawStart+i, color)
		}
	}
	for y := c.DrawEnd + 1; y < r.Height; y++ {
		sink.SetPixel(c.X, y, c.Floor)
	}
	return scratch
}

// band is a half-open column range [start, end).
type band struct{ start, end int }

// columnBands splits width columns into at most n contiguous bands.
func columnBands(width, n int) []band {
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	per := (width + n - 1) / n
	bands := make([]band, 0, n)
	for start := 0; start < width; start += per {
		end := start + per
		if end > width {
			end = width
		}
		bands = append(bands, band{start: start, end: end})
	}
	return bands
}
