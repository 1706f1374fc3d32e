package raycast

import "math"

// PlaneLength is the camera-plane magnitude for a field of view of about 66°.
const PlaneLength = 0.66

// Pose is the player's position, facing, and camera plane. The plane stays
// perpendicular to Dir; rotation keeps both vectors in step.
type Pose struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

type orientation struct {
	marker         byte
	dirX, dirY     float64
	planeX, planeY float64
}

// orientations maps start markers to facing and camera plane. Y grows
// downward, so north faces -Y and the plane points to the viewer's right.
var orientations = [...]orientation{
	{'N', 0, -1, PlaneLength, 0},
	{'S', 0, 1, -PlaneLength, 0},
	{'E', 1, 0, 0, PlaneLength},
	{'W', -1, 0, 0, -PlaneLength},
}

// IsStartMarker reports whether c is one of N, S, E, W.
func IsStartMarker(c byte) bool {
	for _, o := range orientations {
		if o.marker == c {
			return true
		}
	}
	return false
}

// PoseAt places the player at the center of cell (x, y) facing the direction
// named by marker. ok is false for an unknown marker.
func PoseAt(x, y int, marker byte) (p Pose, ok bool) {
	for _, o := range orientations {
		if o.marker != marker {
			continue
		}
		return Pose{
			PosX:   float64(x) + 0.5,
			PosY:   float64(y) + 0.5,
			DirX:   o.dirX,
			DirY:   o.dirY,
			PlaneX: o.planeX,
			PlaneY: o.planeY,
		}, true
	}
	return Pose{}, false
}

// RayDir returns the ray direction for screen column x.
func (p Pose) RayDir(x, width int) (float64, float64) {
	cam := CameraX(x, width)
	return p.DirX + p.PlaneX*cam, p.DirY + p.PlaneY*cam
}

// Cell returns the grid cell containing the player.
func (p Pose) Cell() (int, int) {
	return int(math.Floor(p.PosX)), int(math.Floor(p.PosY))
}

// Rotate turns the facing and the camera plane by angle radians. Positive
// angles turn right on screen.
func (p *Pose) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	p.DirX, p.DirY = p.DirX*cos-p.DirY*sin, p.DirX*sin+p.DirY*cos
	p.PlaneX, p.PlaneY = p.PlaneX*cos-p.PlaneY*sin, p.PlaneX*sin+p.PlaneY*cos
}

func (p *Pose) RotateLeft(angle float64)  { p.Rotate(-angle) }
func (p *Pose) RotateRight(angle float64) { p.Rotate(angle) }

func (p *Pose) MoveForward(g Grid, speed float64)  { p.move(g, p.DirX*speed, p.DirY*speed) }
func (p *Pose) MoveBackward(g Grid, speed float64) { p.move(g, -p.DirX*speed, -p.DirY*speed) }

// StrafeRight moves along (-DirY, DirX), the screen-right perpendicular.
func (p *Pose) StrafeRight(g Grid, speed float64) { p.move(g, -p.DirY*speed, p.DirX*speed) }
func (p *Pose) StrafeLeft(g Grid, speed float64)  { p.move(g, p.DirY*speed, -p.DirX*speed) }

// move applies each axis on its own so the player slides along walls. A
// blocked axis keeps its coordinate.
func (p *Pose) move(g Grid, dx, dy float64) {
	if nextX := p.PosX + dx; walkable(g, nextX, p.PosY) {
		p.PosX = nextX
	}
	if nextY := p.PosY + dy; walkable(g, p.PosX, nextY) {
		p.PosY = nextY
	}
}

func walkable(g Grid, x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	return !g.IsWall(int(x), int(y))
}
