package raycast

import "math"

// Direction names the cardinal face of a wall cell that a ray struck. The
// numeric order matches the scene header order NO, SO, WE, EA and indexes
// TextureSet directly.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "unknown"
}

// Side records which family of grid lines the ray crossed last.
type Side int

const (
	// VerticalWall means the ray stepped along x and hit a west or east face.
	VerticalWall Side = iota
	// HorizontalWall means the ray stepped along y and hit a north or south face.
	HorizontalWall
)

const (
	// infiniteDelta stands in for |1/0| on an axis the ray never crosses.
	infiniteDelta = 1e30
	// MinWallDistance is the smallest distance used as a projection divisor.
	MinWallDistance = 0.001
)

// RayResult is what a single DDA walk reports about the wall it hit.
type RayResult struct {
	// Distance is measured perpendicular to the camera plane.
	Distance float64
	Side     Side
	Dir      Direction
	// WallX is the hit position along the wall face, in [0,1).
	WallX float64
	// MapX and MapY are the cell that stopped the ray. They may lie outside
	// the grid when the ray escaped through an open edge.
	MapX, MapY int
}

// ray holds the per-column DDA state.
type ray struct {
	dirX, dirY     float64
	mapX, mapY     int
	sideX, sideY   float64
	deltaX, deltaY float64
	stepX, stepY   int
	side           Side
}

// CastRay walks the ray starting at (posX, posY) with direction (dirX, dirY)
// until it enters a wall cell or leaves the grid.
func CastRay(g Grid, posX, posY, dirX, dirY float64) RayResult {
	r := ray{
		dirX: dirX,
		dirY: dirY,
		mapX: int(math.Floor(posX)),
		mapY: int(math.Floor(posY)),
	}
	r.deltaX = deltaDist(dirX)
	r.deltaY = deltaDist(dirY)
	if dirX < 0 {
		r.stepX = -1
		r.sideX = (posX - float64(r.mapX)) * r.deltaX
	} else {
		r.stepX = 1
		r.sideX = (float64(r.mapX) + 1 - posX) * r.deltaX
	}
	if dirY < 0 {
		r.stepY = -1
		r.sideY = (posY - float64(r.mapY)) * r.deltaY
	} else {
		r.stepY = 1
		r.sideY = (float64(r.mapY) + 1 - posY) * r.deltaY
	}
	r.walk(g)

	var dist float64
	if r.side == VerticalWall {
		dist = r.sideX - r.deltaX
	} else {
		dist = r.sideY - r.deltaY
	}
	return RayResult{
		Distance: dist,
		Side:     r.side,
		Dir:      r.direction(),
		WallX:    wallOffset(r.side, posX, posY, dirX, dirY, dist),
		MapX:     r.mapX,
		MapY:     r.mapY,
	}
}

func deltaDist(d float64) float64 {
	if d == 0 {
		return infiniteDelta
	}
	return math.Abs(1 / d)
}

// walk advances one grid line at a time. Leaving the grid counts as a hit,
// which bounds the loop even when the map is not enclosed.
func (r *ray) walk(g Grid) {
	w, h := g.Width(), g.Height()
	for {
		if r.sideX < r.sideY {
			r.sideX += r.deltaX
			r.mapX += r.stepX
			r.side = VerticalWall
		} else {
			r.sideY += r.deltaY
			r.mapY += r.stepY
			r.side = HorizontalWall
		}
		if r.mapX < 0 || r.mapX >= w || r.mapY < 0 || r.mapY >= h {
			return
		}
		if g.IsWall(r.mapX, r.mapY) {
			return
		}
	}
}

func (r *ray) direction() Direction {
	if r.side == VerticalWall {
		if r.stepX > 0 {
			return East
		}
		return West
	}
	if r.stepY > 0 {
		return South
	}
	return North
}

// wallOffset returns the fractional hit position along the face, sampled on
// the axis parallel to that face.
func wallOffset(side Side, posX, posY, dirX, dirY, dist float64) float64 {
	var wallX float64
	if side == VerticalWall {
		wallX = posY + dist*dirY
	} else {
		wallX = posX + dist*dirX
	}
	wallX -= math.Floor(wallX)
	if wallX < 0 || wallX >= 1 {
		// Floor can round a tiny negative up to exactly 1.
		return 0
	}
	return wallX
}
