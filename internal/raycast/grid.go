package raycast

// MaxMapSize bounds both grid dimensions.
const MaxMapSize = 500

// Grid is the read-only view of the map the renderer and the kinematics
// consume. Implementations must report any out-of-bounds cell as a wall.
type Grid interface {
	IsWall(x, y int) bool
	Width() int
	Height() int
}

// CellGrid is a row-major wall mask.
type CellGrid struct {
	width, height int
	walls         []bool
}

// NewCellGrid wraps walls, which must hold width*height entries in row-major
// order. The slice is owned by the grid afterwards.
func NewCellGrid(width, height int, walls []bool) *CellGrid {
	if len(walls) != width*height {
		panic("raycast: wall mask does not match grid dimensions")
	}
	return &CellGrid{width: width, height: height, walls: walls}
}

// GridFromRows builds a grid from text rows where '1' marks a wall and every
// other byte is open. Short rows are padded with open cells.
func GridFromRows(rows []string) *CellGrid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	height := len(rows)
	walls := make([]bool, width*height)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			walls[y*width+x] = row[x] == '1'
		}
	}
	return &CellGrid{width: width, height: height, walls: walls}
}

// IsWall reports whether the coordinates reference a wall cell.
func (g *CellGrid) IsWall(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return true
	}
	return g.walls[y*g.width+x]
}

func (g *CellGrid) Width() int  { return g.width }
func (g *CellGrid) Height() int { return g.height }

// clampInt constrains v to lie within the inclusive [min, max] range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
