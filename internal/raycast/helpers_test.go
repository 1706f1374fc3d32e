package raycast

import "math"

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ringedGrid returns an n×n grid whose border cells are walls.
func ringedGrid(n int) *CellGrid {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := 0; x < n; x++ {
			if x == 0 || y == 0 || x == n-1 || y == n-1 {
				row[x] = '1'
			} else {
				row[x] = '0'
			}
		}
		rows[y] = string(row)
	}
	return GridFromRows(rows)
}

// gradientTexture encodes the texel coordinates in the pixel so tests can
// tell which texel was sampled.
func gradientTexture(size int) *Texture {
	pix := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pix[y*size+x] = uint32(x)<<8 | uint32(y)
		}
	}
	t, err := NewTexture(size, pix)
	if err != nil {
		panic(err)
	}
	return t
}
