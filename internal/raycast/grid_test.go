package raycast

import "testing"

func TestGridFromRows(t *testing.T) {
	g := GridFromRows([]string{
		"111",
		"1 01",
		"11",
	})
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 1, false},
		{2, 1, false},
		{3, 1, true},
		{3, 0, false},
		{2, 2, false},
	}
	for _, tc := range tests {
		if got := g.IsWall(tc.x, tc.y); got != tc.want {
			t.Errorf("IsWall(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	g := NewCellGrid(2, 2, make([]bool, 4))
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if !g.IsWall(c[0], c[1]) {
			t.Errorf("IsWall(%d, %d) = false, want true", c[0], c[1])
		}
	}
	if g.IsWall(1, 1) {
		t.Error("IsWall(1, 1) = true for an open cell")
	}
}

func TestNewCellGridPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCellGrid did not panic on a short mask")
		}
	}()
	NewCellGrid(3, 3, make([]bool, 8))
}
