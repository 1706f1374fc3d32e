package raycast

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		dist       float64
		height     int
		wantStart  int
		wantEnd    int
		wantHeight int
	}{
		{2, 100, 25, 74, 50},
		{1, 100, 0, 99, 100},
		{4, 100, 37, 61, 25},
		{0.5, 100, 0, 99, 200},
		{1000, 100, 50, 49, 0},
	}
	for _, tc := range tests {
		p := Project(RayResult{Distance: tc.dist}, tc.height)
		if p.DrawStart != tc.wantStart || p.DrawEnd != tc.wantEnd || p.LineHeight != tc.wantHeight {
			t.Errorf("Project(%v, %d) = %+v, want start %d end %d height %d",
				tc.dist, tc.height, p, tc.wantStart, tc.wantEnd, tc.wantHeight)
		}
	}
}

func TestProjectClampsNearZeroDistance(t *testing.T) {
	want := Project(RayResult{Distance: MinWallDistance}, 100)
	for _, dist := range []float64{0, 1e-9, -0.5} {
		if got := Project(RayResult{Distance: dist}, 100); got != want {
			t.Errorf("Project(%v) = %+v, want %+v", dist, got, want)
		}
	}
}

func TestProjectClampsToScreen(t *testing.T) {
	for _, dist := range []float64{0.0001, 0.01, 0.3, 0.99} {
		p := Project(RayResult{Distance: dist}, 240)
		if p.DrawStart < 0 || p.DrawEnd > 239 || p.DrawStart > p.DrawEnd {
			t.Errorf("dist %v: rows [%d, %d] outside the screen", dist, p.DrawStart, p.DrawEnd)
		}
		if p.LineHeight <= 240 {
			t.Errorf("dist %v: line height %d should stay unclamped", dist, p.LineHeight)
		}
	}
}

func TestProjectMonotonic(t *testing.T) {
	prev := Project(RayResult{Distance: 50}, 480).LineHeight
	for dist := 49.5; dist > 0; dist -= 0.5 {
		h := Project(RayResult{Distance: dist}, 480).LineHeight
		if h < prev {
			t.Fatalf("line height fell from %d to %d as distance shrank to %v", prev, h, dist)
		}
		prev = h
	}
}
