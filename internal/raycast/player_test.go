package raycast

import (
	"math"
	"testing"
)

func TestPoseAtOrientations(t *testing.T) {
	tests := []struct {
		marker                     byte
		dirX, dirY, planeX, planeY float64
	}{
		{'N', 0, -1, PlaneLength, 0},
		{'S', 0, 1, -PlaneLength, 0},
		{'E', 1, 0, 0, PlaneLength},
		{'W', -1, 0, 0, -PlaneLength},
	}
	for _, tc := range tests {
		p, ok := PoseAt(4, 2, tc.marker)
		if !ok {
			t.Fatalf("PoseAt(%q) not ok", tc.marker)
		}
		if p.PosX != 4.5 || p.PosY != 2.5 {
			t.Errorf("%q: position = (%v,%v), want (4.5,2.5)", tc.marker, p.PosX, p.PosY)
		}
		if p.DirX != tc.dirX || p.DirY != tc.dirY || p.PlaneX != tc.planeX || p.PlaneY != tc.planeY {
			t.Errorf("%q: pose = %+v", tc.marker, p)
		}
		// The plane must point to the viewer's right: dir rotated +90°.
		if !approx(p.PlaneX, -p.DirY*PlaneLength, eps) || !approx(p.PlaneY, p.DirX*PlaneLength, eps) {
			t.Errorf("%q: plane (%v,%v) is not right of dir (%v,%v)", tc.marker, p.PlaneX, p.PlaneY, p.DirX, p.DirY)
		}
	}
	if _, ok := PoseAt(0, 0, 'X'); ok {
		t.Error("PoseAt('X') reported ok")
	}
	if IsStartMarker('0') || !IsStartMarker('W') {
		t.Error("IsStartMarker misclassified markers")
	}
}

func TestRotateInvertible(t *testing.T) {
	start, _ := PoseAt(1, 1, 'N')
	for _, theta := range []float64{0.01, 0.035, math.Pi / 7, 1, math.Pi, -2.5} {
		p := start
		p.Rotate(theta)
		p.Rotate(-theta)
		if !approx(p.DirX, start.DirX, 1e-12) || !approx(p.DirY, start.DirY, 1e-12) ||
			!approx(p.PlaneX, start.PlaneX, 1e-12) || !approx(p.PlaneY, start.PlaneY, 1e-12) {
			t.Errorf("theta %v: pose %+v, want %+v", theta, p, start)
		}
	}
}

func TestRotatePreservesFrame(t *testing.T) {
	p, _ := PoseAt(1, 1, 'E')
	for i := 0; i < 1000; i++ {
		p.RotateRight(0.035)
	}
	dot := p.DirX*p.PlaneX + p.DirY*p.PlaneY
	if !approx(dot, 0, 1e-9) {
		t.Errorf("dir·plane = %v after many turns, want 0", dot)
	}
	if !approx(math.Hypot(p.DirX, p.DirY), 1, 1e-9) {
		t.Errorf("|dir| = %v, want 1", math.Hypot(p.DirX, p.DirY))
	}
	if !approx(math.Hypot(p.PlaneX, p.PlaneY), PlaneLength, 1e-9) {
		t.Errorf("|plane| = %v, want %v", math.Hypot(p.PlaneX, p.PlaneY), PlaneLength)
	}
}

func TestRotateRightTurnsNorthToEast(t *testing.T) {
	p, _ := PoseAt(1, 1, 'N')
	p.RotateRight(math.Pi / 2)
	if !approx(p.DirX, 1, 1e-12) || !approx(p.DirY, 0, 1e-12) {
		t.Errorf("dir = (%v,%v), want east", p.DirX, p.DirY)
	}
	p.RotateLeft(math.Pi)
	if !approx(p.DirX, -1, 1e-12) || !approx(p.DirY, 0, 1e-12) {
		t.Errorf("dir = (%v,%v), want west", p.DirX, p.DirY)
	}
}

func TestForwardBackwardRoundTrip(t *testing.T) {
	g := ringedGrid(9)
	start, _ := PoseAt(4, 4, 'N')
	start.Rotate(0.7)
	p := start
	p.MoveForward(g, 0.3)
	p.MoveBackward(g, 0.3)
	if !approx(p.PosX, start.PosX, 1e-12) || !approx(p.PosY, start.PosY, 1e-12) {
		t.Errorf("position (%v,%v), want (%v,%v)", p.PosX, p.PosY, start.PosX, start.PosY)
	}
	p.StrafeLeft(g, 0.2)
	p.StrafeRight(g, 0.2)
	if !approx(p.PosX, start.PosX, 1e-12) || !approx(p.PosY, start.PosY, 1e-12) {
		t.Errorf("after strafing: (%v,%v), want (%v,%v)", p.PosX, p.PosY, start.PosX, start.PosY)
	}
}

func TestStrafeDirections(t *testing.T) {
	g := ringedGrid(9)
	p, _ := PoseAt(4, 4, 'N')
	p.StrafeRight(g, 0.25)
	if !approx(p.PosX, 4.75, eps) || !approx(p.PosY, 4.5, eps) {
		t.Errorf("strafe right from north: (%v,%v), want (4.75,4.5)", p.PosX, p.PosY)
	}
	p.StrafeLeft(g, 0.5)
	if !approx(p.PosX, 4.25, eps) {
		t.Errorf("strafe left: x = %v, want 4.25", p.PosX)
	}
}

func TestMoveIntoWallRejected(t *testing.T) {
	g := ringedGrid(5)
	p, _ := PoseAt(1, 1, 'N')
	before := p
	p.MoveForward(g, 0.6)
	if p != before {
		t.Errorf("moved into wall: %+v, want %+v", p, before)
	}
	p.Rotate(-math.Pi / 2)
	before = p
	p.MoveForward(g, 1)
	if p.PosX != before.PosX || p.PosY != before.PosY {
		t.Errorf("moved west into wall: (%v,%v)", p.PosX, p.PosY)
	}
}

func TestMoveOffGridRejected(t *testing.T) {
	g := GridFromRows([]string{"00", "00"})
	p := Pose{PosX: 0.2, PosY: 0.2, DirX: -1, DirY: 0}
	p.MoveForward(g, 0.5)
	if p.PosX != 0.2 {
		t.Errorf("moved off the grid to x=%v", p.PosX)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	g := ringedGrid(6)
	// Facing north-east against the north wall: y is blocked, x still moves.
	p := Pose{PosX: 2.5, PosY: 1.1, DirX: math.Sqrt2 / 2, DirY: -math.Sqrt2 / 2}
	p.MoveForward(g, 0.2)
	if p.PosY != 1.1 {
		t.Errorf("y = %v, want 1.1", p.PosY)
	}
	if p.PosX <= 2.5 {
		t.Errorf("x = %v, want it to slide east", p.PosX)
	}
}

func TestApplyControls(t *testing.T) {
	g := ringedGrid(9)
	p, _ := PoseAt(4, 4, 'N')
	var c Controls
	if !c.Idle() {
		t.Fatal("zero Controls not idle")
	}
	c.Press(ActionForward)
	c.Press(Action(42))
	if c.Idle() || !c.Held(ActionForward) || c.Held(ActionBackward) || c.Held(Action(42)) {
		t.Fatalf("controls = %+v", c)
	}
	k := Kinematics{MoveSpeed: 0.1, RotSpeed: 0.2, MouseSensitivity: 0.01}
	p.Apply(g, c, k)
	if !approx(p.PosY, 4.4, eps) {
		t.Errorf("forward: y = %v, want 4.4", p.PosY)
	}

	var turn Controls
	turn.Press(ActionRotateRight)
	turn.MouseDX = 10
	q, _ := PoseAt(4, 4, 'N')
	q.Apply(g, turn, k)
	want, _ := PoseAt(4, 4, 'N')
	want.Rotate(0.2)
	want.Rotate(0.1)
	if !approx(q.DirX, want.DirX, 1e-12) || !approx(q.DirY, want.DirY, 1e-12) {
		t.Errorf("rotate: dir (%v,%v), want (%v,%v)", q.DirX, q.DirY, want.DirX, want.DirY)
	}

	var opposed Controls
	opposed.Press(ActionStrafeLeft)
	opposed.Press(ActionStrafeRight)
	r, _ := PoseAt(4, 4, 'N')
	r.Apply(g, opposed, k)
	if !approx(r.PosX, 4.5, eps) {
		t.Errorf("opposed strafes: x = %v, want 4.5", r.PosX)
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateLeft.String() != "rotate-left" || Action(-1).String() != "unknown" {
		t.Error("unexpected action names")
	}
}
