package raycast

// Action is one discrete control the kinematics tick understands.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionRotateLeft
	ActionRotateRight
	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:     "forward",
	ActionBackward:    "backward",
	ActionStrafeLeft:  "strafe-left",
	ActionStrafeRight: "strafe-right",
	ActionRotateLeft:  "rotate-left",
	ActionRotateRight: "rotate-right",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Controls is the input sampled for one tick.
type Controls struct {
	held [actionCount]bool
	// MouseDX is the horizontal mouse movement in pixels since the last tick.
	MouseDX float64
}

// Press marks a as held for this tick.
func (c *Controls) Press(a Action) {
	if a >= 0 && a < actionCount {
		c.held[a] = true
	}
}

// Held reports whether a is held.
func (c *Controls) Held(a Action) bool {
	return a >= 0 && a < actionCount && c.held[a]
}

// Idle reports whether the tick carries no input at all.
func (c *Controls) Idle() bool {
	if c.MouseDX != 0 {
		return false
	}
	for _, h := range c.held {
		if h {
			return false
		}
	}
	return true
}

// Kinematics are the per-tick speeds.
type Kinematics struct {
	MoveSpeed float64
	RotSpeed  float64
	// MouseSensitivity converts mouse pixels into radians.
	MouseSensitivity float64
}

// DefaultKinematics matches a 60 TPS loop.
var DefaultKinematics = Kinematics{
	MoveSpeed:        0.05,
	RotSpeed:         0.035,
	MouseSensitivity: 0.002,
}

// Apply advances the pose by one tick of input.
func (p *Pose) Apply(g Grid, c Controls, k Kinematics) {
	for a := Action(0); a < actionCount; a++ {
		if !c.held[a] {
			continue
		}
		switch a {
		case ActionForward:
			p.MoveForward(g, k.MoveSpeed)
		case ActionBackward:
			p.MoveBackward(g, k.MoveSpeed)
		case ActionStrafeLeft:
			p.StrafeLeft(g, k.MoveSpeed)
		case ActionStrafeRight:
			p.StrafeRight(g, k.MoveSpeed)
		case ActionRotateLeft:
			p.RotateLeft(k.RotSpeed)
		case ActionRotateRight:
			p.RotateRight(k.RotSpeed)
		}
	}
	if c.MouseDX != 0 {
		p.Rotate(c.MouseDX * k.MouseSensitivity)
	}
}
