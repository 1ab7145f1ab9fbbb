package intercept

import "soccer_ai/internal/world"

// StaminaType tells which endurance regime a self solution relies on.
type StaminaType int

const (
	// StaminaNormal solutions keep stamina above the recovery threshold.
	StaminaNormal StaminaType = iota
	// StaminaExhaust solutions drain stamina below it.
	StaminaExhaust
)

func (s StaminaType) String() string {
	switch s {
	case StaminaNormal:
		return "normal"
	case StaminaExhaust:
		return "exhaust"
	default:
		return "unknown"
	}
}

// Info is one way for self to reach the ball.
type Info struct {
	Stamina     StaminaType
	Step        int
	TurnSteps   int
	DashSteps   int
	DashPower   float64
	DashDir     float64
	SelfPos     world.Vec2
	BallDist    float64
	StaminaLeft float64
}

func (i Info) ReachStep() int { return i.Step }
