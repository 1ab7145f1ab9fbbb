// Package kinematics models how a player moves, turns and tires over discrete
// simulation steps.
//
// All distances are in field units, speeds in units per step and angles in
// degrees. A step applies the dash acceleration, caps the speed, moves the
// player and then decays the velocity, matching the server's update order.
package kinematics

import (
	"math"

	"soccer_ai/internal/config"
	"soccer_ai/internal/world"
)

const maxTurnSteps = 10

// PlayerModel carries the physical constants of one player type.
type PlayerModel struct {
	SpeedMax      float64
	Decay         float64
	DashPowerRate float64
	InertiaMoment float64
	MaxMoment     float64
	MaxDashPower  float64
	KickableArea  float64
	CatchableArea float64
	EffortMax     float64
	StaminaIncMax float64
	ExtraStamina  float64
	StaminaMax    float64
	RecoverThr    float64
}

func NewPlayerModel(sp *config.ServerConfig, pt config.PlayerType) PlayerModel {
	return PlayerModel{
		SpeedMax:      pt.PlayerSpeedMax,
		Decay:         pt.PlayerDecay,
		DashPowerRate: pt.DashPowerRate,
		InertiaMoment: pt.InertiaMoment,
		MaxMoment:     sp.MaxMoment,
		MaxDashPower:  sp.MaxDashPower,
		KickableArea:  pt.PlayerSize + pt.KickableMargin + sp.BallSize,
		CatchableArea: sp.CatchableArea(),
		EffortMax:     pt.EffortMax,
		StaminaIncMax: pt.StaminaIncMax,
		ExtraStamina:  pt.ExtraStamina,
		StaminaMax:    sp.StaminaMax,
		RecoverThr:    sp.RecoverThreshold(),
	}
}

// InertiaPoint is where a player drifting with vel ends up after n steps
// without dashing.
func (m PlayerModel) InertiaPoint(pos, vel world.Vec2, n int) world.Vec2 {
	if n <= 0 {
		return pos
	}
	return pos.Add(vel.Scale(m.inertiaSum(n)))
}

// InertiaVel is the velocity left after n steps without dashing.
func (m PlayerModel) InertiaVel(vel world.Vec2, n int) world.Vec2 {
	if n <= 0 {
		return vel
	}
	return vel.Scale(math.Pow(m.Decay, float64(n)))
}

func (m PlayerModel) inertiaSum(n int) float64 {
	if m.Decay >= 1 {
		return float64(n)
	}
	return (1 - math.Pow(m.Decay, float64(n))) / (1 - m.Decay)
}

// DashAccel is the acceleration a dash of the given power produces.
func (m PlayerModel) DashAccel(power, effort float64) float64 {
	return math.Abs(power) * m.DashPowerRate * effort
}

// DashStep advances one straight-line dash. It returns the distance moved and
// the speed carried into the next step.
func (m PlayerModel) DashStep(speed, accel float64) (dist, newSpeed float64) {
	v := speed + accel
	if v > m.SpeedMax {
		v = m.SpeedMax
	}
	return v, v * m.Decay
}

// DashDistance is the distance covered by n full-power dashes starting at speed.
func (m PlayerModel) DashDistance(n int, speed, effort float64) float64 {
	accel := m.DashAccel(m.MaxDashPower, effort)
	total := 0.0
	for i := 0; i < n; i++ {
		var d float64
		d, speed = m.DashStep(speed, accel)
		total += d
	}
	return total
}

// StepsToCover returns how many full-power dashes cover dist starting at
// speed, or limit+1 when it takes more than limit dashes.
func (m PlayerModel) StepsToCover(dist, speed, effort float64, limit int) int {
	if dist <= 0 {
		return 0
	}
	accel := m.DashAccel(m.MaxDashPower, effort)
	covered := 0.0
	for n := 1; n <= limit; n++ {
		var d float64
		d, speed = m.DashStep(speed, accel)
		covered += d
		if covered >= dist {
			return n
		}
	}
	return limit + 1
}

// TurnMoment is the largest body rotation one turn achieves at speed.
func (m PlayerModel) TurnMoment(speed float64) float64 {
	return m.MaxMoment / (1 + m.InertiaMoment*speed)
}

// TurnSteps counts the turns needed to bring an angle error of diff degrees
// within tolerance. The speed decays after every turn.
func (m PlayerModel) TurnSteps(diff, tolerance, speed float64) int {
	n := 0
	for diff > tolerance {
		diff -= m.TurnMoment(speed)
		speed *= m.Decay
		n++
		if n >= maxTurnSteps {
			break
		}
	}
	return n
}

// ControlTolerance is the body angle error still good enough to pass within
// radius of a point dist away, never below minDeg.
func ControlTolerance(dist, radius, minDeg float64) float64 {
	if dist <= radius {
		return 180
	}
	tol := math.Asin(radius/dist) * 180 / math.Pi
	return math.Max(tol, minDeg)
}

// Dash consumes stamina for one dash of power and applies the step's
// recovery. It returns the power actually used, which may be lower than
// requested when stamina runs out.
func (m PlayerModel) Dash(stamina, power, recovery float64) (newStamina, used float64) {
	avail := stamina + m.ExtraStamina
	if avail < 0 {
		avail = 0
	}
	used = math.Min(math.Abs(power), avail)
	stamina -= used
	if stamina < 0 {
		stamina = 0
	}
	stamina += m.StaminaIncMax * recovery
	if stamina > m.StaminaMax {
		stamina = m.StaminaMax
	}
	return stamina, used
}

// SafeDashPower is the strongest dash that keeps stamina at or above the
// recovery threshold.
func (m PlayerModel) SafeDashPower(stamina float64) float64 {
	p := stamina - m.RecoverThr
	if p < 0 {
		return 0
	}
	return math.Min(p, m.MaxDashPower)
}
