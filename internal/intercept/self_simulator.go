package intercept

import (
	"soccer_ai/internal/config"
	"soccer_ai/internal/kinematics"
	"soccer_ai/internal/world"
)

// SelfInterceptSimulator is the default SelfSimulator. For every cache step it
// tries to reach the ball by drifting, or by turning once towards the ball and
// dashing straight, first with stamina-saving dashes and then at full power.
type SelfInterceptSimulator struct {
	server *config.ServerConfig
	types  *config.PlayerTypesConfig
	minTol float64
}

func NewSelfInterceptSimulator(sp *config.ServerConfig, pt *config.PlayerTypesConfig, ic *config.InterceptConfig) *SelfInterceptSimulator {
	return &SelfInterceptSimulator{server: sp, types: pt, minTol: ic.MinTurnTolerance}
}

func (s *SelfInterceptSimulator) Simulate(ws *world.State, cache *BallCache, maxStep int, out []Info) []Info {
	me := &ws.Self
	m := kinematics.NewPlayerModel(s.server, s.types.Lookup(me.Type))

	for step := 1; step < maxStep; step++ {
		ball := cache.At(step)
		control := s.controlArea(m, me, ball)

		if info, ok := s.inertia(m, me, ball, step, control); ok {
			out = append(out, info)
			continue
		}

		normal, normalOK := s.dash(m, me, ball, step, control, false)
		if normalOK {
			out = append(out, normal)
		}
		full, fullOK := s.dash(m, me, ball, step, control, true)
		if fullOK && (full.Stamina == StaminaExhaust || !normalOK) {
			out = append(out, full)
		}
	}
	return out
}

func (s *SelfInterceptSimulator) controlArea(m kinematics.PlayerModel, me *world.Self, ball world.Vec2) float64 {
	if me.Goalie && s.server.InPenaltyArea(true, ball.X, ball.Y) {
		return max(m.KickableArea, m.CatchableArea)
	}
	return m.KickableArea
}

func (s *SelfInterceptSimulator) inertia(m kinematics.PlayerModel, me *world.Self, ball world.Vec2, step int, control float64) (Info, bool) {
	pos := m.InertiaPoint(me.Pos, me.Vel, step)
	d := pos.Dist(ball)
	if d > control {
		return Info{}, false
	}
	return Info{
		Stamina:     StaminaNormal,
		Step:        step,
		DashDir:     me.Body,
		SelfPos:     pos,
		BallDist:    d,
		StaminaLeft: me.Stamina,
	}, true
}

// dash turns towards the ball, then tries the fewest dashes that leave self
// within control of the ball at step. With full=false every dash is capped so
// stamina never drops under the recovery threshold.
func (s *SelfInterceptSimulator) dash(m kinematics.PlayerModel, me *world.Self, ball world.Vec2, step int, control float64, full bool) (Info, bool) {
	toBall := ball.Sub(me.Pos)
	tol := kinematics.ControlTolerance(toBall.Len(), control, s.minTol)
	turns := m.TurnSteps(world.AngleDiff(toBall.Dir(), me.Body), tol, me.Vel.Len())
	if turns >= step {
		return Info{}, false
	}

	pos := m.InertiaPoint(me.Pos, me.Vel, turns)
	vel := m.InertiaVel(me.Vel, turns)
	dir := me.Body
	if turns > 0 {
		dir = ball.Sub(pos).Dir()
	}
	unit := world.Polar(1, dir)
	speed := vel.Dot(unit)
	lateral := vel.Sub(unit.Scale(speed))

	stamina := me.Stamina
	exhausted := false
	power := 0.0
	for dashes := 1; turns+dashes <= step; dashes++ {
		want := m.MaxDashPower
		if !full {
			want = m.SafeDashPower(stamina)
		}
		stamina, power = m.Dash(stamina, want, me.Recovery)
		if stamina < m.RecoverThr {
			exhausted = true
		}

		var moved float64
		moved, speed = m.DashStep(speed, m.DashAccel(power, me.Effort))
		pos = pos.Add(unit.Scale(moved)).Add(lateral)
		lateral = lateral.Scale(m.Decay)

		rest := step - turns - dashes
		final := m.InertiaPoint(pos, unit.Scale(speed).Add(lateral), rest)
		if d := final.Dist(ball); d <= control {
			typ := StaminaNormal
			if exhausted {
				typ = StaminaExhaust
			}
			return Info{
				Stamina:     typ,
				Step:        step,
				TurnSteps:   turns,
				DashSteps:   dashes,
				DashPower:   power,
				DashDir:     dir,
				SelfPos:     final,
				BallDist:    d,
				StaminaLeft: stamina,
			}, true
		}
	}
	return Info{}, false
}
