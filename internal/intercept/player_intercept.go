package intercept

import (
	"soccer_ai/internal/config"
	"soccer_ai/internal/kinematics"
	"soccer_ai/internal/world"
)

// PlayerIntercept is the default PlayerPredictor. A player reaches the ball
// at a step when drifting, one turn and straight full-power dashes bring it
// within control distance. Players seen several cycles ago get up to
// PosCountBonusMax extra steps, since they may have moved meanwhile.
type PlayerIntercept struct {
	server   *config.ServerConfig
	types    *config.PlayerTypesConfig
	sentinel int
	bonusMax int
	minTol   float64
}

func NewPlayerIntercept(sp *config.ServerConfig, pt *config.PlayerTypesConfig, ic *config.InterceptConfig) *PlayerIntercept {
	return &PlayerIntercept{
		server:   sp,
		types:    pt,
		sentinel: ic.Sentinel,
		bonusMax: ic.PosCountBonusMax,
		minTol:   ic.MinTurnTolerance,
	}
}

func (pi *PlayerIntercept) Predict(cache *BallCache, p *world.Player, goalie bool) int {
	m := kinematics.NewPlayerModel(pi.server, pi.types.Lookup(p.Type))
	ours := p.Side == world.SideTeammate
	bonus := min(p.PosCount, pi.bonusMax)

	for step := 1; step < cache.Len(); step++ {
		ball := cache.At(step)
		control := m.KickableArea
		if goalie {
			if !pi.server.InPenaltyArea(ours, ball.X, ball.Y) {
				continue
			}
			control = max(control, m.CatchableArea)
		}
		if pi.canReach(m, p, ball, step, bonus, control) {
			return step
		}
	}
	return pi.sentinel
}

func (pi *PlayerIntercept) canReach(m kinematics.PlayerModel, p *world.Player, ball world.Vec2, step, bonus int, control float64) bool {
	inertia := m.InertiaPoint(p.Pos, p.Vel, step)
	dist := inertia.Dist(ball)
	if dist <= control {
		return true
	}

	budget := step + bonus
	tol := kinematics.ControlTolerance(dist, control, pi.minTol)
	turns := m.TurnSteps(world.AngleDiff(ball.Sub(inertia).Dir(), p.Body), tol, p.Vel.Len())
	if turns > budget {
		return false
	}
	dashes := m.StepsToCover(dist-control, 0, m.EffortMax, budget-turns)
	return turns+dashes <= budget
}
