// Package intercept estimates, once per cycle, how many steps the controlling
// player, each teammate and each opponent need to gain control of the ball.
//
// The Table is rebuilt by Update from a world snapshot and may afterwards be
// corrected by reach steps heard from teammates. Every handle it returns is
// only valid against the snapshot passed to the last Update.
package intercept

import (
	"context"

	"soccer_ai/internal/config"
	"soccer_ai/internal/logging"
	interceptlog "soccer_ai/internal/logging/intercept"
	"soccer_ai/internal/world"
)

type Table struct {
	cfg    config.InterceptConfig
	params CacheParams
	self   SelfSimulator
	player PlayerPredictor
	pub    logging.Publisher

	updateTime world.GameTime
	updated    bool
	updates    int

	ballCache BallCache
	selfCache []Info

	selfStep        int
	selfExhaustStep int
	goalieStep      int
	teammates       ranking
	opponents       ranking

	playerMap map[world.Handle]int
}

// New builds an empty table. A nil publisher discards diagnostics.
func New(sp *config.ServerConfig, ic *config.InterceptConfig, self SelfSimulator, player PlayerPredictor, pub logging.Publisher) *Table {
	if pub == nil {
		pub = logging.NopPublisher()
	}
	t := &Table{
		cfg:       *ic,
		params:    NewCacheParams(sp, ic),
		self:      self,
		player:    player,
		pub:       pub,
		ballCache: BallCache{pos: make([]world.Vec2, 0, ic.MaxStep)},
		selfCache: make([]Info, 0, (ic.MaxStep+1)*2),
		playerMap: make(map[world.Handle]int),
	}
	t.Clear()
	return t
}

// Clear resets every result to the sentinel state. The last update time is
// kept, so a repeated Update for the same cycle still does nothing.
func (t *Table) Clear() {
	t.ballCache.reset()
	t.selfCache = t.selfCache[:0]

	t.selfStep = t.cfg.Sentinel
	t.selfExhaustStep = t.cfg.Sentinel
	t.goalieStep = t.cfg.Sentinel
	t.teammates = newRanking(t.cfg.Sentinel)
	t.opponents = newRanking(t.cfg.Sentinel)

	clear(t.playerMap)
}

// Update rebuilds the table from ws unless it was already built for ws.Time.
func (t *Table) Update(ws *world.State) {
	if t.updated && ws.Time == t.updateTime {
		return
	}
	t.updateTime = ws.Time
	t.updated = true
	t.updates++

	t.Clear()

	if ws.Mode.Dead() {
		return
	}

	ctx := context.Background()
	if !ws.Self.PosValid() || !ws.Ball.PosValid() {
		interceptlog.InvalidObservation(ctx, t.pub, ws.Time.Cycle, interceptlog.InvalidObservationPayload{
			SelfPosCount: ws.Self.PosCount,
			BallPosCount: ws.Ball.PosCount,
		})
		return
	}

	t.createBallCache(ws)
	t.predictSelf(ctx, ws)
	t.predictOpponent(ctx, ws)
	t.predictTeammate(ctx, ws)

	interceptlog.TableUpdated(ctx, t.pub, ws.Time.Cycle, selfActor(ws), interceptlog.TableUpdatedPayload{
		SelfStep:        t.selfStep,
		SelfExhaustStep: t.selfExhaustStep,
		Teammate:        t.slotPayload(ws, t.teammates.first),
		SecondTeammate:  t.slotPayload(ws, t.teammates.second),
		Opponent:        t.slotPayload(ws, t.opponents.first),
		SecondOpponent:  t.slotPayload(ws, t.opponents.second),
	})
}

func (t *Table) createBallCache(ws *world.State) {
	vel := ws.Ball.Vel
	if _, ok := ws.KickableOpponent(); ok {
		vel = world.Vec2{}
	}
	t.ballCache = BuildBallCache(ws.Ball.Pos, vel, t.params)
}

func (t *Table) predictSelf(ctx context.Context, ws *world.State) {
	if ws.Self.Kickable {
		interceptlog.SelfKickable(ctx, t.pub, ws.Time.Cycle, selfActor(ws))
		t.selfStep = 0
		t.selfExhaustStep = 0
		return
	}

	maxStep := min(t.cfg.MaxStep, t.ballCache.Len())
	t.selfCache = t.self.Simulate(ws, &t.ballCache, maxStep, t.selfCache)

	if len(t.selfCache) == 0 {
		// callers fall back to the ball's inertia point
		interceptlog.SelfCacheEmpty(ctx, t.pub, ws.Time.Cycle, selfActor(ws))
		return
	}

	minStep := t.selfStep
	exhaustMinStep := t.selfExhaustStep
	for _, info := range t.selfCache {
		switch info.Stamina {
		case StaminaNormal:
			minStep = min(minStep, info.ReachStep())
		case StaminaExhaust:
			exhaustMinStep = min(exhaustMinStep, info.ReachStep())
		}
	}

	interceptlog.SelfSolutions(ctx, t.pub, ws.Time.Cycle, selfActor(ws), len(t.selfCache))

	t.selfStep = minStep
	t.selfExhaustStep = exhaustMinStep
}

func (t *Table) predictTeammate(ctx context.Context, ws *world.State) {
	t.predictSide(ctx, ws, world.SideTeammate)
}

func (t *Table) predictOpponent(ctx context.Context, ws *world.State) {
	t.predictSide(ctx, ws, world.SideOpponent)
}

func (t *Table) predictSide(ctx context.Context, ws *world.State, side world.Side) {
	r := &t.teammates
	staleCount := t.cfg.TeammateStaleCount
	kickable, hasKickable := ws.KickableTeammate()
	handles := ws.TeammateHandles()
	if side == world.SideOpponent {
		r = &t.opponents
		staleCount = t.cfg.OpponentStaleCount
		kickable, hasKickable = ws.KickableOpponent()
		handles = ws.OpponentHandles()
	}

	if hasKickable {
		r.setFirst(kickable, 0)
		interceptlog.KickablePlayer(ctx, t.pub, ws.Time.Cycle, playerActor(kickable), t.payload(ws, kickable, 0))
	}

	for _, h := range handles {
		if hasKickable && h == kickable {
			t.playerMap[h] = 0
			continue
		}

		p, _ := ws.Player(h)
		if p.PosCount >= staleCount {
			skipped := t.payload(ws, h, t.cfg.Sentinel)
			skipped.PosCount = p.PosCount
			interceptlog.PlayerSkipped(ctx, t.pub, ws.Time.Cycle, playerActor(h), skipped)
			continue
		}

		step := t.player.Predict(&t.ballCache, p, false)
		if p.Goalie {
			goalieStep := t.player.Predict(&t.ballCache, p, true)
			if side == world.SideTeammate {
				t.goalieStep = goalieStep
			}
			if goalieStep > 0 && goalieStep < t.cfg.Sentinel && goalieStep < step {
				step = goalieStep
			}
		}

		interceptlog.PlayerEvaluated(ctx, t.pub, ws.Time.Cycle, playerActor(h), t.payload(ws, h, step))

		r.offer(h, step)
		t.playerMap[h] = step
	}
}

// UpdateCount is the number of updates that actually rebuilt the table.
func (t *Table) UpdateCount() int { return t.updates }

func (t *Table) UpdateTime() world.GameTime { return t.updateTime }

func (t *Table) SelfStep() int        { return t.selfStep }
func (t *Table) SelfExhaustStep() int { return t.selfExhaustStep }
func (t *Table) GoalieStep() int      { return t.goalieStep }

func (t *Table) TeammateStep() int       { return t.teammates.first.step }
func (t *Table) SecondTeammateStep() int { return t.teammates.second.step }
func (t *Table) OpponentStep() int       { return t.opponents.first.step }
func (t *Table) SecondOpponentStep() int { return t.opponents.second.step }

func (t *Table) FirstTeammate() (world.Handle, bool) {
	return t.teammates.first.who, t.teammates.first.set
}

func (t *Table) SecondTeammate() (world.Handle, bool) {
	return t.teammates.second.who, t.teammates.second.set
}

func (t *Table) FirstOpponent() (world.Handle, bool) {
	return t.opponents.first.who, t.opponents.first.set
}

func (t *Table) SecondOpponent() (world.Handle, bool) {
	return t.opponents.second.who, t.opponents.second.set
}

// StepOf returns the reach step recorded for h this cycle. Players that were
// skipped or not seen are absent and should be treated as unreachable.
func (t *Table) StepOf(h world.Handle) (int, bool) {
	step, ok := t.playerMap[h]
	return step, ok
}

// PlayerMap returns a copy of every recorded reach step.
func (t *Table) PlayerMap() map[world.Handle]int {
	out := make(map[world.Handle]int, len(t.playerMap))
	for h, step := range t.playerMap {
		out[h] = step
	}
	return out
}

func (t *Table) BallCache() *BallCache { return &t.ballCache }

// SelfCache returns the self solutions in the order the simulator found them.
func (t *Table) SelfCache() []Info {
	return append([]Info(nil), t.selfCache...)
}

// Resolve looks h up in ws, refusing snapshots other than the one the table
// was built from.
func (t *Table) Resolve(ws *world.State, h world.Handle) (*world.Player, bool) {
	if !t.updated || ws.Time != t.updateTime {
		return nil, false
	}
	return ws.Player(h)
}

func (t *Table) payload(ws *world.State, h world.Handle, step int) interceptlog.PlayerPayload {
	out := interceptlog.PlayerPayload{Unum: h.Unum, Step: step}
	if p, ok := ws.Player(h); ok {
		out.X, out.Y = p.Pos.X, p.Pos.Y
	}
	return out
}

func (t *Table) slotPayload(ws *world.State, s slot) *interceptlog.PlayerPayload {
	if !s.set {
		return nil
	}
	p := t.payload(ws, s.who, s.step)
	return &p
}

func selfActor(ws *world.State) logging.EntityRef {
	return interceptlog.Actor(logging.EntityKindSelf, ws.Self.Unum)
}

func playerActor(h world.Handle) logging.EntityRef {
	kind := logging.EntityKindTeammate
	if h.Side == world.SideOpponent {
		kind = logging.EntityKindOpponent
	}
	return interceptlog.Actor(kind, h.Unum)
}
