package intercept

import (
	"sort"

	"soccer_ai/internal/world"
)

// Report is a serialisable view of the table for one snapshot.
type Report struct {
	Cycle           int64        `json:"cycle" jsonschema:"required"`
	Stopped         int64        `json:"stopped"`
	SelfStep        int          `json:"self_step" jsonschema:"required"`
	SelfExhaustStep int          `json:"self_exhaust_step" jsonschema:"required"`
	SelfSolutions   int          `json:"self_solutions"`
	GoalieStep      int          `json:"goalie_step"`
	Teammate        *PlayerStep  `json:"teammate,omitempty"`
	SecondTeammate  *PlayerStep  `json:"second_teammate,omitempty"`
	Opponent        *PlayerStep  `json:"opponent,omitempty"`
	SecondOpponent  *PlayerStep  `json:"second_opponent,omitempty"`
	Ownership       string       `json:"ownership" jsonschema:"enum=unknown,enum=self,enum=teammate,enum=opponent,enum=contested"`
	BallCache       []Point      `json:"ball_cache"`
	Players         []PlayerStep `json:"players"`
}

type PlayerStep struct {
	Side string  `json:"side" jsonschema:"enum=teammate,enum=opponent"`
	Unum int     `json:"unum"`
	Step int     `json:"step"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Report builds the view. ws must be the snapshot of the last Update.
func (t *Table) Report(ws *world.State) Report {
	r := Report{
		Cycle:           t.updateTime.Cycle,
		Stopped:         t.updateTime.Stopped,
		SelfStep:        t.selfStep,
		SelfExhaustStep: t.selfExhaustStep,
		SelfSolutions:   len(t.selfCache),
		GoalieStep:      t.goalieStep,
		Teammate:        t.playerStep(ws, t.teammates.first),
		SecondTeammate:  t.playerStep(ws, t.teammates.second),
		Opponent:        t.playerStep(ws, t.opponents.first),
		SecondOpponent:  t.playerStep(ws, t.opponents.second),
		Ownership:       t.Ownership().String(),
		BallCache:       make([]Point, 0, t.ballCache.Len()),
		Players:         make([]PlayerStep, 0, len(t.playerMap)),
	}
	for _, p := range t.ballCache.pos {
		r.BallCache = append(r.BallCache, Point{X: p.X, Y: p.Y})
	}
	for h, step := range t.playerMap {
		r.Players = append(r.Players, t.toPlayerStep(ws, h, step))
	}
	sort.Slice(r.Players, func(i, j int) bool {
		a, b := r.Players[i], r.Players[j]
		if a.Side != b.Side {
			return a.Side > b.Side
		}
		if a.Step != b.Step {
			return a.Step < b.Step
		}
		return a.Unum < b.Unum
	})
	return r
}

func (t *Table) playerStep(ws *world.State, s slot) *PlayerStep {
	if !s.set {
		return nil
	}
	ps := t.toPlayerStep(ws, s.who, s.step)
	return &ps
}

func (t *Table) toPlayerStep(ws *world.State, h world.Handle, step int) PlayerStep {
	ps := PlayerStep{Side: h.Side.String(), Unum: h.Unum, Step: step}
	if p, ok := t.Resolve(ws, h); ok {
		ps.X, ps.Y = p.Pos.X, p.Pos.Y
	}
	return ps
}
