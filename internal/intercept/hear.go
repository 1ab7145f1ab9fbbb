package intercept

import (
	"context"

	"soccer_ai/internal/logging"
	interceptlog "soccer_ai/internal/logging/intercept"
	"soccer_ai/internal/world"
)

// HearTeammate applies a reach step reported over the radio. It only takes
// effect when no fastest teammate is known or the reported step is strictly
// better.
func (t *Table) HearTeammate(ws *world.State, unum, step int) {
	ctx := context.Background()
	actor := interceptlog.Actor(logging.EntityKindTeammate, unum)
	if t.teammates.first.set && step >= t.teammates.first.step {
		interceptlog.HeardRejected(ctx, t.pub, ws.Time.Cycle, actor, interceptlog.HeardRejectedPayload{
			Unum:        unum,
			Step:        step,
			CurrentStep: t.teammates.first.step,
			Reason:      "exist faster reach step",
		})
		return
	}

	h, ok := ws.FindTeammate(unum)
	if !ok {
		return
	}

	t.teammates.setFirst(h, step)
	t.playerMap[h] = step

	interceptlog.HeardAccepted(ctx, t.pub, ws.Time.Cycle, actor, t.payload(ws, h, step))
}

// HearOpponent applies a reported opponent reach step. Besides requiring a
// strictly better step, it never overrides an opponent seen this very cycle.
func (t *Table) HearOpponent(ws *world.State, unum, step int) {
	ctx := context.Background()
	actor := interceptlog.Actor(logging.EntityKindOpponent, unum)
	if first := t.opponents.first; first.set {
		if step >= first.step {
			interceptlog.HeardRejected(ctx, t.pub, ws.Time.Cycle, actor, interceptlog.HeardRejectedPayload{
				Unum:        unum,
				Step:        step,
				CurrentStep: first.step,
				Reason:      "exist faster reach step",
			})
			return
		}

		if p, ok := ws.Player(first.who); ok && p.Unum == unum && p.PosCount == 0 {
			interceptlog.HeardRejected(ctx, t.pub, ws.Time.Cycle, actor, interceptlog.HeardRejectedPayload{
				Unum:        unum,
				Step:        step,
				CurrentStep: first.step,
				Reason:      "opponent is seen",
			})
			return
		}
	}

	h, ok := ws.FindOpponent(unum)
	if !ok {
		return
	}

	t.opponents.setFirst(h, step)
	t.playerMap[h] = step

	interceptlog.HeardAccepted(ctx, t.pub, ws.Time.Cycle, actor, t.payload(ws, h, step))
}
