// Package agent holds the state one player's decision loop carries from
// cycle to cycle.
package agent

import (
	"context"

	"soccer_ai/internal/config"
	"soccer_ai/internal/intercept"
	"soccer_ai/internal/logging"
	interceptlog "soccer_ai/internal/logging/intercept"
	"soccer_ai/internal/world"
)

// Context is created once per agent and threaded through every cycle. It
// owns the intercept table; nothing else should keep a table of its own.
type Context struct {
	Intercept *intercept.Table

	log logging.Publisher
}

func NewContext(sp *config.ServerConfig, pt *config.PlayerTypesConfig, ic *config.InterceptConfig, pub logging.Publisher) *Context {
	if pub == nil {
		pub = logging.NopPublisher()
	}
	return &Context{
		Intercept: intercept.New(sp, ic,
			intercept.NewSelfInterceptSimulator(sp, pt, ic),
			intercept.NewPlayerIntercept(sp, pt, ic),
			pub),
		log: pub,
	}
}

// Cycle refreshes the per-cycle caches from ws and then applies the reach
// reports heard during the same cycle, in arrival order. Reports naming
// neither side are logged and dropped.
func (c *Context) Cycle(ws *world.State, heard []config.HeardReport) {
	c.Intercept.Update(ws)
	for _, h := range heard {
		switch h.Side {
		case "teammate":
			c.Intercept.HearTeammate(ws, h.Unum, h.Step)
		case "opponent":
			c.Intercept.HearOpponent(ws, h.Unum, h.Step)
		default:
			interceptlog.HeardIgnored(context.Background(), c.log, ws.Time.Cycle, interceptlog.HeardIgnoredPayload{
				Side: h.Side,
				Unum: h.Unum,
				Step: h.Step,
			})
		}
	}
}
