package intercept

import (
	"soccer_ai/internal/config"
	"soccer_ai/internal/logging"
	"soccer_ai/internal/world"
)

const sentinel = 1000

type fixture struct {
	sp *config.ServerConfig
	pt *config.PlayerTypesConfig
	ic *config.InterceptConfig
}

func newFixture() fixture {
	sp := config.DefaultServer()
	ic := config.DefaultIntercept()
	return fixture{sp: &sp, pt: &config.PlayerTypesConfig{}, ic: &ic}
}

func (f fixture) table(self SelfSimulator, player PlayerPredictor, pub logging.Publisher) *Table {
	return New(f.sp, f.ic, self, player, pub)
}

func (f fixture) defaultTable(pub logging.Publisher) *Table {
	return f.table(NewSelfInterceptSimulator(f.sp, f.pt, f.ic), NewPlayerIntercept(f.sp, f.pt, f.ic), pub)
}

// countingSelf returns the given solutions and counts calls.
type countingSelf struct {
	calls   int
	maxStep int
	infos   []Info
}

func (c *countingSelf) Simulate(_ *world.State, _ *BallCache, maxStep int, out []Info) []Info {
	c.calls++
	c.maxStep = maxStep
	return append(out, c.infos...)
}

// stepsByUnum predicts a fixed step per uniform number; goalie calls use
// the goalie map when it has an entry.
type stepsByUnum struct {
	normal map[int]int
	goalie map[int]int
	calls  map[int]int
}

func (s *stepsByUnum) Predict(_ *BallCache, p *world.Player, goalie bool) int {
	if s.calls == nil {
		s.calls = map[int]int{}
	}
	s.calls[p.Unum]++
	if goalie {
		if step, ok := s.goalie[p.Unum]; ok {
			return step
		}
	}
	if step, ok := s.normal[p.Unum]; ok {
		return step
	}
	return sentinel
}

func player(side world.Side, unum int, x, y float64) world.Player {
	return world.Player{Side: side, Unum: unum, Pos: world.Vec2{X: x, Y: y}}
}

// baseState has a resting ball at the centre spot and self far enough away
// not to control it.
func baseState(cycle int64) *world.State {
	return &world.State{
		Time: world.GameTime{Cycle: cycle},
		Mode: world.ModePlayOn,
		Self: world.Self{
			Player:   world.Player{Side: world.SideTeammate, Unum: 9, Pos: world.Vec2{X: -20}},
			Stamina:  8000,
			Effort:   1,
			Recovery: 1,
		},
	}
}
