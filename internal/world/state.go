package world

import "sort"

// posValidCount is the observation age after which a position is no longer trusted.
const posValidCount = 30

type Side int

const (
	SideTeammate Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideTeammate:
		return "teammate"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// GameTime identifies one simulation cycle. Stopped counts the cycles
// elapsed while the clock is paused during a set play.
type GameTime struct {
	Cycle   int64 `json:"cycle"`
	Stopped int64 `json:"stopped"`
}

type GameMode int

const (
	ModePlayOn GameMode = iota
	ModeBeforeKickOff
	ModeTimeOver
	ModeKickOff
	ModeKickIn
	ModeFreeKick
	ModeCornerKick
	ModeGoalKick
	ModeGoal
)

var gameModeNames = map[string]GameMode{
	"play_on":         ModePlayOn,
	"before_kick_off": ModeBeforeKickOff,
	"time_over":       ModeTimeOver,
	"kick_off":        ModeKickOff,
	"kick_in":         ModeKickIn,
	"free_kick":       ModeFreeKick,
	"corner_kick":     ModeCornerKick,
	"goal_kick":       ModeGoalKick,
	"goal":            ModeGoal,
}

// ParseGameMode maps a mode name such as "before_kick_off" to its value.
func ParseGameMode(name string) (GameMode, bool) {
	m, ok := gameModeNames[name]
	return m, ok
}

// Dead reports whether the ball cannot be played in this mode at all.
func (m GameMode) Dead() bool {
	return m == ModeBeforeKickOff || m == ModeTimeOver
}

type Ball struct {
	Pos      Vec2
	Vel      Vec2
	PosCount int
	VelCount int
}

func (b *Ball) PosValid() bool { return b.PosCount < posValidCount }

type Player struct {
	Side     Side
	Unum     int // -1 when the uniform number was not seen
	Type     int // heterogeneous player type id
	Pos      Vec2
	Vel      Vec2
	Body     float64 // body direction, degrees
	PosCount int
	Goalie   bool
	Kickable bool
}

func (p *Player) PosValid() bool { return p.PosCount < posValidCount }

// Self is the player this agent controls.
type Self struct {
	Player
	Stamina  float64
	Effort   float64
	Recovery float64
}

// State is one cycle's world snapshot. Teammates and Opponents exclude self
// and are kept ordered by distance from the ball.
type State struct {
	Time      GameTime
	Mode      GameMode
	Ball      Ball
	Self      Self
	Teammates []Player
	Opponents []Player
}

// SortByBallDistance orders both rosters by increasing distance from the ball.
// Ties keep their original order.
func (s *State) SortByBallDistance() {
	byBall := func(ps []Player) {
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Pos.Dist(s.Ball.Pos) < ps[j].Pos.Dist(s.Ball.Pos)
		})
	}
	byBall(s.Teammates)
	byBall(s.Opponents)
}

func (s *State) roster(side Side) []Player {
	if side == SideOpponent {
		return s.Opponents
	}
	return s.Teammates
}

// KickableTeammate returns the nearest teammate able to kick the ball.
func (s *State) KickableTeammate() (Handle, bool) { return s.firstKickable(SideTeammate) }

// KickableOpponent returns the nearest opponent able to kick the ball.
func (s *State) KickableOpponent() (Handle, bool) { return s.firstKickable(SideOpponent) }

func (s *State) firstKickable(side Side) (Handle, bool) {
	for i := range s.roster(side) {
		if s.roster(side)[i].Kickable {
			return s.handle(side, i), true
		}
	}
	return Handle{}, false
}
