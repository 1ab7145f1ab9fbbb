package world

import (
	"errors"
	"fmt"

	"soccer_ai/internal/config"
)

var ErrUnknownMode = errors.New("unknown game mode")

// NewState converts a scenario into a snapshot with both rosters ordered by
// distance from the ball.
func NewState(sc *config.Scenario) (*State, error) {
	mode, ok := ParseGameMode(sc.Mode)
	if !ok {
		return nil, fmt.Errorf("scenario %q mode %q: %w", sc.ID, sc.Mode, ErrUnknownMode)
	}
	s := &State{
		Time: GameTime{Cycle: sc.Time.Cycle, Stopped: sc.Time.Stopped},
		Mode: mode,
		Ball: Ball{
			Pos:      vec(sc.Ball.Pos),
			Vel:      vec(sc.Ball.Vel),
			PosCount: sc.Ball.PosCount,
			VelCount: sc.Ball.VelCount,
		},
		Self: Self{
			Player:   player(SideTeammate, sc.Self.PlayerDef),
			Stamina:  sc.Self.Stamina,
			Effort:   sc.Self.Effort,
			Recovery: sc.Self.Recovery,
		},
	}
	for _, p := range sc.Teammates {
		s.Teammates = append(s.Teammates, player(SideTeammate, p))
	}
	for _, p := range sc.Opponents {
		s.Opponents = append(s.Opponents, player(SideOpponent, p))
	}
	s.SortByBallDistance()
	return s, nil
}

func vec(v config.Vec2Def) Vec2 { return Vec2{X: v.X, Y: v.Y} }

func player(side Side, p config.PlayerDef) Player {
	unum := p.Unum
	if unum == 0 {
		unum = -1
	}
	return Player{
		Side:     side,
		Unum:     unum,
		Type:     p.Type,
		Pos:      vec(p.Pos),
		Vel:      vec(p.Vel),
		Body:     p.Body,
		PosCount: p.PosCount,
		Goalie:   p.Goalie,
		Kickable: p.Kickable,
	}
}

// Clone returns a deep copy so batch variants can be perturbed independently.
func (s *State) Clone() *State {
	c := *s
	c.Teammates = append([]Player(nil), s.Teammates...)
	c.Opponents = append([]Player(nil), s.Opponents...)
	return &c
}
