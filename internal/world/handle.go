package world

import "fmt"

// Handle names a player inside one State. It stays meaningful only for the
// snapshot that produced it; resolve it again through State.Player.
type Handle struct {
	Side  Side `json:"side"`
	Unum  int  `json:"unum"`
	Index int  `json:"index"`
}

func (h Handle) String() string {
	return fmt.Sprintf("%s:%d", h.Side, h.Unum)
}

func (s *State) handle(side Side, i int) Handle {
	return Handle{Side: side, Unum: s.roster(side)[i].Unum, Index: i}
}

// Player resolves h against s. The lookup fails when the index is out of
// range or the slot now holds a different uniform number.
func (s *State) Player(h Handle) (*Player, bool) {
	ps := s.roster(h.Side)
	if h.Index < 0 || h.Index >= len(ps) {
		return nil, false
	}
	p := &ps[h.Index]
	if p.Unum != h.Unum {
		return nil, false
	}
	return p, true
}

// TeammateHandles lists the teammate roster in distance-from-ball order.
func (s *State) TeammateHandles() []Handle { return s.handles(SideTeammate) }

// OpponentHandles lists the opponent roster in distance-from-ball order.
func (s *State) OpponentHandles() []Handle { return s.handles(SideOpponent) }

func (s *State) handles(side Side) []Handle {
	ps := s.roster(side)
	out := make([]Handle, len(ps))
	for i := range ps {
		out[i] = s.handle(side, i)
	}
	return out
}

// FindTeammate looks a teammate up by uniform number.
func (s *State) FindTeammate(unum int) (Handle, bool) { return s.find(SideTeammate, unum) }

// FindOpponent looks an opponent up by uniform number.
func (s *State) FindOpponent(unum int) (Handle, bool) { return s.find(SideOpponent, unum) }

func (s *State) find(side Side, unum int) (Handle, bool) {
	if unum <= 0 {
		return Handle{}, false
	}
	for i := range s.roster(side) {
		if s.roster(side)[i].Unum == unum {
			return s.handle(side, i), true
		}
	}
	return Handle{}, false
}
