package intercept

import "soccer_ai/internal/world"

type slot struct {
	who  world.Handle
	step int
	set  bool
}

// ranking keeps the two fastest players of one side. first.step <= second.step
// whenever both are set, and the player that reached a step value first keeps
// priority on ties.
type ranking struct {
	first  slot
	second slot
}

func newRanking(sentinel int) ranking {
	return ranking{
		first:  slot{step: sentinel},
		second: slot{step: sentinel},
	}
}

// offer inserts a candidate: it must strictly beat second to enter, and then
// strictly beat first to take the top slot.
func (r *ranking) offer(h world.Handle, step int) {
	if step >= r.second.step {
		return
	}
	r.second = slot{who: h, step: step, set: true}
	if r.second.step < r.first.step {
		r.first, r.second = r.second, r.first
	}
}

func (r *ranking) setFirst(h world.Handle, step int) {
	r.first = slot{who: h, step: step, set: true}
}
