package intercept

// Ownership classifies who is expected to control the ball next.
type Ownership int

const (
	OwnerUnknown Ownership = iota
	OwnerSelf
	OwnerTeammate
	OwnerOpponent
	OwnerContested
)

func (o Ownership) String() string {
	switch o {
	case OwnerSelf:
		return "self"
	case OwnerTeammate:
		return "teammate"
	case OwnerOpponent:
		return "opponent"
	case OwnerContested:
		return "contested"
	default:
		return "unknown"
	}
}

// Ownership compares the fastest steps of both sides. Self wins ties with
// teammates; equal steps across sides are contested.
func (t *Table) Ownership() Ownership {
	ours := min(t.selfStep, t.teammates.first.step)
	theirs := t.opponents.first.step
	switch {
	case ours >= t.cfg.Sentinel && theirs >= t.cfg.Sentinel:
		return OwnerUnknown
	case ours < theirs && t.selfStep <= t.teammates.first.step:
		return OwnerSelf
	case ours < theirs:
		return OwnerTeammate
	case theirs < ours:
		return OwnerOpponent
	default:
		return OwnerContested
	}
}
