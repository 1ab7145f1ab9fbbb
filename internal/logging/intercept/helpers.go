package intercept

import (
	"context"
	"strconv"

	"soccer_ai/internal/logging"
)

const (
	// EventTableUpdated summarises the fastest entities after an update.
	EventTableUpdated logging.EventType = "intercept.table_updated"
	// EventInvalidObservation is emitted when self or ball position cannot be trusted.
	EventInvalidObservation logging.EventType = "intercept.invalid_observation"
	// EventSelfKickable is emitted when self already controls the ball and no search runs.
	EventSelfKickable logging.EventType = "intercept.self_kickable"
	// EventSelfCacheEmpty is emitted when the self simulator found no solution.
	EventSelfCacheEmpty logging.EventType = "intercept.self_cache_empty"
	// EventSelfSolutions reports how many candidates the self simulator produced.
	EventSelfSolutions logging.EventType = "intercept.self_solutions"
	// EventKickablePlayer is emitted when a teammate or opponent already controls the ball.
	EventKickablePlayer logging.EventType = "intercept.kickable_player"
	// EventPlayerSkipped is emitted for players whose position is too old to rank.
	EventPlayerSkipped logging.EventType = "intercept.player_skipped"
	// EventPlayerEvaluated carries one player's predicted reach step.
	EventPlayerEvaluated logging.EventType = "intercept.player_evaluated"
	// EventHeardAccepted is emitted when a heard report replaces the fastest player.
	EventHeardAccepted logging.EventType = "intercept.heard_accepted"
	// EventHeardRejected is emitted when a heard report loses to existing data.
	EventHeardRejected logging.EventType = "intercept.heard_rejected"
	// EventHeardIgnored is emitted for a heard report naming neither side.
	EventHeardIgnored logging.EventType = "intercept.heard_ignored"
)

// PlayerPayload locates a player together with the step attributed to it.
type PlayerPayload struct {
	Unum     int     `json:"unum"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Step     int     `json:"step"`
	PosCount int     `json:"posCount,omitempty"`
}

// TableUpdatedPayload captures the fastest entities found this cycle.
type TableUpdatedPayload struct {
	SelfStep        int            `json:"selfStep"`
	SelfExhaustStep int            `json:"selfExhaustStep"`
	Teammate        *PlayerPayload `json:"teammate,omitempty"`
	SecondTeammate  *PlayerPayload `json:"secondTeammate,omitempty"`
	Opponent        *PlayerPayload `json:"opponent,omitempty"`
	SecondOpponent  *PlayerPayload `json:"secondOpponent,omitempty"`
}

// InvalidObservationPayload records the observation ages that failed the check.
type InvalidObservationPayload struct {
	SelfPosCount int `json:"selfPosCount"`
	BallPosCount int `json:"ballPosCount"`
}

// HeardRejectedPayload explains why a heard report was ignored.
type HeardRejectedPayload struct {
	Unum        int    `json:"unum"`
	Step        int    `json:"step"`
	CurrentStep int    `json:"currentStep"`
	Reason      string `json:"reason"`
}

// HeardIgnoredPayload echoes a report that could not be attributed to a side.
type HeardIgnoredPayload struct {
	Side string `json:"side"`
	Unum int    `json:"unum"`
	Step int    `json:"step"`
}

// SolutionsPayload counts the self simulator's candidates.
type SolutionsPayload struct {
	Count int `json:"count"`
}

// Actor builds the entity reference for a player of the given kind.
func Actor(kind logging.EntityKind, unum int) logging.EntityRef {
	if unum <= 0 {
		return logging.EntityRef{Kind: kind}
	}
	return logging.EntityRef{ID: strconv.Itoa(unum), Kind: kind}
}

func publish(ctx context.Context, pub logging.Publisher, event logging.Event) {
	if pub == nil {
		return
	}
	event.Category = logging.CategoryIntercept
	pub.Publish(ctx, event)
}

// TableUpdated publishes the per-cycle summary.
func TableUpdated(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload TableUpdatedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventTableUpdated,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Payload:  payload,
	})
}

// InvalidObservation publishes the reason an update stopped before prediction.
func InvalidObservation(ctx context.Context, pub logging.Publisher, cycle int64, payload InvalidObservationPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventInvalidObservation,
		Cycle:    cycle,
		Actor:    logging.EntityRef{Kind: logging.EntityKindSelf},
		Severity: logging.SeverityInfo,
		Message:  "invalid self or ball pos",
		Payload:  payload,
	})
}

// SelfKickable notes that the estimation loop was skipped.
func SelfKickable(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef) {
	publish(ctx, pub, logging.Event{
		Type:     EventSelfKickable,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Message:  "already kickable, no estimation loop",
	})
}

// SelfCacheEmpty warns that no self solution exists; callers fall back to the
// ball's inertia point.
func SelfCacheEmpty(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef) {
	publish(ctx, pub, logging.Event{
		Type:     EventSelfCacheEmpty,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityWarn,
		Message:  "self cache is empty",
	})
}

// SelfSolutions reports the candidate count.
func SelfSolutions(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, count int) {
	publish(ctx, pub, logging.Event{
		Type:     EventSelfSolutions,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Payload:  SolutionsPayload{Count: count},
	})
}

// KickablePlayer records a teammate or opponent that already controls the ball.
func KickablePlayer(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload PlayerPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventKickablePlayer,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Message:  "set fastest " + string(actor.Kind),
		Payload:  payload,
	})
}

// PlayerSkipped records a player left out of the ranking for low accuracy.
func PlayerSkipped(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload PlayerPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventPlayerSkipped,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Message:  "low accuracy, skip",
		Payload:  payload,
	})
}

// PlayerEvaluated records one predicted reach step.
func PlayerEvaluated(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload PlayerPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventPlayerEvaluated,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Payload:  payload,
	})
}

// HeardAccepted records a heard report that became the fastest player.
func HeardAccepted(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload PlayerPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventHeardAccepted,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Payload:  payload,
	})
}

// HeardRejected records a heard report that was ignored.
func HeardRejected(ctx context.Context, pub logging.Publisher, cycle int64, actor logging.EntityRef, payload HeardRejectedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventHeardRejected,
		Cycle:    cycle,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Message:  payload.Reason,
		Payload:  payload,
	})
}

// HeardIgnored warns about a report whose side is neither teammate nor opponent.
func HeardIgnored(ctx context.Context, pub logging.Publisher, cycle int64, payload HeardIgnoredPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventHeardIgnored,
		Cycle:    cycle,
		Actor:    logging.EntityRef{Kind: logging.EntityKindUnknown},
		Severity: logging.SeverityWarn,
		Message:  "unknown side " + payload.Side,
		Payload:  payload,
	})
}
