package intercept

import "soccer_ai/internal/world"

// SelfSimulator searches the controlling player's dash and turn sequences.
// Simulate appends one Info per solution found within the first maxStep
// cache steps and returns the extended slice.
type SelfSimulator interface {
	Simulate(ws *world.State, cache *BallCache, maxStep int, out []Info) []Info
}

// PlayerPredictor estimates the reach step of any observed player. It returns
// the table's sentinel when the ball cannot be reached within the cache.
type PlayerPredictor interface {
	Predict(cache *BallCache, p *world.Player, goalie bool) int
}

type SelfSimulatorFunc func(ws *world.State, cache *BallCache, maxStep int, out []Info) []Info

func (f SelfSimulatorFunc) Simulate(ws *world.State, cache *BallCache, maxStep int, out []Info) []Info {
	return f(ws, cache, maxStep, out)
}

type PlayerPredictorFunc func(cache *BallCache, p *world.Player, goalie bool) int

func (f PlayerPredictorFunc) Predict(cache *BallCache, p *world.Player, goalie bool) int {
	return f(cache, p, goalie)
}
