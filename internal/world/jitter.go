package world

import (
	"math/rand"

	"soccer_ai/internal/util"
)

// Perturb adds uniform observation noise to every position and velocity, then
// restores the distance-from-ball ordering.
func (s *State) Perturb(rng *rand.Rand, posNoise, velNoise float64) {
	jitter := func(v Vec2, amount float64) Vec2 {
		return Vec2{X: util.Jitter(rng, v.X, amount), Y: util.Jitter(rng, v.Y, amount)}
	}
	s.Ball.Pos = jitter(s.Ball.Pos, posNoise)
	s.Ball.Vel = jitter(s.Ball.Vel, velNoise)
	s.Self.Pos = jitter(s.Self.Pos, posNoise)
	s.Self.Vel = jitter(s.Self.Vel, velNoise)
	for i := range s.Teammates {
		s.Teammates[i].Pos = jitter(s.Teammates[i].Pos, posNoise)
		s.Teammates[i].Vel = jitter(s.Teammates[i].Vel, velNoise)
	}
	for i := range s.Opponents {
		s.Opponents[i].Pos = jitter(s.Opponents[i].Pos, posNoise)
		s.Opponents[i].Vel = jitter(s.Opponents[i].Vel, velNoise)
	}
	s.SortByBallDistance()
}
