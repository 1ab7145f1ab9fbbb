package intercept

import (
	"soccer_ai/internal/config"
	"soccer_ai/internal/world"
)

// BallCache holds the predicted ball position for each future step; index 0
// is the current position.
type BallCache struct {
	pos []world.Vec2
}

// CacheParams bounds the trajectory projection.
type CacheParams struct {
	MaxStep   int
	MinSteps  int
	SlowSpeed float64
	Decay     float64
	MaxX      float64
	MaxY      float64
}

// NewCacheParams derives the projection bounds from the server constants.
func NewCacheParams(sp *config.ServerConfig, ic *config.InterceptConfig) CacheParams {
	maxX, maxY := sp.BallBounds(ic.FieldMargin)
	return CacheParams{
		MaxStep:   ic.MaxStep,
		MinSteps:  ic.MinCacheSteps,
		SlowSpeed: ic.SlowBallSpeed,
		Decay:     sp.BallDecay,
		MaxX:      maxX,
		MaxY:      maxY,
	}
}

// BuildBallCache projects the ball forward. The sequence stops once the ball
// has nearly stopped and at least MinSteps positions exist, once the ball
// leaves the bounds, or at MaxStep positions.
func BuildBallCache(pos, vel world.Vec2, p CacheParams) BallCache {
	c := BallCache{pos: make([]world.Vec2, 0, p.MaxStep)}
	speed := vel.Len()
	for i := 0; i < p.MaxStep; i++ {
		c.pos = append(c.pos, pos)

		if speed < p.SlowSpeed && len(c.pos) >= p.MinSteps {
			break
		}

		pos = pos.Add(vel)
		vel = vel.Scale(p.Decay)
		speed *= p.Decay

		if p.MaxX < pos.AbsX() || p.MaxY < pos.AbsY() {
			break
		}
	}
	return c
}

func (c *BallCache) Len() int { return len(c.pos) }

// At returns the position at step, clamped to the last cached position.
func (c *BallCache) At(step int) world.Vec2 {
	if len(c.pos) == 0 {
		return world.Vec2{}
	}
	if step < 0 {
		step = 0
	}
	if step >= len(c.pos) {
		step = len(c.pos) - 1
	}
	return c.pos[step]
}

// Final is the last cached position: the ball's inertia point, or where it
// leaves the field.
func (c *BallCache) Final() world.Vec2 { return c.At(len(c.pos) - 1) }

func (c *BallCache) Positions() []world.Vec2 {
	return append([]world.Vec2(nil), c.pos...)
}

func (c *BallCache) reset() { c.pos = c.pos[:0] }
