package intercept

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soccer_ai/internal/world"
)

func restingCache(f fixture, at world.Vec2) *BallCache {
	c := BuildBallCache(at, world.Vec2{}, NewCacheParams(f.sp, f.ic))
	return &c
}

func TestPlayerInterceptPredict(t *testing.T) {
	f := newFixture()
	pi := NewPlayerIntercept(f.sp, f.pt, f.ic)
	cache := restingCache(f, world.Vec2{})

	t.Run("already in reach", func(t *testing.T) {
		p := player(world.SideTeammate, 7, 0.5, 0)
		assert.Equal(t, 1, pi.Predict(cache, &p, false))
	})

	t.Run("dashes straight at the ball", func(t *testing.T) {
		p := player(world.SideTeammate, 7, 6, 0)
		p.Body = 180
		assert.Equal(t, 6, pi.Predict(cache, &p, false))
	})

	t.Run("old observation earns a bonus", func(t *testing.T) {
		p := player(world.SideTeammate, 7, 6, 0)
		p.Body = 180
		p.PosCount = 3
		assert.Equal(t, 3, pi.Predict(cache, &p, false))
	})

	t.Run("must turn first", func(t *testing.T) {
		p := player(world.SideTeammate, 7, 6, 0)
		assert.Equal(t, 7, pi.Predict(cache, &p, false))
	})

	t.Run("extreme body angles", func(t *testing.T) {
		p := player(world.SideTeammate, 7, 6, 0)
		p.Body = 1e20
		assert.Contains(t, []int{6, 7}, pi.Predict(cache, &p, false))
		p.Body = math.Inf(1)
		assert.Equal(t, 6, pi.Predict(cache, &p, false))
	})

	t.Run("out of reach", func(t *testing.T) {
		p := player(world.SideOpponent, 4, 30, 0)
		assert.Equal(t, sentinel, pi.Predict(cache, &p, false))
	})

	t.Run("goalie outside own area", func(t *testing.T) {
		p := player(world.SideTeammate, 1, 0.5, 0)
		p.Goalie = true
		assert.Equal(t, sentinel, pi.Predict(cache, &p, true))
	})
}

func TestPlayerInterceptGoalieCatch(t *testing.T) {
	f := newFixture()
	pi := NewPlayerIntercept(f.sp, f.pt, f.ic)
	cache := restingCache(f, world.Vec2{X: 45})

	g := player(world.SideOpponent, 1, 46.8, 0)
	g.Goalie = true
	g.Body = 180

	assert.Equal(t, 2, pi.Predict(cache, &g, false))
	assert.Equal(t, 1, pi.Predict(cache, &g, true))

	mate := g
	mate.Side = world.SideTeammate
	assert.Equal(t, sentinel, pi.Predict(cache, &mate, true), "opponents' area is not ours")
}

func TestSelfSimulatorNormalStamina(t *testing.T) {
	f := newFixture()
	tbl := f.defaultTable(nil)

	ws := baseState(1)
	ws.Self.Pos = world.Vec2{X: 6}
	ws.Self.Body = 180
	tbl.Update(ws)

	assert.Equal(t, 6, tbl.SelfStep())
	assert.Equal(t, sentinel, tbl.SelfExhaustStep())

	infos := tbl.SelfCache()
	require.Len(t, infos, 4)
	for i, info := range infos {
		assert.Equal(t, 6+i, info.Step)
		assert.Equal(t, StaminaNormal, info.Stamina)
		assert.Zero(t, info.TurnSteps)
		assert.LessOrEqual(t, info.BallDist, 1.085+1e-9)
	}
	assert.Equal(t, 6, infos[0].DashSteps)
	assert.Equal(t, 100.0, infos[0].DashPower)
}

func TestSelfSimulatorExhaust(t *testing.T) {
	f := newFixture()
	tbl := f.defaultTable(nil)

	ws := baseState(1)
	ws.Self.Pos = world.Vec2{X: 6}
	ws.Self.Body = 180
	ws.Self.Stamina = 2450
	tbl.Update(ws)

	assert.Equal(t, sentinel, tbl.SelfStep())
	assert.Equal(t, 6, tbl.SelfExhaustStep())
	for _, info := range tbl.SelfCache() {
		assert.Equal(t, StaminaExhaust, info.Stamina)
		assert.Less(t, info.StaminaLeft, 2400.0)
	}
}

func TestSelfSimulatorDrift(t *testing.T) {
	f := newFixture()
	tbl := f.defaultTable(nil)

	ws := baseState(1)
	ws.Self.Pos = world.Vec2{X: 2}
	ws.Self.Vel = world.Vec2{X: -1}
	tbl.Update(ws)

	assert.Equal(t, 1, tbl.SelfStep())
	infos := tbl.SelfCache()
	require.NotEmpty(t, infos)
	assert.Zero(t, infos[0].DashSteps)
	assert.InDelta(t, 1.0, infos[0].SelfPos.X, 1e-9)
}

func TestSelfSimulatorGoalieCatchArea(t *testing.T) {
	f := newFixture()
	tbl := f.defaultTable(nil)

	ws := baseState(1)
	ws.Ball.Pos = world.Vec2{X: -45}
	ws.Self.Pos = world.Vec2{X: -43.8}
	ws.Self.Goalie = true
	tbl.Update(ws)

	assert.Equal(t, 1, tbl.SelfStep())
	assert.Zero(t, tbl.SelfCache()[0].DashSteps)
}

func TestSelfSimulatorExtremeBody(t *testing.T) {
	tbl := newFixture().defaultTable(nil)

	ws := baseState(1)
	ws.Self.Pos = world.Vec2{X: 6}
	ws.Self.Body = -1e20
	tbl.Update(ws)

	assert.Contains(t, []int{6, 7}, tbl.SelfStep())
}
