package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soccer_ai/internal/config"
	interceptlog "soccer_ai/internal/logging/intercept"
	"soccer_ai/internal/logging/sinks"
	"soccer_ai/internal/world"
)

func newTestContext(t *testing.T) (*Context, *sinks.MemorySink) {
	t.Helper()
	sp := config.DefaultServer()
	ic := config.DefaultIntercept()
	mem := sinks.NewMemorySink()
	return NewContext(&sp, &config.PlayerTypesConfig{}, &ic, mem), mem
}

func scenario() *config.Scenario {
	return &config.Scenario{
		ID:   "agent",
		Time: config.TimeDef{Cycle: 300},
		Mode: "play_on",
		Self: config.SelfDef{
			PlayerDef: config.PlayerDef{Unum: 9, Pos: config.Vec2Def{X: -30}},
			Stamina:   8000,
			Effort:    1,
			Recovery:  1,
		},
		Teammates: []config.PlayerDef{{Unum: 7, Pos: config.Vec2Def{X: 25}}},
		Opponents: []config.PlayerDef{{Unum: 4, Pos: config.Vec2Def{X: 3}, Body: 180}},
	}
}

func TestCycleAppliesHeardReports(t *testing.T) {
	actx, mem := newTestContext(t)
	ws, err := world.NewState(scenario())
	require.NoError(t, err)

	actx.Cycle(ws, []config.HeardReport{
		{Side: "teammate", Unum: 7, Step: 2},
		{Side: "teammate", Unum: 7, Step: 5},
		{Side: "opponent", Unum: 11, Step: 1},
	})

	tbl := actx.Intercept
	assert.Equal(t, 1, tbl.UpdateCount())
	first, ok := tbl.FirstTeammate()
	require.True(t, ok)
	assert.Equal(t, 7, first.Unum)
	assert.Equal(t, 2, tbl.TeammateStep())

	// opponent 4 stands three units from a resting ball and is seen this cycle
	assert.Equal(t, 3, tbl.OpponentStep())
	assert.Len(t, mem.OfType(interceptlog.EventHeardAccepted), 1)
	assert.Len(t, mem.OfType(interceptlog.EventHeardRejected), 1)
}

func TestCycleSameTimeKeepsTable(t *testing.T) {
	actx, _ := newTestContext(t)
	ws, err := world.NewState(scenario())
	require.NoError(t, err)

	actx.Cycle(ws, []config.HeardReport{{Side: "teammate", Unum: 7, Step: 2}})
	actx.Cycle(ws, nil)

	assert.Equal(t, 1, actx.Intercept.UpdateCount())
	assert.Equal(t, 2, actx.Intercept.TeammateStep(), "heard step survives a repeated update")
}

func TestNewContextNilPublisher(t *testing.T) {
	sp := config.DefaultServer()
	ic := config.DefaultIntercept()
	actx := NewContext(&sp, nil, &ic, nil)

	ws, err := world.NewState(scenario())
	require.NoError(t, err)
	actx.Cycle(ws, []config.HeardReport{{Side: "coach", Unum: 7, Step: 1}})
	assert.Equal(t, 3, actx.Intercept.OpponentStep())
}

func TestCycleLogsUnknownSide(t *testing.T) {
	actx, mem := newTestContext(t)
	ws, err := world.NewState(scenario())
	require.NoError(t, err)

	actx.Cycle(ws, []config.HeardReport{{Side: "coach", Unum: 7, Step: 1}})

	_, ok := actx.Intercept.FirstTeammate()
	assert.False(t, ok)
	evs := mem.OfType(interceptlog.EventHeardIgnored)
	require.Len(t, evs, 1)
	assert.Equal(t, interceptlog.HeardIgnoredPayload{Side: "coach", Unum: 7, Step: 1}, evs[0].Payload)
	assert.Equal(t, int64(300), evs[0].Cycle)
}
