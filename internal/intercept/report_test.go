package intercept

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soccer_ai/internal/world"
)

func TestOwnership(t *testing.T) {
	cases := []struct {
		name            string
		self, mate, opp int
		want            Ownership
	}{
		{"nobody", sentinel, sentinel, sentinel, OwnerUnknown},
		{"self fastest", 2, 4, 5, OwnerSelf},
		{"self ties teammate", 3, 3, 5, OwnerSelf},
		{"teammate fastest", 5, 3, 4, OwnerTeammate},
		{"opponent fastest", 5, 6, 2, OwnerOpponent},
		{"contested", 4, sentinel, 4, OwnerContested},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			self := &countingSelf{}
			if tc.self < sentinel {
				self.infos = []Info{{Step: tc.self}}
			}
			pred := &stepsByUnum{normal: map[int]int{7: tc.mate, 4: tc.opp}}
			tbl := newFixture().table(self, pred, nil)

			ws := baseState(3)
			ws.Teammates = []world.Player{player(world.SideTeammate, 7, 1, 0)}
			ws.Opponents = []world.Player{player(world.SideOpponent, 4, 2, 0)}
			tbl.Update(ws)

			assert.Equal(t, tc.want, tbl.Ownership())
			assert.Equal(t, tc.want.String(), tbl.Report(ws).Ownership)
		})
	}
}

func TestReport(t *testing.T) {
	pred := &stepsByUnum{normal: map[int]int{7: 4, 8: 4, 10: 2, 4: 3, 5: 6}}
	tbl := newFixture().table(&countingSelf{infos: []Info{{Step: 5}, {Stamina: StaminaExhaust, Step: 3}}}, pred, nil)

	ws := baseState(120)
	ws.Time.Stopped = 2
	ws.Teammates = []world.Player{
		player(world.SideTeammate, 8, 1, 0),
		player(world.SideTeammate, 7, 2, 0),
		player(world.SideTeammate, 10, 3, 1),
	}
	ws.Opponents = []world.Player{
		player(world.SideOpponent, 5, 1, 1),
		player(world.SideOpponent, 4, 4, -1),
	}
	tbl.Update(ws)
	r := tbl.Report(ws)

	assert.Equal(t, int64(120), r.Cycle)
	assert.Equal(t, int64(2), r.Stopped)
	assert.Equal(t, 5, r.SelfStep)
	assert.Equal(t, 3, r.SelfExhaustStep)
	assert.Equal(t, 2, r.SelfSolutions)
	assert.Equal(t, sentinel, r.GoalieStep)
	assert.Equal(t, "teammate", r.Ownership)
	assert.Len(t, r.BallCache, 10)

	require.NotNil(t, r.Teammate)
	assert.Equal(t, PlayerStep{Side: "teammate", Unum: 10, Step: 2, X: 3, Y: 1}, *r.Teammate)
	require.NotNil(t, r.SecondTeammate)
	assert.Equal(t, 8, r.SecondTeammate.Unum)
	require.NotNil(t, r.Opponent)
	assert.Equal(t, 4, r.Opponent.Unum)
	assert.Equal(t, 5, r.SecondOpponent.Unum)

	var order []int
	for _, p := range r.Players {
		order = append(order, p.Unum)
	}
	assert.Equal(t, []int{10, 7, 8, 4, 5}, order)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"self_exhaust_step":3`)
}

func TestReportWithoutPlayers(t *testing.T) {
	tbl := newFixture().table(&countingSelf{}, &stepsByUnum{}, nil)
	ws := baseState(1)
	ws.Mode = world.ModeTimeOver
	tbl.Update(ws)

	r := tbl.Report(ws)
	assert.Nil(t, r.Teammate)
	assert.Nil(t, r.Opponent)
	assert.Empty(t, r.Players)
	assert.Empty(t, r.BallCache)
	assert.Equal(t, "unknown", r.Ownership)
}
