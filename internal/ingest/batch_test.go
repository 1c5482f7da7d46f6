package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valorant-pipeline/internal/domain"
	"valorant-pipeline/internal/extract"
)

func strp(v string) *string { return &v }

func TestBatchLastWriteWins(t *testing.T) {
	b := NewBatch()

	b.Add(&extract.Entities{
		Teams: []domain.Team{{TeamID: 10, TeamName: strp("Sentinels")}},
	})
	b.Add(&extract.Entities{
		Teams: []domain.Team{{TeamID: 10, TeamName: strp("Sentinels 2.0")}},
	})

	teams := b.Teams()
	require.Len(t, teams, 1)
	assert.Equal(t, "Sentinels 2.0", *teams[0].TeamName)
}

func TestBatchCompositeKeys(t *testing.T) {
	b := NewBatch()

	b.Add(&extract.Entities{
		PickBans: []domain.PickBan{
			{MatchID: 9001, SeqNum: 2},
			{MatchID: 9001, SeqNum: 1},
			{MatchID: 9001, SeqNum: 1},
			{MatchID: 8000, SeqNum: 1},
		},
		MapStats: []domain.MapStat{
			{MapID: 300, PlayerID: 1},
			{MapID: 300, PlayerID: 1},
			{MapID: 300, PlayerID: 2},
		},
		XvYs: []domain.XvY{
			{MatchID: 9001, TeamID: 10, Side: "atk", Situation: "5v4"},
			{MatchID: 9001, TeamID: 10, Side: "def", Situation: "5v4"},
			{MatchID: 9001, TeamID: 10, Side: "atk", Situation: "5v4"},
		},
	})

	pbs := b.PickBans()
	require.Len(t, pbs, 3, "same (matchID, seqNum) collapses")
	assert.Equal(t, int64(8000), pbs[0].MatchID, "sorted by match then seq")
	assert.Equal(t, int64(1), pbs[1].SeqNum)
	assert.Equal(t, int64(2), pbs[2].SeqNum)

	assert.Len(t, b.MapStats(), 2)
	assert.Len(t, b.XvYs(), 2)
}

func TestBatchDeterministicOrder(t *testing.T) {
	b := NewBatch()
	b.Add(&extract.Entities{
		Rounds: []domain.Round{{RoundID: 52}, {RoundID: 50}, {RoundID: 51}},
	})

	rounds := b.Rounds()
	require.Len(t, rounds, 3)
	assert.Equal(t, int64(50), rounds[0].RoundID)
	assert.Equal(t, int64(51), rounds[1].RoundID)
	assert.Equal(t, int64(52), rounds[2].RoundID)
}
