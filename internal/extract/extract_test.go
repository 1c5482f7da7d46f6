package extract

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *Extractor {
	return NewExtractor(zerolog.Nop())
}

func TestDeriveTier(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"VALORANT Champions 2024", "SSS"},
		{"Masters Madrid", "SS"},
		{"Americas League", "A"},
		{"Champions Tour 2024: EMEA Stage 1", "SSS"},
		{"Pacific Kickoff", "A"},
		{"Random Showmatch", "B"},
		{"", "B"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveTier(tc.name), "event name %q", tc.name)
	}
}

func TestExtraDefaults(t *testing.T) {
	doc := []byte(`{
		"parentEventId": 100,
		"parentEventName": "Random Showmatch"
	}`)

	out, err := newExtractor().Extra(doc)
	require.NoError(t, err)
	require.Len(t, out.Tournaments, 1)

	tournament := out.Tournaments[0]
	assert.Equal(t, int64(100), tournament.EventID)
	assert.Equal(t, "VCT", tournament.EventType)
	assert.Equal(t, "LAN", tournament.EventFormat)
	assert.Equal(t, "B", tournament.EventTier)
	assert.Nil(t, tournament.StartDate)
}

func TestExtraExplicitFieldsWin(t *testing.T) {
	doc := []byte(`{
		"parentEventId": 100,
		"parentEventName": "Masters Madrid",
		"eventType": "Off-Season",
		"eventFormat": "Online",
		"eventTier": "C",
		"startDate": "2024-03-14T00:00:00.000Z"
	}`)

	out, err := newExtractor().Extra(doc)
	require.NoError(t, err)
	require.Len(t, out.Tournaments, 1)

	tournament := out.Tournaments[0]
	assert.Equal(t, "Off-Season", tournament.EventType)
	assert.Equal(t, "Online", tournament.EventFormat)
	assert.Equal(t, "C", tournament.EventTier, "explicit tier beats the naming heuristic")
	require.NotNil(t, tournament.StartDate)
	assert.Equal(t, 2024, tournament.StartDate.Year())
}

func TestExtraMissingParentEventID(t *testing.T) {
	_, err := newExtractor().Extra([]byte(`{"team1": {"id": 1}}`))
	require.Error(t, err)
}

func TestExtraMalformedJSON(t *testing.T) {
	_, err := newExtractor().Extra([]byte(`{not json`))
	require.Error(t, err)
}

func TestExtraTeamsAndMatches(t *testing.T) {
	doc := []byte(`{
		"id": 555,
		"parentEventId": 100,
		"parentEventName": "VALORANT Champions 2024",
		"bracket": "playoffs",
		"eventRegionId": 2,
		"team1": {"id": 10, "name": "Sentinels", "shortName": "SEN", "vctRegion": "Americas"},
		"team2": {"id": 20, "name": "Fnatic", "shortName": "FNC"},
		"matches": [
			{
				"id": 9001,
				"eventStage": "Grand Final",
				"vlrId": 777,
				"team1Id": 10,
				"team2Id": 20,
				"team1Score": 3,
				"team2Score": 1,
				"bestOf": 5,
				"players": [
					{"player": {"id": 1, "ign": "TenZ", "currentTeamID": 10}},
					{"player": {"id": 2, "ign": "Boaster", "currentTeamID": 20}},
					{"player": {}},
					{"notaplayer": true}
				]
			}
		],
		"pickban": [
			{"seqNum": 1, "teamId": 10, "mapId": 3, "type": "ban"},
			{"teamId": 20}
		]
	}`)

	out, err := newExtractor().Extra(doc)
	require.NoError(t, err)

	require.Len(t, out.Teams, 2)
	assert.Equal(t, int64(10), out.Teams[0].TeamID)
	require.NotNil(t, out.Teams[0].Region)
	assert.Equal(t, "Americas", *out.Teams[0].Region)
	assert.Nil(t, out.Teams[1].Region)

	require.Len(t, out.Matches, 1)
	match := out.Matches[0]
	assert.Equal(t, int64(9001), match.MatchID)
	require.NotNil(t, match.EventID)
	assert.Equal(t, int64(100), *match.EventID)
	require.NotNil(t, match.ExternalMatchRef)
	assert.Equal(t, int64(777), *match.ExternalMatchRef)
	require.NotNil(t, match.Bracket)
	assert.Equal(t, "playoffs", *match.Bracket)
	require.NotNil(t, match.Division)
	assert.Equal(t, "VCT", *match.Division, "division defaults when absent")

	// players without an id are dropped, the rest survive
	require.Len(t, out.Players, 2)
	assert.Equal(t, int64(1), out.Players[0].PlayerID)

	// the keyless pickban is dropped; the valid one falls back to the series id
	require.Len(t, out.PickBans, 1)
	assert.Equal(t, int64(555), out.PickBans[0].MatchID)
	assert.Equal(t, int64(1), out.PickBans[0].SeqNum)
}

func TestExtraKillIsolation(t *testing.T) {
	doc := []byte(`{
		"parentEventId": 100,
		"matches": [
			{
				"id": 9001,
				"kills": [
					{"id": 1, "roundId": 50, "killerId": 1, "victimId": 2},
					{"id": 2, "roundId": 50, "killerId": 2, "victimId": 1},
					{"roundId": 50, "killerId": 1, "victimId": 2},
					{"id": 4, "roundId": 51, "assistants": [3, 1, 2]}
				]
			}
		]
	}`)

	out, err := newExtractor().Extra(doc)
	require.NoError(t, err)

	require.Len(t, out.Kills, 3, "the keyless kill is dropped, siblings survive")
	assert.Equal(t, int64(1), out.Kills[0].ID)
	assert.Equal(t, int64(2), out.Kills[1].ID)
	assert.Equal(t, int64(4), out.Kills[2].ID)

	// assistants keep source order
	assert.Equal(t, []int64{3, 1, 2}, out.Kills[2].Assistants)

	// match id propagates from the enclosing match entry
	require.NotNil(t, out.Kills[0].MatchID)
	assert.Equal(t, int64(9001), *out.Kills[0].MatchID)
}

func TestExtraPartialSections(t *testing.T) {
	doc := []byte(`{
		"parentEventId": 100,
		"team1": {"id": 10, "name": "Sentinels"},
		"team2": {"id": 20, "name": "Fnatic"},
		"matches": [{"id": 9001, "team1Id": 10, "team2Id": 20}]
	}`)

	out, err := newExtractor().Extra(doc)
	require.NoError(t, err)

	assert.Len(t, out.Tournaments, 1)
	assert.Len(t, out.Teams, 2)
	assert.Len(t, out.Matches, 1)
	assert.Empty(t, out.PickBans)
	assert.Empty(t, out.MapPlayerStats)
	assert.Empty(t, out.Rounds)
}

func TestDetails(t *testing.T) {
	doc := []byte(`{
		"matchId": 9001,
		"maps": [
			{
				"id": 300,
				"mapNum": 1,
				"lengthMillis": 2400000,
				"attackingFirstTeamNumber": 1,
				"winningTeamNumber": 2,
				"team1Score": 10,
				"team2Score": 13,
				"playerStats": [
					{"playerId": 1, "kills": 20, "deaths": 15},
					{"kills": 5}
				],
				"rounds": [
					{"id": 50, "number": 1, "winCondition": "defuse"},
					{"id": 51, "number": 2}
				]
			},
			{"mapNum": 2}
		]
	}`)

	out, err := newExtractor().Details(doc)
	require.NoError(t, err)

	require.Len(t, out.MatchMaps, 1, "map without id is dropped")
	m := out.MatchMaps[0]
	assert.Equal(t, int64(300), m.MapID)
	require.NotNil(t, m.MatchID)
	assert.Equal(t, int64(9001), *m.MatchID, "match id falls back to the document")
	require.NotNil(t, m.Winner)
	assert.Equal(t, int64(2), *m.Winner)

	require.Len(t, out.MapStats, 1, "stat line without player id is dropped")
	assert.Equal(t, int64(300), out.MapStats[0].MapID, "map id falls back to the enclosing map")

	require.Len(t, out.Rounds, 2)
	require.NotNil(t, out.Rounds[0].MatchID)
	assert.Equal(t, int64(9001), *out.Rounds[0].MatchID)
}

func TestDetailsMissingMatchID(t *testing.T) {
	_, err := newExtractor().Details([]byte(`{"maps": []}`))
	require.Error(t, err)
}
