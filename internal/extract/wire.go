package extract

import "encoding/json"

// Wire shapes for the scraped JSON. Every field is optional; nested list
// sections stay raw so one malformed item cannot poison its siblings.

type extraDoc struct {
	ID              *int64  `json:"id"`
	ParentEventID   *int64  `json:"parentEventId"`
	ParentEventName *string `json:"parentEventName"`
	ParentEventSlug *string `json:"parentEventSlug"`
	EventSlug       *string `json:"eventSlug"`
	EventType       *string `json:"eventType"`
	EventFormat     *string `json:"eventFormat"`
	EventTier       *string `json:"eventTier"`
	StartDate       *string `json:"startDate"`
	EventChildLabel *string `json:"eventChildLabel"`
	Bracket         *string `json:"bracket"`
	EventRegionID   *int64  `json:"eventRegionId"`
	Division        *string `json:"division"`

	Team1   *teamObj          `json:"team1"`
	Team2   *teamObj          `json:"team2"`
	Matches []json.RawMessage `json:"matches"`
	PickBan []json.RawMessage `json:"pickban"`
}

type teamObj struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
	VctRegion *string `json:"vctRegion"`
}

type matchObj struct {
	ID         *int64  `json:"id"`
	EventStage *string `json:"eventStage"`
	VlrID      *int64  `json:"vlrId"`
	Team1ID    *int64  `json:"team1Id"`
	Team2ID    *int64  `json:"team2Id"`
	Team1Score *int64  `json:"team1Score"`
	Team2Score *int64  `json:"team2Score"`
	BestOf     *int64  `json:"bestOf"`
	PatchID    *int64  `json:"patchId"`

	Map *availableMapObj `json:"map"`

	Players             []json.RawMessage `json:"players"`
	Stats               []json.RawMessage `json:"stats"`
	Rounds              []json.RawMessage `json:"rounds"`
	Kills               []json.RawMessage `json:"kills"`
	XvY                 []json.RawMessage `json:"xvy"`
	PlayerStatsOnRounds []json.RawMessage `json:"playerStatsOnRounds"`
	PlayerStatsOnMaps   []json.RawMessage `json:"playerStatsOnMaps"`
	EventsOnMaps        []json.RawMessage `json:"eventsOnMaps"`
}

type availableMapObj struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	RiotID *string `json:"riotId"`
}

type playerWrapperObj struct {
	Player *playerObj `json:"player"`
}

type playerObj struct {
	ID            *int64  `json:"id"`
	IGN           *string `json:"ign"`
	OldIGN        *string `json:"oldIgn"`
	CurrentTeamID *int64  `json:"currentTeamID"`
}

type pickBanObj struct {
	MatchID    *int64  `json:"matchId"`
	SeqNum     *int64  `json:"seqNum"`
	TeamID     *int64  `json:"teamId"`
	MapID      *int64  `json:"mapId"`
	Type       *string `json:"type"`
	IsLeftover *bool   `json:"isLeftover"`
	TeamSeqNum *int64  `json:"teamSeqNum"`
}

type roundObj struct {
	ID                  *int64  `json:"id"`
	MatchID             *int64  `json:"matchId"`
	Number              *int64  `json:"number"`
	WinCondition        *string `json:"winCondition"`
	WinningTeamNumber   *int64  `json:"winningTeamNumber"`
	Ceremony            *string `json:"ceremony"`
	Team1LoadoutTier    *int64  `json:"team1LoadoutTier"`
	Team2LoadoutTier    *int64  `json:"team2LoadoutTier"`
	AttackingTeamNumber *int64  `json:"attackingTeamNumber"`
}

type killObj struct {
	ID                *int64   `json:"id"`
	MatchID           *int64   `json:"matchId"`
	RoundID           *int64   `json:"roundId"`
	KillerID          *int64   `json:"killerId"`
	VictimID          *int64   `json:"victimId"`
	RoundTimeMillis   *int64   `json:"roundTimeMillis"`
	GameTimeMillis    *int64   `json:"gameTimeMillis"`
	VictimLocationX   *float64 `json:"victimLocationX"`
	VictimLocationY   *float64 `json:"victimLocationY"`
	DamageType        *string  `json:"damageType"`
	AbilityType       *string  `json:"abilityType"`
	WeaponID          *string  `json:"weaponId"`
	SecondaryFireMode *bool    `json:"secondaryFireMode"`
	First             *bool    `json:"first"`
	TradedByKillID    *int64   `json:"tradedByKillId"`
	TradedForKillID   *int64   `json:"tradedForKillId"`
	Weapon            *string  `json:"weapon"`
	WeaponCategory    *string  `json:"weaponCategory"`
	KillerTeamNumber  *int64   `json:"killerTeamNumber"`
	VictimTeamNumber  *int64   `json:"victimTeamNumber"`
	Side              *string  `json:"side"`
	Assistants        []int64  `json:"assistants"`
}

type mapStatObj struct {
	MapID            *int64   `json:"mapId"`
	PlayerID         *int64   `json:"playerId"`
	Kills            *int64   `json:"kills"`
	Deaths           *int64   `json:"deaths"`
	Assists          *int64   `json:"assists"`
	RibRating        *float64 `json:"ribRating"`
	RibRatingAttack  *float64 `json:"ribRatingAttack"`
	RibRatingDefense *float64 `json:"ribRatingDefense"`
}

type xvyObj struct {
	TeamID     *int64  `json:"teamId"`
	TeamNumber *int64  `json:"teamNumber"`
	Side       *string `json:"side"`
	Situation  *string `json:"situation"`
	Team1Count *int64  `json:"team1Count"`
	Team2Count *int64  `json:"team2Count"`
	Delta      *int64  `json:"delta"`
	Wins       *int64  `json:"wins"`
	Losses     *int64  `json:"losses"`
}

type roundPlayerStatObj struct {
	RoundID             *int64   `json:"roundId"`
	RoundNumber         *int64   `json:"roundNumber"`
	PlayerID            *int64   `json:"playerId"`
	TeamNumber          *int64   `json:"teamNumber"`
	Side                *string  `json:"side"`
	ACS                 *float64 `json:"acs"`
	Kills               *int64   `json:"kills"`
	FirstKills          *int64   `json:"firstKills"`
	Deaths              *int64   `json:"deaths"`
	FirstDeaths         *int64   `json:"firstDeaths"`
	Assists             *int64   `json:"assists"`
	Damage              *int64   `json:"damage"`
	Headshots           *int64   `json:"headshots"`
	Bodyshots           *int64   `json:"bodyshots"`
	Legshots            *int64   `json:"legshots"`
	Plants              *int64   `json:"plants"`
	Defusals            *int64   `json:"defusals"`
	Clutches            *int64   `json:"clutches"`
	ClutchOpponents     *int64   `json:"clutchOpponents"`
	ClutchOpportunities *int64   `json:"clutchOpportunities"`
	Impact              *float64 `json:"impact"`
	KastRounds          *int64   `json:"kastRounds"`
}

type mapPlayerStatObj struct {
	PlayerID        *int64   `json:"playerId"`
	Score           *int64   `json:"score"`
	RoundsPlayed    *int64   `json:"roundsPlayed"`
	Kills           *int64   `json:"kills"`
	Deaths          *int64   `json:"deaths"`
	Assists         *int64   `json:"assists"`
	PlaytimeMillis  *int64   `json:"playtimeMillis"`
	Impact          *float64 `json:"impact"`
	Rating          *float64 `json:"rating"`
	AttackingRating *float64 `json:"attackingRating"`
	DefendingRating *float64 `json:"defendingRating"`
}

type mapEventObj struct {
	RoundID         *int64 `json:"roundId"`
	RoundNumber     *int64 `json:"roundNumber"`
	RoundTimeMillis *int64 `json:"roundTimeMillis"`
	KillID          *int64 `json:"killId"`
	TradedByKillID  *int64 `json:"tradedByKillId"`
	TradedForKillID *int64 `json:"tradedForKillId"`
}

type detailsDoc struct {
	MatchID *int64            `json:"matchId"`
	Maps    []json.RawMessage `json:"maps"`
}

type detailsMapObj struct {
	ID                       *int64  `json:"id"`
	MatchID                  *int64  `json:"matchId"`
	MapNum                   *int64  `json:"mapNum"`
	LengthMillis             *int64  `json:"lengthMillis"`
	AttackingFirstTeamNumber *int64  `json:"attackingFirstTeamNumber"`
	WinningTeamNumber        *int64  `json:"winningTeamNumber"`
	Team1Score               *int64  `json:"team1Score"`
	Team2Score               *int64  `json:"team2Score"`
	VodURL                   *string `json:"vodUrl"`

	PlayerStats []json.RawMessage `json:"playerStats"`
	Rounds      []json.RawMessage `json:"rounds"`
}
