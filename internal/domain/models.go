package domain

import (
	"time"
)

// All identifiers are supplied by the source data. Optional columns are
// pointers so that absent fields persist as NULL.

type Tournament struct {
	EventID        int64
	EventType      string
	EventFormat    string
	EventTier      string
	StartDate      *time.Time
	EventName      *string
	EventSlug      *string
	ChildEvent     *string
	ChildEventSlug *string
}

type Team struct {
	TeamID    int64
	TeamName  *string
	TeamShort *string
	Region    *string
}

type Player struct {
	PlayerID      int64
	IGN           *string
	OldIGN        *string
	CurrentTeamID *int64
}

type Match struct {
	MatchID          int64
	EventID          *int64
	EventStage       *string
	Bracket          *string
	ExternalMatchRef *int64
	Team1ID          *int64
	Team2ID          *int64
	EventRegionID    *int64
	Division         *string
	T1Score          *int64
	T2Score          *int64
	BestOf           *int64
	PatchID          *int64
}

// MatchMap is one played map instance inside a match.
type MatchMap struct {
	MapID          int64
	MatchID        *int64
	MapNum         *int64
	LengthInMilli  *int64
	AttackingFirst *int64
	Winner         *int64
	T1Score        *int64
	T2Score        *int64
	VodURL         *string
}

type Round struct {
	RoundID       int64
	MatchID       *int64
	RoundNum      *int64
	WinCondition  *string
	WinnerTeam    *int64
	Ceremony      *string
	T1LoadoutTier *int64
	T2LoadoutTier *int64
	AttackingTeam *int64
}

type Kill struct {
	ID                int64
	MatchID           *int64
	RoundID           *int64
	KillerID          *int64
	VictimID          *int64
	RoundTimeMillis   *int64
	GameTimeMillis    *int64
	VictimLocationX   *float64
	VictimLocationY   *float64
	DamageType        *string
	AbilityType       *string
	WeaponID          *string
	SecondaryFireMode *bool
	IsFirst           *bool
	TradedByKillID    *int64
	TradedForKillID   *int64
	Weapon            *string
	WeaponCategory    *string
	KillerTeamNumber  *int64
	VictimTeamNumber  *int64
	Side              *string

	// Assistants keeps source order; stored as a JSON array.
	Assistants []int64
}

type PickBan struct {
	MatchID     int64
	SeqNum      int64
	TeamID      *int64
	MapID       *int64
	PickBanType *string
	IsLeftover  *bool
	TeamSeqNum  *int64
}

// MapStat is a per-player stat line for one played map.
type MapStat struct {
	MapID            int64
	PlayerID         int64
	Kills            *int64
	Deaths           *int64
	Assists          *int64
	RibRating        *float64
	RibRatingAttack  *float64
	RibRatingDefense *float64
}

type RoundPlayerStat struct {
	MatchID             int64
	RoundID             int64
	PlayerID            int64
	RoundNumber         *int64
	TeamNumber          *int64
	Side                *string
	ACS                 *float64
	Kills               *int64
	FirstKills          *int64
	Deaths              *int64
	FirstDeaths         *int64
	Assists             *int64
	Damage              *int64
	Headshots           *int64
	Bodyshots           *int64
	Legshots            *int64
	Plants              *int64
	Defusals            *int64
	Clutches            *int64
	ClutchOpponents     *int64
	ClutchOpportunities *int64
	Impact              *float64
	KastRounds          *int64
}

type MapPlayerStat struct {
	MatchID         int64
	PlayerID        int64
	Score           *int64
	RoundsPlayed    *int64
	Kills           *int64
	Deaths          *int64
	Assists         *int64
	PlaytimeMillis  *int64
	Impact          *float64
	Rating          *float64
	AttackingRating *float64
	DefendingRating *float64
}

// XvY is a situational round count at a given player-count imbalance.
type XvY struct {
	MatchID    int64
	TeamID     int64
	TeamNumber *int64
	Side       string
	Situation  string
	Team1Count *int64
	Team2Count *int64
	Delta      *int64
	Wins       *int64
	Losses     *int64
}

// MapEvent is one link of a trade chain on a map.
type MapEvent struct {
	RoundID         int64
	KillID          int64
	RoundNumber     *int64
	RoundTimeMillis *int64
	TradedByKillID  *int64
	TradedForKillID *int64
}

type Region struct {
	RegionID int64
	Name     string
}

// AvailableMap is a playable-map catalogue entry.
type AvailableMap struct {
	ID     int64
	Name   *string
	RiotID *string
}

// IngestRun is an audit record of one pipeline execution.
type IngestRun struct {
	ID         string
	RunUUID    string
	StartedAt  time.Time
	FinishedAt time.Time
	Documents  int
	Inserted   int
	Skipped    int
	Failed     int
	DryRun     bool
}
