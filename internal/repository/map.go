package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

// MapRepository covers the per-map detail tables: played maps, rounds, kills,
// situational counts, trade events and the stat lines hanging off them.
type MapRepository struct {
	base
}

func NewMapRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *MapRepository {
	return &MapRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// UpsertMatchMap refreshes winner and scores; a map scraped mid-series gains
// them later.
func (r *MapRepository) UpsertMatchMap(ctx context.Context, m domain.MatchMap) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMaps (mapID, matchID, mapNum, lengthInMilli, attackingFirst,
		                       winner, t1Score, t2Score, vodURL)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (mapID) DO UPDATE SET
			winner = excluded.winner,
			t1Score = excluded.t1Score,
			t2Score = excluded.t2Score
	`,
		m.MapID, m.MatchID, m.MapNum, m.LengthInMilli, m.AttackingFirst,
		m.Winner, m.T1Score, m.T2Score, m.VodURL,
	)
}

func (r *MapRepository) UpsertRound(ctx context.Context, rd domain.Round) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapRounds (roundID, matchID, roundNum, winCondition, winnerTeam,
		                            ceremony, t1LoadoutTier, t2LoadoutTier, attackingTeam)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (roundID) DO NOTHING
	`,
		rd.RoundID, rd.MatchID, rd.RoundNum, rd.WinCondition, rd.WinnerTeam,
		rd.Ceremony, rd.T1LoadoutTier, rd.T2LoadoutTier, rd.AttackingTeam,
	)
}

func (r *MapRepository) UpsertKill(ctx context.Context, k domain.Kill) (Result, error) {
	var assistants any
	if k.Assistants != nil {
		encoded, err := json.Marshal(k.Assistants)
		if err != nil {
			return Skipped, fmt.Errorf("failed to encode assistants for kill %d: %w", k.ID, err)
		}
		assistants = string(encoded)
	}

	return r.apply(ctx, `
		INSERT INTO matchMapKills (id, matchID, roundID, killerID, victimID,
		                           roundTimeMillis, gameTimeMillis, victimLocationX,
		                           victimLocationY, damageType, abilityType, weaponID,
		                           secondaryFireMode, isFirst, tradedByKillID,
		                           tradedForKillID, weapon, weaponCategory,
		                           killerTeamNumber, victimTeamNumber, side, assistants)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`,
		k.ID, k.MatchID, k.RoundID, k.KillerID, k.VictimID,
		k.RoundTimeMillis, k.GameTimeMillis, k.VictimLocationX,
		k.VictimLocationY, k.DamageType, k.AbilityType, k.WeaponID,
		k.SecondaryFireMode, k.IsFirst, k.TradedByKillID,
		k.TradedForKillID, k.Weapon, k.WeaponCategory,
		k.KillerTeamNumber, k.VictimTeamNumber, k.Side, assistants,
	)
}

// UpsertMapStat refreshes the counters; stat lines firm up as the provider
// finalizes ratings.
func (r *MapRepository) UpsertMapStat(ctx context.Context, st domain.MapStat) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapStats (mapID, playerID, kills, deaths, assists,
		                           ribRating, ribRatingAttack, ribRatingDefense)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (mapID, playerID) DO UPDATE SET
			kills = excluded.kills,
			deaths = excluded.deaths,
			assists = excluded.assists,
			ribRating = excluded.ribRating
	`,
		st.MapID, st.PlayerID, st.Kills, st.Deaths, st.Assists,
		st.RibRating, st.RibRatingAttack, st.RibRatingDefense,
	)
}

func (r *MapRepository) UpsertXvY(ctx context.Context, x domain.XvY) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapXvYs (matchID, teamID, teamNumber, side, situation,
		                          team1Count, team2Count, delta, wins, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (matchID, teamID, side, situation) DO NOTHING
	`,
		x.MatchID, x.TeamID, x.TeamNumber, x.Side, x.Situation,
		x.Team1Count, x.Team2Count, x.Delta, x.Wins, x.Losses,
	)
}

func (r *MapRepository) UpsertRoundPlayerStat(ctx context.Context, st domain.RoundPlayerStat) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapPlayerStatsOnRounds (matchID, roundID, playerID, roundNumber,
			teamNumber, side, acs, kills, firstKills, deaths, firstDeaths, assists,
			damage, headshots, bodyshots, legshots, plants, defusals, clutches,
			clutchOpponents, clutchOpportunities, impact, kastRounds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (matchID, roundID, playerID) DO UPDATE SET
			acs = excluded.acs,
			kills = excluded.kills,
			deaths = excluded.deaths,
			assists = excluded.assists,
			damage = excluded.damage,
			impact = excluded.impact
	`,
		st.MatchID, st.RoundID, st.PlayerID, st.RoundNumber,
		st.TeamNumber, st.Side, st.ACS, st.Kills, st.FirstKills, st.Deaths,
		st.FirstDeaths, st.Assists, st.Damage, st.Headshots, st.Bodyshots,
		st.Legshots, st.Plants, st.Defusals, st.Clutches,
		st.ClutchOpponents, st.ClutchOpportunities, st.Impact, st.KastRounds,
	)
}

func (r *MapRepository) UpsertMapPlayerStat(ctx context.Context, st domain.MapPlayerStat) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapPlayerStatsOnMaps (matchID, playerID, score, roundsPlayed,
			kills, deaths, assists, playtimeMillis, impact, rating,
			attackingRating, defendingRating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (matchID, playerID) DO UPDATE SET
			score = excluded.score,
			roundsPlayed = excluded.roundsPlayed,
			kills = excluded.kills,
			deaths = excluded.deaths,
			assists = excluded.assists,
			rating = excluded.rating
	`,
		st.MatchID, st.PlayerID, st.Score, st.RoundsPlayed,
		st.Kills, st.Deaths, st.Assists, st.PlaytimeMillis, st.Impact, st.Rating,
		st.AttackingRating, st.DefendingRating,
	)
}

func (r *MapRepository) UpsertMapEvent(ctx context.Context, ev domain.MapEvent) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapEventsOnMaps (roundID, killID, roundNumber, roundTimeMillis,
		                                  tradedByKillID, tradedForKillID)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (roundID, killID) DO NOTHING
	`,
		ev.RoundID, ev.KillID, ev.RoundNumber, ev.RoundTimeMillis,
		ev.TradedByKillID, ev.TradedForKillID,
	)
}
