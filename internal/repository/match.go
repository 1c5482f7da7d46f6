package repository

import (
	"context"
	"database/sql"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

// MatchRepository covers matches and their pick/ban sequences.
type MatchRepository struct {
	base
}

func NewMatchRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// UpsertMatch refreshes the series score on conflict; a later snapshot of a
// running series carries the final score.
func (r *MatchRepository) UpsertMatch(ctx context.Context, m domain.Match) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO Matches (matchID, eventID, eventStage, bracket, externalMatchRef,
		                     team1ID, team2ID, eventRegionID, division, t1Score, t2Score,
		                     bestOf, patchID)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (matchID) DO UPDATE SET
			t1Score = excluded.t1Score,
			t2Score = excluded.t2Score
	`,
		m.MatchID, m.EventID, m.EventStage, m.Bracket, m.ExternalMatchRef,
		m.Team1ID, m.Team2ID, m.EventRegionID, m.Division, m.T1Score, m.T2Score,
		m.BestOf, m.PatchID,
	)
}

// UpsertPickBan is insert-or-ignore; a pick/ban sequence never changes after
// the fact.
func (r *MatchRepository) UpsertPickBan(ctx context.Context, pb domain.PickBan) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO matchMapPickBans (matchID, seqNum, teamID, mapID, pickBanType,
		                              isLeftover, teamSeqNum)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (matchID, seqNum) DO NOTHING
	`,
		pb.MatchID, pb.SeqNum, pb.TeamID, pb.MapID, pb.PickBanType,
		pb.IsLeftover, pb.TeamSeqNum,
	)
}
