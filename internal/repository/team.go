package repository

import (
	"context"
	"database/sql"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRepository struct {
	base
}

func NewTeamRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// Upsert refreshes the display names; orgs rebrand, the id does not change.
func (r *TeamRepository) Upsert(ctx context.Context, t domain.Team) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO Teams (teamID, teamName, teamShort, region)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (teamID) DO UPDATE SET
			teamName = excluded.teamName,
			teamShort = excluded.teamShort
	`, t.TeamID, t.TeamName, t.TeamShort, t.Region)
}
