package repository

import (
	"context"
	"database/sql"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	base
}

func NewPlayerRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// Upsert refreshes the ign and current team on conflict; players change both.
func (r *PlayerRepository) Upsert(ctx context.Context, p domain.Player) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO Player (playerID, ign, oldIgn, currentTeamID)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (playerID) DO UPDATE SET
			ign = excluded.ign,
			currentTeamID = excluded.currentTeamID
	`, p.PlayerID, p.IGN, p.OldIGN, p.CurrentTeamID)
}
