package repository

import (
	"context"
	"database/sql"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

type TournamentRepository struct {
	base
}

func NewTournamentRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *TournamentRepository {
	return &TournamentRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// Upsert refreshes the name and start date on conflict; a newer snapshot of
// the same event is the more complete one.
func (r *TournamentRepository) Upsert(ctx context.Context, t domain.Tournament) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO Tournament (eventID, eventType, eventFormat, eventTier, startDate,
		                        eventName, eventSlug, childEvent, childEventSlug)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (eventID) DO UPDATE SET
			eventName = excluded.eventName,
			startDate = excluded.startDate
	`,
		t.EventID, t.EventType, t.EventFormat, t.EventTier, t.StartDate,
		t.EventName, t.EventSlug, t.ChildEvent, t.ChildEventSlug,
	)
}
