package repository

import (
	"context"
	"database/sql"
	"fmt"

	"valorant-pipeline/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// RunRepository records an audit row per pipeline execution. Audit rows are
// written even in dry-run mode; they describe the run, not the ingested data.
type RunRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRunRepository(sqlDB *sql.DB, logger zerolog.Logger) *RunRepository {
	return &RunRepository{db: sqlDB, logger: logger}
}

func (r *RunRepository) Record(ctx context.Context, run domain.IngestRun) error {
	id := run.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ingest_runs (id, run_uuid, started_at, finished_at, documents,
		                         inserted, skipped, failed, dry_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, run.RunUUID, run.StartedAt, run.FinishedAt, run.Documents,
		run.Inserted, run.Skipped, run.Failed, run.DryRun,
	)
	if err != nil {
		return fmt.Errorf("failed to record ingest run: %w", err)
	}

	r.logger.Debug().Str("run_id", id).Msg("ingest run recorded")
	return nil
}
