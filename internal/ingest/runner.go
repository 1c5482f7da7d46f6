// Package ingest drives the pipeline: scan the data root, extract entities,
// deduplicate them, then apply them to the store in dependency order so that
// every foreign key reference lands after its parent.
package ingest

import (
	"context"
	"fmt"
	"time"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"
	"valorant-pipeline/internal/extract"
	"valorant-pipeline/internal/repository"
	"valorant-pipeline/internal/source"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Stats aggregates row outcomes across a phase or a whole run.
type Stats struct {
	Inserted int
	Skipped  int
	Failed   int
}

func (s *Stats) merge(o Stats) {
	s.Inserted += o.Inserted
	s.Skipped += o.Skipped
	s.Failed += o.Failed
}

type Runner struct {
	scanner     *source.Scanner
	extractor   *extract.Extractor
	refs        *repository.ReferenceRepository
	tournaments *repository.TournamentRepository
	teams       *repository.TeamRepository
	players     *repository.PlayerRepository
	matches     *repository.MatchRepository
	maps        *repository.MapRepository
	runs        *repository.RunRepository
	cfg         *config.Config
	logger      zerolog.Logger
}

func NewRunner(
	scanner *source.Scanner,
	extractor *extract.Extractor,
	refs *repository.ReferenceRepository,
	tournaments *repository.TournamentRepository,
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	matches *repository.MatchRepository,
	maps *repository.MapRepository,
	runs *repository.RunRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		scanner:     scanner,
		extractor:   extractor,
		refs:        refs,
		tournaments: tournaments,
		teams:       teams,
		players:     players,
		matches:     matches,
		maps:        maps,
		runs:        runs,
		cfg:         cfg,
		logger:      logger,
	}
}

// Run executes one full ingestion. Row and file failures are logged and
// counted; only an unreadable data root is returned as an error.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := r.logger.With().Str("run_id", runID).Logger()

	if r.cfg.DryRun {
		logger.Info().Msg("dry-run mode: reporting would-be row counts, committing nothing")
	}

	docs, err := r.scanner.Scan(r.cfg.DataRoot)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to discover documents: %w", err)
	}

	batch := NewBatch()
	processed := 0
	for _, doc := range docs {
		data, err := doc.Read()
		if err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("skipping unreadable document")
			continue
		}

		var entities *extract.Entities
		switch doc.Kind {
		case source.KindExtra:
			entities, err = r.extractor.Extra(data)
		case source.KindDetails:
			entities, err = r.extractor.Details(data)
		}
		if err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("skipping malformed document")
			continue
		}

		batch.Add(entities)
		processed++
	}
	logger.Info().Int("documents", processed).Msg("extraction complete")

	total := r.load(ctx, logger, batch)

	run := domain.IngestRun{
		RunUUID:    runID,
		StartedAt:  start,
		FinishedAt: time.Now(),
		Documents:  processed,
		Inserted:   total.Inserted,
		Skipped:    total.Skipped,
		Failed:     total.Failed,
		DryRun:     r.cfg.DryRun,
	}
	if err := r.runs.Record(ctx, run); err != nil {
		logger.Warn().Err(err).Msg("failed to record ingest run")
	}

	logger.Info().
		Int("inserted", total.Inserted).
		Int("skipped", total.Skipped).
		Int("failed", total.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("ingestion complete")

	return total, nil
}

// load applies the batch phase by phase. A phase is fully applied, success or
// logged failure, before the next begins; this ordering is what guarantees
// referential integrity, not store constraints.
func (r *Runner) load(ctx context.Context, logger zerolog.Logger, batch *Batch) Stats {
	var total Stats

	total.merge(applyPhase(ctx, logger, "regions", repository.StaticRegions(),
		r.refs.UpsertRegion,
		func(v domain.Region) string { return fmt.Sprintf("%d", v.RegionID) }))
	total.merge(applyPhase(ctx, logger, "maps_available",
		append(repository.StaticAvailableMaps(), batch.AvailableMaps()...),
		r.refs.UpsertAvailableMap,
		func(v domain.AvailableMap) string { return fmt.Sprintf("%d", v.ID) }))

	total.merge(applyPhase(ctx, logger, "tournaments", batch.Tournaments(),
		r.tournaments.Upsert,
		func(v domain.Tournament) string { return fmt.Sprintf("%d", v.EventID) }))

	total.merge(applyPhase(ctx, logger, "teams", batch.Teams(),
		r.teams.Upsert,
		func(v domain.Team) string { return fmt.Sprintf("%d", v.TeamID) }))

	total.merge(applyPhase(ctx, logger, "players", batch.Players(),
		r.players.Upsert,
		func(v domain.Player) string { return fmt.Sprintf("%d", v.PlayerID) }))

	total.merge(applyPhase(ctx, logger, "matches", batch.Matches(),
		r.matches.UpsertMatch,
		func(v domain.Match) string { return fmt.Sprintf("%d", v.MatchID) }))

	total.merge(applyPhase(ctx, logger, "match_maps", batch.MatchMaps(),
		r.maps.UpsertMatchMap,
		func(v domain.MatchMap) string { return fmt.Sprintf("%d", v.MapID) }))

	total.merge(applyPhase(ctx, logger, "rounds", batch.Rounds(),
		r.maps.UpsertRound,
		func(v domain.Round) string { return fmt.Sprintf("%d", v.RoundID) }))

	total.merge(applyPhase(ctx, logger, "kills", batch.Kills(),
		r.maps.UpsertKill,
		func(v domain.Kill) string { return fmt.Sprintf("%d", v.ID) }))

	total.merge(applyPhase(ctx, logger, "pickbans", batch.PickBans(),
		r.matches.UpsertPickBan,
		func(v domain.PickBan) string { return fmt.Sprintf("%d/%d", v.MatchID, v.SeqNum) }))

	total.merge(applyPhase(ctx, logger, "map_stats", batch.MapStats(),
		r.maps.UpsertMapStat,
		func(v domain.MapStat) string { return fmt.Sprintf("%d/%d", v.MapID, v.PlayerID) }))

	total.merge(applyPhase(ctx, logger, "round_player_stats", batch.RoundPlayerStats(),
		r.maps.UpsertRoundPlayerStat,
		func(v domain.RoundPlayerStat) string {
			return fmt.Sprintf("%d/%d/%d", v.MatchID, v.RoundID, v.PlayerID)
		}))

	total.merge(applyPhase(ctx, logger, "map_player_stats", batch.MapPlayerStats(),
		r.maps.UpsertMapPlayerStat,
		func(v domain.MapPlayerStat) string { return fmt.Sprintf("%d/%d", v.MatchID, v.PlayerID) }))

	total.merge(applyPhase(ctx, logger, "xvys", batch.XvYs(),
		r.maps.UpsertXvY,
		func(v domain.XvY) string {
			return fmt.Sprintf("%d/%d/%s/%s", v.MatchID, v.TeamID, v.Side, v.Situation)
		}))

	total.merge(applyPhase(ctx, logger, "map_events", batch.MapEvents(),
		r.maps.UpsertMapEvent,
		func(v domain.MapEvent) string { return fmt.Sprintf("%d/%d", v.RoundID, v.KillID) }))

	return total
}

func applyPhase[T any](
	ctx context.Context,
	logger zerolog.Logger,
	phase string,
	items []T,
	apply func(context.Context, T) (repository.Result, error),
	key func(T) string,
) Stats {
	var stats Stats
	for _, item := range items {
		res, err := apply(ctx, item)
		switch {
		case err != nil:
			stats.Failed++
			logger.Error().Err(err).Str("phase", phase).Str("key", key(item)).Msg("row failed")
		case res == repository.Skipped:
			stats.Skipped++
			logger.Debug().Str("phase", phase).Str("key", key(item)).Msg("row skipped")
		default:
			stats.Inserted++
			logger.Debug().Str("phase", phase).Str("key", key(item)).Msg("row inserted")
		}
	}
	logger.Info().
		Str("phase", phase).
		Int("inserted", stats.Inserted).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("phase complete")
	return stats
}
