package fx

import (
	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/database"
	"valorant-pipeline/internal/extract"
	"valorant-pipeline/internal/ingest"
	"valorant-pipeline/internal/logger"
	"valorant-pipeline/internal/repository"
	"valorant-pipeline/internal/scrape"
	"valorant-pipeline/internal/source"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewReferenceRepository),
	fx.Provide(repository.NewTournamentRepository),
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewMapRepository),
	fx.Provide(repository.NewRunRepository),
	// pipeline
	fx.Provide(source.NewScanner),
	fx.Provide(extract.NewExtractor),
	fx.Provide(ingest.NewRunner),
	// scraper
	fx.Provide(scrape.NewClient),
	fx.Provide(scrape.NewScraper),
)
