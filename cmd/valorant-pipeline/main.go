package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"valorant-pipeline/internal/config"
	fxmodules "valorant-pipeline/internal/fx"
	"valorant-pipeline/internal/ingest"
	"valorant-pipeline/internal/logger"
	"valorant-pipeline/internal/scrape"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func main() {
	app := &cli.App{
		Name:  "valorant-pipeline",
		Usage: "scrape and ingest Valorant esports match data",
		Commands: []*cli.Command{
			ingestCommand(),
			scrapeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand() *cli.Command {
	return &cli.Command{
		Name:  "ingest",
		Usage: "load scraped documents into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-root", Usage: "directory tree of scraped documents"},
			&cli.StringFlag{Name: "db", Usage: "sqlite database path"},
			&cli.BoolFlag{Name: "dry-run", Usage: "report would-be row counts without committing"},
		},
		Action: func(c *cli.Context) error {
			// flags override the environment that config.Load reads
			setEnvIfSet(c, "data-root", "DATA_ROOT")
			setEnvIfSet(c, "db", "DB_PATH")
			if c.Bool("dry-run") {
				os.Setenv("DRY_RUN", "true")
			}

			fx.New(
				fxmodules.Module,
				fx.Invoke(runIngest),
			).Run()
			return nil
		},
	}
}

func scrapeCommand() *cli.Command {
	return &cli.Command{
		Name:  "scrape",
		Usage: "scrape tournament and series documents from rib.gg",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "urls-file", Usage: "file with one tournament URL per line"},
			&cli.StringFlag{Name: "out", Usage: "output directory for scraped documents"},
			&cli.Int64Flag{Name: "series", Usage: "scrape a single series id instead of the URL list"},
		},
		Action: func(c *cli.Context) error {
			setEnvIfSet(c, "urls-file", "SERIES_URLS_FILE")
			setEnvIfSet(c, "out", "SCRAPE_OUT")
			seriesID := c.Int64("series")

			fx.New(
				fxmodules.Module,
				fx.Invoke(func(lc fx.Lifecycle, scraper *scrape.Scraper, cfg *config.Config, zl zerolog.Logger, sd fx.Shutdowner) {
					runScrape(lc, scraper, cfg, zl, sd, seriesID)
				}),
			).Run()
			return nil
		},
	}
}

func runIngest(
	lc fx.Lifecycle,
	runner *ingest.Runner,
	cfg *config.Config,
	zl zerolog.Logger,
	db *sql.DB,
	sd fx.Shutdowner,
) {
	zl = logger.WithLevel(zl, cfg.LogLevel)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				code := 0
				if _, err := runner.Run(context.Background()); err != nil {
					zl.Error().Err(err).Msg("ingestion aborted")
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					zl.Error().Err(err).Msg("shutdown failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				zl.Warn().Err(err).Msg("error closing database connection")
			}
			return nil
		},
	})
}

func runScrape(
	lc fx.Lifecycle,
	scraper *scrape.Scraper,
	cfg *config.Config,
	zl zerolog.Logger,
	sd fx.Shutdowner,
	seriesID int64,
) {
	zl = logger.WithLevel(zl, cfg.LogLevel)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				var err error
				if seriesID != 0 {
					err = scraper.ScrapeSeries(context.Background(), seriesID)
				} else {
					err = scraper.ScrapeTournaments(context.Background())
				}
				code := 0
				if err != nil {
					zl.Error().Err(err).Msg("scrape aborted")
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					zl.Error().Err(err).Msg("shutdown failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return nil
		},
	})
}

func setEnvIfSet(c *cli.Context, flag, env string) {
	if c.IsSet(flag) {
		os.Setenv(env, fmt.Sprint(c.Value(flag)))
	}
}
