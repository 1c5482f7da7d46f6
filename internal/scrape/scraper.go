package scrape

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/constants"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	seriesPageURL   = "https://www.rib.gg/series/%d"
	matchDetailsURL = "https://be-prod.rib.gg/v1/matches/%d/details"

	checkpointFile = "scraped_series_ids.txt"
)

var unsafePathChars = regexp.MustCompile(`[<>:"/\\|?*]`)
var whitespace = regexp.MustCompile(`\s+`)

type Scraper struct {
	client *Client
	cfg    *config.Config
	logger zerolog.Logger

	scraped map[int64]struct{}
}

func NewScraper(client *Client, cfg *config.Config, logger zerolog.Logger) *Scraper {
	return &Scraper{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		scraped: make(map[int64]struct{}),
	}
}

// ScrapeTournaments reads the tournament URL list and scrapes every series of
// every child event. Individual failures are logged; the run only errors when
// the URL list itself is unusable.
func (s *Scraper) ScrapeTournaments(ctx context.Context) error {
	urls, err := readLines(s.cfg.SeriesURLsFile)
	if err != nil {
		return fmt.Errorf("failed to read tournament urls: %w", err)
	}
	if err := s.loadCheckpoint(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to load scrape checkpoint, starting fresh")
	}

	scrapedAny := false
	for _, url := range urls {
		if err := s.scrapeTournament(ctx, url); err != nil {
			s.logger.Error().Err(err).Str("url", url).Msg("tournament scrape failed")
			continue
		}
		scrapedAny = true
	}
	if !scrapedAny && len(urls) > 0 {
		return fmt.Errorf("no tournament could be scraped")
	}
	return nil
}

// ScrapeSeries scrapes a single series by id into the output root.
func (s *Scraper) ScrapeSeries(ctx context.Context, seriesID int64) error {
	if err := s.loadCheckpoint(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to load scrape checkpoint, starting fresh")
	}
	dir := filepath.Join(s.cfg.ScrapeOut, fmt.Sprintf("%d", seriesID))
	return s.scrapeSeriesTo(ctx, seriesID, dir)
}

func (s *Scraper) scrapeTournament(ctx context.Context, url string) error {
	page, err := s.client.Get(ctx, url)
	if err != nil {
		return err
	}
	data, err := extractNextData(page)
	if err != nil {
		return err
	}
	if data.Props.PageProps.Event == nil {
		return fmt.Errorf("tournament page has no event payload")
	}

	for _, event := range data.Props.PageProps.Event.ChildEvents {
		eventDir := sanitizePath(event.Name)
		if eventDir == "" {
			eventDir = "unknown_event"
		}

		bracketType, seriesIDs, err := seriesIDsFromBracket(event.BracketJSON)
		if err != nil {
			s.logger.Warn().Err(err).Str("event", event.Name).Msg("skipping event bracket")
			continue
		}
		s.logger.Info().
			Str("event", event.Name).
			Str("bracket_type", bracketType).
			Int("series", len(seriesIDs)).
			Msg("walking bracket")

		for _, seriesID := range seriesIDs {
			dir := filepath.Join(s.cfg.ScrapeOut, eventDir, bracketType, fmt.Sprintf("%d", seriesID))
			if err := s.scrapeSeriesTo(ctx, seriesID, dir); err != nil {
				s.logger.Error().Err(err).Int64("series_id", seriesID).Msg("series scrape failed")
			}
		}
	}
	return nil
}

func (s *Scraper) scrapeSeriesTo(ctx context.Context, seriesID int64, dir string) error {
	if _, done := s.scraped[seriesID]; done {
		s.logger.Debug().Int64("series_id", seriesID).Msg("series already scraped, skipping")
		return nil
	}

	page, err := s.client.Get(ctx, fmt.Sprintf(seriesPageURL, seriesID))
	if err != nil {
		return err
	}
	data, err := extractNextData(page)
	if err != nil {
		return err
	}
	series := data.Props.PageProps.Series
	if len(series) == 0 {
		return fmt.Errorf("series page has no series payload")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create series directory: %w", err)
	}
	extraPath := filepath.Join(dir, fmt.Sprintf("%d%s", seriesID, constants.ExtraFileSuffix))
	if err := os.WriteFile(extraPath, series, 0o644); err != nil {
		return fmt.Errorf("failed to write extra document: %w", err)
	}
	s.logger.Info().Int64("series_id", seriesID).Str("path", extraPath).Msg("series snapshot saved")

	var header seriesHeader
	if err := json.Unmarshal(series, &header); err != nil {
		return fmt.Errorf("failed to decode series payload: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DetailFetchConcurrency)
	for _, match := range header.Matches {
		matchID := match.ID
		g.Go(func() error {
			details, err := s.client.Get(gctx, fmt.Sprintf(matchDetailsURL, matchID))
			if err != nil {
				// one missing details file still leaves the series usable
				s.logger.Error().Err(err).Int64("match_id", matchID).Msg("details fetch failed")
				return nil
			}
			detailsPath := filepath.Join(dir, fmt.Sprintf("%d%s", matchID, constants.DetailsFileSuffix))
			if err := os.WriteFile(detailsPath, details, 0o644); err != nil {
				s.logger.Error().Err(err).Int64("match_id", matchID).Msg("details write failed")
				return nil
			}
			s.logger.Debug().Int64("match_id", matchID).Str("path", detailsPath).Msg("match details saved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.scraped[seriesID] = struct{}{}
	if err := s.saveCheckpoint(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save scrape checkpoint")
	}
	return nil
}

func (s *Scraper) checkpointPath() string {
	return filepath.Join(s.cfg.ScrapeOut, checkpointFile)
}

func (s *Scraper) loadCheckpoint() error {
	lines, err := readLines(s.checkpointPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, line := range lines {
		var id int64
		if _, err := fmt.Sscanf(line, "%d", &id); err == nil {
			s.scraped[id] = struct{}{}
		}
	}
	return nil
}

func (s *Scraper) saveCheckpoint() error {
	if err := os.MkdirAll(s.cfg.ScrapeOut, 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for id := range s.scraped {
		fmt.Fprintf(&b, "%d\n", id)
	}
	return os.WriteFile(s.checkpointPath(), []byte(b.String()), 0o644)
}

func sanitizePath(name string) string {
	name = unsafePathChars.ReplaceAllString(name, "")
	return whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
