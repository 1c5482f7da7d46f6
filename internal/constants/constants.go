package constants

import "time"

const (
	DatabaseTimeout = 5 * time.Second
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	// ScrapeRequestTimeout bounds a single page or API fetch.
	ScrapeRequestTimeout = 15 * time.Second

	// DetailFetchConcurrency caps parallel match-detail fetches per series.
	DetailFetchConcurrency = 3

	// ScrapeRequestsPerSecond throttles all outbound scraper traffic.
	ScrapeRequestsPerSecond = 0.5
	ScrapeBurst             = 1
)

const (
	DefaultEventType   = "VCT"
	DefaultEventFormat = "LAN"
	DefaultDivision    = "VCT"
)

// Event tiers derived from the event name when the source omits one.
const (
	TierChampions = "SSS"
	TierMasters   = "SS"
	TierRegional  = "A"
	TierDefault   = "B"
)

const (
	ExtraFileSuffix   = "_extra.json"
	DetailsFileSuffix = "_details.json"
)
