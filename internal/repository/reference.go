package repository

import (
	"context"
	"database/sql"

	"valorant-pipeline/internal/config"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

// ReferenceRepository owns the static dimension tables: competitive regions
// and the playable-map catalogue. Both are immutable facts and insert-or-ignore.
type ReferenceRepository struct {
	base
}

func NewReferenceRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *ReferenceRepository {
	return &ReferenceRepository{base{db: sqlDB, logger: logger, dryRun: cfg.DryRun}}
}

// StaticRegions is the VCT region list; it has no document source.
func StaticRegions() []domain.Region {
	return []domain.Region{
		{RegionID: 1, Name: "Americas"},
		{RegionID: 2, Name: "EMEA"},
		{RegionID: 3, Name: "Pacific"},
		{RegionID: 4, Name: "China"},
	}
}

// StaticAvailableMaps seeds the common competitive map pool; scraped
// documents add anything newer.
func StaticAvailableMaps() []domain.AvailableMap {
	names := []struct {
		id     int64
		name   string
		riotID string
	}{
		{1, "Ascent", "ascent"},
		{2, "Bind", "bind"},
		{3, "Haven", "haven"},
		{4, "Split", "split"},
		{5, "Icebox", "icebox"},
		{6, "Breeze", "breeze"},
		{7, "Fracture", "fracture"},
		{8, "Pearl", "pearl"},
		{9, "Lotus", "lotus"},
		{10, "Sunset", "sunset"},
	}
	maps := make([]domain.AvailableMap, 0, len(names))
	for _, n := range names {
		name, riotID := n.name, n.riotID
		maps = append(maps, domain.AvailableMap{ID: n.id, Name: &name, RiotID: &riotID})
	}
	return maps
}

func (r *ReferenceRepository) UpsertRegion(ctx context.Context, region domain.Region) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO Regions (regionID, name)
		VALUES (?, ?)
		ON CONFLICT (regionID) DO NOTHING
	`, region.RegionID, region.Name)
}

func (r *ReferenceRepository) UpsertAvailableMap(ctx context.Context, m domain.AvailableMap) (Result, error) {
	return r.apply(ctx, `
		INSERT INTO mapsAvailable (id, name, riotID)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, m.ID, m.Name, m.RiotID)
}
