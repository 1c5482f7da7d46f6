// Package source discovers the JSON documents produced by the scraper.
// Files are classified by suffix: series snapshots end in _extra.json,
// per-match detail records end in _details.json.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"valorant-pipeline/internal/constants"

	"github.com/rs/zerolog"
)

type Kind string

const (
	KindExtra   Kind = "extra"
	KindDetails Kind = "details"
)

// Document addresses one JSON file under the data root.
type Document struct {
	Path string
	Kind Kind
}

func (d Document) Read() ([]byte, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", d.Path, err)
	}
	return data, nil
}

type Scanner struct {
	logger zerolog.Logger
}

func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan walks the data root and returns all extra documents followed by all
// details documents. Extra files carry the parents (tournaments, teams,
// matches) that detail rows reference, so they are always surfaced first.
func (s *Scanner) Scan(root string) ([]Document, error) {
	var extras, details []Document

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, constants.ExtraFileSuffix):
			extras = append(extras, Document{Path: path, Kind: KindExtra})
		case strings.HasSuffix(path, constants.DetailsFileSuffix):
			details = append(details, Document{Path: path, Kind: KindDetails})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan data root %s: %w", root, err)
	}

	sort.Slice(extras, func(i, j int) bool { return extras[i].Path < extras[j].Path })
	sort.Slice(details, func(i, j int) bool { return details[i].Path < details[j].Path })

	s.logger.Info().
		Str("root", root).
		Int("extra_files", len(extras)).
		Int("details_files", len(details)).
		Msg("scanned data root")

	return append(extras, details...), nil
}
