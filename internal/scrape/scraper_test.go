package scrape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valorant-pipeline/internal/config"
)

func TestSanitizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Champions Tour 2024: Americas", "Champions_Tour_2024_Americas"},
		{"  Masters   Madrid  ", "Masters_Madrid"},
		{`Play/offs <A|B>?`, "Playoffs_AB"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizePath(tc.in), "input %q", tc.in)
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://a\n\n  https://b  \n"), 0o644))

	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a", "https://b"}, lines, "blanks dropped, whitespace trimmed")

	_, err = readLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestCheckpointRoundTrip(t *testing.T) {
	out := t.TempDir()
	cfg := &config.Config{ScrapeOut: out}

	s := NewScraper(nil, cfg, zerolog.Nop())
	s.scraped[100] = struct{}{}
	s.scraped[200] = struct{}{}
	require.NoError(t, s.saveCheckpoint())

	fresh := NewScraper(nil, cfg, zerolog.Nop())
	require.NoError(t, fresh.loadCheckpoint())
	assert.Len(t, fresh.scraped, 2)
	assert.Contains(t, fresh.scraped, int64(100))
	assert.Contains(t, fresh.scraped, int64(200))
}

func TestCheckpointMissingFileIsFresh(t *testing.T) {
	s := NewScraper(nil, &config.Config{ScrapeOut: t.TempDir()}, zerolog.Nop())
	require.NoError(t, s.loadCheckpoint())
	assert.Empty(t, s.scraped)
}
