package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestScanClassifiesAndOrders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "event-a", "playoffs", "200", "200_details.json"))
	writeFile(t, filepath.Join(root, "event-a", "playoffs", "200", "200_extra.json"))
	writeFile(t, filepath.Join(root, "event-b", "groups", "100", "100_extra.json"))
	writeFile(t, filepath.Join(root, "event-b", "groups", "100", "100_details.json"))
	writeFile(t, filepath.Join(root, "event-b", "notes.txt"))
	writeFile(t, filepath.Join(root, "event-b", "other.json"))

	docs, err := NewScanner(zerolog.Nop()).Scan(root)
	require.NoError(t, err)
	require.Len(t, docs, 4, "unrelated files are ignored")

	// every extra document comes before any details document
	assert.Equal(t, KindExtra, docs[0].Kind)
	assert.Equal(t, KindExtra, docs[1].Kind)
	assert.Equal(t, KindDetails, docs[2].Kind)
	assert.Equal(t, KindDetails, docs[3].Kind)

	// within a kind, paths are sorted
	assert.Contains(t, docs[0].Path, "200_extra.json")
	assert.Contains(t, docs[1].Path, "100_extra.json")
}

func TestScanMissingRoot(t *testing.T) {
	_, err := NewScanner(zerolog.Nop()).Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestDocumentRead(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "1_extra.json")
	writeFile(t, path)

	data, err := Document{Path: path, Kind: KindExtra}.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), data)

	_, err = Document{Path: filepath.Join(root, "missing.json")}.Read()
	require.Error(t, err)
}
