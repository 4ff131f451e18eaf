package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Already existing is fine.
	assert.NoError(t, EnsureDir(dir))
}

func TestWriteRunReport(t *testing.T) {
	reportDir := filepath.Join(t.TempDir(), "reports")

	summary := RunSummary{
		RunID:          "run-123",
		InputFile:      "data/inventory.csv",
		OutputFile:     "results/clean.csv",
		RowsRead:       100,
		RowsDropped:    7,
		RowsWritten:    93,
		CellsCorrected: 2,
		Elapsed:        250 * time.Millisecond,
	}

	path, err := WriteRunReport(summary, reportDir)
	require.NoError(t, err)
	require.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "run-123")
	assert.Contains(t, string(content), "Rows Read:       100")
	assert.Contains(t, string(content), "Rows Dropped:    7")
	assert.Contains(t, string(content), "Cells Corrected: 2")
}
