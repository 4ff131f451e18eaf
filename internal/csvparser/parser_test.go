package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	path := writeCSV(t, "BibNum,Title,Author\n"+
		"100,\"Walden, Or Life In The Woods\",Thoreau\n"+
		"101,Leaves of Grass,Whitman\n")

	ds, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BibNum", "Title", "Author"}, ds.Columns)
	require.Equal(t, 2, ds.RowCount())
	assert.Equal(t, "Walden, Or Life In The Woods", ds.Rows[0]["Title"])
	assert.Equal(t, "Whitman", ds.Rows[1]["Author"])
}

func TestParseSkipsEmptyRowsAndPadsShortRows(t *testing.T) {
	path := writeCSV(t, "A,B,C\n1,2,3\n,,\n4,5\n")

	ds, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 2, ds.RowCount())
	assert.Equal(t, "5", ds.Rows[1]["B"])
	assert.Equal(t, "", ds.Rows[1]["C"])
}

func TestParseTrimsWhitespace(t *testing.T) {
	path := writeCSV(t, " A , B \n x , y \n")

	ds, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, ds.Columns)
	assert.Equal(t, "x", ds.Rows[0]["A"])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty file", "", "empty"},
		{"duplicate header", "A,B,A\n1,2,3\n", "duplicate column header"},
		{"empty header", "A,,C\n1,2,3\n", "empty header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeCSV(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestParseHeaderOnlyFileHasNoRows(t *testing.T) {
	ds, err := Parse(writeCSV(t, "A,B,C\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, ds.RowCount())
	assert.Equal(t, 3, ds.ColumnCount())
}
