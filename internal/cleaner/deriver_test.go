package cleaner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/lookup"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
)

func loadTestMapping(t *testing.T, content string, buckets []string) *lookup.Mapping {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lookup.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	mapping, err := lookup.Load(path, buckets)
	require.NoError(t, err)
	return mapping
}

func TestCategoryDeriverGenre(t *testing.T) {
	mapping := loadTestMapping(t, `{
		"Fiction":     ["FICBBA"],
		"Non-Fiction": ["NFBIO"],
		"Unknown":     ["XUNCAT"]
	}`, lookup.GenreBuckets())

	ds := dataset.New([]string{schema.ColumnBibNum, schema.ColumnItemCollection})
	ds.Rows = []dataset.Record{
		{schema.ColumnBibNum: "1", schema.ColumnItemCollection: "FICBBA"},
		{schema.ColumnBibNum: "2", schema.ColumnItemCollection: "NFBIO"},
		{schema.ColumnBibNum: "3", schema.ColumnItemCollection: "XUNCAT"},
		{schema.ColumnBibNum: "4", schema.ColumnItemCollection: "SOMETHINGELSE"},
	}

	NewCategoryDeriver(schema.ColumnGenre, mapping).Apply(ds)

	assert.Equal(t, schema.ColumnGenre, ds.Columns[len(ds.Columns)-1])
	assert.Equal(t, "Fiction", ds.Rows[0][schema.ColumnGenre])
	assert.Equal(t, "Non-Fiction", ds.Rows[1][schema.ColumnGenre])
	assert.Equal(t, "Unknown", ds.Rows[2][schema.ColumnGenre])
	assert.Equal(t, "Unknown", ds.Rows[3][schema.ColumnGenre])
}

func TestCategoryDeriverEveryRowGetsExactlyOneLabel(t *testing.T) {
	mapping := loadTestMapping(t, `{
		"Adult":    ["FICBBA", "NFBIO"],
		"Teen":     ["FICTEE"],
		"Children": ["FICJUV"],
		"Unknown":  ["XUNCAT"]
	}`, lookup.AudienceBuckets())

	ds := dataset.New([]string{schema.ColumnItemCollection})
	for _, code := range []string{"FICBBA", "FICTEE", "FICJUV", "NFBIO", "XUNCAT", "UNMAPPED", ""} {
		ds.Rows = append(ds.Rows, dataset.Record{schema.ColumnItemCollection: code})
	}

	NewCategoryDeriver(schema.ColumnAudience, mapping).Apply(ds)

	valid := map[string]bool{"Adult": true, "Teen": true, "Children": true, "Unknown": true}
	for _, row := range ds.Rows {
		assert.True(t, valid[row[schema.ColumnAudience]],
			"code %q got label %q", row[schema.ColumnItemCollection], row[schema.ColumnAudience])
	}
}

func TestCategoryDeriverTrimsCollectionCode(t *testing.T) {
	mapping := loadTestMapping(t, `{
		"Fiction":     ["FICBBA"],
		"Non-Fiction": [],
		"Unknown":     []
	}`, lookup.GenreBuckets())

	ds := dataset.New([]string{schema.ColumnItemCollection})
	ds.Rows = []dataset.Record{{schema.ColumnItemCollection: " FICBBA "}}

	NewCategoryDeriver(schema.ColumnGenre, mapping).Apply(ds)

	assert.Equal(t, "Fiction", ds.Rows[0][schema.ColumnGenre])
}
