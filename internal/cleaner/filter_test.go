package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
)

func filterDataset(rows ...dataset.Record) *dataset.Dataset {
	ds := dataset.New([]string{schema.ColumnBibNum, schema.ColumnItemCollection, schema.ColumnPublicationYear})
	ds.Rows = rows
	return ds
}

func TestRecordFilter(t *testing.T) {
	tests := []struct {
		name string
		row  dataset.Record
		kept bool
	}{
		{
			name: "valid row",
			row:  dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "2019"},
			kept: true,
		},
		{
			name: "empty collection code",
			row:  dataset.Record{schema.ColumnItemCollection: "", schema.ColumnPublicationYear: "2019"},
			kept: false,
		},
		{
			name: "whitespace collection code",
			row:  dataset.Record{schema.ColumnItemCollection: "  ", schema.ColumnPublicationYear: "2019"},
			kept: false,
		},
		{
			name: "missing collection column value",
			row:  dataset.Record{schema.ColumnPublicationYear: "2019"},
			kept: false,
		},
		{
			name: "year zero",
			row:  dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "0"},
			kept: false,
		},
		{
			name: "placeholder year 9999",
			row:  dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "9999"},
			kept: false,
		},
		{
			name: "placeholder year as float",
			row:  dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "9999.0"},
			kept: false,
		},
		{
			name: "empty year is kept",
			row:  dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: ""},
			kept: true,
		},
		{
			name: "both predicates fail",
			row:  dataset.Record{schema.ColumnItemCollection: "", schema.ColumnPublicationYear: "9999"},
			kept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := filterDataset(tt.row)
			filter := NewRecordFilter([]string{"0", "9999"})

			dropped := filter.Apply(ds)

			if tt.kept {
				assert.Equal(t, 0, dropped)
				assert.Equal(t, 1, ds.RowCount())
			} else {
				assert.Equal(t, 1, dropped)
				assert.Equal(t, 0, ds.RowCount())
			}
		})
	}
}

func TestRecordFilterKeepsRowOrder(t *testing.T) {
	ds := filterDataset(
		dataset.Record{schema.ColumnBibNum: "1", schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "2001"},
		dataset.Record{schema.ColumnBibNum: "2", schema.ColumnItemCollection: "", schema.ColumnPublicationYear: "2002"},
		dataset.Record{schema.ColumnBibNum: "3", schema.ColumnItemCollection: "NFBIO", schema.ColumnPublicationYear: "2003"},
	)

	dropped := NewRecordFilter([]string{"0", "9999"}).Apply(ds)

	assert.Equal(t, 1, dropped)
	require.Equal(t, 2, ds.RowCount())
	assert.Equal(t, "1", ds.Rows[0][schema.ColumnBibNum])
	assert.Equal(t, "3", ds.Rows[1][schema.ColumnBibNum])
}

func TestRecordFilterSurvivorsSatisfyPredicates(t *testing.T) {
	ds := filterDataset(
		dataset.Record{schema.ColumnItemCollection: "FICBBA", schema.ColumnPublicationYear: "1999"},
		dataset.Record{schema.ColumnItemCollection: "", schema.ColumnPublicationYear: "1999"},
		dataset.Record{schema.ColumnItemCollection: "NFBIO", schema.ColumnPublicationYear: "0"},
		dataset.Record{schema.ColumnItemCollection: "NFHIS", schema.ColumnPublicationYear: "9999"},
	)

	NewRecordFilter([]string{"0", "9999"}).Apply(ds)

	for _, row := range ds.Rows {
		assert.NotEmpty(t, row[schema.ColumnItemCollection])
		assert.NotEqual(t, "0", row[schema.ColumnPublicationYear])
		assert.NotEqual(t, "9999", row[schema.ColumnPublicationYear])
	}
}
