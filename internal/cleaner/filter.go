// =============================================================================
// Library Inventory Cleaner - Record Filter
// =============================================================================
//
// Row-retention rules for the inventory dataset. A record survives filtering
// only if it has a non-empty ItemCollection code and a publication year that
// is not one of the sentinel placeholder values. Both predicates apply
// independently; failing either drops the record.
//
// =============================================================================

package cleaner

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
)

// RecordFilter drops rows that cannot be used for analysis. It never fails
// on data: filtering down to an empty dataset is a valid outcome.
type RecordFilter struct {
	sentinelYears []string
}

// NewRecordFilter creates a filter that drops rows whose publication year
// matches any of the sentinel values.
func NewRecordFilter(sentinelYears []string) *RecordFilter {
	return &RecordFilter{
		sentinelYears: append([]string(nil), sentinelYears...),
	}
}

// Apply removes every row with an empty ItemCollection code or a sentinel
// publication year. It returns the number of rows dropped.
func (f *RecordFilter) Apply(ds *dataset.Dataset) int {
	before := ds.RowCount()

	ds.Filter(func(row dataset.Record) bool {
		return f.hasCollectionCode(row) && !f.hasSentinelYear(row)
	})

	return before - ds.RowCount()
}

// hasCollectionCode reports whether the row carries a usable category code.
func (f *RecordFilter) hasCollectionCode(row dataset.Record) bool {
	return strings.TrimSpace(row[schema.ColumnItemCollection]) != ""
}

// hasSentinelYear reports whether the row's publication year is one of the
// configured placeholder values.
func (f *RecordFilter) hasSentinelYear(row dataset.Record) bool {
	year := strings.TrimSpace(row[schema.ColumnPublicationYear])

	for _, sentinel := range f.sentinelYears {
		if year == sentinel {
			return true
		}
		// Exports that pass through spreadsheet tools sometimes render the
		// year as a float ("9999.0"); compare numerically when both sides
		// parse.
		if yearNum, err := strconv.ParseFloat(year, 64); err == nil {
			if sentinelNum, err := strconv.ParseFloat(sentinel, 64); err == nil && yearNum == sentinelNum {
				return true
			}
		}
	}

	return false
}
