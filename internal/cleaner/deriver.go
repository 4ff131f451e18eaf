// =============================================================================
// Library Inventory Cleaner - Category Deriver
// =============================================================================
//
// Derives a categorical column from the ItemCollection code using a loaded
// lookup Mapping. Each row is assigned the first bucket, in the mapping's
// priority order, whose code set contains the row's collection code; rows
// whose code matches no bucket are assigned "Unknown". The derivation is a
// total function of the code and the mapping, independent of row order.
//
// The standard run derives two columns from two independent mappings: Genre
// (Fiction / Non-Fiction / Unknown) and Audience (Adult / Teen / Children /
// Unknown).
//
// =============================================================================

package cleaner

import (
	"strings"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/lookup"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
)

// CategoryDeriver appends one derived column per configured mapping.
type CategoryDeriver struct {
	column  string
	mapping *lookup.Mapping
}

// NewCategoryDeriver creates a deriver that appends the named column,
// classifying each row's ItemCollection code through the mapping.
func NewCategoryDeriver(column string, mapping *lookup.Mapping) *CategoryDeriver {
	return &CategoryDeriver{
		column:  column,
		mapping: mapping,
	}
}

// Apply appends the derived column to the dataset.
func (d *CategoryDeriver) Apply(ds *dataset.Dataset) {
	ds.AddColumn(d.column, func(row dataset.Record) string {
		code := strings.TrimSpace(row[schema.ColumnItemCollection])
		return d.mapping.Classify(code)
	})
}
