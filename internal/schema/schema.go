// =============================================================================
// Library Inventory Cleaner - Schema Validation
// =============================================================================
//
// This package checks a loaded Dataset against the fixed inventory schema
// before any transformation runs. The inventory export is produced by an
// external reporting system, so a missing column means the wrong file (or the
// wrong report) was supplied; the pipeline must stop rather than produce a
// partially cleaned output.
//
// =============================================================================

package schema

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
)

// Column names of the inventory export. The pipeline addresses these columns
// directly, so they are fixed here rather than configured.
const (
	ColumnBibNum          = "BibNum"
	ColumnTitle           = "Title"
	ColumnAuthor          = "Author"
	ColumnISBN            = "ISBN"
	ColumnPublicationYear = "PublicationYear"
	ColumnItemType        = "ItemType"
	ColumnItemCollection  = "ItemCollection"
	ColumnItemLocation    = "ItemLocation"
	ColumnItemPrice       = "ItemPrice"
	ColumnReportDate      = "ReportDate"
)

// Derived column names appended by the cleaning pipeline.
const (
	ColumnGenre    = "Genre"
	ColumnAudience = "Audience"
)

// RequiredColumns returns the columns every inventory export must contain.
func RequiredColumns() []string {
	return []string{
		ColumnBibNum,
		ColumnTitle,
		ColumnAuthor,
		ColumnISBN,
		ColumnPublicationYear,
		ColumnItemType,
		ColumnItemCollection,
		ColumnItemLocation,
		ColumnItemPrice,
		ColumnReportDate,
	}
}

// Error reports the required columns absent from an input dataset.
type Error struct {
	// Missing lists the absent columns in schema order.
	Missing []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("input file does not have the expected columns (missing: %s)",
		strings.Join(e.Missing, ", "))
}

// Validate checks that the dataset contains every required column. It returns
// a *Error listing all missing columns, or nil when the schema is complete.
// Validate has no side effects on the dataset.
func Validate(ds *dataset.Dataset) error {
	var missing []string

	for _, col := range RequiredColumns() {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &Error{Missing: missing}
	}
	return nil
}
