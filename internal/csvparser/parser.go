// =============================================================================
// Library Inventory Cleaner - CSV Parser Module
// =============================================================================
//
// This module parses the inventory CSV export into a Dataset. The export has
// a single header row followed by data rows; fields are comma separated and
// may be quoted. Rows shorter than the header are padded with empty values,
// and fully empty rows are skipped.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
)

// Parse reads an inventory CSV file and returns the loaded Dataset.
//
// The first row is taken as the header; every remaining non-empty row becomes
// a record keyed by header name. The file handle is held only for the
// duration of the read.
func Parse(filePath string) (*dataset.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))

	// Inventory exports occasionally carry ragged rows and loosely quoted
	// free-text fields (titles, author names).
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers, err := extractHeaders(allRows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	ds := dataset.New(headers)
	ds.Rows = extractRecords(allRows[1:], headers)

	return ds, nil
}

// extractHeaders cleans the header row and rejects headers the Dataset
// cannot represent (empty or duplicate names, which would silently merge
// columns in the record maps).
func extractHeaders(row []string) ([]string, error) {
	headers := make([]string, len(row))
	seen := make(map[string]bool, len(row))

	for i, header := range row {
		header = strings.TrimSpace(header)
		if header == "" {
			return nil, fmt.Errorf("column %d has an empty header", i+1)
		}
		if seen[header] {
			return nil, fmt.Errorf("duplicate column header %q", header)
		}
		seen[header] = true
		headers[i] = header
	}

	return headers, nil
}

// extractRecords converts raw rows to records keyed by header name.
func extractRecords(rows [][]string, headers []string) []dataset.Record {
	records := make([]dataset.Record, 0, len(rows))

	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}

		record := make(dataset.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				// Short row: treat the missing cells as empty.
				record[header] = ""
			}
		}

		records = append(records, record)
	}

	return records
}

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
