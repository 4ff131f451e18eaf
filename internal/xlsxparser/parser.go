// =============================================================================
// Library Inventory Cleaner - XLSX Parser Module
// =============================================================================
//
// This module parses XLSX inventory exports into a Dataset. Some branches
// export the collection inventory from the reporting system as a workbook
// rather than CSV; the data lives on the first sheet with the same header
// row and column set as the CSV export.
//
// Cell values arrive as the strings excelize renders for the sheet, so the
// resulting Dataset is interchangeable with one loaded by the CSV parser and
// flows through the same cleaning pipeline.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
)

// Parse reads the first sheet of an XLSX workbook and returns the loaded
// Dataset. The first row is the header; remaining non-empty rows become
// records, with short rows padded by empty values.
func Parse(filePath string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers, err := extractHeaders(rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	ds := dataset.New(headers)

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		record := make(dataset.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}
		ds.Rows = append(ds.Rows, record)
	}

	return ds, nil
}

// extractHeaders cleans the header row. Empty and duplicate headers are
// rejected for the same reason as in the CSV parser: they would merge
// columns inside the record maps.
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

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
