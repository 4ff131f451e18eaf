// =============================================================================
// Library Inventory Cleaner - CSV Writer Module
// =============================================================================
//
// This module serializes a cleaned Dataset back to disk as CSV. The output
// format follows the path convention of the downstream analytics jobs: a
// path ending in ".csv.gz" produces a gzip-compressed CSV, anything else a
// plain CSV. The header row is the dataset's column order, which is the
// input order minus dropped columns plus the derived columns at the end.
//
// The output file is created in a single pass after all transformations have
// completed, so a failed run never leaves a partial output behind an earlier
// stage.
//
// =============================================================================

package csvwriter

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
)

// GzipSuffix is the output path suffix that selects gzip compression.
const GzipSuffix = ".csv.gz"

// Write serializes the dataset to filePath as CSV, gzip-compressed when the
// path ends in GzipSuffix.
func Write(ds *dataset.Dataset, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var out io.Writer = file

	var gz *gzip.Writer
	if strings.HasSuffix(filePath, GzipSuffix) {
		gz = gzip.NewWriter(file)
		out = gz
	}

	if err := writeCSV(ds, out); err != nil {
		return err
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to finalize gzip stream: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

// writeCSV writes the header row and every record in column order.
func writeCSV(ds *dataset.Dataset, out io.Writer) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(ds.HeaderRow()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range ds.Rows {
		if err := writer.Write(ds.RecordRow(i)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
