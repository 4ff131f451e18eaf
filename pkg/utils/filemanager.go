// =============================================================================
// Library Inventory Cleaner - File Utilities
// =============================================================================
//
// Shared file helpers and the run-report writer. A run report is a small
// human-readable summary of one cleaning run, written next to the logs when
// the configuration sets a report directory. Reports exist for operators who
// want a paper trail of what each run read, dropped, and corrected without
// scraping structured logs.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains the outcome of one cleaning run.
type RunSummary struct {
	// RunID identifies the run; it matches the run_id field in the logs.
	RunID string

	// InputFile and OutputFile are the paths as given on the command line.
	InputFile  string
	OutputFile string

	// RowsRead, RowsDropped, and RowsWritten describe the row flow through
	// the pipeline.
	RowsRead    int
	RowsDropped int
	RowsWritten int

	// CellsCorrected is the number of cells changed by value correction.
	CellsCorrected int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// WriteRunReport writes the summary to a timestamped file in reportDir and
// returns the report path. The directory is created if it does not exist.
func WriteRunReport(summary RunSummary, reportDir string) (string, error) {
	if err := EnsureDir(reportDir); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	reportName := fmt.Sprintf("clean_summary_%s.txt", timestamp)
	reportPath := filepath.Join(reportDir, reportName)

	file, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	writer.WriteString("Library Inventory Cleaner - Run Summary\n")
	writer.WriteString("================================================================================\n\n")
	writer.WriteString(fmt.Sprintf("  Run ID:          %s\n", summary.RunID))
	writer.WriteString(fmt.Sprintf("  Input:           %s\n", summary.InputFile))
	writer.WriteString(fmt.Sprintf("  Output:          %s\n", summary.OutputFile))
	writer.WriteString(fmt.Sprintf("  Rows Read:       %d\n", summary.RowsRead))
	writer.WriteString(fmt.Sprintf("  Rows Dropped:    %d\n", summary.RowsDropped))
	writer.WriteString(fmt.Sprintf("  Rows Written:    %d\n", summary.RowsWritten))
	writer.WriteString(fmt.Sprintf("  Cells Corrected: %d\n", summary.CellsCorrected))
	writer.WriteString(fmt.Sprintf("  Duration:        %s\n\n", summary.Elapsed.String()))
	writer.WriteString("================================================================================\n")
	writer.WriteString("End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush report file: %w", err)
	}

	return reportPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
