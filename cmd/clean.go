// =============================================================================
// Library Inventory Cleaner - Clean Command
// =============================================================================
//
// This file defines the 'clean' command, which runs the full cleaning
// pipeline on one input file and writes one output file.
//
// COMMAND USAGE:
//   inventory-clean clean <input-file> <output-file>
//
// PIPELINE:
//   1. Load the inventory export (CSV, or XLSX by extension)
//   2. Validate the schema (all required columns present)
//   3. Remove unneeded columns (ISBN, ReportDate)
//   4. Remove records with an empty collection code or a sentinel year
//   5. Correct known bad values (publication year 2109 -> 2019)
//   6. Derive the Genre and Audience columns from the lookup documents
//   7. Write the cleaned CSV (gzip-compressed for a .csv.gz output path)
//
// The command exits with status 1 when the input file is missing, the schema
// is invalid, or a lookup document cannot be loaded. No output file is
// written on failure.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/cleaner"
	"github.com/ginjaninja78/library-inventory-cleaner/pkg/utils"
)

// cleanCmd represents the 'clean' command.
var cleanCmd = &cobra.Command{
	Use:   "clean <input-file> <output-file>",
	Short: "Clean an inventory export and write the result",
	Long: `The clean command runs the full cleaning pipeline on a single inventory
export. The input may be a CSV file or an XLSX workbook; the output is always
CSV, gzip-compressed when the output path ends in .csv.gz.

The pipeline either completes every stage and writes a complete output file,
or stops at the first error and writes nothing.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(args[0], args[1])
	},
}

// init registers the clean command with the root command.
func init() {
	rootCmd.AddCommand(cleanCmd)
}

// runClean loads the configuration, executes the pipeline, and writes the
// optional run report.
func runClean(inputPath, outputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	pipeline := cleaner.New(cfg, logger)

	result, err := pipeline.Run(inputPath, outputPath)
	if err != nil {
		return err
	}

	if cfg.ReportDir != "" {
		reportPath, err := utils.WriteRunReport(utils.RunSummary{
			RunID:          result.RunID,
			InputFile:      result.InputFile,
			OutputFile:     result.OutputFile,
			RowsRead:       result.RowsRead,
			RowsDropped:    result.RowsDropped,
			RowsWritten:    result.RowsWritten,
			CellsCorrected: result.CellsCorrected,
			Elapsed:        result.Elapsed,
		}, cfg.ReportDir)
		if err != nil {
			// The cleaned output is already on disk; a failed report is not
			// worth failing the run over.
			logger.Warn("failed to write run report", "error", err)
		} else {
			logger.Info("run report written", "path", reportPath)
		}
	}

	fmt.Printf("Cleaned %d row(s) -> %s\n", result.RowsWritten, result.OutputFile)
	return nil
}
