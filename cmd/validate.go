// =============================================================================
// Library Inventory Cleaner - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and both lookup documents without processing any data. Useful after
// editing a lookup document: a malformed or incomplete document is caught
// here instead of failing a real cleaning run.
//
// COMMAND USAGE:
//   inventory-clean validate [--config path]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/lookup"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and lookup documents",
	Long: `The validate command loads the application configuration and both lookup
documents, reporting the bucket contents of each. No data is processed and
no files are written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads and reports on the configuration and lookup documents.
func runValidate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  Genre lookup:    %s\n", cfg.GenreLookup)
	fmt.Printf("  Audience lookup: %s\n", cfg.AudienceLookup)
	fmt.Printf("  Drop columns:    %v\n", cfg.DropColumns)
	fmt.Printf("  Sentinel years:  %v\n", cfg.SentinelYears)
	fmt.Printf("  Corrections:     %d rule(s)\n", len(cfg.Corrections))

	genre, err := lookup.Load(cfg.GenreLookup, lookup.GenreBuckets())
	if err != nil {
		return err
	}
	fmt.Printf("Genre lookup OK (buckets: %v)\n", genre.Buckets())

	audience, err := lookup.Load(cfg.AudienceLookup, lookup.AudienceBuckets())
	if err != nil {
		return err
	}
	fmt.Printf("Audience lookup OK (buckets: %v)\n", audience.Buckets())

	return nil
}
