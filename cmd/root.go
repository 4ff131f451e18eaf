// =============================================================================
// Library Inventory Cleaner - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'clean', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (inventory-clean)
//   ├── cleanCmd    (inventory-clean clean <input> <output>)
//   ├── validateCmd (inventory-clean validate)
//   └── versionCmd  (inventory-clean version)
//
// The root command owns the global flags (--config, --verbose) and the
// construction of the logger instance that the pipeline receives. Logging
// goes to stderr; stdout stays clean for shell composition.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/config"
)

// cfgFile holds the path to the application configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "inventory-clean",
	Short: "Clean the Louisville Metro KY library collection inventory",
	Long: `inventory-clean transforms a raw library collection inventory export into a
cleaned dataset ready for analysis.

The cleaning pipeline validates the export schema, removes unneeded columns
(ISBN, ReportDate), drops records with an empty collection code or a
placeholder publication year, corrects the known 2109 -> 2019 year typo, and
derives Genre and Audience columns from external lookup documents.

Example Usage:
  inventory-clean clean data/inventory.csv results/inventory-clean.csv
  inventory-clean clean data/inventory.xlsx results/inventory-clean.csv.gz
  inventory-clean validate --config ./my-config.yaml`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the application configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration file named by --config, falling back to
// the compiled-in defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger instance handed to the pipeline. The level
// comes from the configuration; --verbose forces debug.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo

	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
