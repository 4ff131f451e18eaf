// =============================================================================
// Library Inventory Cleaner - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// cleaning pipeline itself is fixed (one schema, one stage order), but the
// external inputs of the pipeline are configurable:
//
//   - Paths to the genre and audience lookup documents
//   - The correction rules applied to known bad values
//   - The sentinel publication years treated as invalid
//   - The columns dropped from the output
//   - Logging verbosity and the optional run-report directory
//
// The configuration file is optional: running without one uses the compiled-in
// defaults, which reproduce the standard Louisville Metro inventory cleaning
// run. All defaults are applied on load, so downstream code never checks for
// zero values.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// LOOKUP DOCUMENTS
	// =========================================================================

	// GenreLookup is the path to the genre lookup document.
	// Default: "data/genre.json"
	GenreLookup string `yaml:"genre_lookup"`

	// AudienceLookup is the path to the audience lookup document.
	// Default: "data/audience.json"
	AudienceLookup string `yaml:"audience_lookup"`

	// =========================================================================
	// CLEANING RULES
	// =========================================================================

	// DropColumns lists the columns removed before row filtering. These
	// columns carry no analytical value or contain data that must not be
	// redistributed.
	// Default: [ISBN, ReportDate]
	DropColumns []string `yaml:"drop_columns"`

	// SentinelYears lists the placeholder publication-year values whose rows
	// are removed. These are data-entry conventions of the source system,
	// not real years.
	// Default: ["0", "9999"]
	SentinelYears []string `yaml:"sentinel_years"`

	// Corrections lists exact-value substitutions applied after filtering.
	// A rule with an empty column applies to every column, which matches the
	// legacy dataset-wide behavior; the default rule is scoped to
	// PublicationYear, where the typo actually occurs.
	// Default: [{column: PublicationYear, old: "2109", new: "2019"}]
	Corrections []Correction `yaml:"corrections"`

	// =========================================================================
	// LOGGING AND REPORTING
	// =========================================================================

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ReportDir, when set, is the directory where a per-run summary report
	// is written after a successful clean. Empty disables reports.
	ReportDir string `yaml:"report_dir,omitempty"`
}

// Correction is an exact-value substitution rule.
type Correction struct {
	// Column scopes the rule to a single column. Empty means every column.
	Column string `yaml:"column,omitempty"`

	// Old is the exact value to replace.
	Old string `yaml:"old"`

	// New is the replacement value.
	New string `yaml:"new"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Default returns the compiled-in configuration for the standard inventory
// cleaning run.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file, applies defaults for unset
// options, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the configuration file if it exists and falls back to
// the compiled-in defaults otherwise. A file that exists but cannot be
// parsed is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.GenreLookup == "" {
		cfg.GenreLookup = "data/genre.json"
	}
	if cfg.AudienceLookup == "" {
		cfg.AudienceLookup = "data/audience.json"
	}
	if len(cfg.DropColumns) == 0 {
		cfg.DropColumns = []string{schema.ColumnISBN, schema.ColumnReportDate}
	}
	if len(cfg.SentinelYears) == 0 {
		cfg.SentinelYears = []string{"0", "9999"}
	}
	if len(cfg.Corrections) == 0 {
		cfg.Corrections = []Correction{
			{Column: schema.ColumnPublicationYear, Old: "2109", New: "2019"},
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration for values the pipeline cannot run with.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	for i, rule := range cfg.Corrections {
		if rule.Old == "" {
			return fmt.Errorf("correction %d has an empty old value", i+1)
		}
	}

	return nil
}
