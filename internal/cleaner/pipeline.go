// =============================================================================
// Library Inventory Cleaner - Pipeline Orchestrator
// =============================================================================
//
// This module composes the cleaning stages into the fixed pipeline:
//
//   1. Load the dataset from the input file (CSV or XLSX)
//   2. Validate the schema (fatal on missing columns)
//   3. Load the genre and audience lookup documents
//   4. Drop the unneeded columns (ISBN, ReportDate)
//   5. Drop unusable rows (empty collection code, sentinel years)
//   6. Apply value corrections (publication year 2109 -> 2019)
//   7. Derive the Genre column
//   8. Derive the Audience column
//   9. Write the output file (gzip when the path ends in .csv.gz)
//
// Stages run strictly in order; later stages assume the invariants of
// earlier ones. The run either completes every stage and writes a full
// output file, or stops at the first error and writes nothing.
//
// =============================================================================

package cleaner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/library-inventory-cleaner/internal/config"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/csvparser"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/csvwriter"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/lookup"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/schema"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/xlsxparser"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Result summarizes a completed pipeline run.
type Result struct {
	// RunID identifies this run in logs and reports.
	RunID string

	// InputFile and OutputFile are the paths as given on the command line.
	InputFile  string
	OutputFile string

	// RowsRead is the number of data rows loaded from the input.
	RowsRead int

	// RowsDropped is the number of rows removed by the record filter.
	RowsDropped int

	// RowsWritten is the number of rows in the output.
	RowsWritten int

	// CellsCorrected is the number of cells changed by value correction.
	CellsCorrected int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Pipeline executes the fixed inventory-cleaning sequence. A Pipeline is
// safe to reuse across runs; it holds no per-run state.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the pipeline on one input file and writes one output file.
// On any error the output file is not created.
func (p *Pipeline) Run(inputPath, outputPath string) (*Result, error) {
	start := time.Now()

	result := &Result{
		RunID:      uuid.NewString(),
		InputFile:  inputPath,
		OutputFile: outputPath,
	}
	log := p.logger.With(slog.String("run_id", result.RunID))

	// =========================================================================
	// STEP 1: LOAD THE DATASET
	// =========================================================================

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	log.Info("loading data from input file", slog.String("input", inputPath))

	ds, err := loadDataset(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input file: %w", err)
	}
	result.RowsRead = ds.RowCount()

	log.Info("input file loaded",
		slog.Int("rows", ds.RowCount()),
		slog.Int("columns", ds.ColumnCount()))

	// =========================================================================
	// STEP 2: VALIDATE THE SCHEMA
	// =========================================================================

	log.Info("validating columns in input file")

	if err := schema.Validate(ds); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 3: LOAD THE LOOKUP DOCUMENTS
	// =========================================================================
	// Both documents are loaded before any mutation so that a bad lookup
	// cannot interrupt a half-transformed dataset.

	log.Info("loading lookup documents",
		slog.String("genre", p.cfg.GenreLookup),
		slog.String("audience", p.cfg.AudienceLookup))

	genre, err := lookup.Load(p.cfg.GenreLookup, lookup.GenreBuckets())
	if err != nil {
		return nil, err
	}

	audience, err := lookup.Load(p.cfg.AudienceLookup, lookup.AudienceBuckets())
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 4: REMOVE UNNEEDED COLUMNS
	// =========================================================================

	log.Info("removing unneeded columns", slog.Any("columns", p.cfg.DropColumns))

	ds.DropColumns(p.cfg.DropColumns...)

	// =========================================================================
	// STEP 5: REMOVE UNUSABLE ROWS
	// =========================================================================

	log.Info("removing records with empty or invalid fields")

	filter := NewRecordFilter(p.cfg.SentinelYears)
	result.RowsDropped = filter.Apply(ds)

	log.Info("records removed",
		slog.Int("dropped", result.RowsDropped),
		slog.Int("remaining", ds.RowCount()))

	// =========================================================================
	// STEP 6: CORRECT KNOWN BAD VALUES
	// =========================================================================

	log.Info("updating incorrect values")

	corrector := NewValueCorrector(p.cfg.Corrections)
	result.CellsCorrected = corrector.Apply(ds)

	log.Info("values corrected", slog.Int("cells", result.CellsCorrected))

	// =========================================================================
	// STEP 7: DERIVE THE GENRE AND AUDIENCE COLUMNS
	// =========================================================================

	log.Info("adding genre and audience columns")

	NewCategoryDeriver(schema.ColumnGenre, genre).Apply(ds)
	NewCategoryDeriver(schema.ColumnAudience, audience).Apply(ds)

	// =========================================================================
	// STEP 8: WRITE THE OUTPUT FILE
	// =========================================================================

	log.Info("saving output file",
		slog.String("output", outputPath),
		slog.Bool("gzip", strings.HasSuffix(outputPath, csvwriter.GzipSuffix)))

	if err := csvwriter.Write(ds, outputPath); err != nil {
		return nil, err
	}

	result.RowsWritten = ds.RowCount()
	result.Elapsed = time.Since(start)

	log.Info("cleaning complete",
		slog.Int("rows_written", result.RowsWritten),
		slog.Duration("elapsed", result.Elapsed))

	return result, nil
}

// loadDataset reads the input file into a Dataset based on its extension.
func loadDataset(inputPath string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(inputPath), ".xlsx") {
		return xlsxparser.Parse(inputPath)
	}
	return csvparser.Parse(inputPath)
}
