// =============================================================================
// matic_sku Converter - Row Converter
// =============================================================================
//
// This module contains the core conversion logic. It runs the whole pipeline
// for the product export, from reading the source to writing the import file.
//
// CONVERSION PIPELINE:
//   1. Read the source (tab-delimited text, or an .xlsx workbook)
//   2. Drop the header line
//   3. For each line: validate, extract, clean, coerce
//   4. Keep accepted rows in input order, count skipped lines per reason
//   5. Serialize all rows to CSV in one write
//   6. Optionally write the same rows to an .xlsx workbook
//
// The run is synchronous and single-pass. Malformed lines never fail the run;
// only I/O errors do.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/maticsku/internal/config"
	"github.com/ginjaninja78/maticsku/internal/export"
	"github.com/ginjaninja78/maticsku/internal/logging"
	"github.com/ginjaninja78/maticsku/internal/tsvparser"
	"github.com/ginjaninja78/maticsku/internal/types"
	"github.com/ginjaninja78/maticsku/internal/validation"
	"github.com/ginjaninja78/maticsku/internal/xlsxparser"
	"github.com/ginjaninja78/maticsku/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// RunID tags every log line of the run.
	RunID string

	// InputPath is the source that was read.
	InputPath string

	// OutputPath is the CSV that was written. Empty on a dry run.
	OutputPath string

	// XLSXPath is the workbook export, if one was written.
	XLSXPath string

	// Records holds the accepted rows in input order.
	Records []types.SKURecord

	// Lines is the number of non-header input lines.
	Lines int

	// Skipped counts rejected lines per reason.
	Skipped validation.Tally

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// Written returns the number of data rows in the output.
func (r *Result) Written() int {
	return len(r.Records)
}

// SkippedTotal returns the number of lines that produced no row.
func (r *Result) SkippedTotal() int {
	return r.Skipped.Total()
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the conversion described by a configuration.
type Converter struct {
	cfg    *config.Config
	logger *slog.Logger
	runID  string

	// DryRun converts and counts but writes nothing.
	DryRun bool
}

// New creates a Converter. A nil logger discards log output.
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = logging.Discard()
	}
	runLogger, runID := logging.ForRun(logger)

	return &Converter{
		cfg:    cfg,
		logger: runLogger,
		runID:  runID,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - The Result with counts and paths.
//   - An error if the input cannot be read or an output cannot be written.
func (c *Converter) Run() (*Result, error) {
	startTime := time.Now()
	inputPath := c.cfg.InputPath()

	c.logger.Info("reading source", "path", inputPath, "encoding", c.cfg.Encoding)

	src, err := c.loadSource(inputPath)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("source loaded", "header", strings.Join(src.Header, "|"), "lines", len(src.Lines))

	result := Convert(src)
	result.RunID = c.runID
	result.InputPath = inputPath

	c.logger.Info("conversion complete",
		"lines", result.Lines,
		"written", result.Written(),
		"skipped", result.SkippedTotal(),
		"skip_reasons", result.Skipped.String(),
	)

	if c.DryRun {
		c.logger.Info("dry run, no files written")
		result.ProcessingTime = time.Since(startTime)
		return result, nil
	}

	outputPath := c.cfg.OutputPath()
	if err := c.writeCSV(outputPath, result.Records); err != nil {
		return nil, err
	}
	result.OutputPath = outputPath
	c.logger.Info("wrote output", "path", outputPath, "rows", result.Written())

	if xlsxPath := c.cfg.XLSXOutputPath(); xlsxPath != "" {
		if err := export.WriteXLSXFile(xlsxPath, result.Records); err != nil {
			return nil, fmt.Errorf("failed to write workbook: %w", err)
		}
		result.XLSXPath = xlsxPath
		c.logger.Info("wrote workbook", "path", xlsxPath)
	}

	result.ProcessingTime = time.Since(startTime)
	return result, nil
}

// loadSource picks the parser by file extension.
func (c *Converter) loadSource(path string) (*types.Source, error) {
	if strings.EqualFold(filepath.Ext(path), xlsxparser.Extension) {
		return xlsxparser.Parse(path, c.cfg.Sheet)
	}
	return tsvparser.Parse(path, c.cfg.Encoding)
}

// writeCSV serializes every record and writes the file in one operation.
func (c *Converter) writeCSV(path string, records []types.SKURecord) error {
	data, err := export.CSVBytes(records)
	if err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// =============================================================================
// LINE CONVERSION
// =============================================================================

// Convert applies the validation and cleaning rules to every line of src.
// It never fails: rejected lines are counted in Result.Skipped.
func Convert(src *types.Source) *Result {
	result := &Result{
		Records: make([]types.SKURecord, 0, len(src.Lines)),
		Lines:   len(src.Lines),
		Skipped: validation.Tally{},
	}

	for _, line := range src.Lines {
		record, reason := ConvertLine(line.Fields)
		if reason != validation.Accept {
			result.Skipped.Add(reason)
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result
}

// ConvertLine converts one split line. A non-empty reason means the line
// is skipped and the returned record must be ignored.
func ConvertLine(fields []string) (types.SKURecord, validation.SkipReason) {
	if reason := validation.CheckFields(fields); reason != validation.Accept {
		return types.SKURecord{}, reason
	}

	record := BuildRecord(types.NewInputRecord(fields))

	if reason := validation.CheckCodigo(record.CodigoProduto); reason != validation.Accept {
		return types.SKURecord{}, reason
	}

	return record, validation.Accept
}
