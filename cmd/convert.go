// =============================================================================
// matic_sku Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command and the conversion run shared with
// the root command.
//
// PROCESSING PIPELINE:
//   1. Resolve the base directory (the project root next to scripts/)
//   2. Load configuration and apply flag overrides
//   3. Set up logging for the run
//   4. Run the converter
//   5. Print the summary and the manual import instructions
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/maticsku/internal/config"
	"github.com/ginjaninja78/maticsku/internal/converter"
	"github.com/ginjaninja78/maticsku/internal/logging"
	"github.com/ginjaninja78/maticsku/pkg/utils"
	"github.com/spf13/cobra"
)

// convertOptions holds the command-line overrides.
type convertOptions struct {
	configPath string
	input      string
	output     string
	xlsx       string
	encoding   string
	dryRun     bool
	verbose    bool
}

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the product export (same as running without a command)",
	Args:  cobra.NoArgs,

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert loads the configuration, runs the conversion and prints the
// report to out. Logs go to logOut.
func runConvert(out, logOut io.Writer, o convertOptions) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	cfg, err := config.Load(o.configPath, utils.ResolveBaseDir(workDir))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyOverrides(cfg, o); err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat, logOut)

	fmt.Fprintln(out, "=== matic_sku Converter ===")
	fmt.Fprintf(out, "Reading %s...\n", cfg.InputPath())

	conv := converter.New(cfg, logger)
	conv.DryRun = o.dryRun

	result, err := conv.Run()
	if err != nil {
		return err
	}

	printReport(out, result)
	return nil
}

// applyOverrides copies non-empty flag values over the loaded configuration.
func applyOverrides(cfg *config.Config, o convertOptions) error {
	if o.input != "" {
		cfg.InputFile = o.input
	}
	if o.output != "" {
		cfg.OutputFile = o.output
	}
	if o.xlsx != "" {
		cfg.XLSXOutput = o.xlsx
	}
	if o.encoding != "" {
		cfg.Encoding = o.encoding
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// =============================================================================
// REPORTING
// =============================================================================

// printReport writes the run summary and the manual import steps.
func printReport(out io.Writer, result *converter.Result) {
	if result.OutputPath == "" {
		fmt.Fprintln(out, "Dry run: no file written.")
	} else {
		fmt.Fprintf(out, "Writing %s...\n", result.OutputPath)
	}

	fmt.Fprintln(out, "✓ Done!")
	fmt.Fprintf(out, "  - %d products exported\n", result.Written())
	fmt.Fprintf(out, "  - %d lines skipped (%s)\n", result.SkippedTotal(), result.Skipped.String())
	fmt.Fprintf(out, "  - completed in %s\n", result.ProcessingTime.Round(time.Millisecond))

	if result.OutputPath == "" {
		return
	}

	if size := utils.DescribeSize(result.OutputPath); size != "" {
		fmt.Fprintf(out, "\nOutput file: %s (%s)\n", result.OutputPath, size)
	} else {
		fmt.Fprintf(out, "\nOutput file: %s\n", result.OutputPath)
	}
	if result.XLSXPath != "" {
		fmt.Fprintf(out, "Workbook:    %s\n", result.XLSXPath)
	}

	fmt.Fprintln(out, "\nTo import into Supabase:")
	fmt.Fprintln(out, "1. Open the Supabase Dashboard > Table Editor > matic_sku")
	fmt.Fprintln(out, "2. Click 'Import data via CSV'")
	fmt.Fprintf(out, "3. Select the file: %s\n", filepath.Base(result.OutputPath))
	fmt.Fprintln(out, "4. Make sure 'Skip duplicate rows' is checked (upsert by codigo_produto)")
}
