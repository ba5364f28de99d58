// =============================================================================
// matic_sku Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the binary
// without a subcommand performs the full conversion, so the usual invocation
// is simply:
//
//   maticsku
//
// COBRA CLI STRUCTURE:
//   rootCmd (maticsku)          converts procvlojas.md -> matic_sku_import.csv
//   ├── convertCmd (convert)    same as the root command
//   └── versionCmd (version)
//
// Every flag is optional and only overrides the configuration.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// opts collects the flag values shared by the root and convert commands.
var opts convertOptions

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "maticsku",
	Short: "Convert the procvlojas.md product export into a matic_sku import CSV",
	Long: `maticsku reads the tab-delimited product export (procvlojas.md), cleans and
validates every line, and writes matic_sku_import.csv ready for the table
import of matic_sku.

Lines with fewer than 6 columns or without a product code are skipped and
counted. Nothing else about the data can fail the run.

Example Usage:
  maticsku                               # Convert with the default paths
  maticsku --dry-run                     # Only report what would be written
  maticsku --input lojas.xlsx --xlsx out.xlsx
  maticsku version`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&opts.configPath, "config", "",
		"Path to a YAML configuration file (default is maticsku.yaml in the base directory)")
	flags.StringVar(&opts.input, "input", "",
		"Input export, .md/.tsv text or .xlsx workbook (default procvlojas.md)")
	flags.StringVar(&opts.output, "output", "",
		"Output CSV (default matic_sku_import.csv)")
	flags.StringVar(&opts.xlsx, "xlsx", "",
		"Also write the rows to this .xlsx workbook")
	flags.StringVar(&opts.encoding, "encoding", "",
		"Input text encoding: UTF-8, ISO-8859-1 or Windows-1252 (default UTF-8)")
	flags.BoolVar(&opts.dryRun, "dry-run", false,
		"Convert and report counts without writing any file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")
}
