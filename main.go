// =============================================================================
// matic_sku Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   maticsku            - Convert procvlojas.md into matic_sku_import.csv
//   maticsku convert    - Same as above
//   maticsku version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : parsing, validation, conversion and export
//   - pkg/        : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/maticsku/cmd"
)

func main() {
	cmd.Execute()
}
