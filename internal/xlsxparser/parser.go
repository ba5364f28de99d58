// =============================================================================
// matic_sku Converter - XLSX Export Parser
// =============================================================================
//
// This module reads the product list straight from the spreadsheet it is
// normally copied out of, instead of from the tab-delimited procvlojas.md.
//
// SHEET STRUCTURE (Expected Columns):
//   | A        | B              | C         | D     | E       | F        | G           |
//   |----------|----------------|-----------|-------|---------|----------|-------------|
//   | REF MEIA | CODIGO PRODUTO | DESCRICAO | ATIVO | VOLUMES | CORREDOR | REF INTEIRA |
//
// Row 1 is the header. Every following row becomes one SourceLine, padded to
// the header width so that trailing empty cells count as fields the same way
// trailing tabs do in the text export.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/ginjaninja78/maticsku/internal/types"
	"github.com/xuri/excelize/v2"
)

// Extension is the file extension routed to this parser.
const Extension = ".xlsx"

// Parse reads one worksheet of an XLSX workbook.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//   - sheetName: The worksheet to read. Empty selects the first sheet.
//
// RETURNS:
//   - The parsed Source, with cell values as displayed in the workbook.
//   - An error if the workbook or sheet cannot be read.
func Parse(filePath, sheetName string) (*types.Source, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheetName, filePath)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	src := FromRows(rows)
	src.Path = filePath
	return src, nil
}

// FromRows converts worksheet rows into a Source.
func FromRows(rows [][]string) *types.Source {
	src := &types.Source{}
	if len(rows) == 0 {
		return src
	}

	src.Header = rows[0]
	width := len(src.Header)

	src.Lines = make([]types.SourceLine, 0, len(rows)-1)
	for i, row := range rows[1:] {
		src.Lines = append(src.Lines, types.SourceLine{
			Number: i + 2,
			Fields: padRow(row, width),
		})
	}

	return src
}

// padRow extends row with empty cells up to width.
// GetRows drops trailing empty cells, a text export does not.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
