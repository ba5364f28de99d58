// =============================================================================
// matic_sku Converter - Workbook Export
// =============================================================================
//
// This module writes the same header and rows as the CSV into an .xlsx
// workbook, for people who review the import in a spreadsheet first.
//
// LAYOUT:
//   - One sheet named matic_sku
//   - Row 1 holds the column names
//   - volumes_por_item is a number cell; every other column is text
//
// =============================================================================

package export

import (
	"fmt"

	"github.com/ginjaninja78/maticsku/internal/types"
	"github.com/ginjaninja78/maticsku/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the rows are written to.
const SheetName = "matic_sku"

// BuildXLSX returns a workbook holding the same header and rows as the CSV.
// volumes_por_item is stored as a number; every other column as text.
func BuildXLSX(records []types.SKURecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(types.Columns))
	for i, col := range types.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}

		values := record.Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		// volumes_por_item
		row[3] = record.VolumesPorItem

		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}

// WriteXLSXFile builds the workbook and writes it to path in one operation.
func WriteXLSXFile(path string, records []types.SKURecord) error {
	f, err := BuildXLSX(records)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}

	return utils.WriteFileAtomic(path, buf.Bytes())
}
