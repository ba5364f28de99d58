// =============================================================================
// matic_sku Converter - CSV Writer
// =============================================================================
//
// This module serializes matic_sku rows into the CSV accepted by the table
// import: a header row with the fixed column names, then one row per record.
//
// FORMAT:
//   - Comma separated, UTF-8
//   - Minimal quoting: a field is quoted only when it contains a comma, a
//     double quote or a line break; embedded quotes are doubled
//   - CRLF record terminator; line breaks inside a field are written as-is
//
// =============================================================================

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ginjaninja78/maticsku/internal/types"
)

// RecordTerminator ends every CSV record.
const RecordTerminator = "\r\n"

// WriteCSV writes the header and all records to w.
func WriteCSV(w io.Writer, records []types.SKURecord) error {
	if err := writeRecord(w, types.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		if err := writeRecord(w, record.Values()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return nil
}

// writeRecord encodes one record and ends it with RecordTerminator.
// Line breaks inside quoted fields are written byte for byte; only the
// record ending is CRLF.
func writeRecord(w io.Writer, fields []string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(fields); err != nil {
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	line := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if _, err := w.Write(append(line, RecordTerminator...)); err != nil {
		return err
	}
	return nil
}

// CSVBytes returns the complete CSV document for records.
func CSVBytes(records []types.SKURecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
