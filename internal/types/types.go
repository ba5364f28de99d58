// =============================================================================
// matic_sku Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - tsvparser / xlsxparser (produce a Source)
//   - validation             (inspects raw fields)
//   - converter              (builds SKURecords)
//   - export                 (serializes SKURecords)
//
// =============================================================================

package types

import "strconv"

// =============================================================================
// SOURCE TYPES
// =============================================================================

// Source is a fully loaded input export, split into raw fields.
type Source struct {
	// Path is the file the source was read from.
	Path string

	// Header is the first line of the export. It is kept for logging only;
	// the converter never maps columns by name.
	Header []string

	// Lines contains every non-header line in input order.
	Lines []SourceLine
}

// SourceLine is a single candidate record as it appeared in the export.
type SourceLine struct {
	// Number is the 1-indexed line number in the original file.
	// The header is line 1, so the first data line is line 2.
	Number int

	// Fields are the raw values after splitting on the delimiter.
	Fields []string
}

// =============================================================================
// INPUT RECORD
// =============================================================================

// Positional layout of the export columns.
const (
	ColRefMeia = iota
	ColCodigoProduto
	ColDescricao
	ColAtivo
	ColVolumes
	ColCorredor
	ColRefInteira
)

// MinFields is the minimum number of fields a line needs to be considered.
const MinFields = ColCorredor + 1

// Defaults used when a positional field is absent.
const (
	DefaultAtivoRaw   = "Não"
	DefaultVolumesRaw = "1"
)

// InputRecord holds the raw positional fields of one export line.
type InputRecord struct {
	RefMeia       string
	CodigoProduto string
	Descricao     string
	AtivoRaw      string
	VolumesRaw    string
	Corredor      string
	RefInteira    string
}

// NewInputRecord extracts the positional fields from a split line.
// Fields past the end of the slice take their defaults.
func NewInputRecord(fields []string) InputRecord {
	at := func(i int, fallback string) string {
		if i < len(fields) {
			return fields[i]
		}
		return fallback
	}

	return InputRecord{
		RefMeia:       at(ColRefMeia, ""),
		CodigoProduto: at(ColCodigoProduto, ""),
		Descricao:     at(ColDescricao, ""),
		AtivoRaw:      at(ColAtivo, DefaultAtivoRaw),
		VolumesRaw:    at(ColVolumes, DefaultVolumesRaw),
		Corredor:      at(ColCorredor, ""),
		RefInteira:    at(ColRefInteira, ""),
	}
}

// =============================================================================
// OUTPUT RECORD
// =============================================================================

// Columns is the exact header of the matic_sku import file.
var Columns = []string{
	"codigo_produto",
	"descricao",
	"ativo",
	"volumes_por_item",
	"corredor_sugerido",
	"nivel_sugerido",
	"ref_meia",
	"ref_inteira",
}

// SKURecord is one row of the matic_sku import file.
type SKURecord struct {
	// CodigoProduto is the business key. Never empty on an emitted record.
	CodigoProduto string

	Descricao        string
	Ativo            bool
	VolumesPorItem   int
	CorredorSugerido string

	// NivelSugerido has no source column and is always empty.
	NivelSugerido string

	RefMeia    string
	RefInteira string
}

// Values returns the record's fields as strings, in Columns order.
func (r SKURecord) Values() []string {
	return []string{
		r.CodigoProduto,
		r.Descricao,
		strconv.FormatBool(r.Ativo),
		strconv.Itoa(r.VolumesPorItem),
		r.CorredorSugerido,
		r.NivelSugerido,
		r.RefMeia,
		r.RefInteira,
	}
}
