// =============================================================================
// matic_sku Converter - Field Transformations
// =============================================================================
//
// This module holds the per-field cleaning and coercion rules applied to the
// raw export values before they become a matic_sku row.
//
// TRANSFORMATION TYPES:
//   - CleanField   : trim, and collapse placeholder values to ""
//   - ConvertAtivo : "Sim"/"Yes" (any case) -> true, anything else -> false
//   - ParseVolumes : integer parse with a fallback of 1
//
// NOTE: a literal "0" collapses to "" in every cleaned column, including
// corredor and the reference columns. The spreadsheet uses 0 as its "no
// value" marker.
//
// =============================================================================

package converter

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/maticsku/internal/types"
)

// DefaultVolumes is used when the volumes column is missing or not an integer.
const DefaultVolumes = 1

// emptyMarkers are the values the export uses for "no value".
var emptyMarkers = map[string]bool{
	"":     true,
	"#N/A": true,
	"0":    true,
}

// activeValues are the lowercased spellings that mean "active".
var activeValues = map[string]bool{
	"sim": true,
	"yes": true,
}

// CleanField trims value and maps the placeholder values "", "#N/A" and "0"
// to the empty string.
func CleanField(value string) string {
	value = strings.TrimSpace(value)
	if emptyMarkers[value] {
		return ""
	}
	return value
}

// ConvertAtivo reports whether the raw active flag means "active".
func ConvertAtivo(raw string) bool {
	return activeValues[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseVolumes parses the number of volumes per item: ASCII digits with an
// optional sign. Any parse failure, including an empty value, yields
// DefaultVolumes.
func ParseVolumes(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultVolumes
	}
	return n
}

// BuildRecord turns the raw positional fields into an output row.
// codigo_produto is trimmed only; it is validated separately.
func BuildRecord(in types.InputRecord) types.SKURecord {
	return types.SKURecord{
		CodigoProduto:    strings.TrimSpace(in.CodigoProduto),
		Descricao:        CleanField(in.Descricao),
		Ativo:            ConvertAtivo(in.AtivoRaw),
		VolumesPorItem:   ParseVolumes(in.VolumesRaw),
		CorredorSugerido: CleanField(in.Corredor),
		NivelSugerido:    "",
		RefMeia:          CleanField(in.RefMeia),
		RefInteira:       CleanField(in.RefInteira),
	}
}
