package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/maticsku/internal/types"
)

// ----------------------------------------------------------------------------
// CleanField Tests
// ----------------------------------------------------------------------------

func TestCleanField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value", input: "A1", want: "A1"},
		{name: "surrounding whitespace", input: "  A1 \t", want: "A1"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
		{name: "not available marker", input: "#N/A", want: ""},
		{name: "padded not available marker", input: " #N/A ", want: ""},
		{name: "zero", input: "0", want: ""},
		{name: "padded zero", input: " 0\r", want: ""},
		{name: "zero with more digits", input: "00", want: "00"},
		{name: "ten", input: "10", want: "10"},
		{name: "lowercase marker is kept", input: "#n/a", want: "#n/a"},
		{name: "inner whitespace kept", input: " Caixa  grande ", want: "Caixa  grande"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanField(tt.input))
		})
	}
}

// ----------------------------------------------------------------------------
// ConvertAtivo Tests
// ----------------------------------------------------------------------------

func TestConvertAtivo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Sim", true},
		{"sim", true},
		{"SIM", true},
		{"  sIm  ", true},
		{"Yes", true},
		{"YES", true},
		{"yes\r", true},
		{"Não", false},
		{"nao", false},
		{"No", false},
		{"", false},
		{"true", false},
		{"1", false},
		{"s", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertAtivo(tt.input))
		})
	}
}

func TestConvertAtivo_DefaultRawValueIsInactive(t *testing.T) {
	assert.False(t, ConvertAtivo(types.DefaultAtivoRaw))
}

// ----------------------------------------------------------------------------
// ParseVolumes Tests
// ----------------------------------------------------------------------------

func TestParseVolumes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "integer", input: "3", want: 3},
		{name: "padded integer", input: " 12 ", want: 12},
		{name: "explicit plus", input: "+4", want: 4},
		{name: "negative", input: "-2", want: -2},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", want: 1},
		{name: "whitespace", input: "  ", want: 1},
		{name: "text", input: "abc", want: 1},
		{name: "decimal", input: "2.5", want: 1},
		{name: "decimal comma", input: "2,0", want: 1},
		{name: "overflow", input: "99999999999999999999999", want: 1},
		{name: "underscore grouping", input: "1_000", want: 1},
		{name: "non-ascii digit", input: "٣", want: 1},
		{name: "default raw value", input: types.DefaultVolumesRaw, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVolumes(tt.input))
		})
	}
}

// ----------------------------------------------------------------------------
// BuildRecord Tests
// ----------------------------------------------------------------------------

func TestBuildRecord(t *testing.T) {
	in := types.InputRecord{
		RefMeia:       " M ",
		CodigoProduto: " SKU1 ",
		Descricao:     "#N/A",
		AtivoRaw:      "Sim",
		VolumesRaw:    "x",
		Corredor:      "0",
		RefInteira:    "I1",
	}

	assert.Equal(t, types.SKURecord{
		CodigoProduto:    "SKU1",
		Descricao:        "",
		Ativo:            true,
		VolumesPorItem:   1,
		CorredorSugerido: "",
		NivelSugerido:    "",
		RefMeia:          "M",
		RefInteira:       "I1",
	}, BuildRecord(in))
}

func TestBuildRecord_CodigoIsTrimmedOnly(t *testing.T) {
	for _, codigo := range []string{"0", "#N/A"} {
		rec := BuildRecord(types.InputRecord{CodigoProduto: " " + codigo + " "})
		assert.Equal(t, codigo, rec.CodigoProduto)
	}
}
