package tsvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/maticsku/internal/config"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank line in the middle", input: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "blank last line", input: "a\n\n", want: []string{"a", ""}},
		{name: "trailing tabs kept", input: "a\t\t\n", want: []string{"a\t\t"}},
		{name: "lone cr", input: "a\rb\r", want: []string{"a", "b"}},
		{name: "cr inside a line", input: "a\tCaixa\rgrande\n", want: []string{"a\tCaixa", "grande"}},
		{name: "mixed endings", input: "a\r\rb\nc\r\n", want: []string{"a", "", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestParseString(t *testing.T) {
	src := ParseString("h1\th2\n\tSKU\tx\n a \t b \r\n")

	assert.Equal(t, []string{"h1", "h2"}, src.Header)
	require.Len(t, src.Lines, 2)

	assert.Equal(t, 2, src.Lines[0].Number)
	assert.Equal(t, []string{"", "SKU", "x"}, src.Lines[0].Fields)

	// Field whitespace is left for the cleaning rules.
	assert.Equal(t, 3, src.Lines[1].Number)
	assert.Equal(t, []string{" a ", " b "}, src.Lines[1].Fields)
}

func TestParseString_Empty(t *testing.T) {
	src := ParseString("")
	assert.Nil(t, src.Header)
	assert.Empty(t, src.Lines)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		encoding string
		want     string
	}{
		{name: "utf-8", raw: []byte("Não"), encoding: "UTF-8", want: "Não"},
		{name: "utf-8 with bom", raw: []byte("\xef\xbb\xbfNão"), encoding: "utf8", want: "Não"},
		{name: "default is utf-8", raw: []byte("Não"), encoding: "", want: "Não"},
		{name: "latin1", raw: []byte("N\xe3o"), encoding: "ISO-8859-1", want: "Não"},
		{name: "cp1252 euro", raw: []byte("\x80 5"), encoding: "Windows-1252", want: "€ 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "stray byte", raw: []byte("M\tSKU\xff1\tWidget")},
		{name: "truncated sequence", raw: []byte("Wid\xc3get")},
		{name: "after bom", raw: []byte("\xef\xbb\xbf\xe3o")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw, "UTF-8")
			assert.ErrorIs(t, err, ErrInvalidUTF8)
		})
	}
}

func TestDecode_InvalidUTF8ReportsOffset(t *testing.T) {
	_, err := Decode([]byte("M\tSKU\xff1"), "")
	assert.ErrorContains(t, err, "offset 5")
}

func TestDecode_Latin1AcceptsAnyByte(t *testing.T) {
	got, err := Decode([]byte("SKU\xff1"), "latin1")
	require.NoError(t, err)
	assert.Equal(t, "SKUÿ1", got)
}

func TestDecode_UnsupportedEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "EBCDIC")
	assert.ErrorIs(t, err, config.ErrUnsupportedEncoding)
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procvlojas.md")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfREF\tCOD\r\nM\tSKU1\r\n"), 0644))

	src, err := Parse(path, "UTF-8")
	require.NoError(t, err)

	assert.Equal(t, path, src.Path)
	assert.Equal(t, []string{"REF", "COD"}, src.Header)
	require.Len(t, src.Lines, 1)
	assert.Equal(t, []string{"M", "SKU1"}, src.Lines[0].Fields)
}

func TestParse_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procvlojas.md")
	require.NoError(t, os.WriteFile(path, []byte("REF\tCOD\nM\tSKU\xff1\n"), 0644))

	_, err := Parse(path, "UTF-8")
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.ErrorContains(t, err, path)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.md"), "UTF-8")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
