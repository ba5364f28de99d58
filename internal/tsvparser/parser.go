// =============================================================================
// matic_sku Converter - Tab-Delimited Export Parser
// =============================================================================
//
// This module reads the procvlojas.md export: a plain text file with a header
// line followed by one tab-separated product per line. It handles:
//   - Character encodings of spreadsheet exports (UTF-8, Latin-1, CP1252)
//   - A UTF-8 byte order mark in front of the header
//   - LF, CRLF and CR line endings
//   - A trailing newline at the end of the file
//
// The whole file is loaded into memory. The export is a flat product list
// and is small; streaming is not needed.
//
// Lines are NOT trimmed before splitting. Only the line terminator is
// removed, so an empty first column keeps every other column in place.
//
// =============================================================================

package tsvparser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/maticsku/internal/config"
	"github.com/ginjaninja78/maticsku/internal/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter separates fields on a line.
const Delimiter = "\t"

// ErrInvalidUTF8 is returned when a file read as UTF-8 holds invalid bytes.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

var utf8BOM = []byte("\xef\xbb\xbf")

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a tab-delimited export and returns its lines split into fields.
//
// PARAMETERS:
//   - filePath: The path to the export.
//   - encodingName: The character encoding of the file (see config.Encoding).
//
// RETURNS:
//   - The parsed Source. An empty file yields a Source with no header and
//     no lines.
//   - An error if the file cannot be read or decoded.
func Parse(filePath, encodingName string) (*types.Source, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	text, err := Decode(raw, encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}

	src := ParseString(text)
	src.Path = filePath
	return src, nil
}

// ParseString splits already decoded text into a Source.
func ParseString(text string) *types.Source {
	lines := SplitLines(text)
	src := &types.Source{}

	if len(lines) == 0 {
		return src
	}

	src.Header = strings.Split(lines[0], Delimiter)
	src.Lines = make([]types.SourceLine, 0, len(lines)-1)

	for i, line := range lines[1:] {
		src.Lines = append(src.Lines, types.SourceLine{
			// +2: 1-indexed, and the header is line 1.
			Number: i + 2,
			Fields: strings.Split(line, Delimiter),
		})
	}

	return src
}

// SplitLines splits text into lines without their terminators.
// "\n", "\r\n" and a lone "\r" all end a line. A final terminator does not
// start an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// =============================================================================
// ENCODING
// =============================================================================

// Decode converts raw file bytes to a UTF-8 string.
// In UTF-8 mode invalid byte sequences are an error, never replaced.
func Decode(raw []byte, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	if enc == unicode.UTF8BOM {
		body := bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(body) {
			return "", fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, invalidOffset(body))
		}
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// invalidOffset returns the position of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// lookupEncoding maps a configured encoding name to a decoder.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedEncoding, name)
	}
}
