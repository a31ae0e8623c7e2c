package document

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian with BOM.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian with BOM.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingLatin1 is ISO-8859-1. Any byte sequence that is not valid
	// UTF-8 is read as Latin-1.
	EncodingLatin1 Encoding = "iso-8859-1"
)

// LineEnding represents the line ending style.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"

	// LineEndingCR is old Mac-style line ending (\r).
	LineEndingCR LineEnding = "cr"
)

// Sequence returns the characters written for the line ending.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode converts raw file content to text and reports its encoding.
func decode(content []byte) (string, Encoding, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return string(content[len(bomUTF8):]), EncodingUTF8BOM, nil

	case bytes.HasPrefix(content, bomUTF16LE):
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(content)
		if err != nil {
			return "", "", fmt.Errorf("decoding utf-16le: %w", err)
		}
		return string(out), EncodingUTF16LE, nil

	case bytes.HasPrefix(content, bomUTF16BE):
		out, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(content)
		if err != nil {
			return "", "", fmt.Errorf("decoding utf-16be: %w", err)
		}
		return string(out), EncodingUTF16BE, nil

	case utf8.Valid(content):
		return string(content), EncodingUTF8, nil
	}

	// Latin-1 accepts all bytes.
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", "", fmt.Errorf("decoding iso-8859-1: %w", err)
	}
	return string(out), EncodingLatin1, nil
}

// encode converts text back to the file's encoding.
func encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8BOM:
		return append(bytes.Clone(bomUTF8), text...), nil

	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))

	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))

	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("text cannot be saved as %s: %w", enc, err)
		}
		return out, nil
	}
	return []byte(text), nil
}

// DetectLineEnding returns the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			crlfCount++
			i++
		case text[i] == '\r':
			crCount++
		case text[i] == '\n':
			lfCount++
		}
	}

	if crlfCount > 0 && crlfCount >= lfCount && crlfCount >= crCount {
		return LineEndingCRLF
	}
	if crCount > 0 && crCount > lfCount {
		return LineEndingCR
	}
	return LineEndingLF
}

// splitText splits text on any line ending. A single trailing line ending
// does not start a new line; it is reported separately.
func splitText(text string) (lines []string, trailing bool) {
	if text == "" {
		return []string{""}, false
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if strings.HasSuffix(text, "\n") {
		trailing = true
		text = text[:len(text)-1]
	}
	return strings.Split(text, "\n"), trailing
}

// joinLines is the inverse of splitText.
func joinLines(lines []string, le LineEnding, trailing bool) string {
	sep := le.Sequence()
	s := strings.Join(lines, sep)
	if trailing {
		s += sep
	}
	return s
}
