package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// binaryScanLength is how many leading characters are scanned for control bytes
// when a file without a known extension is read as text.
const binaryScanLength = 1000

type TextExtractor interface {
	Extract(content []byte, filename string) (string, error)
}

type textEncoding struct {
	name   string
	decode func(content []byte) (string, error)
}

// Tried in order; the first decode that succeeds wins.
var commonEncodings = []textEncoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "latin-1", decode: decodeWith(charmap.ISO8859_1)},
	{name: "windows-1252", decode: decodeWith(charmap.Windows1252)},
	{name: "iso-8859-1", decode: decodeWith(charmap.ISO8859_1)},
}

type textExtractor struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
}

func NewTextExtractor(pdfParser PDFParserService, docxParser DocxParserService) TextExtractor {
	return &textExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract implements TextExtractor.
func (t *textExtractor) Extract(content []byte, filename string) (string, error) {
	ext := fileExtension(filename)

	switch ext {
	case "pdf":
		return t.pdfParser.ExtractText(content)
	case "docx", "doc":
		return t.docxParser.ExtractText(content)
	case "txt":
		for _, enc := range commonEncodings {
			text, err := enc.decode(content)
			if err != nil {
				continue
			}
			return strings.TrimSpace(text), nil
		}
		return "", &ExtractionError{Format: "TXT", Message: "failed to decode with common encodings"}
	default:
		for _, enc := range commonEncodings {
			text, err := enc.decode(content)
			if err != nil {
				continue
			}
			if looksLikeText(text) {
				return strings.TrimSpace(text), nil
			}
		}
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// fileExtension returns the lowercased text after the last dot, or "" when there is none.
func fileExtension(filename string) string {
	name := strings.ToLower(filename)
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// looksLikeText rejects empty text and text whose first characters contain
// control codes other than newline, carriage return and tab.
func looksLikeText(text string) bool {
	if text == "" {
		return false
	}

	scanned := 0
	for _, r := range text {
		if scanned == binaryScanLength {
			break
		}
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return false
		}
		scanned++
	}
	return true
}

func decodeUTF8(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", errors.New("invalid utf-8 sequence")
	}
	return string(content), nil
}

func decodeWith(enc encoding.Encoding) func([]byte) (string, error) {
	return func(content []byte) (string, error) {
		decoded, err := enc.NewDecoder().Bytes(content)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
}
