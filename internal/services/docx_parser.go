package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

type DocxParserService interface {
	ExtractText(content []byte) (string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

// ExtractText joins the text of every paragraph in the document body with newlines.
func (d *docxParserService) ExtractText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Message: "failed to open document", Cause: err}
	}
	defer doc.Close()

	paragraphs, err := paragraphTexts(doc.Editable().GetContent())
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Message: "failed to read document body", Cause: err}
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}

// paragraphTexts walks WordprocessingML and returns one string per w:p element.
// Nested paragraphs (text boxes) are emitted before the paragraph that holds them.
func paragraphTexts(body string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))

	var (
		paragraphs []string
		open       []*strings.Builder
		inText     bool
		inProps    int // depth inside w:pPr / w:rPr, where w:tab declares a tab stop
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "pPr", "rPr":
				inProps++
			case "t":
				inText = true
			case "tab":
				if inProps == 0 && len(open) > 0 {
					open[len(open)-1].WriteString("\t")
				}
			case "br", "cr":
				if len(open) > 0 {
					open[len(open)-1].WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if len(open) > 0 {
					paragraphs = append(paragraphs, open[len(open)-1].String())
					open = open[:len(open)-1]
				}
			case "pPr", "rPr":
				inProps--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && len(open) > 0 {
				open[len(open)-1].Write(t)
			}
		}
	}

	return paragraphs, nil
}
