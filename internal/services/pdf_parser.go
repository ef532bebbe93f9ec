package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(content []byte) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the plain text of every page in order, separated by a
// single newline. Line breaks the decoder leaves around a page are dropped.
func (p *pdfParserService) ExtractText(content []byte) (text string, err error) {
	// The pdf package panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: "PDF", Message: "malformed document", Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Message: "failed to open PDF", Cause: err}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			textBuilder.WriteString("\n")
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{
				Format:  "PDF",
				Message: fmt.Sprintf("failed to read page %d", pageIndex),
				Cause:   err,
			}
		}

		textBuilder.WriteString(strings.Trim(pageText, "\r\n"))
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
