package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"skillbridge/backend/internal/models"
)

// PDFExtractor pulls plain text out of an uploaded PDF. Extraction is
// fully in-memory; uploads are never written to disk.
type PDFExtractor interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfExtractor struct {
	minTextLen int
}

func NewPDFExtractor(minTextLen int) PDFExtractor {
	return &pdfExtractor{minTextLen: minTextLen}
}

func (p *pdfExtractor) ExtractText(data []byte) (*PDFContent, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %v", models.ErrValidation, err)
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	text := strings.TrimSpace(strings.Join(pages, "\n\n"))
	if len(text) < p.minTextLen {
		return nil, fmt.Errorf("%w: could not extract text, PDF may be image-based", models.ErrUnusableDocument)
	}

	return &PDFContent{
		Text:      text,
		PageCount: len(pages),
	}, nil
}
