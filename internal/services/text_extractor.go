package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"alfredoptarigan/resume-critiquer/internal/models"
)

type TextExtractor interface {
	Extract(doc models.UploadedDocument) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract implements TextExtractor. Every failure is tagged with
// models.ErrExtraction.
func (t *textExtractor) Extract(doc models.UploadedDocument) (string, error) {
	switch doc.Type {
	case models.DocumentTypePDF:
		text, err := extractPDFText(doc.Content)
		if err != nil {
			return "", models.WrapError(models.ErrExtraction, err)
		}
		return text, nil
	case models.DocumentTypeText:
		if !utf8.Valid(doc.Content) {
			return "", models.WrapError(models.ErrExtraction, errors.New("file is not valid UTF-8 text"))
		}
		return string(doc.Content), nil
	default:
		return "", models.WrapError(models.ErrExtraction, fmt.Errorf("%w: %q", models.ErrUnsupportedType, doc.Type))
	}
}

// extractPDFText concatenates the plain text of every page in page order,
// with no separator between pages.
func extractPDFText(content []byte) (text string, err error) {
	// The pdf package panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}
