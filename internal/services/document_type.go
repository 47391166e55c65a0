package services

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-critiquer/internal/models"
)

// DetectDocumentType resolves the declared type of an upload from its file
// extension, falling back to the multipart Content-Type header.
func DetectDocumentType(filename, contentType string) (models.DocumentType, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return models.DocumentTypePDF, nil
	case ".txt":
		return models.DocumentTypeText, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch mediaType {
		case "application/pdf":
			return models.DocumentTypePDF, nil
		case "text/plain":
			return models.DocumentTypeText, nil
		}
	}

	if ext == "" {
		ext = contentType
	}
	return "", fmt.Errorf("%w: %s (only PDF and plain text are accepted)", models.ErrUnsupportedType, ext)
}
