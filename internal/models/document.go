package models

import (
	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypePDF  DocumentType = "pdf"
	DocumentTypeText DocumentType = "text"
)

// UploadedDocument is the raw upload for a single analysis. It is never stored.
type UploadedDocument struct {
	Filename string
	Content  []byte
	Type     DocumentType
}

// AnalysisRequest carries one user action through the pipeline. An empty
// JobRole means no role was supplied.
type AnalysisRequest struct {
	ID       uuid.UUID
	Document UploadedDocument
	JobRole  string
}
