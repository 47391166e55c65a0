package models

import (
	"errors"
	"fmt"
)

var (
	ErrExtraction      = errors.New("extraction failed")
	ErrEmptyContent    = errors.New("empty content")
	ErrInference       = errors.New("inference failed")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrMissingFile     = errors.New("missing file")
	ErrFileTooLarge    = errors.New("file too large")
)

// WrapError tags err with one of the error kinds above so callers can match it
// with errors.Is while keeping the underlying description.
func WrapError(kind error, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}
