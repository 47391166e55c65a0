package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/resume-critiquer/internal/models"
	"alfredoptarigan/resume-critiquer/internal/services"
)

const (
	resumeField  = "resume"
	jobRoleField = "job_role"
)

// readAnalysisRequest turns the multipart form into an AnalysisRequest. The
// returned request always carries the request ID, even when err is not nil, so
// rejections can be correlated in logs and responses.
func readAnalysisRequest(c *fiber.Ctx, maxFileSize int64) (models.AnalysisRequest, error) {
	req := models.AnalysisRequest{
		ID:      requestID(c),
		JobRole: strings.TrimSpace(c.FormValue(jobRoleField)),
	}

	fileHeader, err := c.FormFile(resumeField)
	if err != nil {
		return req, models.WrapError(models.ErrMissingFile, errors.New("no resume was uploaded"))
	}

	if maxFileSize > 0 && fileHeader.Size > maxFileSize {
		return req, models.WrapError(models.ErrFileTooLarge,
			fmt.Errorf("%d bytes exceeds the limit of %d bytes", fileHeader.Size, maxFileSize))
	}

	docType, err := services.DetectDocumentType(fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return req, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return req, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	req.Document = models.UploadedDocument{
		Filename: fileHeader.Filename,
		Content:  content,
		Type:     docType,
	}
	return req, nil
}

// requestID reuses the ID assigned by the requestid middleware so access logs,
// pipeline logs and the response share it. A missing or non-UUID value (a
// client-supplied X-Request-ID, for instance) gets a fresh one.
func requestID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		if parsed, err := uuid.Parse(id); err == nil {
			return parsed
		}
	}
	return uuid.New()
}
