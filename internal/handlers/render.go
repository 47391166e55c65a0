package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"

	"alfredoptarigan/resume-critiquer/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// markdown renders without the html extension, so raw HTML in model output is
// dropped instead of passed through.
var markdown = goldmark.New()

const (
	pageTitle       = "Resume Critiquer"
	feedbackHeading = "Resume Analysis and Feedback"
)

// errorView is what the user sees for a failed request.
type errorView struct {
	Status  int
	Code    string
	Message string
}

type pageView struct {
	Title           string
	FeedbackHeading string
	JobRole         string
	Filename        string
	RequestID       string
	Feedback        template.HTML
	HasFeedback     bool
	Truncated       bool
	Error           string
}

// describeError maps an error kind to a status code, a stable code for API
// clients and a human message that keeps the underlying description.
func describeError(err error) errorView {
	switch {
	case errors.Is(err, models.ErrMissingFile):
		return errorView{fiber.StatusBadRequest, "missing_file", "Please upload a resume file (PDF or plain text)."}
	case errors.Is(err, models.ErrFileTooLarge):
		return errorView{fiber.StatusRequestEntityTooLarge, "file_too_large",
			"The uploaded file is too large: " + causeOf(err)}
	case errors.Is(err, models.ErrUnsupportedType):
		return errorView{fiber.StatusUnsupportedMediaType, "unsupported_type",
			"Unsupported file type: " + causeOf(err)}
	case errors.Is(err, models.ErrEmptyContent):
		return errorView{fiber.StatusUnprocessableEntity, "empty_content", "File does not have any content to analyze."}
	case errors.Is(err, models.ErrExtraction):
		return errorView{fiber.StatusUnprocessableEntity, "extraction_failed",
			"Could not read the uploaded file: " + causeOf(err)}
	case errors.Is(err, models.ErrInference):
		return errorView{fiber.StatusBadGateway, "inference_failed",
			"An error occurred while analyzing the resume: " + causeOf(err)}
	default:
		return errorView{fiber.StatusInternalServerError, "internal_error",
			fmt.Sprintf("An unexpected error occurred: %v", err)}
	}
}

var errorKinds = []error{
	models.ErrMissingFile,
	models.ErrFileTooLarge,
	models.ErrUnsupportedType,
	models.ErrEmptyContent,
	models.ErrExtraction,
	models.ErrInference,
}

// causeOf strips every leading kind prefix, so an error tagged more than once
// still reads as its underlying description.
func causeOf(err error) string {
	msg := err.Error()
	for stripped := true; stripped; {
		stripped = false
		for _, kind := range errorKinds {
			if prefix := kind.Error() + ": "; strings.HasPrefix(msg, prefix) {
				msg = msg[len(prefix):]
				stripped = true
			}
		}
	}
	return msg
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render critique: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func newPageView() pageView {
	return pageView{
		Title:           pageTitle,
		FeedbackHeading: feedbackHeading,
	}
}

func renderPage(c *fiber.Ctx, status int, view pageView) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func renderErrorJSON(c *fiber.Ctx, id string, err error) error {
	view := describeError(err)
	return c.Status(view.Status).JSON(models.ErrorResponse{
		ID:    id,
		State: string(models.StateErrored),
		Error: view.Message,
		Code:  view.Code,
	})
}
