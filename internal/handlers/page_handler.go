package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-critiquer/internal/services"
)

type PageHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewPageHandler(analyzer services.AnalyzerService, maxFileSize int64) *PageHandler {
	return &PageHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, newPageView())
}

// HandleAnalyze handles POST /analyze
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	view := newPageView()

	req, err := readAnalysisRequest(c, h.maxFileSize)
	view.JobRole = req.JobRole
	view.RequestID = req.ID.String()
	if err != nil {
		log.Printf("⚠️  [%s] Upload rejected: %v\n", req.ID, err)
		errView := describeError(err)
		view.Error = errView.Message
		return renderPage(c, errView.Status, view)
	}
	view.Filename = req.Document.Filename

	outcome := h.analyzer.Analyze(c.UserContext(), req)
	if !outcome.OK() {
		errView := describeError(outcome.Err)
		view.Error = errView.Message
		return renderPage(c, errView.Status, view)
	}

	feedback, err := renderMarkdown(string(outcome.Critique))
	if err != nil {
		return err
	}
	view.Feedback = feedback
	view.HasFeedback = true
	view.Truncated = outcome.Truncated

	return renderPage(c, fiber.StatusOK, view)
}
