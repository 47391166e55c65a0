package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-critiquer/internal/models"
	"alfredoptarigan/resume-critiquer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	req, err := readAnalysisRequest(c, h.maxFileSize)
	if err != nil {
		log.Printf("⚠️  [%s] Upload rejected: %v\n", req.ID, err)
		return renderErrorJSON(c, req.ID.String(), err)
	}

	outcome := h.analyzer.Analyze(c.UserContext(), req)
	if !outcome.OK() {
		return renderErrorJSON(c, req.ID.String(), outcome.Err)
	}

	return c.JSON(models.AnalyzeResponse{
		ID:        req.ID.String(),
		State:     string(outcome.State),
		Feedback:  string(outcome.Critique),
		Truncated: outcome.Truncated,
	})
}
