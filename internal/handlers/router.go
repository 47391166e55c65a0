package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	formPath = "/analyze"

	// multipart framing and the job_role field on top of the file itself
	formOverhead = 1 << 20
)

// RegisterRoutes mounts the page, the JSON API, the health check and, when
// metricsHandler is not nil, the Prometheus endpoint.
func RegisterRoutes(app *fiber.App, page *PageHandler, analyze *AnalyzeHandler, metricsHandler http.Handler) {
	app.Get("/", page.HandleIndex)
	app.Post(formPath, page.HandleAnalyze)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Post("/analyze", analyze.HandleAnalyze)

	if metricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metricsHandler))
	}
}

// NewRequestID assigns every request a UUID, exposed as X-Request-ID and reused
// as the analysis ID.
func NewRequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// BodyLimit is the transport limit for a given upload limit, large enough that
// most oversized uploads still reach the handler's own size check.
func BodyLimit(maxFileSize int64) int {
	return int(maxFileSize)*4 + formOverhead
}

// ErrorHandler answers framework errors (unknown route, body over the limit)
// and anything a handler returns unhandled. The HTML form gets the page with an
// error banner, everything else gets JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if c.Method() == fiber.MethodPost && c.Path() == formPath {
		view := newPageView()
		view.RequestID = requestID(c).String()
		view.Error = err.Error()
		if code == fiber.StatusRequestEntityTooLarge {
			view.Error = "The uploaded file is too large."
		}
		return renderPage(c, code, view)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
