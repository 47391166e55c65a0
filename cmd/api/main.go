package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-critiquer/internal/config"
	"alfredoptarigan/resume-critiquer/internal/handlers"
	"alfredoptarigan/resume-critiquer/internal/metrics"
	"alfredoptarigan/resume-critiquer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize inference client
	inferenceClient, err := services.NewInferenceClient(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize inference client: %v", err)
	}
	log.Printf("✅ Inference client initialized (provider: %s)\n", inferenceClient.Provider())
	if !hasAPIKey(cfg) {
		log.Printf("⚠️  No API key configured for %s, analyses will fail until one is set\n", inferenceClient.Provider())
	}

	// Initialize services
	pipelineMetrics := metrics.NewPipelineMetrics()
	analyzerService := services.NewAnalyzerService(
		services.NewTextExtractor(),
		inferenceClient,
		pipelineMetrics,
		cfg.Limits.MaxResumeChars,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler(analyzerService, cfg.Limits.MaxFileSize)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Limits.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Critiquer",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    handlers.BodyLimit(cfg.Limits.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(handlers.NewRequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.RegisterRoutes(app, pageHandler, analyzeHandler, pipelineMetrics.Handler())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)
	log.Printf("📖 Open http://localhost%s to analyze a resume\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func hasAPIKey(cfg *config.Config) bool {
	if cfg.LLM.Provider == config.ProviderGemini {
		return cfg.Gemini.APIKey != ""
	}
	return cfg.OpenAI.APIKey != ""
}
