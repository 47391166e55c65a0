package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"alfredoptarigan/resume-critiquer/internal/metrics"
	"alfredoptarigan/resume-critiquer/internal/models"
)

// AnalyzerService runs one resume through extraction, validation, prompting and
// inference. Failures are returned inside the outcome, never as a panic or a
// separate error value.
type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisOutcome
}

type analyzerService struct {
	extractor      TextExtractor
	promptBuilder  *PromptBuilder
	inference      InferenceClient
	metrics        metrics.Recorder
	maxResumeChars int
}

func NewAnalyzerService(
	extractor TextExtractor,
	inference InferenceClient,
	recorder metrics.Recorder,
	maxResumeChars int,
) AnalyzerService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return &analyzerService{
		extractor:      extractor,
		promptBuilder:  NewPromptBuilder(),
		inference:      inference,
		metrics:        recorder,
		maxResumeChars: maxResumeChars,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisOutcome {
	start := time.Now()
	outcome := &models.AnalysisOutcome{
		RequestID: req.ID,
		State:     models.StateIdle,
	}
	defer func() {
		outcome.Duration = time.Since(start)
		a.metrics.IncAnalyses(OutcomeLabel(outcome))
	}()

	fail := func(err error) *models.AnalysisOutcome {
		log.Printf("❌ [%s] Analysis failed while %s: %v\n", req.ID, outcome.State, err)
		outcome.FailedAt = outcome.State
		outcome.State = models.StateErrored
		outcome.Err = err
		return outcome
	}

	// Step 1: Extract text
	outcome.State = models.StateExtracting
	log.Printf("📄 [%s] Extracting text from %q (%s)\n", req.ID, req.Document.Filename, req.Document.Type)
	stageStart := time.Now()
	text, err := a.extractor.Extract(req.Document)
	a.metrics.ObserveStage(string(models.StateExtracting), time.Since(stageStart))
	if err != nil {
		if !errors.Is(err, models.ErrExtraction) {
			err = models.WrapError(models.ErrExtraction, err)
		}
		return fail(err)
	}

	// Step 2: Reject blank documents before any network call
	outcome.State = models.StateValidating
	if strings.TrimSpace(text) == "" {
		return fail(models.WrapError(models.ErrEmptyContent, errors.New("file does not have any content to analyze")))
	}

	// Step 3: Build prompt
	outcome.State = models.StatePrompting
	stageStart = time.Now()
	text, truncated := TruncateRunes(text, a.maxResumeChars)
	if truncated {
		log.Printf("⚠️  [%s] Resume text cut to %d characters\n", req.ID, a.maxResumeChars)
		a.metrics.IncTruncated()
	}
	outcome.Truncated = truncated
	prompt := a.promptBuilder.BuildPrompt(text, req.JobRole)
	a.metrics.ObserveStage(string(models.StatePrompting), time.Since(stageStart))
	log.Printf("📝 [%s] Critique prompt length: %d characters\n", req.ID, len(prompt))

	// Step 4: Call the model once
	outcome.State = models.StateInferring
	log.Printf("🤖 [%s] Requesting critique from %s...\n", req.ID, a.inference.Provider())
	stageStart = time.Now()
	critique, err := a.inference.Critique(ctx, prompt)
	elapsed := time.Since(stageStart)
	a.metrics.ObserveStage(string(models.StateInferring), elapsed)
	a.metrics.ObserveInference(a.inference.Provider(), elapsed, err)
	if err != nil {
		return fail(models.WrapError(models.ErrInference, err))
	}

	outcome.State = models.StateRendered
	outcome.Critique = models.CritiqueResult(critique)
	log.Printf("✅ [%s] Critique received: %d characters\n", req.ID, len(critique))

	return outcome
}

// OutcomeLabel names an outcome for metrics and logs.
func OutcomeLabel(outcome *models.AnalysisOutcome) string {
	switch {
	case outcome.Err == nil:
		return string(outcome.State)
	case errors.Is(outcome.Err, models.ErrEmptyContent):
		return "empty_content"
	case errors.Is(outcome.Err, models.ErrExtraction):
		return "extraction_failed"
	case errors.Is(outcome.Err, models.ErrInference):
		return "inference_failed"
	default:
		return "failed"
	}
}
