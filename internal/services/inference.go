package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/resume-critiquer/internal/config"
)

const (
	// MaxOutputTokens caps the length of a critique.
	MaxOutputTokens = 1000
	// Temperature is the sampling temperature of every critique request.
	Temperature float32 = 0.7
)

// ErrMissingAPIKey is returned on first use when the provider has no credential.
var ErrMissingAPIKey = errors.New("authentication failed: API key is not configured")

// InferenceClient sends one prompt to a chat-completion model and returns the
// text of the first candidate. Implementations never retry.
type InferenceClient interface {
	Critique(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// NewInferenceClient builds the provider selected by cfg.LLM.Provider. A
// missing API key is not an error here; the client fails when first used.
func NewInferenceClient(cfg *config.Config) (InferenceClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIService(cfg.OpenAI, cfg.LLM.Timeout), nil
	case config.ProviderGemini:
		return NewGeminiService(cfg.Gemini, cfg.LLM.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
