package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/resume-critiquer/internal/config"
)

type geminiService struct {
	apiKey    string
	baseURL   string
	modelName string
	timeout   time.Duration

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiService creates a Gemini-backed InferenceClient. The genai client is
// created on the first Critique call so a missing key surfaces as an
// inference failure instead of a startup failure.
func NewGeminiService(cfg config.GeminiConfig, timeout time.Duration) InferenceClient {
	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiService{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		modelName: modelName,
		timeout:   timeout,
	}
}

func (g *geminiService) Provider() string {
	return config.ProviderGemini
}

func (g *geminiService) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	g.client = client
	return client, nil
}

// Critique implements InferenceClient.
func (g *geminiService) Critique(ctx context.Context, prompt string) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := Temperature
	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   MaxOutputTokens,
		CandidateCount:    1,
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response generated (no candidates)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
