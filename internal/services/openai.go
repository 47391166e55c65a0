package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alfredoptarigan/resume-critiquer/internal/config"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
	N           int           `json:"n"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type openAIService struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewOpenAIService creates a client for the Chat Completions API. A zero
// timeout leaves the HTTP client without a deadline.
func NewOpenAIService(cfg config.OpenAIConfig, timeout time.Duration) InferenceClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &openAIService{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: baseURL + "/chat/completions",
		client:   &http.Client{Timeout: timeout},
	}
}

func (o *openAIService) Provider() string {
	return config.ProviderOpenAI
}

// Critique implements InferenceClient.
func (o *openAIService) Critique(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	bodyBytes, err := json.Marshal(chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", formatAPIError(resp.StatusCode, respBody)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI API: no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func formatAPIError(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("OpenAI API error (status %d): %s", statusCode, apiErr.Error.Message)
	}

	msg, truncated := TruncateRunes(strings.TrimSpace(string(body)), 500)
	if truncated {
		msg += "..."
	}
	if msg == "" {
		return fmt.Errorf("OpenAI API error (status %d)", statusCode)
	}
	return fmt.Errorf("OpenAI API error (status %d): %s", statusCode, msg)
}
