package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-critiquer/internal/config"
)

func TestGeminiCritique_MissingKeyFailsOnFirstUse(t *testing.T) {
	client := NewGeminiService(config.GeminiConfig{Model: "gemini-2.5-flash"}, 0)

	_, err := client.Critique(context.Background(), "prompt")

	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, config.ProviderGemini, client.Provider())
}

func TestGeminiCritique_SendsGenerationConfig(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Good summary, add metrics."}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	client := NewGeminiService(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
	}, 0)

	critique, err := client.Critique(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "Good summary, add metrics.", critique)

	generationConfig := captured["generationConfig"].(map[string]interface{})
	assert.Equal(t, float64(1000), generationConfig["maxOutputTokens"])
	assert.Equal(t, float64(1), generationConfig["candidateCount"])
	assert.InDelta(t, 0.7, generationConfig["temperature"], 0.0001)
	assert.Contains(t, captured, "systemInstruction")
}
