package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-utils/internal/config"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

func groqTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "llama-3.3-70b-versatile"
	return cfg
}

func TestGroqCompleteSuccess(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "generated text"}}]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(groqTestConfig(server.URL))

	text, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages:    models.UserMessage("hello"),
		Temperature: 0.3,
		MaxTokens:   2000,
	})

	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, float32(0.3), captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestGroqCompleteNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(groqTestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages: models.UserMessage("hello"),
	})

	var completionErr *utils.CompletionError
	require.True(t, errors.As(err, &completionErr))
	assert.Equal(t, http.StatusTooManyRequests, completionErr.Status)
	assert.Contains(t, completionErr.Body, "rate limit exceeded")
}

func TestGroqCompleteErrorPayload(t *testing.T) {
	// An error field in a 200 response still fails the call.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "model decommissioned", "code": "model_not_found"}}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(groqTestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages: models.UserMessage("hello"),
	})

	var completionErr *utils.CompletionError
	require.True(t, errors.As(err, &completionErr))
	assert.Contains(t, completionErr.Body, "model decommissioned")
}

func TestGroqCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(groqTestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages: models.UserMessage("hello"),
	})

	var completionErr *utils.CompletionError
	assert.True(t, errors.As(err, &completionErr))
}

func TestGroqCompleteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the call cannot connect

	provider := NewGroqProvider(groqTestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages: models.UserMessage("hello"),
	})

	var completionErr *utils.CompletionError
	require.True(t, errors.As(err, &completionErr))
	assert.Zero(t, completionErr.Status)
}

func TestGroqCompleteModelOverride(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(groqTestConfig(server.URL))

	_, err := provider.Complete(context.Background(), models.CompletionRequest{
		Messages: models.UserMessage("hello"),
		Model:    "mixtral-8x7b-32768",
	})

	require.NoError(t, err)
	assert.Equal(t, "mixtral-8x7b-32768", captured.Model)
}
