package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// GroqProvider implements the completion provider interface against Groq's
// OpenAI-compatible chat completions endpoint.
type GroqProvider struct {
	config     *config.Config
	httpClient *http.Client
	logger     logging.Logger
}

// chatCompletionRequest is the OpenAI-style wire request.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatCompletionResponse is the OpenAI-style wire response. Error is kept raw
// so a failure body can be logged and relayed verbatim.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error json.RawMessage `json:"error,omitempty"`
}

// NewGroqProvider creates a new Groq provider instance
func NewGroqProvider(cfg *config.Config) *GroqProvider {
	return &GroqProvider{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends one chat completion request. A non-2xx status and an error
// payload field both collapse to CompletionError; there is no retry.
func (gp *GroqProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = gp.config.LLM.Model
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, gp.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+gp.config.LLM.APIKey)

	resp, err := gp.httpClient.Do(httpReq)
	if err != nil {
		return "", &utils.CompletionError{Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &utils.CompletionError{Status: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gp.logger.Error("Completion endpoint returned error status", map[string]interface{}{
			"status":   resp.StatusCode,
			"body":     string(body),
			"provider": "groq",
		})
		return "", &utils.CompletionError{Status: resp.StatusCode, Body: string(body)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &utils.CompletionError{Status: resp.StatusCode, Body: string(body)}
	}

	if len(completion.Error) > 0 && string(completion.Error) != "null" {
		gp.logger.Error("Completion endpoint returned error payload", map[string]interface{}{
			"error":    string(completion.Error),
			"provider": "groq",
		})
		return "", &utils.CompletionError{Status: resp.StatusCode, Body: string(completion.Error)}
	}

	if len(completion.Choices) == 0 {
		return "", &utils.CompletionError{Status: resp.StatusCode, Body: "no choices in completion response"}
	}

	gp.logger.Debug("Completion request succeeded", map[string]interface{}{
		"model":           model,
		"processing_time": time.Since(startTime),
		"provider":        "groq",
	})

	return completion.Choices[0].Message.Content, nil
}

// IsHealthy checks if the Groq provider is configured and reachable
func (gp *GroqProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("Groq API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := gp.Complete(ctx, models.CompletionRequest{
		Messages:  models.UserMessage("Hello"),
		MaxTokens: 10,
	})
	if err != nil {
		return fmt.Errorf("Groq health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (gp *GroqProvider) GetProviderName() string {
	return "groq"
}

func (gp *GroqProvider) endpoint() string {
	return strings.TrimRight(gp.config.LLM.BaseURL, "/") + "/chat/completions"
}
