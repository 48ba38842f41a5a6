// Package relay implements the thin completion proxy. It keeps the upstream
// API key server-side: clients send a bare prompt, the relay wraps it in a
// completion request and returns the upstream response body untouched.
package relay

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
)

// Handler proxies prompt requests to the upstream completion endpoint.
type Handler struct {
	config     *config.Config
	httpClient *http.Client
	logger     logging.Logger
}

// upstreamEnvelope is decoded only far enough to spot an error payload; the
// raw body is what actually gets relayed.
type upstreamEnvelope struct {
	Error json.RawMessage `json:"error,omitempty"`
}

// NewHandler creates a new relay handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Relay.Timeout,
		},
		logger: logging.GetGlobalLogger(),
	}
}

// Relay handles POST requests carrying a prompt. Upstream failures surface as
// 500 responses: an upstream error payload is returned verbatim as the body,
// a transport failure returns a generic message.
func (h *Handler) Relay(c echo.Context) error {
	var req models.RelayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prompt is required"})
	}

	payload, err := json.Marshal(map[string]interface{}{
		"model":       h.config.LLM.Model,
		"messages":    models.UserMessage(req.Prompt),
		"temperature": 0.7,
		"max_tokens":  2000,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Completion request failed"})
	}

	endpoint := strings.TrimRight(h.config.LLM.BaseURL, "/") + "/chat/completions"
	upstreamReq, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Completion request failed"})
	}
	upstreamReq.Header.Set("Content-Type", "application/json")
	upstreamReq.Header.Set("Authorization", "Bearer "+h.config.LLM.APIKey)

	resp, err := h.httpClient.Do(upstreamReq)
	if err != nil {
		h.logger.Error("Relay upstream request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Completion request failed"})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Completion request failed"})
	}

	var envelope upstreamEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 && string(envelope.Error) != "null" {
		h.logger.Error("Relay upstream returned error payload", map[string]interface{}{
			"error": string(envelope.Error),
		})
		return c.JSONBlob(http.StatusInternalServerError, envelope.Error)
	}

	return c.JSONBlob(http.StatusOK, body)
}
