package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-utils/internal/config"
)

func relayTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "llama-3.3-70b-versatile"
	cfg.Relay.Timeout = 5 * time.Second
	return cfg
}

func doRelay(t *testing.T, cfg *config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	handler := NewHandler(cfg)
	require.NoError(t, handler.Relay(e.NewContext(req, rec)))
	return rec
}

func TestRelaySuccessPassthrough(t *testing.T) {
	upstreamBody := `{"choices": [{"message": {"content": "roadmap text"}}], "model": "llama-3.3-70b-versatile"}`

	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(upstreamBody))
	}))
	defer server.Close()

	rec := doRelay(t, relayTestConfig(server.URL), `{"prompt": "plan my career"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, upstreamBody, rec.Body.String())

	// The prompt is wrapped into a single user message.
	messages := captured["messages"].([]interface{})
	require.Len(t, messages, 1)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "plan my career", first["content"])
}

func TestRelayUpstreamErrorPayload(t *testing.T) {
	// The upstream error object becomes the response body, verbatim.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "invalid api key", "code": "invalid_api_key"}}`))
	}))
	defer server.Close()

	rec := doRelay(t, relayTestConfig(server.URL), `{"prompt": "plan my career"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "invalid api key", "code": "invalid_api_key"}`, rec.Body.String())
}

func TestRelayTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	rec := doRelay(t, relayTestConfig(server.URL), `{"prompt": "plan my career"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Completion request failed"}`, rec.Body.String())
}

func TestRelayMissingPrompt(t *testing.T) {
	rec := doRelay(t, relayTestConfig("http://localhost:0"), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
