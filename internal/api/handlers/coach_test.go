package handlers

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

	"compass-utils/internal/actions"
	"compass-utils/internal/config"
	"compass-utils/internal/llm"
	"compass-utils/pkg/models"
)

func handlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "groq"
	cfg.LLM.Model = "llama-3.3-70b-versatile"
	cfg.LLM.Roadmap = config.PromptBudget{Temperature: 0.3, MaxTokens: 2000}
	cfg.LLM.Recommendations = config.PromptBudget{Temperature: 0.3, MaxTokens: 800}
	return cfg
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func validProfileJSON(t *testing.T) string {
	t.Helper()

	profile := models.Profile{
		Degree:          "B.Tech Computer Science",
		Year:            "3rd Year",
		College:         "NIT Trichy",
		CareerRole:      "Backend Developer",
		CareerGoal:      "Land a backend internship",
		Skills:          []string{"Go"},
		ExperienceLevel: "intermediate",
	}
	data, err := json.Marshal(map[string]interface{}{"profile": profile})
	require.NoError(t, err)
	return string(data)
}

func TestRoadmapHandlerRejectsMalformedBody(t *testing.T) {
	handler := RoadmapHandler(handlerTestConfig(), llm.NewManager(handlerTestConfig()), actions.NewManager())

	rec := postJSON(t, handler, "/api/v1/coach/roadmap", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestRoadmapHandlerRejectsInvalidProfile(t *testing.T) {
	handler := RoadmapHandler(handlerTestConfig(), llm.NewManager(handlerTestConfig()), actions.NewManager())

	// Missing careerRole and an unknown experience level.
	body := `{"profile": {"degree": "B.Tech", "year": "3rd Year", "college": "NIT", "careerGoal": "x", "skills": ["Go"], "experienceLevel": "wizard"}}`
	rec := postJSON(t, handler, "/api/v1/coach/roadmap", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestRoadmapHandlerConflictWhileInFlight(t *testing.T) {
	actionManager := actions.NewManager()
	require.NoError(t, actionManager.Begin("alice", actions.SurfaceRoadmap))

	handler := RoadmapHandler(handlerTestConfig(), llm.NewManager(handlerTestConfig()), actionManager)

	rec := postJSON(t, handler, "/api/v1/coach/roadmap", validProfileJSON(t), map[string]string{"X-Owner-ID": "alice"})

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "action_in_flight", resp.Error)
}

func TestRecommendationsHandlerRejectsInvalidProfile(t *testing.T) {
	handler := RecommendationsHandler(handlerTestConfig(), llm.NewManager(handlerTestConfig()), actions.NewManager())

	rec := postJSON(t, handler, "/api/v1/coach/recommendations", `{"profile": {}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoadmapHandlerEndToEnd(t *testing.T) {
	// A stubbed upstream returns a fenced roadmap; the handler must hand
	// back the decoded structure.
	fenced := "```json\n{\"phases\": [{\"title\": \"Foundation Phase\", \"duration\": \"6 weeks\", \"tasks\": [\"Learn Go\"]}], \"nextActions\": [\"Apply to internships\"]}\n```"

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": fenced}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer upstream.Close()

	cfg := handlerTestConfig()
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = upstream.URL
	cfg.LLM.Timeout = 5 * time.Second

	llmManager := llm.NewManager(cfg)
	require.NoError(t, llmManager.Start())
	defer llmManager.Stop()

	handler := RoadmapHandler(cfg, llmManager, actions.NewManager())
	rec := postJSON(t, handler, "/api/v1/coach/roadmap", validProfileJSON(t), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RoadmapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Roadmap)
	require.Len(t, resp.Roadmap.Phases, 1)
	assert.Equal(t, "Foundation Phase", resp.Roadmap.Phases[0].Title)
	assert.Equal(t, []string{"Apply to internships"}, resp.Roadmap.NextActions)
	assert.Equal(t, "groq", resp.Provider)
}

func TestRoadmapHandlerMalformedCompletion(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Sure! Here is a roadmap in plain prose."}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer upstream.Close()

	cfg := handlerTestConfig()
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = upstream.URL
	cfg.LLM.Timeout = 5 * time.Second

	llmManager := llm.NewManager(cfg)
	require.NoError(t, llmManager.Start())
	defer llmManager.Stop()

	handler := RoadmapHandler(cfg, llmManager, actions.NewManager())
	rec := postJSON(t, handler, "/api/v1/coach/roadmap", validProfileJSON(t), nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed_response")
}

func TestOwnerIDDefaultsWhenHeaderAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "default", ownerID(c))

	req.Header.Set("X-Owner-ID", "alice")
	assert.Equal(t, "alice", ownerID(c))
}
