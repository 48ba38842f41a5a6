package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/actions"
	"compass-utils/internal/config"
	"compass-utils/internal/interpreter"
	"compass-utils/internal/llm"
	"compass-utils/internal/llm/prompts"
	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// RoadmapHandler generates a six-month career roadmap from the profile
func RoadmapHandler(cfg *config.Config, llmManager *llm.Manager, actionManager *actions.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Roadmap request received")

		var req models.GenerateRoadmapRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req.Profile); err != nil {
			logger.Error("Profile validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		owner := ownerID(c)
		if err := actionManager.Begin(owner, actions.SurfaceRoadmap); err != nil {
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		roadmap, err := generateRoadmap(c, cfg, llmManager, &req.Profile)
		actionManager.Finish(owner, actions.SurfaceRoadmap, err)
		if err != nil {
			logger.Error("Roadmap generation failed", map[string]interface{}{"error": err.Error()})
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Roadmap request completed successfully", map[string]interface{}{
			"processing_time": time.Since(startTime),
			"phases":          len(roadmap.Phases),
		})

		return c.JSON(http.StatusOK, models.RoadmapResponse{
			Success:        true,
			Roadmap:        roadmap,
			ProcessingTime: time.Since(startTime),
			Provider:       llmManager.GetProviderName(),
			RequestID:      requestID,
		})
	}
}

func generateRoadmap(c echo.Context, cfg *config.Config, llmManager *llm.Manager, profile *models.Profile) (*models.Roadmap, error) {
	raw, err := llmManager.Complete(c.Request().Context(), models.CompletionRequest{
		Messages:    models.UserMessage(prompts.BuildRoadmapPrompt(profile)),
		Temperature: cfg.LLM.Roadmap.Temperature,
		MaxTokens:   cfg.LLM.Roadmap.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return interpreter.ParseRoadmap(raw)
}

// RecommendationsHandler generates the personalized job, mentor, and learning
// recommendations from the profile
func RecommendationsHandler(cfg *config.Config, llmManager *llm.Manager, actionManager *actions.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Recommendations request received")

		var req models.RecommendationsRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req.Profile); err != nil {
			logger.Error("Profile validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		owner := ownerID(c)
		if err := actionManager.Begin(owner, actions.SurfaceRecommendations); err != nil {
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		bundle, err := generateRecommendations(c, cfg, llmManager, &req.Profile)
		actionManager.Finish(owner, actions.SurfaceRecommendations, err)
		if err != nil {
			logger.Error("Recommendations generation failed", map[string]interface{}{"error": err.Error()})
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Recommendations request completed successfully", map[string]interface{}{
			"processing_time": time.Since(startTime),
		})

		return c.JSON(http.StatusOK, models.RecommendationsResponse{
			Success:         true,
			Recommendations: bundle,
			ProcessingTime:  time.Since(startTime),
			Provider:        llmManager.GetProviderName(),
			RequestID:       requestID,
		})
	}
}

func generateRecommendations(c echo.Context, cfg *config.Config, llmManager *llm.Manager, profile *models.Profile) (*models.RecommendationBundle, error) {
	raw, err := llmManager.Complete(c.Request().Context(), models.CompletionRequest{
		Messages:    models.UserMessage(prompts.BuildRecommendationsPrompt(profile)),
		Temperature: cfg.LLM.Recommendations.Temperature,
		MaxTokens:   cfg.LLM.Recommendations.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return interpreter.ParseRecommendations(raw)
}
