package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/actions"
	"compass-utils/internal/config"
	"compass-utils/internal/extraction"
	"compass-utils/internal/interpreter"
	"compass-utils/internal/llm"
	"compass-utils/internal/llm/prompts"
	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// ResumeAnalysisHandler accepts a multipart resume upload plus the profile,
// runs text acquisition (with OCR fallback for scanned PDFs), and returns the
// model's free-text critique.
func ResumeAnalysisHandler(cfg *config.Config, llmManager *llm.Manager, extractor *extraction.Service, actionManager *actions.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume analysis request received")

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "resume file is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if fileHeader.Size > cfg.Extraction.MaxFileSize {
			return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:     "request_too_large",
				Message:   "resume file exceeds the maximum upload size",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		var profile models.Profile
		profileField := c.FormValue("profile")
		if profileField == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "profile form field is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := json.Unmarshal([]byte(profileField), &profile); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "profile form field is not valid JSON",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := validate.Struct(&profile); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   "failed to open uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   "failed to read uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		doc := extraction.Document{
			Name:   fileHeader.Filename,
			Format: documentFormat(fileHeader),
			Data:   data,
		}

		owner := ownerID(c)
		if err := actionManager.Begin(owner, actions.SurfaceResumeAnalysis); err != nil {
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		analysis, method, err := analyzeResume(c, cfg, llmManager, extractor, &profile, doc, logger)
		actionManager.Finish(owner, actions.SurfaceResumeAnalysis, err)
		if err != nil {
			logger.Error("Resume analysis failed", map[string]interface{}{"error": err.Error()})
			status, code := statusForError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Resume analysis completed successfully", map[string]interface{}{
			"processing_time":   time.Since(startTime),
			"extraction_method": method,
		})

		return c.JSON(http.StatusOK, models.ResumeAnalysisResponse{
			Success:        true,
			Analysis:       analysis,
			Method:         method,
			ProcessingTime: time.Since(startTime),
			Provider:       llmManager.GetProviderName(),
			RequestID:      requestID,
		})
	}
}

func analyzeResume(c echo.Context, cfg *config.Config, llmManager *llm.Manager, extractor *extraction.Service, profile *models.Profile, doc extraction.Document, logger logging.Logger) (string, string, error) {
	ctx := c.Request().Context()

	text, method, err := extractor.Acquire(ctx, doc)
	if err != nil {
		return "", "", err
	}

	logger.Debug("Resume text acquired", map[string]interface{}{
		"method": method,
		"length": len(text),
	})

	raw, err := llmManager.Complete(ctx, models.CompletionRequest{
		Messages:    models.UserMessage(prompts.BuildResumeCritiquePrompt(profile, text)),
		Temperature: cfg.LLM.Critique.Temperature,
		MaxTokens:   cfg.LLM.Critique.MaxTokens,
	})
	if err != nil {
		return "", "", err
	}

	// The critique is prose; no decoding, the text is the product.
	return interpreter.AsFreeText(raw), method, nil
}

// documentFormat prefers the declared content type and falls back to the
// file extension when the client sent a generic octet-stream.
func documentFormat(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	return strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
}
