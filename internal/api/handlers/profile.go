package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/logging"
	"compass-utils/internal/store"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// GetProfileHandler returns the stored profile for the owner
func GetProfileHandler(profiles store.ProfileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		profile, err := profiles.Load(c.Request().Context(), ownerID(c))
		if err == store.ErrProfileNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "profile_not_found",
				Message:   "No profile exists for this owner",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, profile)
	}
}

// SaveProfileHandler stores a complete profile for the owner, replacing any
// existing one. Partial updates are rejected by validation; the profile is
// always written whole.
func SaveProfileHandler(profiles store.ProfileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var profile models.Profile
		if err := c.Bind(&profile); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
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

		if err := profiles.Save(c.Request().Context(), ownerID(c), &profile); err != nil {
			logger.Error("Failed to save profile", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, profile)
	}
}

// DeleteProfileHandler removes the stored profile for the owner
func DeleteProfileHandler(profiles store.ProfileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		if err := profiles.Clear(c.Request().Context(), ownerID(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
