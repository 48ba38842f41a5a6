package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/session"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// sessionStateResponse reports the owner's lifecycle state.
type sessionStateResponse struct {
	OwnerID string        `json:"owner_id"`
	State   session.State `json:"state"`
}

// SessionStateHandler returns the owner's current lifecycle state
func SessionStateHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner := ownerID(c)
		return c.JSON(http.StatusOK, sessionStateResponse{
			OwnerID: owner,
			State:   sessions.CurrentState(owner),
		})
	}
}

// LoginHandler runs the sign-in flow. Owners with a stored profile land on
// the dashboard directly; new owners are sent through onboarding.
func LoginHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		owner := ownerID(c)

		if err := sessions.BeginAuthentication(owner); err != nil {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:     "illegal_transition",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		state, err := sessions.CompleteAuthentication(c.Request().Context(), owner)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, sessionStateResponse{OwnerID: owner, State: state})
	}
}

// OnboardHandler accepts the completed onboarding profile and activates the
// session
func OnboardHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		owner := ownerID(c)

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

		if err := sessions.CompleteOnboarding(c.Request().Context(), owner, &profile); err != nil {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:     "illegal_transition",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, sessionStateResponse{OwnerID: owner, State: session.StateActive})
	}
}

// LogoutHandler ends the session and wipes the owner's stored data
func LogoutHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		owner := ownerID(c)

		if err := sessions.Logout(c.Request().Context(), owner); err != nil {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:     "illegal_transition",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, sessionStateResponse{OwnerID: owner, State: session.StateUnauthenticated})
	}
}

// ColdStartHandler resets the owner to a clean slate, clearing stored state
// before any restore runs
func ColdStartHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		owner := ownerID(c)

		if err := sessions.ColdStart(c.Request().Context(), owner); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, sessionStateResponse{OwnerID: owner, State: session.StateUnauthenticated})
	}
}
