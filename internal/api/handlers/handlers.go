// Package handlers holds the HTTP handlers for the coaching API. Handlers
// follow one pattern: bind, validate, run the domain operation, and map
// failures onto the shared error response shape.
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"compass-utils/internal/actions"
	"compass-utils/internal/api/validation"
	"compass-utils/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterProfileValidators(v)
	return v
}

// ownerID identifies the requester. The dashboard sends its session owner in
// a header; requests without one share the default owner, which keeps local
// single-user development friction-free.
func ownerID(c echo.Context) string {
	if id := c.Request().Header.Get("X-Owner-ID"); id != "" {
		return id
	}
	return "default"
}

// statusForError maps domain failures onto HTTP status codes. Pipeline
// failures are terminal, so the mapping is the whole recovery story.
func statusForError(err error) (int, string) {
	var inFlight *actions.ErrActionInFlight
	var unsupported *utils.UnsupportedFormatError
	var insufficient *utils.InsufficientTextError
	var completion *utils.CompletionError
	var malformed *utils.MalformedResponseError

	switch {
	case errors.As(err, &inFlight):
		return http.StatusConflict, "action_in_flight"
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity, "unsupported_format"
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity, "insufficient_text"
	case errors.As(err, &completion):
		return http.StatusBadGateway, "completion_failed"
	case errors.As(err, &malformed):
		return http.StatusBadGateway, "malformed_response"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
