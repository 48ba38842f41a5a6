package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// RequestValidation middleware tags every request with an ID and rejects
// oversized bodies. Multipart uploads (resume files) get the larger limit;
// plain JSON bodies stay small.
func RequestValidation(maxUploadSize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPut {
				limit := int64(1024 * 1024)
				if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), "multipart/form-data") {
					limit = maxUploadSize
				}
				if c.Request().ContentLength > limit {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
