package middleware

import (
	"errors"
	"net/http"

	"tenantpulse/pkg/logger"

	jsonres "tenantpulse/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts unhandled errors into the shared error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "path", c.Request().URL.Path, "error", err)
	}

	if writeErr := c.JSON(status, jsonres.Error("ERROR", message, nil)); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
