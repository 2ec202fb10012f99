package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

// errorEnvelope is the canonical shape for every error the API emits:
// {"success": false, "message": "..."}. Handlers render known failures
// themselves; everything that escapes lands here.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const genericErrorMessage = "Lỗi hệ thống, vui lòng thử lại sau"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps echo's own errors (404, method not allowed, bind failures) to
//     their status codes inside the standard envelope.
//   - Converts known downstream failures to a generic 500.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrWebhookFailed), errors.Is(err, domain.ErrContentUpstream):
		log.Warn().Err(err).Str("path", c.Path()).Msg("downstream dependency failure")
		return http.StatusInternalServerError, genericErrorMessage
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, genericErrorMessage
}
