package http

import (
	"errors"
	"log/slog"
	"net/http"

	"campusfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindPersistence:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a use case error. Store and unknown failures are
// logged and their details are not sent to the client.
func writeError(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	code := statusOf(kind)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"kind", kind.String(),
			"error", err)
		message = http.StatusText(code)
	}

	return c.JSON(code, ErrorResponse{Code: code, Kind: kind.String(), Message: message})
}

// ErrorHandler renders errors returned by middleware and routing, such as
// a missing token or an unknown route, in the same shape as use case errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = writeError(c, err)
		return
	}

	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}
	_ = c.JSON(httpErr.Code, ErrorResponse{Code: httpErr.Code, Kind: "http", Message: message})
}

func badRequest(c echo.Context, message string, cause error) error {
	if cause != nil {
		message += ": " + cause.Error()
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    errs.KindValidation.String(),
		Message: message,
	})
}
