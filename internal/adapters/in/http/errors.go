package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// NewErrorHandler returns an echo.HTTPErrorHandler that writes every failure
// as an error envelope. Unexpected errors are logged and hidden from clients.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := classify(err, ctx.Request())
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, errorEnvelope{Error: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error, req *http.Request) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsClientError(err), errors.Is(err, ErrInvalidRequestBody):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		return classifyHTTPError(httpErr, req)
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func classifyHTTPError(httpErr *echo.HTTPError, req *http.Request) (int, string) {
	switch httpErr.Code {
	case http.StatusNotFound:
		return http.StatusNotFound, "Path not found: " + req.URL.Path
	case http.StatusMethodNotAllowed:
		return http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", req.Method, req.URL.Path)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		return httpErr.Code, internalErrorMessage
	}
	if message, ok := httpErr.Message.(string); ok {
		return httpErr.Code, message
	}
	return httpErr.Code, http.StatusText(httpErr.Code)
}
