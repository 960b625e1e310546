package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/queue"
)

// Error codes carried in the response envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidState    = "INVALID_STATE"
	CodeMissingFile     = "MISSING_FILE"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeDuplicate       = "DUPLICATE"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeUploadError     = "UPLOAD_ERROR"
)

// apiError is an HTTP error with a machine-readable code. It renders as
// {"error": "...", "code": "..."} through the custom error handler.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func newAPIError(status int, code, message string) *apiError {
	return &apiError{Status: status, Code: code, Message: message}
}

// errorEnvelope is the wire shape of every error response.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// httpErrorHandler renders apiError and echo.HTTPError values into the
// engine's error envelope.
func httpErrorHandler(c *echo.Context, err error) {
	status := http.StatusInternalServerError
	env := errorEnvelope{Error: "internal server error", Code: CodeInternalError}

	var ae *apiError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ae):
		status = ae.Status
		env = errorEnvelope{Error: ae.Message, Code: ae.Code}
	case errors.As(err, &he):
		status = he.Code
		env = errorEnvelope{Error: he.Error(), Code: codeForStatus(he.Code)}
		if he.Message != "" {
			env.Error = he.Message
		}
	default:
		slog.Error("Unhandled API error", "error", err)
	}

	if r, uerr := echo.UnwrapResponse(c.Response()); uerr == nil && r.Committed {
		return
	}
	if err := c.JSON(status, env); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidationError
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeDuplicate
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternalError
	}
}

// mapServiceError maps store/service-layer errors to HTTP responses.
func mapServiceError(err error) error {
	var validErr *auth.ValidationError
	if errors.As(err, &validErr) {
		return newAPIError(http.StatusBadRequest, CodeValidationError, validErr.Error())
	}
	if errors.Is(err, queue.ErrNotFound) || errors.Is(err, auth.ErrNotFound) {
		return newAPIError(http.StatusNotFound, CodeNotFound, "resource not found")
	}
	if queue.IsInvalidTransition(err) {
		return newAPIError(http.StatusBadRequest, CodeInvalidState, err.Error())
	}

	slog.Error("Unexpected service error", "error", err)
	return newAPIError(http.StatusInternalServerError, CodeInternalError, "internal server error")
}
