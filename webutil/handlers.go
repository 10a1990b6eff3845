package webutil

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/workflow"
)

// AppHandler represents a handler function that returns an error.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to the standard http.HandlerFunc signature.
// It executes the AppHandler and handles any returned error by logging appropriately
// and sending a standardized JSON error response.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			// The handler wrote its own successful response.
			return
		}

		statusCode, publicMessage := classify(r, err)

		if HasResponseWriterSentHeader(w) {
			slog.Warn("Handler returned error after writing response header",
				"path", r.URL.Path,
				"method", r.Method,
				"error", err,
			)
			return
		}

		RespondWithError(w, statusCode, publicMessage)
	}
}

// classify maps err to a status code and public message, logging it at a
// level matching its severity.
func classify(r *http.Request, err error) (int, string) {
	var httpErr *HTTPError

	switch {
	case errors.As(err, &httpErr):
		logLevel := slog.LevelWarn // Client errors are warnings server-side
		if httpErr.Code >= 500 {
			logLevel = slog.LevelError
		}
		attrs := []any{
			"code", httpErr.Code,
			"msg", httpErr.Message,
			"path", r.URL.Path,
			"method", r.Method,
		}
		// Log the underlying cause if present and different from the public message
		if cause := errors.Unwrap(httpErr); cause != nil && cause.Error() != httpErr.Message {
			attrs = append(attrs, "cause", cause)
		}
		slog.Log(r.Context(), logLevel, "Client error response", attrs...)
		return httpErr.Code, httpErr.Message

	case errors.Is(err, datastore.ErrNotFound):
		slog.Info("Resource not found", "path", r.URL.Path, "method", r.Method, "error", err)
		return http.StatusNotFound, msgNotFound

	case errors.Is(err, workflow.ErrInvalidTransition):
		slog.Warn("Rejected upload transition", "path", r.URL.Path, "method", r.Method, "error", err)
		return http.StatusConflict, err.Error()

	case errors.Is(err, workflow.ErrInvalidInput):
		slog.Warn("Rejected upload input", "path", r.URL.Path, "method", r.Method, "error", err)
		return http.StatusBadRequest, err.Error()

	default:
		slog.Error("Unhandled internal error", "path", r.URL.Path, "method", r.Method, "error", err)
		return http.StatusInternalServerError, msgInternalServer
	}
}
