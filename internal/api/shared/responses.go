package shared

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-kit/internal/redact"
)

// TraceIDHeader carries the request's trace ID on every response, so a
// failed request can be matched with its log lines.
const TraceIDHeader = "X-Trace-Id"

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level. Use for operational signals such as
// rejected CSRF tokens.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithText writes a plain-text response with the given status code.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, body string) {
	respond(w, r, status, "text/plain; charset=utf-8", []byte(body))
}

// RespondWithHTML writes an already-rendered HTML document.
func RespondWithHTML(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	respond(w, r, status, "text/html; charset=utf-8", body)
}

func respond(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if traceID := GetTraceID(r.Context()); traceID != "" {
		w.Header().Set(TraceIDHeader, traceID)
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// RespondWithError writes a plain-text error response with the given status
// code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithText(w, r, status, message)
}

// RespondWithErrorAndLog writes a plain-text error response and also logs the
// detailed error. Only userMessage reaches the client; the error itself is
// logged after redaction.
//
// Log level strategy:
//   - 5xx errors: always ERROR
//   - 4xx errors: DEBUG, or WARN with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", redact.String(userMessage)),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "HTTP error response", logAttrs...)

	RespondWithText(w, r, status, userMessage)
}
