package shared

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/storefront-kit/internal/platform/logger"
)

func TestRespondWithText(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	RespondWithText(w, req, http.StatusOK, "OK")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, GetTraceID(req.Context()), w.Header().Get(TraceIDHeader))
}

func TestRespondWithHTML(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	w := httptest.NewRecorder()

	RespondWithHTML(w, req, http.StatusOK, []byte("<p>hi</p>"))

	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
	assert.Empty(t, w.Header().Get(TraceIDHeader), "no trace header without a trace ID")
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	secret := errors.New("csrfToken=9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08 bad")

	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{"client error logs at debug", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated client error logs at warn", http.StatusForbidden, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
		{"server error logs at error", http.StatusInternalServerError, nil, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf, _ := logger.SetupTestLogger(t)

			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			req = req.WithContext(SetTraceID(req.Context()))
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.status, "Something went wrong", secret, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "Something went wrong", w.Body.String())
			assert.NotContains(t, w.Body.String(), "csrfToken")

			entries, err := logBuf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, tc.wantLevel, entry[slog.LevelKey])
			assert.Equal(t, GetTraceID(req.Context()), entry["trace_id"])
			assert.Equal(t, float64(tc.status), entry["status_code"])
			assert.Equal(t, "[REDACTED_CREDENTIAL] bad", entry["error"])
			assert.True(t, strings.HasPrefix(entry["error_type"].(string), "*errors."))
		})
	}
}
