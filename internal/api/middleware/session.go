package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/storefront-kit/internal/api/shared"
	"github.com/phrazzld/storefront-kit/internal/platform/logger"
	"github.com/phrazzld/storefront-kit/internal/session"
)

// SessionCookie describes the cookie that carries the session ID.
type SessionCookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// SessionMiddleware resolves the caller's session from its cookie, starting a
// new session with a random UUID when the cookie is missing or malformed, and
// stores it in the request context.
type SessionMiddleware struct {
	store  session.Store
	cookie SessionCookie
}

// NewSessionMiddleware creates a SessionMiddleware over the given store.
func NewSessionMiddleware(store session.Store, cookie SessionCookie) *SessionMiddleware {
	return &SessionMiddleware{store: store, cookie: cookie}
}

// Handle wraps next.
func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())

		id, fresh := m.sessionID(r)
		sess, err := m.store.Open(r.Context(), id)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Session unavailable", err)
			return
		}

		// reissued on every request so MaxAge slides with the server-side TTL
		http.SetCookie(w, &http.Cookie{
			Name:     m.cookie.Name,
			Value:    id,
			Path:     "/",
			MaxAge:   int(m.cookie.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   m.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		if fresh {
			log.Debug("started new session")
		}

		next.ServeHTTP(w, r.WithContext(shared.WithSession(r.Context(), sess)))
	})
}

func (m *SessionMiddleware) sessionID(r *http.Request) (string, bool) {
	if c, err := r.Cookie(m.cookie.Name); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String(), false
		}
	}
	return uuid.NewString(), true
}
