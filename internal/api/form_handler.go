package api

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-kit/internal/api/shared"
	"github.com/phrazzld/storefront-kit/internal/csrf"
	"github.com/phrazzld/storefront-kit/internal/domain"
	"github.com/phrazzld/storefront-kit/internal/password"
	"github.com/phrazzld/storefront-kit/internal/platform/logger"
	"github.com/phrazzld/storefront-kit/internal/redact"
)

// VerifiedMessage is the body of a successful submission.
const VerifiedMessage = "CSRF verified OK."

var formPage = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
	<head>
		<meta charset="UTF-8" />
		<title>Important Form</title>
	</head>
	<body>
		<form method="post" action="{{.Action}}">
			{{.HiddenFields}}
			<label for="username">Username</label>
			<input type="text" name="username" id="username" /><br />
			<label for="password">Password</label>
			<input type="password" name="password" id="password" /><br />
			<button type="submit">Submit</button>
		</form>
	</body>
</html>
`))

// PasswordHasher derives a password hash from a plaintext and a hex salt.
type PasswordHasher interface {
	Hash(password, salt string) (string, error)
}

// FormHandler serves the CSRF-protected demo form and its submit endpoint.
type FormHandler struct {
	guard  *csrf.Guard
	hasher PasswordHasher
	action string
}

// NewFormHandler creates a FormHandler whose form posts to action.
func NewFormHandler(guard *csrf.Guard, hasher PasswordHasher, action string) *FormHandler {
	return &FormHandler{
		guard:  guard,
		hasher: hasher,
		action: action,
	}
}

// Form handles GET /form. Every render issues a new token pair; pairs from
// earlier renders in the same session stay valid until used.
func (h *FormHandler) Form(w http.ResponseWriter, r *http.Request) {
	sess, ok := shared.GetSession(r.Context())
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Session unavailable", errors.New("no session in request context"))
		return
	}

	pair, err := h.guard.Issue(r.Context(), sess)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Unable to generate CSRF token", err)
		return
	}

	hidden, err := pair.HiddenFields()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Unable to render form", err)
		return
	}

	var page bytes.Buffer
	err = formPage.Execute(&page, struct {
		Action       string
		HiddenFields template.HTML
	}{h.action, hidden})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Unable to render form", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	shared.RespondWithHTML(w, r, http.StatusOK, page.Bytes())
}

// Submit handles POST /submit. The CSRF pair is verified and consumed first;
// when account credentials were posted as well, they are checked by building
// a pending domain.User from them.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	sess, ok := shared.GetSession(r.Context())
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Session unavailable", errors.New("no session in request context"))
		return
	}

	if err := shared.ParseForm(w, r); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	req := submitRequestFromForm(r.PostForm)

	if err := h.guard.Verify(r.Context(), sess, req.CSRFName, req.CSRFToken); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Unable to verify CSRF token: "+GetSafeErrorMessage(err), err,
			shared.WithElevatedLogLevel())
		return
	}

	if !req.HasAccount() {
		shared.RespondWithText(w, r, http.StatusOK, VerifiedMessage)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			VerifiedMessage+" Invalid account: "+SanitizeValidationError(err), err)
		return
	}

	user, err := h.pendingUser(req.Username, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status,
			VerifiedMessage+" Invalid account: "+GetSafeErrorMessage(err), err)
		return
	}

	log.Info("account submission accepted", slog.Bool("pending_activation", user.AuthenticationToken() != nil))
	shared.RespondWithText(w, r, http.StatusOK, VerifiedMessage)
}

// pendingUser builds an unsaved User awaiting activation.
func (h *FormHandler) pendingUser(email, plaintext string) (*domain.User, error) {
	salt, err := password.NewSalt()
	if err != nil {
		return nil, err
	}
	hash, err := h.hasher.Hash(plaintext, salt)
	if err != nil {
		return nil, err
	}
	token, err := password.NewAuthToken()
	if err != nil {
		return nil, err
	}
	return domain.NewUser(nil, email, hash, salt, token)
}

// Pinger is implemented by backends that can report their own reachability,
// such as the Redis session store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health returns the GET /health handler. Every dependency is pinged on each
// request; the first failure answers 503.
func Health(deps ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, dep := range deps {
			if err := dep.Ping(r.Context()); err != nil {
				logger.FromContextOrDefault(r.Context(), slog.Default()).
					Error("health check failed", slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Unavailable")
				return
			}
		}
		shared.RespondWithText(w, r, http.StatusOK, "OK")
	}
}
