package csrf

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/storefront-kit/internal/session"
)

const (
	// NameField is the form field carrying the token name.
	NameField = "csrfName"

	// TokenField is the form field carrying the token value.
	TokenField = "csrfToken"

	// keyPrefix namespaces tokens among the other session entries.
	keyPrefix = "csrf:"

	nameBytes  = 16
	tokenBytes = 32
)

var hiddenFieldsTemplate = template.Must(template.New("csrf").Parse(
	`<input type="hidden" name="{{.NameField}}" value="{{.Name}}">` + "\n" +
		`<input type="hidden" name="{{.TokenField}}" value="{{.Token}}">`,
))

// Pair is an issued name/token pair.
type Pair struct {
	Name  string
	Token string
}

// HiddenFields renders the pair as two hidden inputs for embedding in a form.
func (p Pair) HiddenFields() (template.HTML, error) {
	var b strings.Builder
	err := hiddenFieldsTemplate.Execute(&b, struct {
		NameField, Name, TokenField, Token string
	}{NameField, p.Name, TokenField, p.Token})
	if err != nil {
		return "", fmt.Errorf("failed to render CSRF fields: %w", err)
	}
	return template.HTML(b.String()), nil // #nosec G203 -- built by html/template
}

// Guard issues and verifies tokens.
type Guard struct {
	logger *slog.Logger
	random io.Reader
}

// NewGuard creates a Guard. A nil logger falls back to slog.Default.
func NewGuard(logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		logger: logger.With(slog.String("component", "csrf")),
		random: rand.Reader,
	}
}

// Issue generates a fresh pair and stores it in the session. Earlier pairs
// stay valid.
func (g *Guard) Issue(ctx context.Context, values session.Values) (Pair, error) {
	name, err := g.randomHex(nameBytes)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to generate CSRF name: %w", err)
	}
	token, err := g.randomHex(tokenBytes)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to generate CSRF token: %w", err)
	}

	if err := values.Set(ctx, keyPrefix+name, token); err != nil {
		return Pair{}, fmt.Errorf("failed to store CSRF token: %w", err)
	}

	g.logger.DebugContext(ctx, "issued CSRF token", slog.String("csrf_name", name))
	return Pair{Name: name, Token: token}, nil
}

// Verify checks a submitted pair against the session and consumes it on
// success. On failure the session is left unchanged and the error matches
// ErrAuthorizationMismatch, unless the session backend itself failed.
func (g *Guard) Verify(ctx context.Context, sess session.Session, name, token string) error {
	if name == "" {
		return ErrNoSuchContext
	}

	err := sess.Atomic(ctx, func(v session.Values) error {
		stored, err := v.Get(ctx, keyPrefix+name)
		if errors.Is(err, session.ErrKeyNotFound) {
			return ErrNoSuchContext
		}
		if err != nil {
			return fmt.Errorf("failed to read CSRF token: %w", err)
		}

		if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
			return ErrTokenMismatch
		}
		return v.Delete(ctx, keyPrefix+name)
	})
	if err != nil {
		if errors.Is(err, ErrAuthorizationMismatch) {
			g.logger.InfoContext(ctx, "CSRF verification failed",
				slog.String("csrf_name", name),
				slog.String("reason", err.Error()))
		}
		return err
	}

	g.logger.DebugContext(ctx, "verified CSRF token", slog.String("csrf_name", name))
	return nil
}

func (g *Guard) randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
