package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/storefront-kit/internal/config"
	"github.com/phrazzld/storefront-kit/internal/csrf"
	"github.com/phrazzld/storefront-kit/internal/password"
	"github.com/phrazzld/storefront-kit/internal/platform/redis"
	"github.com/phrazzld/storefront-kit/internal/redact"
	"github.com/phrazzld/storefront-kit/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	sessions session.Store
	guard    *csrf.Guard
	hasher   *password.Hasher
}

// newApplication creates a new application instance with all dependencies
// initialized. The session backend is chosen by cfg.Session.Backend.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		guard:  csrf.NewGuard(logger),
		hasher: password.NewHasher(cfg.Auth.PBKDF2Iterations),
	}

	var err error
	app.sessions, err = newSessionStore(ctx, cfg.Session, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully",
		"session_backend", cfg.Session.Backend,
		"session_ttl_minutes", cfg.Session.TTLMinutes)
	return app, nil
}

func newSessionStore(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (session.Store, error) {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute

	switch cfg.Backend {
	case "redis":
		store, err := redis.NewSessionStoreFromURL(ctx, cfg.RedisURL, ttl,
			logger.With("component", "redis_session_store"))
		if err != nil {
			return nil, fmt.Errorf("failed to open redis session store at %s: %w",
				redact.String(cfg.RedisURL), err)
		}
		return store, nil
	case "memory", "":
		return session.NewMemoryStore(ttl), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.sessions != nil {
		if err := app.sessions.Close(); err != nil {
			app.logger.Error("Error closing session store", "error", redact.Error(err))
		}
	}
}
