package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/storefront-kit/internal/api"
	apiMiddleware "github.com/phrazzld/storefront-kit/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	formHandler := api.NewFormHandler(app.guard, app.hasher, "/submit")
	sessions := apiMiddleware.NewSessionMiddleware(app.sessions, apiMiddleware.SessionCookie{
		Name:   app.config.Session.CookieName,
		Secure: app.config.Session.CookieSecure,
		MaxAge: time.Duration(app.config.Session.TTLMinutes) * time.Minute,
	})

	// Session-scoped pages
	r.Group(func(r chi.Router) {
		r.Use(sessions.Handle)
		r.Get("/form", formHandler.Form)
		r.Post("/submit", formHandler.Submit)
	})

	var checks []api.Pinger
	if p, ok := app.sessions.(api.Pinger); ok {
		checks = append(checks, p)
	}
	r.Get("/health", api.Health(checks...))

	return r
}
