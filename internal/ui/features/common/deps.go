// Package common provides the dependencies and helpers shared by every
// feature package.
package common

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/fallback"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
	"github.com/leapstack-labs/musbsite/internal/ui/render"
)

// Deps holds everything a feature needs to serve its routes.
type Deps struct {
	API      *api.Client
	Renderer *render.Renderer
	Sessions sessions.Store
	Hub      *live.Hub
	Forms    *form.Registry
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Dev      bool

	// ContactResetAfter is how long the contact form shows success.
	ContactResetAfter time.Duration

	// FormLimit rate limits form submissions. Nil disables limiting.
	FormLimit func(http.Handler) http.Handler
}

// Loader returns the fallback loader bound to the shared logger and metrics.
func (d Deps) Loader() fallback.Loader {
	return fallback.Loader{Logger: d.Logger, Metrics: d.Metrics}
}

// Limit returns the form rate limiter, or a pass-through.
func (d Deps) Limit() func(http.Handler) http.Handler {
	if d.FormLimit == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return d.FormLimit
}

// Settings loads a singleton settings object. Failures yield empty settings,
// whose accessors return per-key defaults.
func (d Deps) Settings(ctx context.Context, name string, fetch func(context.Context) (content.Settings, error)) content.Settings {
	s, _ := fallback.One(ctx, d.Loader(), name, fetch, content.Settings{})
	return s
}

// LoadList loads a collection through the fallback rules.
func LoadList[T any](ctx context.Context, d Deps, collection string, fetch fallback.Fetch[T], def []T) []T {
	return fallback.Load(ctx, d.Loader(), collection, fetch, def).Items
}

// Log returns the shared logger, or the default one.
func (d Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
