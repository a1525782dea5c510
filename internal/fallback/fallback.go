// Package fallback substitutes static defaults for collections the backend
// could not supply, and records every substitution.
package fallback

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/musbsite/internal/metrics"
)

// Result is the outcome of a read: the items to render, the fetch error if
// any, and whether the items are the static default.
type Result[T any] struct {
	Items       []T
	Err         error
	Substituted bool
}

// Failed reports whether the fetch itself failed.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Loader performs substitutions with shared logging and metrics.
type Loader struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Fetch is a read against the backend.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Load runs fetch. When it fails, or returns nothing while def is non-empty,
// def is substituted. A failed fetch with an empty default yields no items.
func Load[T any](ctx context.Context, l Loader, collection string, fetch Fetch[T], def []T) Result[T] {
	items, err := fetch(ctx)
	switch {
	case err != nil:
		l.substitute(collection, err, len(def))
		return Result[T]{Items: clone(def), Err: err, Substituted: len(def) > 0}
	case len(items) == 0 && len(def) > 0:
		l.substitute(collection, nil, len(def))
		return Result[T]{Items: clone(def), Substituted: true}
	default:
		return Result[T]{Items: items}
	}
}

// One runs a single-record fetch. A failure yields def.
func One[T any](ctx context.Context, l Loader, collection string, fetch func(context.Context) (T, error), def T) (T, error) {
	v, err := fetch(ctx)
	if err != nil {
		l.substitute(collection, err, 1)
		return def, err
	}
	return v, nil
}

func (l Loader) substitute(collection string, err error, n int) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err != nil {
		logger.Warn("content fetch failed, using default",
			"collection", collection,
			"defaults", n,
			"error", err,
		)
	} else {
		logger.Warn("content fetch empty, using default",
			"collection", collection,
			"defaults", n,
		)
	}
	l.Metrics.ObserveFallback(collection)
}

func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append([]T(nil), s...)
}
