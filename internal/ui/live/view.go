package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/starfederation/datastar-go/datastar"
)

// ErrNoViewID is returned when the request signals carry no view ID.
var ErrNoViewID = errors.New("missing viewId signal")

// NewViewID returns a fresh ID for a mounted view.
func NewViewID() string {
	return uuid.NewString()
}

// ViewSignals are the signals every live view carries.
type ViewSignals struct {
	ViewID string `json:"viewId"`
}

// ListView serves the live stream and filter endpoints of one list view.
// S is the view's filter signal struct and T its record type.
//
// Datastar posts every signal on the page, so a view's signals live under
// its Name: {"trials": {"viewId": "...", "condition": "Gut"}}.
type ListView[S, T any] struct {
	Name string
	Hub  *Hub

	// Fetch loads the collection. Failures are absorbed by the caller's
	// fallback rules, so Fetch returns the items to show.
	Fetch func(ctx context.Context) []T

	// Render returns the results fragment for the current filters.
	Render func(viewID string, signals S, items []T) templ.Component

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// ReadScoped reads the request signals and returns the object under scope.
func ReadScoped(r *http.Request, scope string) (json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := datastar.ReadSignals(r, &all); err != nil {
		return nil, fmt.Errorf("failed to read signals: %w", err)
	}
	return all[scope], nil
}

// readSignals returns the view's scoped signals and the view ID they carry.
func readSignals(r *http.Request, scope string) (json.RawMessage, string, error) {
	raw, err := ReadScoped(r, scope)
	if err != nil {
		return nil, "", err
	}
	var vs ViewSignals
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &vs); err != nil {
			return nil, "", fmt.Errorf("failed to decode %s signals: %w", scope, err)
		}
	}
	return raw, vs.ViewID, nil
}

func decode[S any](raw json.RawMessage) (S, error) {
	var s S
	if len(raw) == 0 {
		return s, nil
	}
	err := json.Unmarshal(raw, &s)
	return s, err
}

func (v *ListView[S, T]) logger() *slog.Logger {
	if v.Logger == nil {
		return slog.Default()
	}
	return v.Logger
}

// Stream is the long-lived SSE endpoint for a mounted view. The collection
// is fetched on the first update and held until the stream closes.
func (v *ListView[S, T]) Stream(w http.ResponseWriter, r *http.Request) {
	raw, id, err := readSignals(r, v.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if id == "" {
		http.Error(w, ErrNoViewID.Error(), http.StatusBadRequest)
		return
	}

	events, detach := v.Hub.Attach(id)
	defer detach()

	sse := datastar.NewSSE(w, r)
	ctx := r.Context()
	log := v.logger().With("view", v.Name, "view_id", id)
	log.Debug("live view attached")

	var (
		items  []T
		loaded bool
		last   = raw
	)
	for {
		select {
		case <-ctx.Done():
			log.Debug("live view detached")
			return
		case ev, ok := <-events:
			if !ok {
				// replaced by a newer stream for the same view
				return
			}
			if ev.Signals != nil {
				last = ev.Signals
			}
			if !loaded {
				items = v.Fetch(ctx)
				if ctx.Err() != nil {
					v.Metrics.ObserveLateUpdate()
					return
				}
				loaded = true
			}

			signals, err := decode[S](last)
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.PatchElementTempl(v.Render(id, signals, items)); err != nil {
				log.Debug("live patch failed", "error", err)
				return
			}
		}
	}
}

// Filter receives the current filter signals. It hands them to the view's
// stream when one is attached. Otherwise it fetches and patches the results
// itself.
func (v *ListView[S, T]) Filter(w http.ResponseWriter, r *http.Request) {
	raw, id, err := readSignals(r, v.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if id != "" && v.Hub.Deliver(id, Event{Signals: raw}) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	signals, err := decode[S](raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	items := v.Fetch(r.Context())
	if r.Context().Err() != nil {
		v.Metrics.ObserveLateUpdate()
		return
	}
	if err := sse.PatchElementTempl(v.Render(id, signals, items)); err != nil {
		_ = sse.ConsoleError(err)
	}
}
