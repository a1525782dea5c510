// Package live routes filter updates to the SSE stream that owns a mounted
// list view.
//
// A full page render assigns the view an ID. The page's long-lived stream
// attaches under that ID, and filter POSTs for the view are delivered to it.
// Each view keeps only the most recent pending update.
package live

import (
	"encoding/json"
	"sync"
)

// Event is one update for a view. A nil Signals asks the view to re-render
// with the signals it last saw.
type Event struct {
	Signals json.RawMessage
}

// Hub tracks the attached views.
type Hub struct {
	mu    sync.Mutex
	views map[string]chan Event
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{views: make(map[string]chan Event)}
}

// Attach registers a stream for the view and returns its event channel.
// Attaching an ID that is already attached closes the previous channel, so
// a reconnecting browser replaces its old stream. The returned detach func
// must be called when the stream ends.
func (h *Hub) Attach(id string) (<-chan Event, func()) {
	ch := make(chan Event, 1)

	h.mu.Lock()
	if old, ok := h.views[id]; ok {
		close(old)
	}
	h.views[id] = ch
	h.mu.Unlock()

	var once sync.Once
	detach := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if cur, ok := h.views[id]; ok && cur == ch {
				delete(h.views, id)
				close(ch)
			}
		})
	}
	return ch, detach
}

// Deliver hands ev to the view's stream, replacing any update it has not
// consumed yet. It reports false when no stream is attached.
func (h *Hub) Deliver(id string, ev Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.views[id]
	if !ok {
		return false
	}
	select {
	case ch <- ev:
	default:
		// drop the stale update, latest wins
		select {
		case <-ch:
		default:
		}
		ch <- ev
	}
	return true
}

// Broadcast asks every attached view to re-render. Views with a pending
// update keep it.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.views {
		select {
		case ch <- Event{}:
		default:
		}
	}
}

// Attached reports whether a stream is attached for id.
func (h *Hub) Attached(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.views[id]
	return ok
}

// Len returns the number of attached views.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.views)
}
