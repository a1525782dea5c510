package capabilities

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

const (
	viewName     = "capabilities"
	gridFragment = "capabilities-grid"
)

// Handlers provides HTTP handlers for the capabilities feature.
type Handlers struct {
	deps common.Deps
	grid *live.ListView[Signals, Capability]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	h := &Handlers{deps: deps}
	h.grid = &live.ListView[Signals, Capability]{
		Name:    viewName,
		Hub:     deps.Hub,
		Fetch:   h.fetch,
		Render:  h.render,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	return h
}

func (h *Handlers) fetch(ctx context.Context) []Capability {
	return Wrap(common.LoadList(ctx, h.deps, "capabilities", h.deps.API.Capabilities, nil))
}

func (h *Handlers) render(_ string, s Signals, items []Capability) templ.Component {
	return h.deps.Renderer.Fragment(viewName, gridFragment, ResultsView{Signals: s, View: Search(items, s)})
}

// CapabilitiesPage renders the capability grid, narrowed by the q query
// parameter.
func (h *Handlers) CapabilitiesPage(w http.ResponseWriter, r *http.Request) {
	signals := Signals{ViewID: live.NewViewID(), Search: r.URL.Query().Get("q")}
	data := ResultsView{Signals: signals, View: Search(h.fetch(r.Context()), signals)}

	page := h.deps.Page(r, "Capabilities", "From preclinical modeling to Phase IV human trials.", data)
	h.deps.Render(w, r, viewName, page)
}
