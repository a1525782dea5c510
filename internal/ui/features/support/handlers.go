package support

import (
	"net/http"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the support feature.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// SupportPage renders the page for sponsors and partners.
func (h *Handlers) SupportPage(w http.ResponseWriter, r *http.Request) {
	settings := h.deps.Settings(r.Context(), "support_settings", h.deps.API.SupportSettings)
	page := h.deps.Page(r, "For Businesses", "Research, central laboratory, and biorepository support for sponsors and partners.", NewPageData(settings))
	h.deps.Render(w, r, "support", page)
}
