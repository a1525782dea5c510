package whychooseus

import (
	"net/http"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the why choose us feature.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// WhyChooseUsPage renders the page from the about settings.
func (h *Handlers) WhyChooseUsPage(w http.ResponseWriter, r *http.Request) {
	settings := h.deps.Settings(r.Context(), "about_settings", h.deps.API.AboutSettings)
	data := NewPageData(settings)
	page := h.deps.Page(r, "Why Choose Us", data.HeroDesc, data)
	h.deps.Render(w, r, "why-choose-us", page)
}
