// Package about provides the about hub page.
package about

import (
	"net/http"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// Options are the cards of the about hub.
var Options = []common.Card{
	{Icon: "layers", Title: "Why Choose MusB Research", Description: "Discover what sets us apart in healthcare research and clinical excellence.", CTALink: "/why-choose-us", Color: "purple"},
	{Icon: "microscope", Title: "Facilities", Description: "Explore our state-of-the-art research facilities and infrastructure.", CTALink: "/facilities", Color: "indigo"},
	{Icon: "graduation-cap", Title: "Our Team", Description: "Meet the world-class scientists and experts leading our research.", CTALink: "/team", Color: "violet"},
	{Icon: "activity", Title: "Find a Study", Description: "Join a clinical research study and contribute to advancing health science.", CTALink: "/trials", Color: "purple"},
}

// Handlers provides HTTP handlers for the about feature.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// AboutPage renders the about hub.
func (h *Handlers) AboutPage(w http.ResponseWriter, r *http.Request) {
	page := h.deps.Page(r, "About Us", "Explore our research capabilities, facilities, team, and opportunities to participate in clinical studies.", Options)
	h.deps.Render(w, r, "about", page)
}
