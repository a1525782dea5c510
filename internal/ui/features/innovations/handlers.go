package innovations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the innovations feature.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// InnovationsPage renders the innovation page and the technology showcase.
func (h *Handlers) InnovationsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	techs := common.LoadList(ctx, h.deps, "technologies", h.deps.API.Technologies, DefaultTechnologies)

	data := PageData{
		Settings:    h.deps.Settings(ctx, "innovation_settings", h.deps.API.InnovationSettings),
		Supports:    Supports,
		Differences: Differences,
		Steps:       Steps,
		IdealFor:    IdealFor,
		TrustPoints: TrustPoints,
	}
	for _, t := range techs {
		data.Technologies = append(data.Technologies, NewShowcase(t))
	}

	page := h.deps.Page(r, "Innovations", "Partner with MusB™ Research to design and execute rigorous research and access proprietary microbiome technologies.", data)
	h.deps.Render(w, r, "innovations", page)
}

// TechnologyPage renders one technology. A technology the backend does not
// know is looked up in the defaults before the page reports it missing.
func (h *Handlers) TechnologyPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tech, err := h.deps.API.TechnologyDetail(r.Context(), id)
	if err != nil {
		if !api.IsNotFound(err) {
			h.deps.Log().Warn("technology fetch failed", "id", id, "error", err)
		}
		def, ok := listing.Find(DefaultTechnologies, func(t content.Technology) bool { return t.ID.String() == id })
		if !ok {
			h.deps.RenderNotFound(w, r, common.NotFound{
				Heading:   "Technology Not Found",
				Message:   "The technology you are looking for might have been moved.",
				BackHref:  "/innovations",
				BackLabel: "Back to Innovations",
			})
			return
		}
		tech = def
	}

	data := DetailData{Tech: NewShowcase(tech)}
	h.deps.Render(w, r, "technology", h.deps.Page(r, tech.Name, tech.Tagline, data))
}
