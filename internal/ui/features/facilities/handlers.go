package facilities

import (
	"context"
	"net/http"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/fallback"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

const resetPath = "/facilities/inquiry/reset"

// Options are the sponsor inquiry machine's options.
var Options = form.Options{
	SuccessMessage: "Inquiry Received. Our team will review your project needs and contact you shortly.",
	FailureMessage: "We couldn't send your inquiry. Please try again.",
}

// Handlers provides HTTP handlers for the facilities feature.
type Handlers struct {
	deps    common.Deps
	inquiry *common.FormEndpoint[Input]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{
		deps: deps,
		inquiry: &common.FormEndpoint[Input]{
			Name: FormName,
			Deps: deps,
			Send: func(ctx context.Context, in Input) error {
				_, err := deps.API.SubmitSponsorInquiry(ctx, in.Inquiry())
				return err
			},
			Blank:     Blank,
			ResetPath: resetPath,
		},
	}
}

// FacilitiesPage renders the pillars, trust strip and inquiry form. A failed
// fetch leaves the pillars empty under their default headings.
func (h *Handlers) FacilitiesPage(w http.ResponseWriter, r *http.Request) {
	page, _ := fallback.One(r.Context(), h.deps.Loader(), "facilities_page", h.deps.API.FacilitiesPage, content.FacilitiesPage{})

	status := h.deps.FormStatus(r, FormName)
	status.ResetPath = resetPath

	data := PageData{
		Settings:       page.Settings,
		Sections:       BuildSections(page),
		TrustBadges:    Badges(page.TrustBadges),
		SuccessSignals: Badges(page.SuccessSignals),
		Interests:      Interests,
		Stages:         Stages,
		Signals:        map[string]any{FormName: Blank(), FormName + "Submitting": false},
		Status:         status,
	}
	desc := page.Settings.String("hero_subtext_1", "Purpose-built facilities for research, laboratory testing, and biospecimen management.")
	h.deps.Render(w, r, "facilities", h.deps.Page(r, "Facilities", desc, data))
}
