package team

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

const (
	viewName      = "team"
	staffFragment = "team-staff"
)

// Handlers provides HTTP handlers for the team feature.
type Handlers struct {
	deps  common.Deps
	staff *live.ListView[StaffSignals, content.StaffMember]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	h := &Handlers{deps: deps}
	h.staff = &live.ListView[StaffSignals, content.StaffMember]{
		Name:    viewName,
		Hub:     deps.Hub,
		Fetch:   h.fetchStaff,
		Render:  h.renderStaff,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	return h
}

func (h *Handlers) fetchStaff(ctx context.Context) []content.StaffMember {
	return common.LoadList(ctx, h.deps, "team_staff", h.deps.API.StaffMembers, nil)
}

func (h *Handlers) renderStaff(_ string, s StaffSignals, staff []content.StaffMember) templ.Component {
	return h.deps.Renderer.Fragment(viewName, staffFragment, FilterStaff(staff, s))
}

// TeamPage renders every team section. The sections load concurrently.
func (h *Handlers) TeamPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		data  PageData
		staff []content.StaffMember
		g     errgroup.Group
	)
	g.Go(func() error {
		data.Members = common.LoadList(ctx, h.deps, "team_members", h.deps.API.TeamMembers, nil)
		return nil
	})
	g.Go(func() error {
		data.Advisors = common.LoadList(ctx, h.deps, "team_advisors", h.deps.API.Advisors, nil)
		return nil
	})
	g.Go(func() error {
		data.Collaborators = common.LoadList(ctx, h.deps, "team_collaborators", h.deps.API.Collaborators, nil)
		return nil
	})
	g.Go(func() error {
		data.Sponsors = common.LoadList(ctx, h.deps, "partners", func(ctx context.Context) ([]content.Partner, error) {
			return h.deps.API.Partners(ctx, "")
		}, nil)
		return nil
	})
	g.Go(func() error {
		staff = h.fetchStaff(ctx)
		return nil
	})
	_ = g.Wait()

	signals := StaffSignals{ViewID: live.NewViewID(), Department: r.URL.Query().Get("department")}
	if signals.Department == "" {
		signals.Department = listing.All
	}
	data.Staff = FilterStaff(staff, signals)

	page := h.deps.Page(r, "Our Team", "A multidisciplinary team of scientists, clinicians, and professionals dedicated to advancing translational and clinical research.", data)
	h.deps.Render(w, r, "team", page)
}
