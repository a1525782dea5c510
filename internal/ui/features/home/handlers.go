package home

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

const (
	viewName        = "home"
	studiesFragment = "home-studies"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	deps    common.Deps
	studies *live.ListView[StudySignals, content.Study]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	h := &Handlers{deps: deps}
	h.studies = &live.ListView[StudySignals, content.Study]{
		Name:    viewName,
		Hub:     deps.Hub,
		Fetch:   h.fetchStudies,
		Render:  h.renderStudies,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	return h
}

// FilterStudies applies the section's condition filter.
func FilterStudies(items []content.Study, s StudySignals) listing.View[content.Study] {
	return listing.Slice(items, StudyLimit,
		listing.Equals(s.Condition, func(x content.Study) string { return x.Condition }),
	)
}

func (h *Handlers) fetchStudies(ctx context.Context) []content.Study {
	return common.LoadList(ctx, h.deps, "studies", func(ctx context.Context) ([]content.Study, error) {
		return h.deps.API.Studies(ctx, api.StudyQuery{})
	}, nil)
}

func (h *Handlers) renderStudies(_ string, s StudySignals, items []content.Study) templ.Component {
	view := StudiesView{Signals: s, Conditions: StudyConditions, View: FilterStudies(items, s)}
	return h.deps.Renderer.Fragment(viewName, studiesFragment, view)
}

// HomePage renders the landing page. Its sections load concurrently and
// each falls back on its own.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		data    PageData
		studies []content.Study
		g       errgroup.Group
	)

	g.Go(func() error {
		data.Settings = h.deps.Settings(ctx, "home_settings", h.deps.API.HomeSettings)
		return nil
	})
	g.Go(func() error {
		studies = h.fetchStudies(ctx)
		return nil
	})
	g.Go(func() error {
		caps := common.LoadList(ctx, h.deps, "capabilities", h.deps.API.Capabilities, nil)
		data.Capabilities = listing.Truncate(caps, CapabilityLimit)
		return nil
	})
	g.Go(func() error {
		data.Facilities = common.LoadList(ctx, h.deps, "facilities", h.deps.API.Facilities, nil)
		return nil
	})
	g.Go(func() error {
		data.Certifications = common.LoadList(ctx, h.deps, "certifications", h.deps.API.Certifications, nil)
		return nil
	})
	g.Go(func() error {
		data.Partners = common.LoadList(ctx, h.deps, "partners", func(ctx context.Context) ([]content.Partner, error) {
			return h.deps.API.Partners(ctx, "")
		}, nil)
		return nil
	})
	_ = g.Wait()

	data.Slides = slidesFrom(data.Settings)
	data.Services = common.Cards(data.Settings, "services", common.ServiceCards)

	signals := StudySignals{ViewID: live.NewViewID(), Condition: r.URL.Query().Get("condition")}
	if signals.Condition == "" {
		signals.Condition = listing.All
	}
	data.Studies = StudiesView{Signals: signals, Conditions: StudyConditions, View: FilterStudies(studies, signals)}

	page := h.deps.Page(r, "", "Clinical research, central laboratory and biorepository services from discovery to human studies.", data)
	h.deps.Render(w, r, "home", page)
}
