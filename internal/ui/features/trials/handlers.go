package trials

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

const (
	pageName        = "trials"
	viewName        = "trials"
	finderName      = "finder"
	resultsFragment = "trials-results"
	finderFragment  = "trials-finder"
)

// MatchOptions are the study match machine's options.
var MatchOptions = form.Options{
	SuccessMessage: "Successfully submitted! Our team will match you with a study and be in touch.",
	FailureMessage: "Failed to submit. Please try again.",
}

// Handlers provides HTTP handlers for the trials feature.
type Handlers struct {
	deps    common.Deps
	studies *live.ListView[StudySignals, content.Study]
	finder  *live.ListView[FinderSignals, content.Study]
	match   *common.FormEndpoint[MatchInput]
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
	h.finder = &live.ListView[FinderSignals, content.Study]{
		Name:    finderName,
		Hub:     deps.Hub,
		Fetch:   h.fetchStudies,
		Render:  h.renderFinder,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	h.match = &common.FormEndpoint[MatchInput]{
		Name: MatchForm,
		Deps: deps,
		Send: func(ctx context.Context, in MatchInput) error {
			_, err := deps.API.SubmitContact(ctx, in.Submission())
			return err
		},
		Blank: blankMatch,
	}
	return h
}

func blankMatch() MatchInput { return MatchInput{Interests: []string{}} }

func (h *Handlers) fetchStudies(ctx context.Context) []content.Study {
	return common.LoadList(ctx, h.deps, "studies", func(ctx context.Context) ([]content.Study, error) {
		return h.deps.API.Studies(ctx, api.StudyQuery{})
	}, nil)
}

func (h *Handlers) renderStudies(_ string, s StudySignals, items []content.Study) templ.Component {
	return h.deps.Renderer.Fragment(pageName, resultsFragment, h.studiesView(s, items))
}

func (h *Handlers) renderFinder(_ string, s FinderSignals, items []content.Study) templ.Component {
	return h.deps.Renderer.Fragment(pageName, finderFragment, h.finderView(s, items))
}

func (h *Handlers) studiesView(s StudySignals, items []content.Study) StudiesView {
	return StudiesView{Signals: s, Conditions: Conditions, Types: Types, View: FilterStudies(items, s)}
}

func (h *Handlers) finderView(s FinderSignals, items []content.Study) FinderView {
	return FinderView{Signals: s, Conditions: FinderConditions, View: FindStudies(items, s)}
}

func orAll(v string) string {
	if v == "" {
		return listing.All
	}
	return v
}

// TrialsPage renders the finder and the full list from one fetch. The
// list's filters are read from the condition, type and q query parameters.
func (h *Handlers) TrialsPage(w http.ResponseWriter, r *http.Request) {
	items := h.fetchStudies(r.Context())

	q := r.URL.Query()
	studySignals := StudySignals{
		ViewID:    live.NewViewID(),
		Condition: orAll(q.Get("condition")),
		Type:      orAll(q.Get("type")),
		Search:    q.Get("q"),
	}
	finderSignals := FinderSignals{ViewID: live.NewViewID(), Condition: listing.All}

	data := PageData{
		Finder:  h.finderView(finderSignals, items),
		Studies: h.studiesView(studySignals, items),
		Steps:   Steps,
		FAQs:    FAQs,
		Match: MatchData{
			AgeRanges:     AgeRanges,
			Interests:     Interests,
			Participation: Participation,
			Signals: map[string]any{
				MatchForm:                blankMatch(),
				MatchForm + "Submitting": false,
			},
			Status: h.deps.FormStatus(r, MatchForm),
		},
	}
	page := h.deps.Page(r, "Clinical Trials", "Join a study and help advance natural health science.", data)
	h.deps.Render(w, r, pageName, page)
}
