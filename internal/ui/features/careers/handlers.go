package careers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

const (
	viewName     = "careers"
	jobsFragment = "careers-jobs"
)

// ApplicationOptions are the application machine's options.
var ApplicationOptions = form.Options{
	SuccessMessage: "Application received. Thank you for your interest in MusB™ Research. Our recruitment team will be in touch.",
	FailureMessage: "We couldn't submit your application. Please try again or email careers@musbresearch.com.",
}

// Handlers provides HTTP handlers for the careers feature.
type Handlers struct {
	deps  common.Deps
	jobs  *live.ListView[JobSignals, content.JobOpening]
	apply *common.FormEndpoint[Application]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	h := &Handlers{deps: deps}
	h.jobs = &live.ListView[JobSignals, content.JobOpening]{
		Name:    viewName,
		Hub:     deps.Hub,
		Fetch:   h.fetchJobs,
		Render:  h.renderJobs,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	h.apply = &common.FormEndpoint[Application]{
		Name:     ApplicationForm,
		Deps:     deps,
		Decode:   DecodeApplication,
		MaxBytes: MaxApplicationSize,
		Send: func(ctx context.Context, a Application) error {
			_, err := deps.API.SubmitJobApplication(ctx, a.Request())
			return err
		},
	}
	return h
}

// DecodeApplication reads a multipart application post. The resume part is
// optional. A resume over MaxResumeSize, or a body the endpoint cut off,
// yields a *form.ValidationError on the resume field.
func DecodeApplication(r *http.Request) (Application, error) {
	var a Application
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return a, resumeTooLarge()
		}
		return a, fmt.Errorf("failed to parse application: %w", err)
	}
	a.JobID = r.FormValue("job")
	a.Name = r.FormValue("name")
	a.Email = r.FormValue("email")
	a.Phone = r.FormValue("phone")
	a.CoverLetter = r.FormValue("coverLetter")

	f, hdr, err := r.FormFile("resume")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return a, nil
	case err != nil:
		return a, fmt.Errorf("failed to read resume: %w", err)
	}
	defer f.Close()

	if hdr.Size > MaxResumeSize {
		return a, resumeTooLarge()
	}
	data, err := io.ReadAll(io.LimitReader(f, MaxResumeSize+1))
	if err != nil {
		return a, fmt.Errorf("failed to read resume: %w", err)
	}
	if len(data) > MaxResumeSize {
		return a, resumeTooLarge()
	}
	a.Resume = &Resume{Name: hdr.Filename, ContentType: hdr.Header.Get("Content-Type"), Data: data}
	return a, nil
}

func resumeTooLarge() error {
	return &form.ValidationError{Fields: map[string]string{"resume": ResumeTooLarge}}
}

func (h *Handlers) fetchJobs(ctx context.Context) []content.JobOpening {
	return common.LoadList(ctx, h.deps, "jobs", func(ctx context.Context) ([]content.JobOpening, error) {
		return h.deps.API.JobOpenings(ctx, api.JobQuery{})
	}, nil)
}

func (h *Handlers) renderJobs(_ string, s JobSignals, items []content.JobOpening) templ.Component {
	return h.deps.Renderer.Fragment(viewName, jobsFragment, JobsView{Signals: s, View: FilterJobs(items, s)})
}

// CareersPage renders the careers page. The department and q query
// parameters set the initial filters.
func (h *Handlers) CareersPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		jobs       []content.JobOpening
		categories []content.CareerCategory
		g          errgroup.Group
	)
	g.Go(func() error {
		jobs = h.fetchJobs(ctx)
		return nil
	})
	g.Go(func() error {
		categories = common.LoadList(ctx, h.deps, "career_categories", h.deps.API.CareerCategories, nil)
		return nil
	})
	_ = g.Wait()

	q := r.URL.Query()
	signals := JobSignals{ViewID: live.NewViewID(), Department: q.Get("department"), Search: q.Get("q")}
	if signals.Department == "" {
		signals.Department = listing.All
	}

	data := PageData{
		Jobs:        JobsView{Signals: signals, Departments: Departments(jobs), View: FilterJobs(jobs, signals)},
		Categories:  Categories(categories),
		Benefits:    Benefits,
		Values:      CultureValues,
		HiringSteps: HiringSteps,
	}
	page := h.deps.Page(r, "Careers", "Join a mission-driven research organization advancing microbiome, aging, metabolic, and clinical science.", data)
	h.deps.Render(w, r, "careers", page)
}

// JobPage renders one opening with its application form. The opening is
// looked up in the list; the detail endpoint covers openings the list
// leaves out.
func (h *Handlers) JobPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	job, ok := listing.Find(h.fetchJobs(ctx), func(j content.JobOpening) bool { return j.ID.String() == id })
	if !ok {
		detail, err := h.deps.API.JobDetail(ctx, id)
		if err != nil {
			if !api.IsNotFound(err) {
				h.deps.Log().Warn("job fetch failed", "id", id, "error", err)
			}
			h.deps.RenderNotFound(w, r, common.NotFound{
				Heading:   "Job Not Found",
				Message:   "The position you are looking for might have been closed or moved.",
				BackHref:  "/careers",
				BackLabel: "Back to Careers",
			})
			return
		}
		job = detail
	}

	data := JobData{Job: job, Status: h.deps.FormStatus(r, ApplicationForm)}
	h.deps.Render(w, r, "job", h.deps.Page(r, job.Title, job.Summary, data))
}
