package contact

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// DefaultResetAfter is how long the form shows success before it resets.
const DefaultResetAfter = 5 * time.Second

// Options are the contact form's machine options.
func Options(resetAfter time.Duration) form.Options {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	return form.Options{
		ResetAfter:     resetAfter,
		SuccessMessage: "Message Received. Thank you for contacting MusB™ Research. Our team will review your message and respond shortly.",
		FailureMessage: "We couldn't send your message. Please try again or email info@musbresearch.com.",
	}
}

// Handlers provides HTTP handlers for the contact feature.
type Handlers struct {
	deps   common.Deps
	submit *common.FormEndpoint[Input]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{
		deps: deps,
		submit: &common.FormEndpoint[Input]{
			Name: FormName,
			Deps: deps,
			Send: func(ctx context.Context, in Input) error {
				_, err := deps.API.SubmitContact(ctx, in.Submission())
				return err
			},
			Blank: Blank,
		},
	}
}

// ContactPage renders the contact page. An interest query preselects the
// inquiry type.
func (h *Handlers) ContactPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		settings content.Settings
		types    []content.InquiryType
		g        errgroup.Group
	)
	g.Go(func() error {
		settings = h.deps.Settings(ctx, "contact_settings", h.deps.API.ContactSettings)
		return nil
	})
	g.Go(func() error {
		types = common.LoadList(ctx, h.deps, "inquiry_types", h.deps.API.InquiryTypes, DefaultInquiryTypes)
		return nil
	})
	_ = g.Wait()

	q := r.URL.Query()
	in := Blank()
	in.InquiryType = ResolveInterest(q.Get("interest"), types)
	if study := q.Get("study"); study != "" {
		in.Message = "I would like to learn more about study #" + study + "."
	}

	data := PageData{
		Title:        settings.String("hero_title", "Contact Us"),
		Intro:        settings.String("hero_description", "We’re here to help. Reach out to discuss research collaborations, laboratory services, biorepository support, or participation in our clinical studies."),
		ResponseTime: settings.String("response_time", "Typical response time: 1–2 business days."),
		Types:        types,
		Areas:        Areas,
		Details: Details{
			Address:  settings.String("address", "6331 State Road 54, New Port Richey, FL 34653"),
			MapURL:   settings.String("map_url", "https://www.google.com/maps/search/?api=1&query=6331+State+Road+54,+New+Port+Richey,+FL+34653"),
			Phone:    settings.String("phone", "+1-813-419-0781"),
			Text:     settings.String("text_number", "(727) 505-0452"),
			WhatsApp: settings.String("whatsapp", "17275050452"),
			Email:    settings.String("email", "info@musbresearch.com"),
		},
		Signals: map[string]any{FormName: in, FormName + "Submitting": false},
		Status:  h.deps.FormStatus(r, FormName),
	}
	h.deps.Render(w, r, "contact", h.deps.Page(r, "Contact Us", data.Intro, data))
}
