// Package newsletter provides the newsletter signup shared by the footer and
// the news page.
package newsletter

import (
	"context"
	"strings"

	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// Input is the signup form's fields.
type Input struct {
	Email string `json:"email" validate:"required,email"`
}

// Options are the signup machine's options. A success stays until the
// registry forgets the visitor, so the form is not offered again.
var Options = form.Options{
	SuccessMessage: "You're subscribed. Thank you!",
	FailureMessage: "Failed to subscribe. Please try again.",
}

// Handlers provides HTTP handlers for the newsletter feature.
type Handlers struct {
	submit *common.FormEndpoint[Input]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{
		submit: &common.FormEndpoint[Input]{
			Name: common.NewsletterForm,
			Deps: deps,
			Send: func(ctx context.Context, in Input) error {
				_, err := deps.API.SubscribeNewsletter(ctx, strings.TrimSpace(in.Email))
				return err
			},
		},
	}
}
