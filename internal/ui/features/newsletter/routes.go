package newsletter

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the newsletter feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	deps.Forms.Define(common.NewsletterForm, Options)
	handlers := NewHandlers(deps)

	router.With(deps.Limit()).Post("/newsletter/subscribe", handlers.submit.Submit)

	return nil
}
