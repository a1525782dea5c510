package contact

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the contact feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	deps.Forms.Define(FormName, Options(deps.ContactResetAfter))
	handlers := NewHandlers(deps)

	router.Get("/contact", handlers.ContactPage)
	router.With(deps.Limit()).Post("/contact/submit", handlers.submit.Submit)

	return nil
}
