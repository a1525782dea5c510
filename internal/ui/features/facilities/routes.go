package facilities

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the facilities feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	deps.Forms.Define(FormName, Options)
	handlers := NewHandlers(deps)

	router.Get("/facilities", handlers.FacilitiesPage)
	router.With(deps.Limit()).Post("/facilities/inquiry", handlers.inquiry.Submit)
	router.Post(resetPath, handlers.inquiry.Reset)

	return nil
}
