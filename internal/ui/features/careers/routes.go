package careers

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the careers feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	deps.Forms.Define(ApplicationForm, ApplicationOptions)
	handlers := NewHandlers(deps)

	router.Get("/careers", handlers.CareersPage)
	router.Get("/careers/live", handlers.jobs.Stream)
	router.Post("/careers/filter", handlers.jobs.Filter)
	router.With(deps.Limit()).Post("/careers/apply", handlers.apply.Submit)
	router.Get("/careers/{id}", handlers.JobPage)

	return nil
}
