package trials

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the trials feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	deps.Forms.Define(MatchForm, MatchOptions)
	handlers := NewHandlers(deps)

	router.Get("/trials", handlers.TrialsPage)
	router.Get("/trials/live", handlers.studies.Stream)
	router.Post("/trials/filter", handlers.studies.Filter)
	router.Get("/trials/finder/live", handlers.finder.Stream)
	router.Post("/trials/finder/filter", handlers.finder.Filter)
	router.With(deps.Limit()).Post("/trials/match", handlers.match.Submit)

	return nil
}
