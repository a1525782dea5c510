package team

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the team feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)

	router.Get("/team", handlers.TeamPage)
	router.Get("/team/live", handlers.staff.Stream)
	router.Post("/team/filter", handlers.staff.Filter)

	return nil
}
