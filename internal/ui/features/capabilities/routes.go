package capabilities

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the capabilities feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)

	router.Get("/capabilities", handlers.CapabilitiesPage)
	router.Get("/capabilities/live", handlers.grid.Stream)
	router.Post("/capabilities/filter", handlers.grid.Filter)

	return nil
}
