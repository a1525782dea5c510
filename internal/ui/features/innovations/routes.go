package innovations

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the innovations feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)

	router.Get("/innovations", handlers.InnovationsPage)
	router.Get("/innovations/{id}", handlers.TechnologyPage)

	return nil
}
