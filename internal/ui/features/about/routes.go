package about

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the about feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)
	router.Get("/about", handlers.AboutPage)
	return nil
}
