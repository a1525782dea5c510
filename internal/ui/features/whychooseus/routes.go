package whychooseus

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the why choose us feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)
	router.Get("/why-choose-us", handlers.WhyChooseUsPage)
	return nil
}
