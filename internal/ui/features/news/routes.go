package news

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// SetupRoutes configures routes for the news feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)

	router.Get("/news", handlers.NewsPage)
	router.Get("/news/live", handlers.feed.Stream)
	router.Post("/news/filter", handlers.feed.Filter)
	router.Get("/news/{id}", handlers.ArticlePage)

	return nil
}
