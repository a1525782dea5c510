package news

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
	"github.com/leapstack-labs/musbsite/internal/ui/render"
)

const (
	viewName     = "news"
	feedFragment = "news-feed"
)

// Handlers provides HTTP handlers for the news feature.
type Handlers struct {
	deps common.Deps
	feed *live.ListView[FeedSignals, content.NewsItem]
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	h := &Handlers{deps: deps}
	h.feed = &live.ListView[FeedSignals, content.NewsItem]{
		Name:    viewName,
		Hub:     deps.Hub,
		Fetch:   h.fetchNews,
		Render:  h.renderFeed,
		Logger:  deps.Logger,
		Metrics: deps.Metrics,
	}
	return h
}

func (h *Handlers) fetchNews(ctx context.Context) []content.NewsItem {
	return common.LoadList(ctx, h.deps, "news", func(ctx context.Context) ([]content.NewsItem, error) {
		return h.deps.API.News(ctx, api.NewsQuery{})
	}, nil)
}

func (h *Handlers) renderFeed(_ string, s FeedSignals, items []content.NewsItem) templ.Component {
	return h.deps.Renderer.Fragment(viewName, feedFragment, BuildFeed(items, s))
}

// NewsPage renders the feed. The type, q and view query parameters set the
// initial filters.
func (h *Handlers) NewsPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	signals := FeedSignals{
		ViewID: live.NewViewID(),
		Type:   q.Get("type"),
		Search: q.Get("q"),
		Mode:   ModeGrid,
	}
	if signals.Type == "" {
		signals.Type = listing.All
	}
	if q.Get("view") == ModeCalendar {
		signals.Mode = ModeCalendar
	}

	feed := BuildFeed(h.fetchNews(r.Context()), signals)
	page := h.deps.Page(r, "News & Events", "Stay updated on MusB™ Research's latest scientific advances, publications, partnerships, and educational resources.", feed)
	h.deps.Render(w, r, "news", page)
}

// ArticlePage renders one news item.
func (h *Handlers) ArticlePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.deps.API.NewsDetail(r.Context(), id)
	if err != nil {
		if !api.IsNotFound(err) {
			h.deps.Log().Warn("news fetch failed", "id", id, "error", err)
		}
		h.deps.RenderNotFound(w, r, common.NotFound{
			Heading:   "Article Not Found",
			Message:   "The story you are looking for might have been moved or unpublished.",
			BackHref:  "/news",
			BackLabel: "Back to News",
		})
		return
	}

	desc := item.Excerpt
	if desc == "" {
		desc = render.Excerpt(160, item.Content)
	}
	data := DetailData{Item: item, Event: Event{item}, Icon: TypeIcon(item.Type)}
	h.deps.Render(w, r, "news-article", h.deps.Page(r, item.Title, desc, data))
}
