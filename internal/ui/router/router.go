// Package router sets up HTTP routes for the site.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	aboutFeature "github.com/leapstack-labs/musbsite/internal/ui/features/about"
	capabilitiesFeature "github.com/leapstack-labs/musbsite/internal/ui/features/capabilities"
	careersFeature "github.com/leapstack-labs/musbsite/internal/ui/features/careers"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	contactFeature "github.com/leapstack-labs/musbsite/internal/ui/features/contact"
	facilitiesFeature "github.com/leapstack-labs/musbsite/internal/ui/features/facilities"
	homeFeature "github.com/leapstack-labs/musbsite/internal/ui/features/home"
	innovationsFeature "github.com/leapstack-labs/musbsite/internal/ui/features/innovations"
	newsFeature "github.com/leapstack-labs/musbsite/internal/ui/features/news"
	newsletterFeature "github.com/leapstack-labs/musbsite/internal/ui/features/newsletter"
	supportFeature "github.com/leapstack-labs/musbsite/internal/ui/features/support"
	teamFeature "github.com/leapstack-labs/musbsite/internal/ui/features/team"
	trialsFeature "github.com/leapstack-labs/musbsite/internal/ui/features/trials"
	whyFeature "github.com/leapstack-labs/musbsite/internal/ui/features/whychooseus"
	"github.com/leapstack-labs/musbsite/internal/ui/resources"
)

// Reloader is the handle the dev server uses to refresh open browsers.
type Reloader struct {
	ch chan struct{}
}

// NewReloader creates a reloader.
func NewReloader() *Reloader {
	return &Reloader{ch: make(chan struct{}, 1)}
}

// Trigger asks one waiting /reload stream to reload its page. Repeated
// triggers before a stream picks them up collapse into one.
func (rl *Reloader) Trigger() {
	select {
	case rl.ch <- struct{}{}:
	default:
	}
}

var featureRoutes = []func(chi.Router, common.Deps) error{
	homeFeature.SetupRoutes,
	aboutFeature.SetupRoutes,
	whyFeature.SetupRoutes,
	teamFeature.SetupRoutes,
	supportFeature.SetupRoutes,
	contactFeature.SetupRoutes,
	newsletterFeature.SetupRoutes,
	innovationsFeature.SetupRoutes,
	newsFeature.SetupRoutes,
	careersFeature.SetupRoutes,
	facilitiesFeature.SetupRoutes,
	trialsFeature.SetupRoutes,
	capabilitiesFeature.SetupRoutes,
}

// SetupRoutes configures all routes of the site. reload may be nil outside
// dev mode.
func SetupRoutes(router chi.Router, deps common.Deps, reload *Reloader) error {
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics.Handler())
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Hot reload endpoint for dev mode
	if deps.Dev {
		if reload == nil {
			reload = NewReloader()
		}
		setupReload(router, reload)
	}

	// Pages carry the visitor session, assets and probes do not.
	var routeErr error
	router.Group(func(r chi.Router) {
		r.Use(common.VisitorMiddleware(deps.Sessions, deps.Logger))
		for _, setup := range featureRoutes {
			if err := setup(r, deps); err != nil {
				routeErr = err
				return
			}
		}
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			deps.RenderNotFound(w, r, common.NotFound{
				Message: "The page you are looking for does not exist or has moved.",
			})
		})
	})
	return routeErr
}

func setupReload(router chi.Router, reload *Reloader) {
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		doReload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		// The first stream after a restart reloads at once so the page picks
		// up the new binary.
		hotReloadOnce.Do(doReload)
		select {
		case <-reload.ch:
			doReload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		reload.Trigger()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
