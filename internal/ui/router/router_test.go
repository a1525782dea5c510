package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/ui/features"
)

func setupRouter(t *testing.T, dev bool) (chi.Router, *Reloader) {
	t.Helper()
	fx := features.SetupTestFixture(t)
	fx.Deps.Dev = dev

	reload := NewReloader()
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, fx.Deps, reload))
	return r, reload
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSetupRoutes_Probes(t *testing.T) {
	r, _ := setupRouter(t, false)

	rec := serve(r, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(r, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
	assert.Empty(t, rec.Header().Get("Set-Cookie"), "probes carry no session")
}

func TestSetupRoutes_PagesAssignVisitor(t *testing.T) {
	r, _ := setupRouter(t, false)

	for _, target := range []string{
		"/", "/about", "/why-choose-us", "/team", "/support", "/contact",
		"/innovations", "/news", "/careers", "/facilities", "/trials", "/capabilities",
	} {
		t.Run(target, func(t *testing.T) {
			rec := serve(r, target)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "<!doctype html>")
			assert.Contains(t, rec.Header().Get("Set-Cookie"), "musb=")
		})
	}
}

func TestSetupRoutes_NotFound(t *testing.T) {
	r, _ := setupRouter(t, false)

	rec := serve(r, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
	assert.Contains(t, rec.Body.String(), "Back to Home")
}

func TestSetupRoutes_StaticAssets(t *testing.T) {
	r, _ := setupRouter(t, false)

	rec := serve(r, "/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}

func TestSetupRoutes_ReloadOnlyInDev(t *testing.T) {
	r, _ := setupRouter(t, false)
	assert.Equal(t, http.StatusNotFound, serve(r, "/hotreload").Code)

	r, reload := setupRouter(t, true)
	rec := serve(r, "/hotreload")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, reload.ch, 1)
}

func TestReloader_TriggerCollapses(t *testing.T) {
	rl := NewReloader()
	rl.Trigger()
	rl.Trigger()
	assert.Len(t, rl.ch, 1)
}

func TestSetupRoutes_ReloadStreamRunsScript(t *testing.T) {
	r, reload := setupRouter(t, true)

	// a pending trigger ends the stream right after the first-connect reload
	reload.Trigger()

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() { done <- serve(r, "/reload") }()

	select {
	case rec := <-done:
		assert.Contains(t, rec.Body.String(), "window.location.reload()")
	case <-time.After(time.Second):
		t.Fatal("reload stream did not return")
	}
}
