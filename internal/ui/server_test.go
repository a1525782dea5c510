package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/testutil"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	backend := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(backend.Close)

	client, err := api.New(api.Config{BaseURL: backend.URL})
	require.NoError(t, err)
	cfg.API = client
	cfg.Logger = testutil.NewTestLogger(t)
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret-key-32-bytes-long!!"
	}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func TestNewServer_RequiresAPI(t *testing.T) {
	_, err := NewServer(Config{})
	assert.Error(t, err)
}

func TestNewServer_RejectsBadRateLimit(t *testing.T) {
	client, err := api.New(api.Config{})
	require.NoError(t, err)
	_, err = NewServer(Config{API: client, FormRateLimit: "often"})
	assert.Error(t, err)
}

func TestServer_Handler(t *testing.T) {
	srv := newTestServer(t, Config{FormRateLimit: "5-M"})
	h, err := srv.Handler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MusB Research")
	assert.NotContains(t, rec.Body.String(), "/reload", "reload stream is dev only")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "metrics are off without a registry")
}

func TestServer_DevHandlerMountsReload(t *testing.T) {
	srv := newTestServer(t, Config{Dev: true})
	h, err := srv.Handler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotreload", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "@get('/reload'")
}

func TestWatched(t *testing.T) {
	assert.True(t, watched("templates/pages/home.html"))
	assert.True(t, watched("static/site.css"))
	assert.False(t, watched("static/site.css~"))
	assert.False(t, watched("main.go"))
}
