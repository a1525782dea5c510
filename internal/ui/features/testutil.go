// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/leapstack-labs/musbsite/internal/testutil"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
	"github.com/leapstack-labs/musbsite/internal/ui/render"
	"github.com/leapstack-labs/musbsite/internal/ui/resources"
)

// TestVisitor is the visitor ID fixture requests carry.
const TestVisitor = "test-visitor"

// Recorded is one request the fake backend received.
type Recorded struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        []byte
}

// JSON decodes the recorded body into v.
func (r Recorded) JSON(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v))
}

type response struct {
	status int
	body   []byte
}

// Backend is a fake content API. Routes answer with canned JSON. Anything
// not registered answers 404.
type Backend struct {
	mu       sync.Mutex
	routes   map[string]response
	requests []Recorded
}

func route(method, path string) string { return method + " " + path }

// JSON registers a GET route that returns body.
func (b *Backend) JSON(path string, body any) {
	b.Respond(http.MethodGet, path, http.StatusOK, body)
}

// Fail registers a GET route that returns 500.
func (b *Backend) Fail(path string) {
	b.Respond(http.MethodGet, path, http.StatusInternalServerError, map[string]string{"detail": "boom"})
}

// Respond registers a route with an explicit method and status.
func (b *Backend) Respond(method, path string, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route(method, path)] = response{status: status, body: raw}
}

// Requests returns the requests received for method and path.
func (b *Backend) Requests(method, path string) []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Recorded
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, Recorded{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	resp, ok := b.routes[route(r.Method, r.URL.Path)]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Backend *Backend
	Deps    common.Deps
	Metrics *metrics.Metrics

	t *testing.T
}

// SetupTestFixture creates a fixture backed by a fake API and the real
// templates.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	m := metrics.New()

	backend := &Backend{routes: make(map[string]response)}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		RetryWait: time.Millisecond,
		Logger:    logger,
		Metrics:   m,
	})
	require.NoError(t, err)

	renderer, err := render.New(resources.Templates())
	require.NoError(t, err)

	return &TestFixture{
		Backend: backend,
		Metrics: m,
		Deps: common.Deps{
			API:               client,
			Renderer:          renderer,
			Sessions:          NewTestSessionStore(),
			Hub:               live.NewHub(),
			Forms:             form.NewRegistry(16, time.Minute, m),
			Logger:            logger,
			Metrics:           m,
			ContactResetAfter: 50 * time.Millisecond,
		},
		t: t,
	}
}

// Router mounts a feature's routes on a fresh router.
func (f *TestFixture) Router(setup func(chi.Router, common.Deps) error) chi.Router {
	f.t.Helper()
	r := chi.NewRouter()
	require.NoError(f.t, setup(r, f.Deps))
	return r
}

// Do serves req through h and returns the recorder. The request carries
// the fixture visitor.
func (f *TestFixture) Do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	f.t.Helper()
	req = req.WithContext(common.WithVisitor(req.Context(), TestVisitor))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Get is Do for a GET of target.
func (f *TestFixture) Get(h http.Handler, target string) *httptest.ResponseRecorder {
	f.t.Helper()
	return f.Do(h, httptest.NewRequest(http.MethodGet, target, nil))
}

// PostSignals is Do for a Datastar POST carrying signals as JSON.
func (f *TestFixture) PostSignals(h http.Handler, target, signals string) *httptest.ResponseRecorder {
	f.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(signals))
	req.Header.Set("Content-Type", "application/json")
	return f.Do(h, req)
}

// Machine returns the fixture visitor's machine for a form.
func (f *TestFixture) Machine(name string) *form.Machine {
	return f.Deps.Forms.Machine(TestVisitor, name)
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
