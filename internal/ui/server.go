// Package ui serves the MusB Research website.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
	"github.com/leapstack-labs/musbsite/internal/ui/render"
	"github.com/leapstack-labs/musbsite/internal/ui/resources"
	"github.com/leapstack-labs/musbsite/internal/ui/router"
)

// Server is the site's HTTP server.
type Server struct {
	deps     common.Deps
	port     int
	watch    bool
	logger   *slog.Logger
	reloader *router.Reloader
}

// Config holds configuration for the server.
type Config struct {
	API           *api.Client
	Port          int
	Dev           bool
	SessionSecret string
	Logger        *slog.Logger
	Metrics       *metrics.Metrics

	// ContactResetAfter is how long the contact form shows success.
	ContactResetAfter time.Duration
	// FormRateLimit is the per-client submission rate, e.g. "5-M".
	// Empty disables limiting.
	FormRateLimit string
	// TrustProxy keys the rate limit on X-Forwarded-For.
	TrustProxy bool
}

// NewServer creates a server. Templates are parsed here, so a broken
// template fails startup.
func NewServer(cfg Config) (*Server, error) {
	if cfg.API == nil {
		return nil, errors.New("api client is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	// nil metrics records nothing and leaves /metrics unmounted
	m := cfg.Metrics

	renderer, err := render.New(resources.Templates())
	if err != nil {
		return nil, err
	}
	limit, err := common.NewFormLimit(cfg.FormRateLimit, cfg.TrustProxy)
	if err != nil {
		return nil, err
	}

	return &Server{
		deps: common.Deps{
			API:               cfg.API,
			Renderer:          renderer,
			Sessions:          common.NewSessionStore(cfg.SessionSecret),
			Hub:               live.NewHub(),
			Forms:             form.NewRegistry(form.DefaultRegistrySize, form.DefaultRegistryTTL, m),
			Logger:            logger,
			Metrics:           m,
			Dev:               cfg.Dev,
			ContactResetAfter: cfg.ContactResetAfter,
			FormLimit:         limit,
		},
		port:     cfg.Port,
		watch:    cfg.Dev,
		logger:   logger,
		reloader: router.NewReloader(),
	}, nil
}

// Handler builds the full middleware and route stack.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.deps, s.reloader); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.port), "api", s.deps.API.BaseURL(), "dev", s.deps.Dev)

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher in dev mode
	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchFiles re-parses templates when a resource changes and refreshes
// connected browsers.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range resources.WatchDirs() {
		if err := watchDirRecursive(watcher, dir); err != nil {
			// continue without watching this directory
			s.logger.Error("failed to watch resource directory", "dir", dir, "error", err)
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watched(event.Name) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("resource changed, reloading", "file", event.Name)
				s.refresh()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// refresh re-parses templates, re-renders live views and reloads pages.
func (s *Server) refresh() {
	if err := s.deps.Renderer.Reload(); err != nil {
		// the previous templates stay active
		s.logger.Error("template reload failed", "error", err)
		return
	}
	s.deps.Hub.Broadcast()
	s.reloader.Trigger()
}

func watched(name string) bool {
	switch filepath.Ext(name) {
	case ".html", ".css", ".js", ".svg":
		return true
	}
	return false
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
