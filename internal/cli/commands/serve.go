package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/cli/config"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/leapstack-labs/musbsite/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Open bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MusB Research website",
		Long: `Start the web server for the MusB Research website.

Pages are rendered from the content API configured by api_url. When the
API is unreachable each page falls back to built-in content.

With --dev, templates and static files are watched and open browsers
reload when they change.`,
		Example: `  # Serve on the default port
  musbsite serve

  # Serve against a remote API on port 3000
  musbsite serve --api-url https://cms.example.org --port 3000

  # Development mode with hot reload
  musbsite serve --dev --open`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the site in a browser")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if !cfg.Dev && cfg.UsesDefaultSecret() {
		logger.Warn("using the built-in session secret; set MUSB_SESSION_SECRET in production")
	}

	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
	}

	client, err := newAPIClient(cfg, logger, m)
	if err != nil {
		return err
	}

	server, err := ui.NewServer(ui.Config{
		API:               client,
		Port:              cfg.Port,
		Dev:               cfg.Dev,
		SessionSecret:     cfg.SessionSecret,
		Logger:            logger,
		Metrics:           m,
		ContactResetAfter: cfg.ContactResetAfter,
		FormRateLimit:     cfg.FormRateLimit,
		TrustProxy:        cfg.TrustProxy,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if opts.Open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving MusB Research on http://localhost:%d\n", cfg.Port)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// newAPIClient builds the content API client from the resolved config.
func newAPIClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*api.Client, error) {
	client, err := api.New(api.Config{
		BaseURL:    cfg.APIURL,
		Timeout:    cfg.APITimeout,
		RetryCount: cfg.APIRetryCount,
		RetryWait:  cfg.APIRetryWait,
		Logger:     logger,
		Metrics:    m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
