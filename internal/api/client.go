// Package api is the client for the site's backend content API.
//
// Every backend endpoint has one typed method on Client. All of them go
// through a single request wrapper that resolves the path against the
// configured base URL, negotiates JSON or multipart bodies, and turns
// non-2xx responses into *StatusError.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/leapstack-labs/musbsite/internal/metrics"
	"github.com/sethvargo/go-retry"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8000"

const (
	defaultTimeout   = 10 * time.Second
	defaultRetryWait = 200 * time.Millisecond
)

// Config holds everything the client needs. It is read once at construction.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int           // extra attempts for reads; 0 disables retries
	RetryWait  time.Duration // constant wait between read attempts
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	HTTPClient *http.Client // optional transport override
}

// Client issues requests against the backend.
type Client struct {
	http      *resty.Client
	baseURL   string
	retries   uint64
	retryWait time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New creates a client for the given configuration.
func New(cfg Config) (*Client, error) {
	base, err := ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = defaultRetryWait
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	retries := uint64(0)
	if cfg.RetryCount > 0 {
		retries = uint64(cfg.RetryCount)
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:      rc,
		baseURL:   base,
		retries:   retries,
		retryWait: wait,
		logger:    logger,
		metrics:   cfg.Metrics,
	}, nil
}

// ParseBaseURL validates and normalises a backend base URL. An empty value
// selects DefaultBaseURL.
func ParseBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("API base URL must be absolute, got: %s", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("API base URL scheme must be http or https, got: %s", u.Scheme)
	}
	return strings.TrimRight(raw, "/"), nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Multipart is a request body sent as multipart/form-data. The transport
// writes its own Content-Type with the boundary.
type Multipart struct {
	Fields map[string]string
	Files  []File
}

// File is one file part of a multipart body.
type File struct {
	Field       string
	Name        string
	ContentType string
	Reader      io.Reader
}

// request describes one call against the backend.
type request struct {
	endpoint string // metrics label
	method   string
	path     string
	query    map[string]string
	body     any
}

// do performs the request and decodes the JSON response into out.
// Reads are retried on transport errors and 5xx when retries are configured.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if req.method != http.MethodGet || c.retries == 0 {
		return c.once(ctx, req, out)
	}

	b := retry.WithMaxRetries(c.retries, retry.NewConstant(c.retryWait))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.once(ctx, req, out)
		if retryable(err) {
			c.logger.Debug("retrying api read", "path", req.path, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
	// retry.Do reports a done context as the bare ctx error.
	if err != nil && ctx.Err() != nil && !IsTransport(err) && StatusOf(err) == 0 {
		return &TransportError{Method: req.method, Path: req.path, Err: err}
	}
	return err
}

func (c *Client) once(ctx context.Context, req request, out any) error {
	r := c.http.R().SetContext(ctx)

	switch body := req.body.(type) {
	case *Multipart:
		if len(body.Fields) > 0 {
			r.SetMultipartFormData(body.Fields)
		}
		for _, f := range body.Files {
			if f.ContentType != "" {
				r.SetMultipartField(f.Field, f.Name, f.ContentType, f.Reader)
			} else {
				r.SetFileReader(f.Field, f.Name, f.Reader)
			}
		}
	case nil:
		r.SetHeader("Content-Type", "application/json")
	default:
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	for k, v := range req.query {
		if v != "" {
			r.SetQueryParam(k, v)
		}
	}

	start := time.Now()
	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		c.metrics.ObserveAPI(req.endpoint, metrics.OutcomeTransport)
		return &TransportError{Method: req.method, Path: req.path, Err: err}
	}

	c.logger.Debug("api request",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode(),
		"duration", time.Since(start),
	)

	if !resp.IsSuccess() {
		c.metrics.ObserveAPI(req.endpoint, metrics.OutcomeHTTPError)
		return &StatusError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	c.metrics.ObserveAPI(req.endpoint, metrics.OutcomeOK)

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.path, err)
	}
	return nil
}

func (c *Client) getList(ctx context.Context, endpoint, path string, query map[string]string, out any) error {
	return c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, endpoint, path string, body, out any) error {
	return c.do(ctx, request{endpoint: endpoint, method: http.MethodPost, path: path, body: body}, out)
}
