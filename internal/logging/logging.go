// Package logging builds the site's slog logger on a charmbracelet/log handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Levels accepted in configuration.
var Levels = []string{"debug", "info", "warn", "error"}

// Options configure the logger.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	Output io.Writer
}

// ParseLevel maps a configured level name to a charm level.
func ParseLevel(s string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return charmlog.DebugLevel, nil
	case "", "info":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	default:
		return charmlog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a slog logger writing through charmbracelet/log.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	h := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h.SetFormatter(charmlog.TextFormatter)
	case FormatJSON:
		h.SetFormatter(charmlog.JSONFormatter)
		h.SetTimeFormat(time.RFC3339)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
