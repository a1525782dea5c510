// Package testutil provides shared helpers for package tests.
package testutil

import (
	"log/slog"
	"testing"

	"github.com/leapstack-labs/musbsite/internal/logging"
)

// NewTestLogger returns a debug logger that writes to t.Log, so output only
// shows on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	logger, err := logging.New(logging.Options{Level: "debug", Output: testWriter{t}})
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return logger
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
