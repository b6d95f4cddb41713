package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Use in tests to
// keep output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
