package glyphatlas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger; SetLogger may race with New.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by atlas caches created afterwards
// without WithLogger. Caches keep the logger they were built with. The
// default discards everything; nil restores it.
//
// Records emitted:
//   - Debug "atlas: created" with width, height, format and buffer bytes
//   - Debug "atlas: ingest" once per batch with requests, added and glyphs
//   - Warn "atlas: full, glyphs dropped" when a batch outgrows the atlas
//   - Warn "atlas: rasterization failed" when glyphs are skipped on error
//
// Example:
//
//	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. atlas.New reads it once per
// cache. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
