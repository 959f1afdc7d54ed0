package kspace

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so that callers
// skip building attributes when logging is off.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger used by kspace. The default logger is silent;
// passing nil restores it. SetLogger is safe for concurrent use.
//
// The algebra itself never logs. Records come from the helpers that have
// state or concurrency:
//   - [slog.LevelDebug]: neighborhood cache misses and evictions,
//     parallel broadcast start and completion
//   - [slog.LevelWarn]: parallel broadcast interrupted by its context
//
// Example:
//
//	kspace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger used by kspace.
func Logger() *slog.Logger {
	return logger.Load()
}
