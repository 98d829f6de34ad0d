package fbtext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is the handler behind the default logger. It reports every level
// disabled, so log calls on the rendering path cost a single check.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// logger is read on every glyph that logs, possibly while the console lock
// is held, so it is swapped atomically rather than under a mutex.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger routes fbtext's diagnostics to l. Nothing is logged until it is
// called; nil restores the silent default. It is safe to call while other
// goroutines are printing.
//
// Records carry an "fbtext:" message prefix:
//   - [slog.LevelDebug]: the cursor wrapping to the top, text continued
//     after the bottom margin, runes the font lacks
//   - [slog.LevelInfo]: writer geometry and font at creation, console Init
//   - [slog.LevelWarn]: a buffer shorter than its geometry, undrawable glyphs
//   - [slog.LevelError]: messages passed to Fatalf or recovered by Recover
//
// The cmd/fbtext tool wires it up as:
//
//	fbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
