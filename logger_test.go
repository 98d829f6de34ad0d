package fbtext

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLog routes fbtext's logs into a buffer at debug level for the rest
// of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestDiscard(t *testing.T) {
	h := discard{}
	ctx := context.Background()

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(ctx, level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(ctx, slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("y", 1)}).(discard); !ok {
		t.Error("WithAttrs() did not return discard")
	}
	if _, ok := h.WithGroup("writer").(discard); !ok {
		t.Error("WithGroup() did not return discard")
	}
}

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore a silent logger")
	}
}

func TestSetLogger_ReceivesWriterEvents(t *testing.T) {
	w, _ := newTestWriter(t, testGeometry(200, 30))
	buf := captureLog(t)

	// 30 rows hold a single 16px line inside the padding: the first Newline
	// wraps back to the top.
	w.Newline()
	if !strings.Contains(buf.String(), "cursor wrapped to top") {
		t.Errorf("log output = %q, want the wrap record", buf.String())
	}
	if _, y := w.Position(); y != DefaultBorderPadding {
		t.Errorf("y = %d after wrap, want %d", y, DefaultBorderPadding)
	}
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("fbtext: concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLogger_Disabled(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("fbtext: glyph", "rune", "a")
	}
}
