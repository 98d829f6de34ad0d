package fbtext

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// fatalOut is the independent output used when the process is going down.
// It is read without any lock so it stays usable while the console lock is
// held by the failing goroutine.
var fatalOut atomic.Pointer[io.Writer]

// exit terminates the process. Tests replace it.
var exit = os.Exit

// Exit codes used by the fatal path.
const (
	ExitFatal = 1
	ExitPanic = 2
)

// SetFatalOutput sets where Fatalf and Recover report. The default is
// os.Stderr, the serial line of a hosted process. Pass nil to restore it.
//
// SetFatalOutput is safe for concurrent use.
func SetFatalOutput(w io.Writer) {
	if w == nil {
		fatalOut.Store(nil)
		return
	}
	fatalOut.Store(&w)
}

func fatalWriter() io.Writer {
	if p := fatalOut.Load(); p != nil {
		return *p
	}
	return os.Stderr
}

// Fatalf reports a fatal error and exits the process with ExitFatal.
//
// The message always goes to the fatal output. It is also painted on the
// console when the console lock is free; if it is held, possibly by the
// caller itself, the screen is left alone rather than risking a deadlock.
func Fatalf(format string, args ...any) {
	report(fmt.Sprintf(format, args...))
	exit(ExitFatal)
}

// Recover reports a panic and exits the process with ExitPanic. It must be
// deferred directly:
//
//	defer fbtext.Recover()
//
// Recover does nothing when the goroutine is not panicking.
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	report(fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()))
	exit(ExitPanic)
}

// report writes msg to the fatal output and, if possible, the console.
func report(msg string) {
	out := fatalWriter()
	_, _ = io.WriteString(out, msg)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		_, _ = io.WriteString(out, "\n")
	}
	Logger().Error("fbtext: fatal", "msg", msg)

	if !consoleMu.TryLock() {
		return
	}
	defer consoleMu.Unlock()
	if console == nil {
		return
	}
	console.SetForeground(Red)
	if x, _ := console.Position(); x > console.cfg.borderPadding {
		console.Newline()
	}
	_, _ = console.WriteString(msg)
}
