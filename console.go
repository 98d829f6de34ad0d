package fbtext

import (
	"fmt"
	"io"

	"github.com/gogpu/fbtext/internal/spin"
)

// The console is the one process-wide Writer. Every access holds consoleMu,
// so output is totally ordered by lock acquisition.
var (
	consoleMu spin.Mutex
	console   *Writer
)

// Init creates the console Writer from the boot framebuffer. It can succeed
// only once; later calls return ErrAlreadyInitialized. There is no
// teardown.
func Init(fb Framebuffer, opts ...Option) error {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	if console != nil {
		return ErrAlreadyInitialized
	}
	w, err := NewWriter(fb, opts...)
	if err != nil {
		return err
	}
	console = w
	Logger().Info("fbtext: console initialized")
	return nil
}

// Do runs fn with exclusive access to the console Writer.
// It returns ErrNotInitialized before Init.
//
// fn must not call Do, Print or any other console function: the lock is not
// reentrant and the call would spin forever.
func Do(fn func(w *Writer) error) error {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	if console == nil {
		return ErrNotInitialized
	}
	return fn(console)
}

// Print formats its operands like fmt.Print and writes them to the console.
// Output before Init and rendering errors are discarded.
func Print(a ...any) {
	printString(fmt.Sprint(a...))
}

// Printf formats like fmt.Printf and writes to the console.
// Output before Init and rendering errors are discarded.
func Printf(format string, a ...any) {
	printString(fmt.Sprintf(format, a...))
}

// Println formats like fmt.Println and writes to the console.
// Output before Init and rendering errors are discarded.
func Println(a ...any) {
	printString(fmt.Sprintln(a...))
}

// printString writes s under the console lock. Formatting happens before
// the lock is taken so String methods may print themselves.
func printString(s string) {
	_ = Do(func(w *Writer) error {
		_, err := w.WriteString(s)
		return err
	})
}

// Console returns an io.Writer that writes to the console. Writes before
// Init fail with ErrNotInitialized.
func Console() io.Writer {
	return consoleWriter{}
}

type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	n := 0
	err := Do(func(w *Writer) error {
		var err error
		n, err = w.Write(p)
		return err
	})
	return n, err
}
