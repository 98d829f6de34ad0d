// Package harness registers self-tests and runs them outside `go test`, for
// example on a target booted under an emulator, reporting one line per test
// and an exit code the launcher understands.
//
// Nothing in fbtext depends on this package; rendering works the same with
// or without it.
package harness

import (
	"fmt"
	"io"
	"sync"
)

// ExitCode is the status reported to the launcher. The values follow the
// isa-debug-exit convention, where 0 and 1 are taken by the emulator itself.
type ExitCode uint32

const (
	// ExitSuccess means every test passed.
	ExitSuccess ExitCode = 0x10

	// ExitFailed means at least one test returned an error.
	ExitFailed ExitCode = 0x11

	// ExitPanicked means at least one test panicked.
	ExitPanicked ExitCode = 0x12
)

// Test is one registered self-test.
type Test struct {
	Name string
	Fn   func() error

	// ShouldPanic inverts the outcome: the test passes only if Fn panics.
	ShouldPanic bool
}

var (
	mu       sync.Mutex
	registry []Test
)

// Register adds a test. Tests run in registration order. Register is
// normally called from init functions.
func Register(name string, fn func() error) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, Test{Name: name, Fn: fn})
}

// RegisterShouldPanic adds a test that passes only when fn panics, for
// checking that misuse is caught rather than silently rendered.
func RegisterShouldPanic(name string, fn func()) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, Test{
		Name:        name,
		Fn:          func() error { fn(); return nil },
		ShouldPanic: true,
	})
}

// Tests returns a copy of the registered tests.
func Tests() []Test {
	mu.Lock()
	defer mu.Unlock()
	return append([]Test(nil), registry...)
}

// Run runs every registered test, reporting to w.
func Run(w io.Writer) ExitCode {
	return RunTests(w, Tests())
}

// RunTests runs tests in order and reports each as
//
//	name...	[ok]
//	name...	[failed] reason
//
// followed by the pass and fail counts. A panicking test is reported as
// failed and the run continues, unless it is marked ShouldPanic, in which
// case returning normally is the failure.
func RunTests(w io.Writer, tests []Test) ExitCode {
	fmt.Fprintf(w, "Running %d test(s)\n", len(tests))

	var passed, failed int
	panicked := false
	for _, t := range tests {
		fmt.Fprintf(w, "%s...\t", t.Name)
		p, err := runOne(t.Fn)
		switch {
		case t.ShouldPanic && p != nil:
			passed++
			fmt.Fprintln(w, "[ok]")
		case t.ShouldPanic:
			failed++
			fmt.Fprintln(w, "[failed] did not panic")
		case p != nil:
			panicked = true
			failed++
			fmt.Fprintf(w, "[failed] panic: %v\n", p)
		case err != nil:
			failed++
			fmt.Fprintf(w, "[failed] %v\n", err)
		default:
			passed++
			fmt.Fprintln(w, "[ok]")
		}
	}

	fmt.Fprintf(w, "%d tests passed\n%d tests failed\n", passed, failed)
	switch {
	case panicked:
		return ExitPanicked
	case failed > 0:
		return ExitFailed
	}
	return ExitSuccess
}

// runOne calls fn, converting a panic into its value.
func runOne(fn func() error) (panicked any, err error) {
	defer func() {
		panicked = recover()
	}()
	return nil, fn()
}
