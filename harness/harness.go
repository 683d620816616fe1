// Package harness implements the Harness Loop (spec §4.5, §6): the
// entry point a surrounding binary calls to obtain a byte buffer from
// the fuzzer collaborator, drive one registered test's generator tree
// and property, and signal the outcome back.
package harness

import (
	"fmt"
	"io"
	"os"

	"github.com/containerd/log"

	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
	"github.com/gofuzzcheck/gofuzzcheck/fuzzconfig"
	"github.com/gofuzzcheck/gofuzzcheck/fuzzmetrics"
	"github.com/gofuzzcheck/gofuzzcheck/gen"
	"github.com/gofuzzcheck/gofuzzcheck/prop"
	"github.com/gofuzzcheck/gofuzzcheck/registry"
)

// ExitCode is the process exit status the harness recommends to its
// caller, matching spec §6's three-way signal: a normal exit for
// Pass, a distinguished "skip" code for Invalid disjoint from both
// Pass and a real failure, and a nonzero abort for Fail/Crash so the
// fuzzer records the input as crashing.
type ExitCode int

const (
	// ExitPass indicates the iteration passed.
	ExitPass ExitCode = 0
	// ExitSkip indicates an Invalid outcome: the fuzzer should
	// deprioritize this input without counting it as a crash. 77 is
	// the conventional "test skipped" exit code used by test-harness
	// integrations (automake, libFuzzer-adjacent tooling); it is
	// disjoint from both 0 and the small failure codes below.
	ExitSkip ExitCode = 77
	// ExitFail indicates a Fail outcome: a counterexample was found.
	ExitFail ExitCode = 1
	// ExitCrash indicates an unhandled panic inside the property.
	ExitCrash ExitCode = 2
)

// Result is what RunOnce reports to its caller, combining the
// classified Outcome with the exit code the caller should propagate.
type Result struct {
	Outcome  prop.Outcome
	ExitCode ExitCode
}

// Handshake writes a single readiness byte to fd, the AFL-style
// persistent-mode handshake spec §6 describes. It is a no-op when fd
// is zero, which is the correct setting whenever no AFL-style
// collaborator is attached.
func Handshake(fd int) error {
	if fd <= 0 {
		return nil
	}
	f := os.NewFile(uintptr(fd), "gofuzzcheck-handshake")
	if f == nil {
		return fmt.Errorf("harness: file descriptor %d is not open", fd)
	}
	defer f.Close()
	_, err := f.Write([]byte{1})
	return err
}

// RunOnce reads all of in (the entire buffer the fuzzer collaborator
// supplied for this iteration — spec §6), constructs a fresh
// bytesource.Source over it, runs the named test's generator tree and
// property, reports the outcome to collector, and writes a diagnostic
// to diag when the outcome is Fail or Crash (spec §6 "Failure
// signaling").
func RunOnce(testName string, in io.Reader, diag io.Writer, collector fuzzmetrics.Collector) (Result, error) {
	t, ok := registry.Lookup(testName)
	if !ok {
		return Result{}, fmt.Errorf("harness: no test registered with name %q", testName)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return Result{}, fmt.Errorf("harness: reading fuzzer buffer: %w", err)
	}

	src := bytesource.New(data)
	outcome := t.Run(src)

	switch outcome.Kind {
	case prop.Pass:
		collector.IncPass()
		return Result{Outcome: outcome, ExitCode: ExitPass}, nil
	case prop.Invalid:
		collector.IncInvalid()
		return Result{Outcome: outcome, ExitCode: ExitSkip}, nil
	case prop.FailKind:
		collector.IncFail()
		reportFailure(diag, testName, outcome)
		return Result{Outcome: outcome, ExitCode: ExitFail}, nil
	case prop.Crash:
		collector.IncCrash()
		reportFailure(diag, testName, outcome)
		return Result{Outcome: outcome, ExitCode: ExitCrash}, nil
	default:
		return Result{}, fmt.Errorf("harness: test %q returned unknown outcome kind %v", testName, outcome.Kind)
	}
}

func reportFailure(diag io.Writer, testName string, outcome prop.Outcome) {
	fmt.Fprintf(diag, "FAIL %s: %s\n", testName, outcome.Message)
	if outcome.Rendered != "" {
		fmt.Fprintln(diag, outcome.Rendered)
	}
	if outcome.Stack != "" {
		fmt.Fprintln(diag, outcome.Stack)
	}
}

// RunOnceWithConfig is RunOnce plus the handshake, log level, and
// max-list-length wiring cfg describes, for callers that want the
// full §6 lifecycle rather than assembling it themselves.
func RunOnceWithConfig(cfg fuzzconfig.Config, testName string, in io.Reader, diag io.Writer, collector fuzzmetrics.Collector) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	gen.DefaultMaxListLen = cfg.MaxListLen
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return Result{}, fmt.Errorf("harness: invalid log level %q: %w", cfg.LogLevel, err)
	}
	registry.Freeze()
	if cfg.Persistent {
		if err := Handshake(cfg.HandshakeFD); err != nil {
			log.L.WithField("test", testName).WithError(err).Warn("gofuzzcheck: persistent-mode handshake failed")
		}
	}
	log.L.WithField("test", testName).Debug("gofuzzcheck: running iteration")
	res, err := RunOnce(testName, in, diag, collector)
	if err != nil {
		return res, err
	}
	log.L.WithField("test", testName).WithField("outcome", res.Outcome.Kind.String()).Info("gofuzzcheck: iteration complete")
	return res, nil
}
