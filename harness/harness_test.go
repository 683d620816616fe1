package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/containerd/log"
	"gotest.tools/v3/assert"

	"github.com/gofuzzcheck/gofuzzcheck/fuzzconfig"
	"github.com/gofuzzcheck/gofuzzcheck/gen"
	"github.com/gofuzzcheck/gofuzzcheck/prop"
	"github.com/gofuzzcheck/gofuzzcheck/registry"
)

type countingCollector struct {
	pass, fail, invalid, crash int
}

func (c *countingCollector) IncPass()    { c.pass++ }
func (c *countingCollector) IncFail()    { c.fail++ }
func (c *countingCollector) IncInvalid() { c.invalid++ }
func (c *countingCollector) IncCrash()   { c.crash++ }

func TestRunOncePass(t *testing.T) {
	registry.AddTest1("harness-pass", gen.Int(), func(n int) {
		prop.Check(n == n)
	})

	var diag bytes.Buffer
	coll := &countingCollector{}
	res, err := RunOnce("harness-pass", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, coll)
	assert.NilError(t, err)
	assert.Equal(t, res.ExitCode, ExitPass)
	assert.Equal(t, coll.pass, 1)
	assert.Equal(t, diag.Len(), 0)
}

func TestRunOnceInvalidOutOfInput(t *testing.T) {
	registry.AddTest1("harness-invalid", gen.Int64(), func(int64) {})

	var diag bytes.Buffer
	coll := &countingCollector{}
	res, err := RunOnce("harness-invalid", bytes.NewReader([]byte{1}), &diag, coll)
	assert.NilError(t, err)
	assert.Equal(t, res.ExitCode, ExitSkip)
	assert.Equal(t, coll.invalid, 1)
}

func TestRunOnceFailWritesDiagnostic(t *testing.T) {
	registry.AddTest1("harness-fail", gen.Int(), func(n int) {
		prop.Failf("n was %d", n)
	})

	var diag bytes.Buffer
	coll := &countingCollector{}
	res, err := RunOnce("harness-fail", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, coll)
	assert.NilError(t, err)
	assert.Equal(t, res.ExitCode, ExitFail)
	assert.Equal(t, coll.fail, 1)
	assert.Assert(t, strings.Contains(diag.String(), "harness-fail"))
}

func TestRunOnceCrashWritesDiagnostic(t *testing.T) {
	registry.AddTest1("harness-crash", gen.Int(), func(n int) {
		var s []int
		_ = s[0]
	})

	var diag bytes.Buffer
	coll := &countingCollector{}
	res, err := RunOnce("harness-crash", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, coll)
	assert.NilError(t, err)
	assert.Equal(t, res.ExitCode, ExitCrash)
	assert.Equal(t, coll.crash, 1)
	assert.Assert(t, strings.Contains(diag.String(), "unhandled panic"))
}

func TestRunOnceUnknownTestErrors(t *testing.T) {
	var diag bytes.Buffer
	_, err := RunOnce("does-not-exist", bytes.NewReader(nil), &diag, &countingCollector{})
	assert.Assert(t, err != nil)
}

// RunOnceWithConfig freezes the registry, so the tests that run after
// the first RunOnceWithConfig call register their tests here, before
// any test runs.
func init() {
	registry.AddTest1("harness-loglevel", gen.Int(), func(int) {})
	registry.AddTest1("harness-badlevel", gen.Int(), func(int) {})
}

func TestHandshakeNoopWhenFDZero(t *testing.T) {
	assert.NilError(t, Handshake(0))
}

func TestRunOnceWithConfigAppliesMaxListLen(t *testing.T) {
	origMaxListLen := gen.DefaultMaxListLen
	t.Cleanup(func() { gen.DefaultMaxListLen = origMaxListLen })

	registry.AddTest1("harness-maxlen", gen.Int(), func(int) {})

	cfg := fuzzconfig.Config{MaxListLen: 3, LogLevel: "info"}
	var diag bytes.Buffer
	_, err := RunOnceWithConfig(cfg, "harness-maxlen", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, &countingCollector{})
	assert.NilError(t, err)
	assert.Equal(t, gen.DefaultMaxListLen, 3)
}

func TestRunOnceWithConfigAppliesLogLevel(t *testing.T) {
	origLevel := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(origLevel.String()) })

	cfg := fuzzconfig.Config{MaxListLen: 10, LogLevel: "warning"}
	var diag bytes.Buffer
	_, err := RunOnceWithConfig(cfg, "harness-loglevel", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, &countingCollector{})
	assert.NilError(t, err)
	assert.Equal(t, log.GetLevel(), log.WarnLevel)
}

func TestRunOnceWithConfigRejectsInvalidLogLevel(t *testing.T) {
	cfg := fuzzconfig.Config{MaxListLen: 10, LogLevel: "not-a-real-level"}
	var diag bytes.Buffer
	_, err := RunOnceWithConfig(cfg, "harness-badlevel", bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), &diag, &countingCollector{})
	assert.Assert(t, err != nil)
}
