// Package registry implements the Test Registry (spec §4.5, §9): a
// process-wide, append-only collection of named tests, each pairing a
// generator tree with a property function. It is mutable only during
// the construction phase; Freeze marks the boundary the harness loop
// crosses once, after which further registration is a programmer
// error (spec §5 "Tests must not register further tests during a test
// run").
package registry

import (
	"fmt"
	"sync"

	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
	"github.com/gofuzzcheck/gofuzzcheck/prop"
)

// Test is one registered (name, generator-list, property) tuple. The
// concrete generator types are erased behind Run so the registry can
// hold tests of differing arity and argument types in one slice.
type Test interface {
	// Name returns the test's registered name.
	Name() string
	// Run decodes this test's generator tree from src and invokes its
	// property, returning the classified outcome. Out-of-input while
	// decoding maps to Invalid without ever invoking the property
	// (spec §4.4, §8 Property 5).
	Run(src *bytesource.Source) prop.Outcome
}

var (
	mu     sync.Mutex
	tests  []Test
	byName = map[string][]int{}
	frozen bool
)

// Freeze marks the registry read-only. The harness loop calls this
// once before entering its run loop (spec §5, §9).
func Freeze() {
	mu.Lock()
	defer mu.Unlock()
	frozen = true
}

func register(t Test) {
	mu.Lock()
	defer mu.Unlock()
	if frozen {
		panic("registry: AddTest called after the registry was frozen")
	}
	idx := len(tests)
	tests = append(tests, t)
	byName[t.Name()] = append(byName[t.Name()], idx)
}

// Tests returns every registered test, in registration order.
func Tests() []Test {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Test, len(tests))
	copy(out, tests)
	return out
}

// Lookup finds a registered test by name. Duplicate names are
// permitted but discouraged (spec §4.5); Lookup returns the most
// recently registered match.
func Lookup(name string) (Test, bool) {
	mu.Lock()
	defer mu.Unlock()
	idxs, ok := byName[name]
	if !ok || len(idxs) == 0 {
		return nil, false
	}
	return tests[idxs[len(idxs)-1]], true
}

// resetForTest clears the registry. It is called directly by this
// package's _test.go files; production code never calls it, since the
// registry lives for the process lifetime.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	tests = nil
	byName = map[string][]int{}
	frozen = false
}

func autoName(prefix string, n int) string {
	return fmt.Sprintf("%s#%d", prefix, n)
}
