package prop

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/gofuzzcheck/gofuzzcheck/gen"
	"github.com/gofuzzcheck/gofuzzcheck/printer"
)

// Fail triggers a Fail outcome with message, with no attached
// counterexample values.
func Fail(message string) {
	panic(failSignal{message: message})
}

// Failf is Fail with a format string.
func Failf(format string, args ...any) {
	panic(failSignal{message: fmt.Sprintf(format, args...)})
}

// Check triggers a Fail outcome if cond is false.
func Check(cond bool) {
	if !cond {
		panic(failSignal{message: "check failed"})
	}
}

// Guard triggers an Invalid outcome if cond is false. Use it to reject
// a generated input that technically decoded but does not represent
// an interesting case for this property (spec §4.4, §7).
func Guard(cond bool) {
	if !cond {
		panic(invalidSignal{})
	}
}

// BadTest unconditionally triggers an Invalid outcome.
func BadTest() {
	panic(invalidSignal{})
}

// Nonetheless unwraps opt, triggering Invalid if it is None. It exists
// for properties that thread an Option through a computation and want
// to bail out as Invalid — rather than Fail — when the computation
// legitimately produces nothing.
func Nonetheless[T any](opt gen.Option[T]) T {
	if !opt.Some {
		panic(invalidSignal{})
	}
	return opt.Value
}

// CheckEqOption configures CheckEq's equality and printing strategy.
type CheckEqOption[T any] struct {
	pp  printer.Printer[T]
	cmp func(a, b T) int
	eq  func(a, b T) bool
}

// WithPP supplies an explicit printer, the highest-priority choice in
// the printer priority chain (spec §4.4, §8 Property 6).
func WithPP[T any](p printer.Printer[T]) CheckEqOption[T] {
	return CheckEqOption[T]{pp: p}
}

// WithCmp supplies a three-way comparator; equality is the comparator
// reduced to a zero-comparison. Second priority after WithEq (spec §8
// Property 7).
func WithCmp[T any](c func(a, b T) int) CheckEqOption[T] {
	return CheckEqOption[T]{cmp: c}
}

// WithEq supplies an explicit equality function, the highest-priority
// equality choice (spec §8 Property 7).
func WithEq[T any](eq func(a, b T) bool) CheckEqOption[T] {
	return CheckEqOption[T]{eq: eq}
}

func mergeCheckEqOptions[T any](opts []CheckEqOption[T]) CheckEqOption[T] {
	var merged CheckEqOption[T]
	for _, o := range opts {
		if o.pp != nil {
			merged.pp = o.pp
		}
		if o.cmp != nil {
			merged.cmp = o.cmp
		}
		if o.eq != nil {
			merged.eq = o.eq
		}
	}
	return merged
}

// defaultEqual is the structural/polymorphic fallback equality, tier 3
// of spec §4.4's priority list. It is go-cmp's Equal, which — like
// Go's own == on floats — treats NaN as unequal to NaN (spec §9, Open
// Question c). Types that go-cmp cannot compare without an explicit
// Equal method or exported fields fall back to reflect.DeepEqual
// rather than panicking, since a comparison failure must never itself
// crash the harness.
func defaultEqual[T any](x, y T) bool {
	var eq bool
	ok := func() (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		eq = cmp.Equal(x, y)
		return true
	}()
	if ok {
		return eq
	}
	return reflect.DeepEqual(x, y)
}

// CheckEq triggers a Fail outcome if x and y are unequal, resolving
// equality in priority order (eq, then cmp reduced to equality, then
// default structural equality) and rendering both values using, in
// priority order, an explicit printer, the nearest printer registered
// via gen.WithPrinter, or the built-in fallback (spec §4.4, §8
// Properties 6 and 7).
func CheckEq[T any](x, y T, opts ...CheckEqOption[T]) {
	o := mergeCheckEqOptions(opts)

	var equal bool
	switch {
	case o.eq != nil:
		equal = o.eq(x, y)
	case o.cmp != nil:
		equal = o.cmp(x, y) == 0
	default:
		equal = defaultEqual(x, y)
	}
	if equal {
		return
	}

	xs := printer.Render(x, o.pp)
	ys := printer.Render(y, o.pp)
	rendered := fmt.Sprintf("left:  %s\nright: %s\ndiff:  %s", xs, ys, printer.Diff(x, y))
	panic(failSignal{
		message:  fmt.Sprintf("check_eq failed: %s != %s", xs, ys),
		rendered: rendered,
	})
}
