// Package printer implements the pretty-printer machinery: typed
// printer values, the decorative attachment used by gen.WithPrinter,
// and the best-effort global registry consulted when a failing
// property did not supply one explicitly.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Printer renders a value of T to w. Printers are plain values; they
// carry no state beyond what the function literal closes over.
type Printer[T any] func(w io.Writer, v T)

var registry sync.Map // reflect.Type -> func(io.Writer, any)

// Register associates p with T in the process-wide best-effort
// registry. Later registrations for the same T win; this mirrors
// with_printer's decorative, last-attachment-wins semantics when the
// same generator type is decorated more than once.
func Register[T any](p Printer[T]) {
	var zero T
	registry.Store(reflect.TypeOf(&zero).Elem(), func(w io.Writer, v any) {
		p(w, v.(T))
	})
}

func lookupDynamic(t reflect.Type) (func(io.Writer, any), bool) {
	v, ok := registry.Load(t)
	if !ok {
		return nil, false
	}
	return v.(func(io.Writer, any)), true
}

// WriteValue renders v using, in priority order: an explicit printer
// p (if non-nil), the nearest printer registered for T, else the
// best-effort fallback.
func WriteValue[T any](w io.Writer, v T, p Printer[T]) {
	if p != nil {
		p(w, v)
		return
	}
	if dyn, ok := lookupDynamic(reflect.TypeOf(&v).Elem()); ok {
		dyn(w, v)
		return
	}
	Fallback(w, v)
}

// Render is WriteValue into a fresh string, for callers building a
// failure report rather than streaming to a sink directly.
func Render[T any](v T, p Printer[T]) string {
	var buf bytes.Buffer
	WriteValue(&buf, v, p)
	return buf.String()
}

// Fallback is the built-in best-effort printer derived from Go's own
// value formatting: Go-syntax representation via %#v. It never panics
// — a value whose type cannot be formatted that way still renders as
// something, since this is the last resort in the printer priority
// chain and a failure report must never itself crash the harness.
func Fallback[T any](w io.Writer, v T) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(w, "%v", v)
			}
		}()
		fmt.Fprintf(w, "%#v", v)
	}()
}

// ListFallback and OptionFallback are the wrapper printers mentioned
// in §4.3: a primitive element printer lifted over list and option
// shapes, used when the runner derives a fallback for a composite
// generator rather than a primitive one.
func ListFallback[T any](elem Printer[T]) Printer[[]T] {
	return func(w io.Writer, vs []T) {
		fmt.Fprint(w, "[")
		for i, v := range vs {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			WriteValue(w, v, elem)
		}
		fmt.Fprint(w, "]")
	}
}

func OptionFallback[T any](some Printer[T]) Printer[Opt[T]] {
	return func(w io.Writer, v Opt[T]) {
		if !v.Some {
			fmt.Fprint(w, "none")
			return
		}
		fmt.Fprint(w, "some(")
		WriteValue(w, v.Value, some)
		fmt.Fprint(w, ")")
	}
}

// Opt mirrors gen.Option's shape without importing package gen, which
// would otherwise create a cycle (gen attaches printers that must name
// this shape).
type Opt[T any] struct {
	Some  bool
	Value T
}

// Diff renders a best-effort structural diff between x and y, used by
// package prop to enrich check_eq failure reports beyond the bare
// rendered values required by §4.4. It never panics: cmp.Diff can
// itself fail on types with unexported fields and no Equal method, in
// which case Diff reports that a diff was not available rather than
// aborting the report.
func Diff[T any](x, y T) string {
	var out string
	func() {
		defer func() {
			if r := recover(); r != nil {
				out = "(no diff available)"
			}
		}()
		out = cmp.Diff(x, y)
	}()
	return out
}
