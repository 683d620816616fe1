// Package gen implements the generator algebra: the typed combinator
// language for building deterministic producers of arbitrary values
// from a bytesource.Source, per spec §4.2.
//
// A Generator[T] is a value, not a service: it holds no state beyond
// what its constructor closed over, and running the same generator
// against the same source position twice yields the same value and
// consumes the same number of bytes (spec §4.2 "Determinism").
package gen

import (
	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
	"github.com/gofuzzcheck/gofuzzcheck/internal/fuzzerrors"
	"github.com/gofuzzcheck/gofuzzcheck/printer"
)

// DefaultMaxListLen bounds list and list1 when the byte budget alone
// would not terminate generation. It is process-wide and mutable only
// before the harness loop starts, matching the Test Registry's
// single-writer-then-frozen lifecycle; the harness wires it from
// fuzzconfig at startup.
var DefaultMaxListLen = 4096

// Generator is an opaque producer of values of type T, parameterized
// by a bytesource.Source. Generators are values: they have no
// identity and no defined equality.
type Generator[T any] struct {
	run func(*bytesource.Source) (T, bool)
	pp  printer.Printer[T]
}

// Run threads src through g, yielding the decoded value or false if
// src went out-of-input partway through.
func (g Generator[T]) Run(src *bytesource.Source) (T, bool) {
	return g.run(src)
}

// Printer returns the printer attached via WithPrinter, or nil if
// none was attached.
func (g Generator[T]) Printer() printer.Printer[T] {
	return g.pp
}

func newGen[T any](run func(*bytesource.Source) (T, bool)) Generator[T] {
	return Generator[T]{run: run}
}

// WithPrinter produces the same values as g, but associates p as the
// generator's default printer, and best-effort registers p in the
// global printer registry for T. Attachment is decorative: it never
// changes which values g produces.
func WithPrinter[T any](p printer.Printer[T], g Generator[T]) Generator[T] {
	printer.Register(p)
	g.pp = p
	return g
}

// Const consumes no bytes and always yields v.
func Const[T any](v T) Generator[T] {
	return newGen(func(*bytesource.Source) (T, bool) {
		return v, true
	})
}

// Int produces a platform-word signed integer over its full range.
func Int() Generator[int] {
	return newGen(func(s *bytesource.Source) (int, bool) {
		v, ok := s.ReadI64()
		return int(v), ok
	})
}

// Uint8 produces a byte over its full range.
func Uint8() Generator[uint8] {
	return newGen(func(s *bytesource.Source) (uint8, bool) { return s.ReadU8() })
}

// Int8 produces a signed byte over its full range.
func Int8() Generator[int8] {
	return newGen(func(s *bytesource.Source) (int8, bool) { return s.ReadI8() })
}

// Uint16 produces an unsigned 16-bit integer over its full range.
func Uint16() Generator[uint16] {
	return newGen(func(s *bytesource.Source) (uint16, bool) { return s.ReadU16() })
}

// Int16 produces a signed 16-bit integer over its full range.
func Int16() Generator[int16] {
	return newGen(func(s *bytesource.Source) (int16, bool) { return s.ReadI16() })
}

// Int32 produces a signed 32-bit integer over its full range.
func Int32() Generator[int32] {
	return newGen(func(s *bytesource.Source) (int32, bool) { return s.ReadI32() })
}

// Int64 produces a signed 64-bit integer over its full range.
func Int64() Generator[int64] {
	return newGen(func(s *bytesource.Source) (int64, bool) { return s.ReadI64() })
}

// Float produces a float64 over the full IEEE-754 binary64 range,
// including NaNs, infinities, and subnormals. Nothing is filtered.
func Float() Generator[float64] {
	return newGen(func(s *bytesource.Source) (float64, bool) { return s.ReadDouble() })
}

// boolLowBit is the documented, stable byte policy for Bool: a byte's
// low bit determines truth, chosen so any fixed seed replays to the
// same outcome (spec §9, Open Question a).
func boolLowBit(b uint8) bool { return b&1 == 1 }

// Bool reads one byte and yields true iff its low bit is set.
func Bool() Generator[bool] {
	return newGen(func(s *bytesource.Source) (bool, bool) {
		b, ok := s.ReadU8()
		if !ok {
			return false, false
		}
		return boolLowBit(b), true
	})
}

// Bytes produces a variable-length byte string via the one-byte
// length prefix (0..255 bytes).
func Bytes() Generator[[]byte] {
	return newGen(func(s *bytesource.Source) ([]byte, bool) { return s.ReadBytesVar() })
}

// BytesFixed produces exactly k bytes. A negative k is a programmer
// error, reported synchronously at construction time.
func BytesFixed(k int) Generator[[]byte] {
	if k < 0 {
		panic(fuzzerrors.InvalidArgument("gen.BytesFixed: negative length %d", k))
	}
	return newGen(func(s *bytesource.Source) ([]byte, bool) { return s.ReadBytesFixed(k) })
}

// Range produces integers uniformly distributed, from the fuzzer's
// perspective, in [min, min+n). n must be at least 1; n<=0 is a
// programmer error reported synchronously at construction time.
func Range(min int, n int) Generator[int] {
	if n <= 0 {
		panic(fuzzerrors.InvalidArgument("gen.Range: non-positive width %d", n))
	}
	un := uint64(n)
	return newGen(func(s *bytesource.Source) (int, bool) {
		v, ok := s.ReadU64()
		if !ok {
			return 0, false
		}
		return min + int(v%un), true
	})
}
