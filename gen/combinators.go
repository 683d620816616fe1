package gen

import (
	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
	"github.com/gofuzzcheck/gofuzzcheck/internal/fuzzerrors"
)

// RangeN is Range(0, n): integers uniformly distributed in [0, n).
func RangeN(n int) Generator[int] {
	return Range(0, n)
}

// Map1 runs ga and applies f to its result. It is the arity-1 case of
// spec §4.2's map(gens, f); Go's type system has no clean way to
// express an arbitrary-arity heterogeneous gens list, so — per spec
// §9's design notes, option (a) — the algebra exposes one combinator
// per arity up to a practical limit (Map1..Map5) instead.
func Map1[A, R any](ga Generator[A], f func(A) R) Generator[R] {
	return newGen(func(s *bytesource.Source) (R, bool) {
		a, ok := ga.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a), true
	})
}

// Map2 runs ga then gb, left to right, and applies f to both results.
func Map2[A, B, R any](ga Generator[A], gb Generator[B], f func(A, B) R) Generator[R] {
	return newGen(func(s *bytesource.Source) (R, bool) {
		a, ok := ga.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		b, ok := gb.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a, b), true
	})
}

// Map3 runs ga, gb, gc left to right and applies f to all three
// results.
func Map3[A, B, C, R any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) R) Generator[R] {
	return newGen(func(s *bytesource.Source) (R, bool) {
		a, ok := ga.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		b, ok := gb.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		c, ok := gc.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a, b, c), true
	})
}

// Map4 runs four generators left to right and applies f to all four
// results.
func Map4[A, B, C, D, R any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], f func(A, B, C, D) R) Generator[R] {
	return newGen(func(s *bytesource.Source) (R, bool) {
		a, ok := ga.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		b, ok := gb.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		c, ok := gc.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		d, ok := gd.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a, b, c, d), true
	})
}

// Map5 runs five generators left to right and applies f to all five
// results.
func Map5[A, B, C, D, E, R any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], f func(A, B, C, D, E) R) Generator[R] {
	return newGen(func(s *bytesource.Source) (R, bool) {
		a, ok := ga.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		b, ok := gb.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		c, ok := gc.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		d, ok := gd.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		e, ok := ge.run(s)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a, b, c, d, e), true
	})
}

// Choose reads one byte b from the source and runs gs[b%len(gs)]. gs
// must be non-empty; an empty gs is a programmer error reported
// synchronously at construction time.
func Choose[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic(fuzzerrors.InvalidArgument("gen.Choose: empty generator list"))
	}
	return newGen(func(s *bytesource.Source) (T, bool) {
		b, ok := s.ReadU8()
		if !ok {
			var zero T
			return zero, false
		}
		return gs[int(b)%len(gs)].run(s)
	})
}

// Weighted pairs a generator with a relative selection weight. It is a
// domain extension over Choose (spec §4.2 combinators are unchanged;
// this is additive): weights are cumulative-summed once at
// construction and one selector byte is scaled against the total to
// pick a branch, so a heavily weighted branch gets more of the byte
// space than a uniform split would give it.
type Weighted[T any] struct {
	Weight uint
	Gen    Generator[T]
}

// WeightedChoose is Choose generalized to non-uniform weights. pairs
// must be non-empty and have a positive total weight; either is a
// programmer error reported synchronously at construction time.
func WeightedChoose[T any](pairs ...Weighted[T]) Generator[T] {
	if len(pairs) == 0 {
		panic(fuzzerrors.InvalidArgument("gen.WeightedChoose: empty pair list"))
	}
	total := uint(0)
	cum := make([]uint, len(pairs))
	for i, p := range pairs {
		total += p.Weight
		cum[i] = total
	}
	if total == 0 {
		panic(fuzzerrors.InvalidArgument("gen.WeightedChoose: total weight is zero"))
	}
	return newGen(func(s *bytesource.Source) (T, bool) {
		b, ok := s.ReadU8()
		if !ok {
			var zero T
			return zero, false
		}
		target := uint(b) % total
		for i, c := range cum {
			if target < c {
				return pairs[i].Gen.run(s)
			}
		}
		return pairs[len(pairs)-1].Gen.run(s)
	})
}

// Option is the value produced by OptionOf: either empty, or wrapping
// a value of T.
type Option[T any] struct {
	Some  bool
	Value T
}

// None and Some construct Option values directly, for properties that
// need to build one without going through a generator (e.g. to feed
// prop.Nonetheless).
func None[T any]() Option[T] { return Option[T]{} }
func Some[T any](v T) Option[T] {
	return Option[T]{Some: true, Value: v}
}

// OptionOf reads one selector byte; on 0 it yields None, otherwise it
// runs g and yields Some of the result.
func OptionOf[T any](g Generator[T]) Generator[Option[T]] {
	return newGen(func(s *bytesource.Source) (Option[T], bool) {
		b, ok := s.ReadU8()
		if !ok {
			return Option[T]{}, false
		}
		if b == 0 {
			return Option[T]{}, true
		}
		v, ok := g.run(s)
		if !ok {
			return Option[T]{}, false
		}
		return Option[T]{Some: true, Value: v}, true
	})
}

// Pair is the value produced by PairOf.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf runs ga then gb, left to right, and yields the pair.
func PairOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return Map2(ga, gb, func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
}

// Result is the value produced by ResultOf: either an Ok of A or an
// Err of B, never both.
type Result[A, B any] struct {
	IsOk bool
	Ok   A
	Err  B
}

// ResultOf reads one selector byte choosing the ok-variant (runs ga)
// or the error-variant (runs gb).
func ResultOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Result[A, B]] {
	return newGen(func(s *bytesource.Source) (Result[A, B], bool) {
		b, ok := s.ReadU8()
		if !ok {
			return Result[A, B]{}, false
		}
		if b&1 == 1 {
			a, ok := ga.run(s)
			if !ok {
				return Result[A, B]{}, false
			}
			return Result[A, B]{IsOk: true, Ok: a}, true
		}
		e, ok := gb.run(s)
		if !ok {
			return Result[A, B]{}, false
		}
		return Result[A, B]{Err: e}, true
	})
}

// List repeatedly reads a continuation byte; while its low bit is 1 it
// runs g and appends the result, otherwise it stops. The empty list is
// reachable (a first continuation byte with low bit 0). Generation
// also stops, regardless of the continuation byte, once
// DefaultMaxListLen elements have been produced — an
// implementation-defined bound per spec §9, Open Question b, chosen
// to guarantee termination on adversarial input.
func List[T any](g Generator[T]) Generator[[]T] {
	return listWithFloor(g, 0)
}

// List1 is List but guaranteed non-empty: one element is always
// produced before the continuation loop begins.
func List1[T any](g Generator[T]) Generator[[]T] {
	return listWithFloor(g, 1)
}

func listWithFloor[T any](g Generator[T], floor int) Generator[[]T] {
	return newGen(func(s *bytesource.Source) ([]T, bool) {
		out := make([]T, 0, floor)
		for i := 0; i < floor; i++ {
			v, ok := g.run(s)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		for len(out) < DefaultMaxListLen {
			cont, ok := s.ReadU8()
			if !ok {
				return nil, false
			}
			if cont&1 == 0 {
				break
			}
			v, ok := g.run(s)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	})
}

// Filter repeatedly draws from g until pred holds, up to maxRetries
// draws. Exhausting the retry budget without a match yields
// out-of-input-equivalent failure for this invocation — mapped by the
// runner to Invalid, never Fail, matching spec §4.4's stance that an
// unproductive input region is uninteresting rather than a
// counterexample.
func Filter[T any](g Generator[T], pred func(T) bool, maxRetries int) Generator[T] {
	return newGen(func(s *bytesource.Source) (T, bool) {
		for i := 0; i < maxRetries; i++ {
			v, ok := g.run(s)
			if !ok {
				var zero T
				return zero, false
			}
			if pred(v) {
				return v, true
			}
		}
		var zero T
		return zero, false
	})
}

// ConcatGenList runs each generator in gs in order, running sepG
// between each pair to obtain a separator, and concatenates all
// resulting strings.
func ConcatGenList(sepG Generator[string], gs []Generator[string]) Generator[string] {
	return newGen(func(s *bytesource.Source) (string, bool) {
		out := ""
		for i, g := range gs {
			if i > 0 {
				sep, ok := sepG.run(s)
				if !ok {
					return "", false
				}
				out += sep
			}
			v, ok := g.run(s)
			if !ok {
				return "", false
			}
			out += v
		}
		return out, true
	})
}

// Unlazy forces thunk on first use and caches the resulting generator,
// delegating to it on every subsequent run. It exists to break
// construction-time cycles when a generator is defined in terms of
// itself via a package-level variable that is not yet initialized at
// the point the thunk is written.
func Unlazy[T any](thunk func() Generator[T]) Generator[T] {
	var cached *Generator[T]
	return newGen(func(s *bytesource.Source) (T, bool) {
		if cached == nil {
			g := thunk()
			cached = &g
		}
		return cached.run(s)
	})
}

// Fix constructs the fixed point of f: a generator g such that g
// behaves identically to f(g) on every input. Recursion must be gated
// by byte consumption inside f (typically via List, Choose, or
// OptionOf on the self-reference) or generation never terminates.
func Fix[T any](f func(Generator[T]) Generator[T]) Generator[T] {
	var self Generator[T]
	self = newGen(func(s *bytesource.Source) (T, bool) {
		return f(self).run(s)
	})
	return self
}

// DynamicBind runs g to obtain a value v, then runs k(v) against the
// remainder of the source. This is the monadic bind: prefer Map
// wherever it suffices, since a generator tree built with
// DynamicBind cannot be statically inspected the way a Map tree can —
// the continuation k is an opaque Go closure, not a value the
// generator algebra can see into.
func DynamicBind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return newGen(func(s *bytesource.Source) (B, bool) {
		a, ok := g.run(s)
		if !ok {
			var zero B
			return zero, false
		}
		return k(a).run(s)
	})
}
