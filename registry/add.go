package registry

import (
	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
	"github.com/gofuzzcheck/gofuzzcheck/gen"
	"github.com/gofuzzcheck/gofuzzcheck/prop"
)

// Each test<N> implements Test for one fixed arity, decoding its N
// generators left to right (spec §5 "Ordering guarantees") before
// invoking the property. Like gen's Map1..Map5, this is the
// tagged-variant-of-fixed-arities approach spec §9 recommends over
// reflection-based dynamic arity.

type test1[A any] struct {
	name string
	ga   gen.Generator[A]
	prop func(A)
}

func (t *test1[A]) Name() string { return t.name }
func (t *test1[A]) Run(src *bytesource.Source) prop.Outcome {
	a, ok := t.ga.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	return prop.Run(func() { t.prop(a) })
}

// AddTest1 registers a one-argument test. An empty name is replaced
// with an auto-generated one (spec §4.5 allows anonymous tests).
func AddTest1[A any](name string, ga gen.Generator[A], property func(A)) {
	if name == "" {
		name = autoName("test", len(Tests()))
	}
	register(&test1[A]{name: name, ga: ga, prop: property})
}

type test2[A, B any] struct {
	name string
	ga   gen.Generator[A]
	gb   gen.Generator[B]
	prop func(A, B)
}

func (t *test2[A, B]) Name() string { return t.name }
func (t *test2[A, B]) Run(src *bytesource.Source) prop.Outcome {
	a, ok := t.ga.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	b, ok := t.gb.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	return prop.Run(func() { t.prop(a, b) })
}

// AddTest2 registers a two-argument test.
func AddTest2[A, B any](name string, ga gen.Generator[A], gb gen.Generator[B], property func(A, B)) {
	if name == "" {
		name = autoName("test", len(Tests()))
	}
	register(&test2[A, B]{name: name, ga: ga, gb: gb, prop: property})
}

type test3[A, B, C any] struct {
	name string
	ga   gen.Generator[A]
	gb   gen.Generator[B]
	gc   gen.Generator[C]
	prop func(A, B, C)
}

func (t *test3[A, B, C]) Name() string { return t.name }
func (t *test3[A, B, C]) Run(src *bytesource.Source) prop.Outcome {
	a, ok := t.ga.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	b, ok := t.gb.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	c, ok := t.gc.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	return prop.Run(func() { t.prop(a, b, c) })
}

// AddTest3 registers a three-argument test.
func AddTest3[A, B, C any](name string, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], property func(A, B, C)) {
	if name == "" {
		name = autoName("test", len(Tests()))
	}
	register(&test3[A, B, C]{name: name, ga: ga, gb: gb, gc: gc, prop: property})
}

type test4[A, B, C, D any] struct {
	name string
	ga   gen.Generator[A]
	gb   gen.Generator[B]
	gc   gen.Generator[C]
	gd   gen.Generator[D]
	prop func(A, B, C, D)
}

func (t *test4[A, B, C, D]) Name() string { return t.name }
func (t *test4[A, B, C, D]) Run(src *bytesource.Source) prop.Outcome {
	a, ok := t.ga.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	b, ok := t.gb.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	c, ok := t.gc.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	d, ok := t.gd.Run(src)
	if !ok {
		return prop.Outcome{Kind: prop.Invalid, Message: "out of input while decoding generator tree"}
	}
	return prop.Run(func() { t.prop(a, b, c, d) })
}

// AddTest4 registers a four-argument test.
func AddTest4[A, B, C, D any](name string, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], property func(A, B, C, D)) {
	if name == "" {
		name = autoName("test", len(Tests()))
	}
	register(&test4[A, B, C, D]{name: name, ga: ga, gb: gb, gc: gc, gd: gd, prop: property})
}
