// Package bytesource implements the single-pass byte cursor that every
// generator reads from. It has no knowledge of generators, properties,
// or the fuzzer collaborator above it; it only turns a byte slice into
// primitive values in a fixed, documented order.
package bytesource

import (
	"encoding/binary"
	"math"
)

// Source is a finite, position-tracked view over an externally owned
// byte buffer. A Source is not safe for concurrent use; a single test
// iteration owns it exclusively.
type Source struct {
	buf       []byte
	pos       int
	exhausted bool
}

// New wraps buf in a fresh Source. buf is not copied; the caller must
// not mutate it for the lifetime of the Source.
func New(buf []byte) *Source {
	return &Source{buf: buf}
}

// Exhausted reports whether any read on this Source has already run
// past the end of the buffer. Once set it is sticky: a Source that has
// gone out-of-input never recovers, matching the outcome protocol's
// rule that the current generator invocation halts immediately.
func (s *Source) Exhausted() bool {
	return s.exhausted
}

// Pos returns the number of bytes consumed so far.
func (s *Source) Pos() int {
	return s.pos
}

// Len returns the number of unread bytes remaining.
func (s *Source) Len() int {
	if s.exhausted {
		return 0
	}
	return len(s.buf) - s.pos
}

func (s *Source) take(n int) ([]byte, bool) {
	if s.exhausted || n < 0 || s.pos+n > len(s.buf) {
		s.exhausted = true
		return nil, false
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, true
}

// ReadU8 consumes one byte. The second return value is false on
// exhaustion.
func (s *Source) ReadU8() (uint8, bool) {
	b, ok := s.take(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

// ReadU16 consumes two bytes and decodes them as unsigned
// little-endian.
func (s *Source) ReadU16() (uint16, bool) {
	b, ok := s.take(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

// ReadU32 consumes four bytes and decodes them as unsigned
// little-endian.
func (s *Source) ReadU32() (uint32, bool) {
	b, ok := s.take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// ReadU64 consumes eight bytes and decodes them as unsigned
// little-endian.
func (s *Source) ReadU64() (uint64, bool) {
	b, ok := s.take(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

// ReadI8 consumes one byte, reinterpreted as two's-complement signed.
func (s *Source) ReadI8() (int8, bool) {
	v, ok := s.ReadU8()
	if !ok {
		return 0, false
	}
	return int8(v), true
}

// ReadI16 consumes two bytes, reinterpreted as two's-complement
// signed.
func (s *Source) ReadI16() (int16, bool) {
	v, ok := s.ReadU16()
	if !ok {
		return 0, false
	}
	return int16(v), true
}

// ReadI32 consumes four bytes, reinterpreted as two's-complement
// signed.
func (s *Source) ReadI32() (int32, bool) {
	v, ok := s.ReadU32()
	if !ok {
		return 0, false
	}
	return int32(v), true
}

// ReadI64 consumes eight bytes, reinterpreted as two's-complement
// signed.
func (s *Source) ReadI64() (int64, bool) {
	v, ok := s.ReadU64()
	if !ok {
		return 0, false
	}
	return int64(v), true
}

// ReadDouble consumes eight bytes and decodes them as IEEE-754
// binary64, bit pattern taken in native (little-endian on-disk) order.
// NaNs, infinities, and subnormals pass through unfiltered.
func (s *Source) ReadDouble() (float64, bool) {
	v, ok := s.ReadU64()
	if !ok {
		return 0, false
	}
	return math.Float64frombits(v), true
}

// ReadBytesVar consumes one length-prefix byte L, then L bytes,
// yielding a byte string of length 0..255.
func (s *Source) ReadBytesVar() ([]byte, bool) {
	l, ok := s.ReadU8()
	if !ok {
		return nil, false
	}
	return s.ReadBytesFixed(int(l))
}

// ReadBytesFixed consumes exactly k bytes. k must be non-negative; the
// caller (a generator constructor) is responsible for rejecting
// negative k before it reaches here.
func (s *Source) ReadBytesFixed(k int) ([]byte, bool) {
	b, ok := s.take(k)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true
}
