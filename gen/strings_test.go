package gen

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gofuzzcheck/gofuzzcheck/bytesource"
)

func TestAlphaStringEmptyList(t *testing.T) {
	g := AlphaString()
	src := bytesource.New([]byte{0x00})
	v, ok := g.Run(src)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "")
	assert.Equal(t, src.Pos(), 1)
}

func TestAlphaStringSingleChar(t *testing.T) {
	g := AlphaString()
	// byte 0 continues the list; the next 8 zero bytes select index 0
	// of alphaLower+alphaUpper ('a'); the final byte stops the list.
	buf := make([]byte, 10)
	buf[0] = 0x01
	src := bytesource.New(buf)
	v, ok := g.Run(src)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "a")
	assert.Equal(t, src.Pos(), 10)
}

func TestAlphaStringDeterministic(t *testing.T) {
	g := AlphaString()
	buf := []byte{0x01, 3, 0, 0, 0, 0, 0, 0, 0, 0x01, 40, 0, 0, 0, 0, 0, 0, 0, 0x00}
	v1, ok1 := g.Run(bytesource.New(buf))
	v2, ok2 := g.Run(bytesource.New(buf))
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, v1, v2)
	for _, r := range v1 {
		assert.Assert(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	}
}

func TestIdentifierStringHeadThenEmptyTail(t *testing.T) {
	g := IdentifierString()
	// 8 zero bytes select index 0 of alphaLower+alphaUpper+"_" ('a')
	// for the head; the final byte stops the (empty) tail list.
	buf := make([]byte, 9)
	src := bytesource.New(buf)
	v, ok := g.Run(src)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "a")
	assert.Equal(t, src.Pos(), 9)
}

func TestIdentifierStringHeadPlusOneTailChar(t *testing.T) {
	g := IdentifierString()
	buf := make([]byte, 18)
	buf[8] = 0x01 // continue the tail list once
	src := bytesource.New(buf)
	v, ok := g.Run(src)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "aa")
	assert.Equal(t, src.Pos(), 18)
}

func TestIdentifierStringHeadNeverADigit(t *testing.T) {
	g := IdentifierString()
	for _, buf := range [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
		{62, 0, 0, 0, 0, 0, 0, 0, 0},
	} {
		v, ok := g.Run(bytesource.New(buf))
		assert.Equal(t, ok, true)
		assert.Assert(t, len(v) >= 1)
		head := rune(v[0])
		assert.Assert(t, (head >= 'a' && head <= 'z') || (head >= 'A' && head <= 'Z') || head == '_')
	}
}
