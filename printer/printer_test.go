package printer

import (
	"bytes"
	"io"
	"testing"

	"gotest.tools/v3/assert"
)

func TestWriteValueExplicitPrinterWins(t *testing.T) {
	var buf bytes.Buffer
	WriteValue[int](&buf, 5, func(w io.Writer, v int) {
		w.Write([]byte("explicit:5"))
	})
	assert.Equal(t, buf.String(), "explicit:5")
}

func TestWriteValueFallsBackToRegistry(t *testing.T) {
	type widget struct{ N int }
	Register[widget](func(w io.Writer, v widget) {
		w.Write([]byte("registered-widget"))
	})
	var buf bytes.Buffer
	WriteValue[widget](&buf, widget{N: 1}, nil)
	assert.Equal(t, buf.String(), "registered-widget")
}

func TestWriteValueFallsBackToDefault(t *testing.T) {
	type unregistered struct{ X int }
	var buf bytes.Buffer
	WriteValue[unregistered](&buf, unregistered{X: 7}, nil)
	assert.Assert(t, buf.Len() > 0)
}

func TestDiffNeverPanics(t *testing.T) {
	type withFunc struct {
		F func()
	}
	assert.Assert(t, func() bool {
		defer func() { recover() }()
		Diff(withFunc{}, withFunc{})
		return true
	}())
}

func TestListFallbackAndOptionFallbackRender(t *testing.T) {
	lp := ListFallback[int](nil)
	var buf bytes.Buffer
	lp(&buf, []int{1, 2, 3})
	assert.Assert(t, buf.Len() > 0)

	op := OptionFallback[int](nil)
	var buf2 bytes.Buffer
	op(&buf2, Opt[int]{Some: true, Value: 9})
	assert.Assert(t, buf2.Len() > 0)

	var buf3 bytes.Buffer
	op(&buf3, Opt[int]{})
	assert.Equal(t, buf3.String(), "none")
}
