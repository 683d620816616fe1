// Package fuzzerrors classifies the construction-time programmer
// errors that generator constructors raise, separate from the
// per-test runtime outcome protocol owned by package prop.
package fuzzerrors

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
)

type invalidArgument struct {
	msg string
}

func (e *invalidArgument) Error() string { return e.msg }

// Unwrap chains into containerd/errdefs' own sentinel so that callers
// using cerrdefs.IsInvalidArgument against an error returned from this
// package see the same classification IsInvalidArgument below does.
func (e *invalidArgument) Unwrap() error { return cerrdefs.ErrInvalidArgument }

// InvalidArgument reports that a generator constructor was given a
// nonsensical argument (a non-positive range width, an empty choose
// list, a negative fixed-byte length). It is a programmer error: it
// crashes test setup rather than participating in the Pass/Fail/
// Invalid/Crash outcome protocol.
func InvalidArgument(format string, args ...any) error {
	return &invalidArgument{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err (or anything it wraps) is a
// construction-time invalid-argument error, deferring to
// containerd/errdefs' own classification predicate per this corpus'
// errdefs.IsXxx convention.
func IsInvalidArgument(err error) bool {
	return cerrdefs.IsInvalidArgument(err)
}
