package main

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gofuzzcheck/gofuzzcheck/gen"
	"github.com/gofuzzcheck/gofuzzcheck/registry"
)

func TestListCommandPrintsRegisteredNames(t *testing.T) {
	registry.AddTest1("cmd-list-smoke-test", gen.Int(), func(int) {})

	cmd := newListCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	assert.NilError(t, cmd.RunE(cmd, nil))
	assert.Assert(t, strings.Contains(out.String(), "cmd-list-smoke-test"))
}
