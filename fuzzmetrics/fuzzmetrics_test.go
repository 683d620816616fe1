package fuzzmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"
)

func TestNoopNeverPanics(t *testing.T) {
	Noop.IncPass()
	Noop.IncFail()
	Noop.IncInvalid()
	Noop.IncCrash()
}

func TestPrometheusCollectorIncrementsLabeledCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheus(reg)
	c.IncPass()
	c.IncPass()
	c.IncFail()

	mfs, err := reg.Gather()
	assert.NilError(t, err)
	assert.Assert(t, len(mfs) > 0)
}
