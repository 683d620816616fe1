// Package fuzzmetrics exposes the harness's four outcome counters to
// Prometheus, the pull-based metrics convention this corpus uses
// (spec §4.9). The harness always calls a Collector, defaulting to a
// no-op so running it without a metrics server wired in changes
// nothing about the outcome protocol (spec §8 Property 11).
package fuzzmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector records one increment per harness iteration outcome.
type Collector interface {
	IncPass()
	IncFail()
	IncInvalid()
	IncCrash()
}

type noop struct{}

func (noop) IncPass()    {}
func (noop) IncFail()    {}
func (noop) IncInvalid() {}
func (noop) IncCrash()   {}

// Noop is the zero-cost default Collector.
var Noop Collector = noop{}

// Prometheus is a Collector backed by a counter vector labeled by
// outcome kind, registered against reg.
type Prometheus struct {
	outcomes *prometheus.CounterVec
}

// NewPrometheus registers a gofuzzcheck_outcomes_total counter vector
// against reg and returns a Collector backed by it.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gofuzzcheck_outcomes_total",
		Help: "Count of harness iterations by outcome kind.",
	}, []string{"kind"})
	reg.MustRegister(cv)
	return &Prometheus{outcomes: cv}
}

func (p *Prometheus) IncPass()    { p.outcomes.WithLabelValues("pass").Inc() }
func (p *Prometheus) IncFail()    { p.outcomes.WithLabelValues("fail").Inc() }
func (p *Prometheus) IncInvalid() { p.outcomes.WithLabelValues("invalid").Inc() }
func (p *Prometheus) IncCrash()   { p.outcomes.WithLabelValues("crash").Inc() }
