// Package metrics exposes Prometheus counters for the emission workflow.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Emissions counts fiscal-document emission outcomes. A nil *Emissions is
// valid and counts nothing, so callers never need a stub in tests.
type Emissions struct {
	outcomes *prometheus.CounterVec
}

func NewEmissions(reg prometheus.Registerer) *Emissions {
	m := &Emissions{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscal_emissions_total",
			Help: "Fiscal document emission attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.outcomes)

	return m
}

// Success counts a fully persisted emission.
func (m *Emissions) Success() {
	if m != nil {
		m.outcomes.WithLabelValues("success").Inc()
	}
}

// Rejected counts a validation or numbering rejection before the gateway call.
func (m *Emissions) Rejected() {
	if m != nil {
		m.outcomes.WithLabelValues("rejected").Inc()
	}
}

// GatewayFailure counts a non-success gateway response or transport error.
func (m *Emissions) GatewayFailure() {
	if m != nil {
		m.outcomes.WithLabelValues("gateway_failure").Inc()
	}
}

// Failure counts a local persistence failure after a successful gateway call.
func (m *Emissions) Failure() {
	if m != nil {
		m.outcomes.WithLabelValues("failure").Inc()
	}
}
