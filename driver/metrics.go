package driver

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "stepviz"

// Metrics counts produced steps and finished runs per algorithm. A nil
// *Metrics records nothing.
type Metrics struct {
	steps *prometheus.CounterVec
	runs  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "steps_total",
			Help:      "Steps produced, by algorithm.",
		}, []string{"algorithm"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Runs that finished or were abandoned, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
	}

	for _, c := range []prometheus.Collector{m.steps, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register driver metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeStep(alg Algorithm) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(string(alg)).Inc()
}

func (m *Metrics) observeRun(alg Algorithm, outcome Outcome) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(string(alg), string(outcome)).Inc()
}
