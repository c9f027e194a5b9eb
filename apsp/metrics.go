// SPDX-License-Identifier: MIT

package apsp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the prometheus collectors updated by Compute. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	runs           *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	negativeCycles prometheus.Counter
}

// Outcome labels for tubepath_solver_runs_total.
const (
	outcomeOK            = "ok"
	outcomeNegativeCycle = "negative_cycle"
	outcomeError         = "error"
)

// NewMetrics registers the orchestrator collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tubepath_solver_runs_total",
			Help: "Single-source solver runs by solver and outcome.",
		}, []string{"solver", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tubepath_apsp_duration_seconds",
			Help:    "Wall time of a full all-pairs computation.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}, []string{"solver"}),
		negativeCycles: f.NewCounter(prometheus.CounterOpts{
			Name: "tubepath_negative_cycle_sources_total",
			Help: "Sources whose run reached a negative cycle.",
		}),
	}
}

func (m *Metrics) observeRun(s Solver, outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(s.String(), outcome).Inc()
	if outcome == outcomeNegativeCycle {
		m.negativeCycles.Inc()
	}
}

func (m *Metrics) observeDuration(s Solver, seconds float64) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(s.String()).Observe(seconds)
}
