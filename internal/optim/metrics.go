package optim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments minimizer runs. A nil *Metrics records nothing.
type Metrics struct {
	// Runs counts finished runs by outcome
	// Labels: "converged", "max_iter", "stalled", "error"
	Runs *prometheus.CounterVec

	Evaluations prometheus.Counter
	Backtracks  prometheus.Counter
	Iterations  prometheus.Histogram
}

// NewMetrics creates minimizer metrics registered with reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adjoint_minimizer_runs_total",
			Help: "Total minimizer runs by outcome",
		}, []string{"outcome"}),

		Evaluations: factory.NewCounter(prometheus.CounterOpts{
			Name: "adjoint_minimizer_evaluations_total",
			Help: "Objective evaluations, including line-search trials",
		}),

		Backtracks: factory.NewCounter(prometheus.CounterOpts{
			Name: "adjoint_minimizer_backtracks_total",
			Help: "Rejected line-search trial points",
		}),

		Iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "adjoint_minimizer_iterations",
			Help:    "Outer iterations per run",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

func (m *Metrics) observe(res Result, outcome string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(outcome).Inc()
	m.Evaluations.Add(float64(res.Evaluations))
	m.Backtracks.Add(float64(res.Backtracks))
	m.Iterations.Observe(float64(res.Iterations))
}
