// Package metrics collects run statistics of the kinetic programs in a
// Prometheus registry that can be written out in the text exposition format
// (for example for the node_exporter textfile collector).
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kinetic"

// Recorder holds the collectors of one program run.
type Recorder struct {
	registry *prometheus.Registry

	descents   *prometheus.CounterVec
	iterations prometheus.Histogram
	best       prometheus.Gauge
	subgraphs  prometheus.Counter
	duration   *prometheus.GaugeVec
}

// New returns a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		descents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "optimize",
			Name:      "descents_total",
			Help:      "Number of finished descents, by whether they met the tolerance.",
		}, []string{"converged"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "optimize",
			Name:      "iterations",
			Help:      "Iterations performed per descent.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "optimize",
			Name:      "best_objective",
			Help:      "Objective value of the best solution found.",
		}),
		subgraphs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "subgraphs_total",
			Help:      "Number of subgraphs enumerated.",
		}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a program stage.",
		}, []string{"stage"}),
	}

	r.registry.MustRegister(r.descents, r.iterations, r.best, r.subgraphs, r.duration)
	return r
}

// ObserveDescent records one finished descent.
func (r *Recorder) ObserveDescent(iterations int, converged bool) {
	r.descents.WithLabelValues(fmt.Sprint(converged)).Inc()
	r.iterations.Observe(float64(iterations))
}

// SetBest records the best objective value.
func (r *Recorder) SetBest(v float64) {
	r.best.Set(v)
}

// AddSubgraphs adds n enumerated subgraphs.
func (r *Recorder) AddSubgraphs(n int) {
	r.subgraphs.Add(float64(n))
}

// ObserveStage records how long a stage took.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	r.duration.WithLabelValues(stage).Set(d.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
