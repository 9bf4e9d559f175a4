// Package metrics provides Prometheus instrumentation for gofuse pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gofuse components.
type Registry struct {
	// Pipeline run metrics
	RunsTotal      *prometheus.CounterVec
	ItemsProcessed *prometheus.CounterVec
	ItemsFiltered  *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	OutputItems    *prometheus.GaugeVec

	// Runner metrics
	ScheduledRuns   *prometheus.CounterVec
	ScheduledErrors *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gofuse components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofuse",
				Subsystem: "pipeline",
				Name:      "runs_total",
				Help:      "Total number of completed pipeline runs",
			},
			[]string{"pipeline_name"},
		),

		ItemsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofuse",
				Subsystem: "pipeline",
				Name:      "items_processed_total",
				Help:      "Total number of items that passed all stages",
			},
			[]string{"pipeline_name"},
		),

		ItemsFiltered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofuse",
				Subsystem: "pipeline",
				Name:      "items_filtered_total",
				Help:      "Total number of items dropped by a filter stage",
			},
			[]string{"pipeline_name"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gofuse",
				Subsystem: "pipeline",
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of pipeline runs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pipeline_name"},
		),

		OutputItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gofuse",
				Subsystem: "pipeline",
				Name:      "output_items",
				Help:      "Output size of the most recent pipeline run",
			},
			[]string{"pipeline_name"},
		),

		ScheduledRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofuse",
				Subsystem: "runner",
				Name:      "scheduled_runs_total",
				Help:      "Total number of runs triggered by a runner",
			},
			[]string{"runner_name"},
		),

		ScheduledErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofuse",
				Subsystem: "runner",
				Name:      "scheduled_errors_total",
				Help:      "Total number of scheduled runs that returned an error",
			},
			[]string{"runner_name"},
		),
	}
}

// ObserveRun records one completed pipeline run under the given name.
func (r *Registry) ObserveRun(name string, processed, filtered int64, duration time.Duration, output int) {
	r.RunsTotal.WithLabelValues(name).Inc()
	r.ItemsProcessed.WithLabelValues(name).Add(float64(processed))
	r.ItemsFiltered.WithLabelValues(name).Add(float64(filtered))
	r.RunDuration.WithLabelValues(name).Observe(duration.Seconds())
	r.OutputItems.WithLabelValues(name).Set(float64(output))
}

// ObserveScheduledRun records one runner-triggered execution.
func (r *Registry) ObserveScheduledRun(name string, err error) {
	r.ScheduledRuns.WithLabelValues(name).Inc()
	if err != nil {
		r.ScheduledErrors.WithLabelValues(name).Inc()
	}
}
