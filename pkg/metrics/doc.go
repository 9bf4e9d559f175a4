// Package metrics provides Prometheus instrumentation for gofuse components.
//
// # Quick Start
//
// Attach metrics to a chain by name and expose them over HTTP:
//
//	res, err := pipeline.From(input).
//		WithMetrics("ingest").
//		Filter(valid).
//		Collect(input)
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	reg := prometheus.NewRegistry()
//	registry := metrics.NewRegistry(reg)
//
//	res, err := pipeline.From(input).
//		WithMetricsRegistry("ingest", registry).
//		Collect(input)
//
// # Available Metrics
//
// Pipeline metrics, labeled by pipeline_name:
//
//   - gofuse_pipeline_runs_total: Total number of completed pipeline runs
//   - gofuse_pipeline_items_processed_total: Items that passed all stages
//   - gofuse_pipeline_items_filtered_total: Items dropped by a filter stage
//   - gofuse_pipeline_run_duration_seconds: Wall-clock duration of runs
//   - gofuse_pipeline_output_items: Output size of the most recent run
//
// Runner metrics, labeled by runner_name:
//
//   - gofuse_runner_scheduled_runs_total: Runs triggered by a runner
//   - gofuse_runner_scheduled_errors_total: Scheduled runs that failed
//
// # Performance
//
// Metrics are recorded once per completed run, never per element, so the
// hot per-element loop carries no instrumentation cost.
package metrics
