/*
Package gofuse provides a fused filter/transform pipeline engine for finite
in-memory collections, with sequential and fork/join parallel execution.

Pipeline Engine (pkg/pipeline):
  - Chain: type-safe builder that fuses all stages into one per-element call
  - Sequential, ParallelPreserveOrder and ParallelUnordered execution policies
  - Per-run statistics with batch atomic updates

Supporting packages:
  - profiler: named-timer accumulation for coarse stage timing
  - metrics: Prometheus instrumentation for completed runs
  - runner: cron and interval-based re-execution of pipelines

Example usage:

	import "github.com/vnykmshr/gofuse/pkg/pipeline"

	input := []int{1, 2, 3, 4, 5}

	res, err := pipeline.From(input).
		WithStats().
		Filter(func(x int) bool { return x > 3 }).
		Map(func(x int) int { return x * 2 }).
		Parallel(4, pipeline.ParallelPreserveOrder).
		Collect(input)

	// res.Data == []int{8, 10}
	fmt.Printf("pass rate: %.2f%%\n", res.Stats.PassRate()*100)
*/
package gofuse
