package integration

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gofuse/internal/testutil"
	"github.com/vnykmshr/gofuse/pkg/metrics"
	"github.com/vnykmshr/gofuse/pkg/pipeline"
	"github.com/vnykmshr/gofuse/pkg/profiler"
	"github.com/vnykmshr/gofuse/pkg/runner"
)

type reading struct {
	Sensor string
	Value  float64
}

func sampleReadings(n int) []reading {
	out := make([]reading, n)
	for i := range out {
		out[i] = reading{
			Sensor: "sensor-a",
			Value:  float64(i%150) - 10,
		}
	}
	return out
}

// TestPipelineWithProfilerAndMetrics runs the same chain under every policy
// against one profiler and one private registry, verifying the observation
// hooks see every run.
func TestPipelineWithProfilerAndMetrics(t *testing.T) {
	input := sampleReadings(600)
	prof := profiler.New()
	registry := metrics.NewRegistry(prometheus.NewRegistry())

	policies := []pipeline.Policy{
		pipeline.Sequential,
		pipeline.ParallelPreserveOrder,
		pipeline.ParallelUnordered,
	}

	var want int
	for _, policy := range policies {
		result, err := pipeline.From(input).
			WithStats().
			WithProfiler(prof).
			WithMetricsRegistry("integration", registry).
			Filter(func(r reading) bool { return r.Value >= 0 && r.Value <= 100 }).
			Parallel(4, policy).
			Collect(input)
		testutil.AssertNoError(t, err)

		if want == 0 {
			want = result.Len()
		}
		testutil.AssertEqual(t, result.Len(), want)
		testutil.AssertEqual(t, result.Stats.TotalItems, int64(600))
	}

	profiles := prof.Profiles()
	var recorded int64
	for _, p := range profiles {
		recorded += p.CallCount
	}
	testutil.AssertEqual(t, recorded, int64(len(policies)))
	if prof.TotalTime() <= 0 {
		t.Error("profiler recorded no time")
	}
}

// TestScheduledPipeline wires a chain builder into a runner and lets real
// ticks drive it, checking runner stats against pipeline snapshots.
func TestScheduledPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping scheduled run in short mode")
	}

	var ticks atomic.Int64
	shared := pipeline.NewStats()

	job := runner.NewJob(
		func() *pipeline.Chain[reading, float64] {
			return pipeline.Transform(
				pipeline.From([]reading(nil)).
					WithStatsBlock(shared).
					Filter(func(r reading) bool { return r.Value >= 0 }),
				func(r reading) float64 { return r.Value },
			)
		},
		func() []reading { return sampleReadings(50) },
	)

	r, err := runner.EveryWithConfig(time.Second, job, runner.Config{
		HistorySize: 8,
		OnRun:       func(runner.RunRecord) { ticks.Add(1) },
	})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, r.Start())

	testutil.Eventually(t, func() bool {
		return ticks.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)
	<-r.Stop()

	stats := r.Stats()
	if stats.Runs < 2 {
		t.Fatalf("runs = %d, want at least 2", stats.Runs)
	}
	testutil.AssertEqual(t, stats.Failures, int64(0))

	// The shared block accumulated across scheduled runs.
	snap := shared.Snapshot()
	testutil.AssertEqual(t, snap.TotalItems, stats.Runs*50)
	testutil.AssertEqual(t, snap.TotalItems, snap.ItemsProcessed+snap.ItemsFiltered)

	hist := r.History()
	if len(hist) == 0 || len(hist) > 8 {
		t.Fatalf("history length %d outside bounds", len(hist))
	}
	for _, rec := range hist {
		testutil.AssertNoError(t, rec.Err)
		if rec.Snapshot.TotalItems < 50 {
			t.Errorf("record snapshot total = %d, want at least one batch", rec.Snapshot.TotalItems)
		}
	}
}

// TestConsumedChainAcrossPackages verifies the single-use contract holds
// when a stale chain reaches a runner job.
func TestConsumedChainAcrossPackages(t *testing.T) {
	source := sampleReadings(10)
	stale := pipeline.From(source).Filter(func(r reading) bool { return r.Value >= 0 })
	_, err := stale.Collect(source)
	testutil.AssertNoError(t, err)

	job := runner.NewJob(
		func() *pipeline.Chain[reading, reading] { return stale },
		func() []reading { return source },
	)

	r, err := runner.New("@hourly", job)
	testutil.AssertNoError(t, err)

	rec := r.RunOnce()
	testutil.AssertError(t, rec.Err)
	testutil.AssertEqual(t, r.Stats().Failures, int64(1))
}
