// Package runner provides cron and interval-based re-execution of pipelines.
//
// Chains are single-use, so a runner takes a Job that builds and collects a
// fresh chain on every trigger:
//
//	job := runner.NewJob(
//		func() *pipeline.Chain[int, int] {
//			return pipeline.From(data).Filter(valid).WithStats()
//		},
//		func() []int { return data },
//	)
//
//	r, err := runner.New("*/5 * * * *", job)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = r.Start()
//	defer func() { <-r.Stop() }()
//
// The runner keeps a bounded history of run records and cumulative stats:
//
//	for _, rec := range r.History() {
//		fmt.Println(rec.At, rec.Snapshot)
//	}
//
// Scheduling happens between runs only; a triggered run executes to
// completion like any direct Collect call.
package runner
