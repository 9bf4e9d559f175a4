package pipeline

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats is a set of monotonically increasing counters owned by a single
// chain instance for a single Collect call. Workers update it only through
// whole-batch atomic adds after their local loop; the join barrier in the
// engine is the synchronization edge the counters rely on.
type Stats struct {
	itemsProcessed atomic.Int64
	itemsFiltered  atomic.Int64
	errs           atomic.Int64 // reserved for fault reporting
	totalItems     atomic.Int64
	totalDuration  atomic.Int64 // nanoseconds
}

// NewStats creates an empty stats block.
func NewStats() *Stats {
	return &Stats{}
}

// addBatch merges one worker's local counters in a single update per counter.
func (s *Stats) addBatch(processed, filtered int64) {
	s.itemsProcessed.Add(processed)
	s.itemsFiltered.Add(filtered)
}

// addRun records the input size and wall-clock duration of one completed run.
func (s *Stats) addRun(total int64, d time.Duration) {
	s.totalItems.Add(total)
	s.totalDuration.Add(int64(d))
}

// Reset zeroes all counters so the block can back a new pipeline instance.
func (s *Stats) Reset() {
	s.itemsProcessed.Store(0)
	s.itemsFiltered.Store(0)
	s.errs.Store(0)
	s.totalItems.Store(0)
	s.totalDuration.Store(0)
}

// Snapshot returns a value copy of the counters. The copy is decoupled from
// the block; a later Reset does not affect it.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		ItemsProcessed: s.itemsProcessed.Load(),
		ItemsFiltered:  s.itemsFiltered.Load(),
		Errors:         s.errs.Load(),
		TotalItems:     s.totalItems.Load(),
		TotalDuration:  time.Duration(s.totalDuration.Load()),
	}
}

// Snapshot is an immutable copy of a stats block taken when a run completes.
// Derived metrics are computed from the raw counters on demand, never stored.
type Snapshot struct {
	ItemsProcessed int64
	ItemsFiltered  int64
	Errors         int64
	TotalItems     int64
	TotalDuration  time.Duration
}

// PassRate returns the fraction of input items that passed all stages,
// in [0, 1]. Returns 0 for an empty run.
func (s Snapshot) PassRate() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.ItemsProcessed) / float64(s.TotalItems)
}

// AvgLatency returns the average duration per input item. The divisor is
// TotalItems, filtered items included, not just items that passed.
func (s Snapshot) AvgLatency() time.Duration {
	if s.TotalItems == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.TotalItems)
}

// Throughput returns input items per second for the run. Returns 0 when no
// duration was recorded.
func (s Snapshot) Throughput() float64 {
	if s.TotalDuration <= 0 {
		return 0
	}
	return float64(s.TotalItems) / s.TotalDuration.Seconds()
}

// String formats the snapshot for logs and reports.
func (s Snapshot) String() string {
	return fmt.Sprintf("processed=%d filtered=%d total=%d errors=%d duration=%s pass=%.2f%%",
		s.ItemsProcessed, s.ItemsFiltered, s.TotalItems, s.Errors, s.TotalDuration, s.PassRate()*100)
}
