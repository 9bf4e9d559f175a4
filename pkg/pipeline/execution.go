package pipeline

import (
	"sync"
	"time"
)

// tally holds the chunk-local counters accumulated during a run, away from
// any shared state.
type tally struct {
	processed int64
	filtered  int64
	duration  time.Duration
}

// outputEstimate sizes the output buffer assuming half the input passes.
// It is a performance hint only; append grows past it as needed.
func outputEstimate(n int) int {
	return n / 2
}

// runSequential performs a single ordered forward pass. Timing is measured
// once across the whole pass and counters are merged into stats in one
// batch, never per element.
func runSequential[In, Out any](op func(In) (Out, bool), source []In, stats *Stats) ([]Out, tally) {
	out := make([]Out, 0, outputEstimate(len(source)))

	var processed, filtered int64
	start := time.Now()
	for i := range source {
		v, ok := op(source[i])
		if ok {
			out = append(out, v)
			processed++
		} else {
			filtered++
		}
	}
	elapsed := time.Since(start)

	if stats != nil {
		stats.addBatch(processed, filtered)
	}
	return out, tally{processed: processed, filtered: filtered, duration: elapsed}
}

// runParallel fans the source out over min(workers, len(source)) goroutines,
// one contiguous chunk each, and joins them all before merging. Chunk
// boundaries depend only on the source length and worker count, never on
// runtime timing: the first len%workers chunks take one extra element.
func runParallel[In, Out any](op func(In) (Out, bool), source []In, workers int, policy Policy, stats *Stats) ([]Out, tally) {
	n := len(source)
	if workers > n {
		workers = n
	}
	base := n / workers
	extra := n % workers

	locals := make([][]Out, workers)
	tallies := make([]tally, workers)
	faults := make([]any, workers)
	finished := make(chan int, workers)

	var wg sync.WaitGroup
	start := time.Now()

	offset := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < extra {
			size++
		}
		chunk := source[offset : offset+size]
		offset += size

		wg.Add(1)
		go func(w int, chunk []In) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					faults[w] = r
				}
				finished <- w
			}()

			buf := make([]Out, 0, outputEstimate(len(chunk)))
			var processed, filtered int64
			for i := range chunk {
				v, ok := op(chunk[i])
				if ok {
					buf = append(buf, v)
					processed++
				} else {
					filtered++
				}
			}

			locals[w] = buf
			tallies[w] = tally{processed: processed, filtered: filtered}
			if stats != nil {
				stats.addBatch(processed, filtered)
			}
		}(w, chunk)
	}

	// Join barrier. Every worker is waited for unconditionally, faulted or
	// not, before anything is merged or re-raised.
	wg.Wait()
	close(finished)
	elapsed := time.Since(start)

	for w := 0; w < workers; w++ {
		if faults[w] != nil {
			panic(faults[w])
		}
	}

	var t tally
	total := 0
	for w := 0; w < workers; w++ {
		t.processed += tallies[w].processed
		t.filtered += tallies[w].filtered
		total += len(locals[w])
	}
	t.duration = elapsed

	merged := make([]Out, 0, total)
	if policy == ParallelPreserveOrder {
		for w := 0; w < workers; w++ {
			merged = append(merged, locals[w]...)
		}
	} else {
		// Completion order; any order satisfies the unordered contract.
		for w := range finished {
			merged = append(merged, locals[w]...)
		}
	}

	return merged, t
}
