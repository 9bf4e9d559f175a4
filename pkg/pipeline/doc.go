/*
Package pipeline provides a fused filter/transform engine over finite slices
with sequential and fork/join parallel execution.

Build a chain with From, add stages with Filter, Map and Transform, and run
it with Collect. All stages are fused into a single per-element function at
construction time, so chain depth adds no per-element allocation.

# Quick Start

	input := []int{1, 2, 3, 4, 5}

	res, err := pipeline.From(input).
		Filter(func(x int) bool { return x > 3 }).
		Map(func(x int) int { return x * 2 }).
		Collect(input)

	// res.Data == []int{8, 10}

Changing the element type uses the package-level Transform:

	chain := pipeline.Transform(pipeline.From(books), func(b Book) string {
		return b.Title
	})

# Parallel Execution

Parallel splits the source into contiguous chunks, one worker goroutine per
chunk, and joins them all within the Collect call:

	res, err := pipeline.From(input).
		Filter(even).
		Parallel(8, pipeline.ParallelPreserveOrder).
		Collect(input)

ParallelPreserveOrder reproduces the sequential output exactly;
ParallelUnordered guarantees only multiset equality. Stage functions must be
pure; that precondition makes concurrent invocation on disjoint chunks safe
and is not checked at runtime.

# Statistics

WithStats attaches a per-instance stats block. Workers merge local counters
into it with one batch update each; the result carries a value snapshot:

	res, _ := pipeline.From(input).WithStats().Filter(even).Collect(input)
	fmt.Println(res.Stats.PassRate(), res.Stats.AvgLatency())

AvgLatency divides the run duration by all input items, filtered ones
included.

# Single Use

Chains are consumed by every builder call and by Collect. Collecting a chain
twice returns an error wrapping errors.ErrChainConsumed instead of silently
recomputing.
*/
package pipeline
