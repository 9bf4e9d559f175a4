package pipeline

import "runtime"

// Policy selects how a chain is executed by Collect.
type Policy int

const (
	// Sequential runs a single ordered pass over the source.
	Sequential Policy = iota

	// ParallelPreserveOrder fans out over worker goroutines and merges
	// chunk results in chunk order. Output is element-for-element identical
	// to Sequential for the same chain and source.
	ParallelPreserveOrder

	// ParallelUnordered fans out over worker goroutines and merges chunk
	// results in completion order. Only multiset equality with the
	// sequential output is guaranteed.
	ParallelUnordered
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case ParallelPreserveOrder:
		return "parallel-preserve-order"
	case ParallelUnordered:
		return "parallel-unordered"
	default:
		return "unknown"
	}
}

func (p Policy) valid() bool {
	return p >= Sequential && p <= ParallelUnordered
}

// Config holds execution options for a chain. It changes how a chain is
// executed, never what it computes.
type Config struct {
	// Parallelism is the upper bound on worker goroutines for parallel
	// policies. Values below 1 are normalized to 1. The effective worker
	// count for a run is min(Parallelism, len(source)).
	Parallelism int

	// Policy selects the execution strategy.
	Policy Policy
}

func defaultConfig() Config {
	return Config{
		Parallelism: runtime.NumCPU(),
		Policy:      Sequential,
	}
}

func (c Config) normalized() Config {
	if c.Parallelism < 1 {
		c.Parallelism = 1
	}
	return c
}
