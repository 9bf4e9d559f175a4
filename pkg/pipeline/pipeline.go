package pipeline

import (
	"fmt"

	gferrors "github.com/vnykmshr/gofuse/pkg/common/errors"
	"github.com/vnykmshr/gofuse/pkg/metrics"
	"github.com/vnykmshr/gofuse/pkg/profiler"
)

// Chain is a pipeline under construction: all stages added so far, fused
// into a single per-element function. The boolean result reports whether the
// element survived every stage; when it is false the output value is the
// zero value and must be ignored.
//
// Chains are single-use. Every builder call and Collect consumes the
// receiver; using a consumed chain again is a contract violation reported as
// errors.ErrChainConsumed from Collect, never a silent re-execution.
//
// Stage functions must be pure: no shared mutable state, no dependence on
// element order or position. This is a precondition of the parallel
// policies and is not enforced at runtime.
type Chain[In, Out any] struct {
	op       func(In) (Out, bool)
	state    chainState
	consumed bool
}

// chainState carries everything about a chain that does not depend on its
// type parameters, so Transform can move it across output types.
type chainState struct {
	stats    *Stats
	prof     *profiler.Profiler
	registry *metrics.Registry
	name     string // metrics label; empty disables observation
	config   Config
	err      error // first contract violation, surfaced at Collect
}

// From creates the identity chain for the element type of source. Only the
// type is taken from the argument; the elements to process are the ones
// passed to Collect.
func From[T any](source []T) *Chain[T, T] {
	_ = source
	return &Chain[T, T]{
		op:    func(x T) (T, bool) { return x, true },
		state: chainState{config: defaultConfig()},
	}
}

// consume marks the receiver used and hands its pieces to the next chain.
// Reuse of an already-consumed chain poisons the derived state.
func (c *Chain[In, Out]) consume() (func(In) (Out, bool), chainState) {
	st := c.state
	if c.consumed && st.err == nil {
		st.err = gferrors.ErrChainConsumed
	}
	c.consumed = true
	return c.op, st
}

// Filter appends a predicate stage. The predicate runs only for elements the
// prior stages let through; dropped elements short-circuit past it.
func (c *Chain[In, Out]) Filter(pred func(Out) bool) *Chain[In, Out] {
	op, st := c.consume()
	return &Chain[In, Out]{
		op: func(in In) (Out, bool) {
			out, ok := op(in)
			if !ok {
				return out, false
			}
			return out, pred(out)
		},
		state: st,
	}
}

// Map appends a same-type transform stage. Use the package-level Transform
// to change the element type.
func (c *Chain[In, Out]) Map(fn func(Out) Out) *Chain[In, Out] {
	return Transform(c, fn)
}

// Transform appends a transform stage producing a new element type. The
// mapper runs only for elements the prior stages let through. It is a
// package-level function because Go methods cannot introduce type
// parameters.
func Transform[In, Out, Next any](c *Chain[In, Out], fn func(Out) Next) *Chain[In, Next] {
	op, st := c.consume()
	return &Chain[In, Next]{
		op: func(in In) (Next, bool) {
			out, ok := op(in)
			if !ok {
				var zero Next
				return zero, false
			}
			return fn(out), true
		},
		state: st,
	}
}

// WithStats attaches a fresh stats block owned by this chain instance only.
// The block is never shared across pipeline instances.
func (c *Chain[In, Out]) WithStats() *Chain[In, Out] {
	op, st := c.consume()
	st.stats = NewStats()
	return &Chain[In, Out]{op: op, state: st}
}

// WithStatsBlock attaches a caller-managed stats block, allowing counters to
// accumulate across successive pipeline instances. The caller is responsible
// for calling Reset between unrelated uses.
func (c *Chain[In, Out]) WithStatsBlock(stats *Stats) *Chain[In, Out] {
	op, st := c.consume()
	st.stats = stats
	return &Chain[In, Out]{op: op, state: st}
}

// WithProfiler attaches a profiler that records the wall-clock duration of
// each run under the execution mode name.
func (c *Chain[In, Out]) WithProfiler(p *profiler.Profiler) *Chain[In, Out] {
	op, st := c.consume()
	st.prof = p
	return &Chain[In, Out]{op: op, state: st}
}

// WithMetrics records every completed run into the default Prometheus
// registry under the given pipeline name.
func (c *Chain[In, Out]) WithMetrics(name string) *Chain[In, Out] {
	return c.WithMetricsRegistry(name, metrics.DefaultRegistry)
}

// WithMetricsRegistry is WithMetrics with a custom registry.
func (c *Chain[In, Out]) WithMetricsRegistry(name string, reg *metrics.Registry) *Chain[In, Out] {
	op, st := c.consume()
	st.name = name
	st.registry = reg
	return &Chain[In, Out]{op: op, state: st}
}

// Parallel sets the execution config. threads == 0 is normalized to 1; an
// unknown policy poisons the chain and surfaces at Collect. The config only
// selects a strategy, it never changes what the chain computes.
func (c *Chain[In, Out]) Parallel(threads int, policy Policy) *Chain[In, Out] {
	op, st := c.consume()
	if threads < 1 {
		threads = 1
	}
	if !policy.valid() {
		if st.err == nil {
			st.err = gferrors.NewValidationError("pipeline", "policy", int(policy), "unknown execution policy").
				WithHint("use Sequential, ParallelPreserveOrder or ParallelUnordered")
		}
	} else {
		st.config.Parallelism = threads
		st.config.Policy = policy
	}
	return &Chain[In, Out]{op: op, state: st}
}

// Collect runs the chain over source and returns the results with a stats
// snapshot. It is the terminal operation: the chain is consumed whether the
// run succeeds or not.
//
// A panic raised by a stage function during sequential execution propagates
// directly to the caller. During parallel execution each worker recovers its
// own panic, all workers are joined, and the first captured panic (lowest
// chunk index) is re-raised on the calling goroutine. Either way no partial
// output is returned.
func (c *Chain[In, Out]) Collect(source []In) (*Result[Out], error) {
	op, st := c.consume()
	if st.err != nil {
		return nil, fmt.Errorf("pipeline: collect: %w", st.err)
	}

	cfg := st.config.normalized()
	n := len(source)

	// Parallel execution requires a usable worker count and a non-empty
	// source; anything else falls back to the sequential pass.
	parallel := cfg.Policy != Sequential && cfg.Parallelism > 1 && n > 0

	var (
		data []Out
		t    tally
		mode string
	)
	if parallel {
		data, t = runParallel(op, source, cfg.Parallelism, cfg.Policy, st.stats)
		mode = cfg.Policy.String()
	} else {
		data, t = runSequential(op, source, st.stats)
		mode = Sequential.String()
	}

	snap := Snapshot{
		ItemsProcessed: t.processed,
		ItemsFiltered:  t.filtered,
		TotalItems:     int64(n),
		TotalDuration:  t.duration,
	}
	if st.stats != nil {
		st.stats.addRun(int64(n), t.duration)
		snap = st.stats.Snapshot()
	}

	if st.prof != nil {
		st.prof.Record(mode, t.duration)
	}
	if st.registry != nil && st.name != "" {
		st.registry.ObserveRun(st.name, snap.ItemsProcessed, snap.ItemsFiltered, snap.TotalDuration, len(data))
	}

	return &Result[Out]{Data: data, Stats: snap}, nil
}
