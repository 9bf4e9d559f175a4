package runner

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	gferrors "github.com/vnykmshr/gofuse/pkg/common/errors"
	"github.com/vnykmshr/gofuse/pkg/common/validation"
	"github.com/vnykmshr/gofuse/pkg/metrics"
	"github.com/vnykmshr/gofuse/pkg/pipeline"
)

// Job executes one pipeline run and returns its stats snapshot.
// Implementations must build a fresh chain on every call; chains are
// single-use values.
type Job func() (pipeline.Snapshot, error)

// NewJob adapts a chain builder and a source provider into a Job. build is
// invoked once per scheduled run so each run gets an unconsumed chain.
func NewJob[In, Out any](build func() *pipeline.Chain[In, Out], source func() []In) Job {
	return func() (pipeline.Snapshot, error) {
		res, err := build().Collect(source())
		if err != nil {
			return pipeline.Snapshot{}, fmt.Errorf("runner: job: %w", err)
		}
		return res.Stats, nil
	}
}

// RunRecord describes one triggered execution.
type RunRecord struct {
	At       time.Time
	Snapshot pipeline.Snapshot
	Err      error
}

// Stats holds cumulative runner statistics.
type Stats struct {
	Runs      int64
	Failures  int64
	LastRunAt time.Time
}

// Config holds runner configuration options.
type Config struct {
	// Name labels runner metrics. Empty disables metrics recording.
	Name string

	// Registry receives runner metrics. If nil and Name is set, the
	// default registry is used.
	Registry *metrics.Registry

	// HistorySize bounds the retained run records. Zero selects the
	// default of 32; negative values are rejected.
	HistorySize int

	// OnRun is called after every triggered execution.
	OnRun func(RunRecord)
}

const defaultHistorySize = 32

// Runner executes a Job on a schedule. A Runner drives whole pipeline runs;
// it adds no cancellation inside a run.
type Runner struct {
	job      Job
	schedule cron.Schedule
	name     string
	registry *metrics.Registry
	histSize int
	onRun    func(RunRecord)

	mu      sync.RWMutex
	running bool
	done    chan struct{}
	stopped chan struct{}
	history []RunRecord
	stats   Stats
}

// New creates a runner from a standard 5-field cron expression
// ("minute hour day month weekday", plus descriptors like "@hourly").
func New(cronExpr string, job Job) (*Runner, error) {
	return NewWithConfig(cronExpr, job, Config{})
}

// NewWithConfig creates a cron-driven runner with custom configuration.
func NewWithConfig(cronExpr string, job Job, cfg Config) (*Runner, error) {
	if err := validation.ValidateNotEmpty("runner", "cron", cronExpr); err != nil {
		return nil, err
	}
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("runner: parse cron expression %q: %w", cronExpr, err)
	}
	return newRunner(schedule, job, cfg)
}

// Every creates a runner that triggers at a fixed interval. Intervals below
// one second are rejected; cron schedules have second granularity.
func Every(interval time.Duration, job Job) (*Runner, error) {
	return EveryWithConfig(interval, job, Config{})
}

// EveryWithConfig is Every with custom configuration.
func EveryWithConfig(interval time.Duration, job Job, cfg Config) (*Runner, error) {
	if err := validation.ValidateMinDuration("runner", "interval", interval, time.Second); err != nil {
		return nil, err
	}
	return newRunner(cron.Every(interval), job, cfg)
}

func newRunner(schedule cron.Schedule, job Job, cfg Config) (*Runner, error) {
	if job == nil {
		return nil, validation.ValidateNotNil("runner", "job", nil)
	}

	histSize := cfg.HistorySize
	if histSize == 0 {
		histSize = defaultHistorySize
	} else if err := validation.ValidatePositive("runner", "history size", histSize); err != nil {
		return nil, err
	}
	registry := cfg.Registry
	if registry == nil && cfg.Name != "" {
		registry = metrics.DefaultRegistry
	}

	return &Runner{
		job:      job,
		schedule: schedule,
		name:     cfg.Name,
		registry: registry,
		histSize: histSize,
		onRun:    cfg.OnRun,
	}, nil
}

// Start begins scheduled execution. It returns ErrAlreadyRunning when the
// runner is active.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("runner: start: %w", gferrors.ErrAlreadyRunning)
	}
	r.running = true
	r.done = make(chan struct{})
	r.stopped = make(chan struct{})

	go r.loop(r.done, r.stopped)
	return nil
}

// Stop halts scheduled execution. The returned channel closes once the
// scheduling loop has exited; stopping a stopped runner returns an already
// closed channel.
func (r *Runner) Stop() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	r.running = false
	close(r.done)
	return r.stopped
}

// Running reports whether the scheduling loop is active.
func (r *Runner) Running() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// Next returns the next trigger time after t.
func (r *Runner) Next(t time.Time) time.Time {
	return r.schedule.Next(t)
}

func (r *Runner) loop(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	for {
		next := r.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			r.RunOnce()
		case <-done:
			timer.Stop()
			return
		}
	}
}

// RunOnce triggers one execution immediately, outside the schedule, and
// records it like any scheduled run.
func (r *Runner) RunOnce() RunRecord {
	snap, err := r.job()
	rec := RunRecord{At: time.Now(), Snapshot: snap, Err: err}

	r.mu.Lock()
	r.stats.Runs++
	if err != nil {
		r.stats.Failures++
	}
	r.stats.LastRunAt = rec.At
	r.history = append(r.history, rec)
	if len(r.history) > r.histSize {
		r.history = r.history[len(r.history)-r.histSize:]
	}
	r.mu.Unlock()

	if r.registry != nil && r.name != "" {
		r.registry.ObserveScheduledRun(r.name, err)
	}
	if r.onRun != nil {
		r.onRun(rec)
	}
	return rec
}

// Stats returns a copy of the cumulative runner statistics.
func (r *Runner) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// History returns a copy of the retained run records, oldest first.
func (r *Runner) History() []RunRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RunRecord, len(r.history))
	copy(out, r.history)
	return out
}
