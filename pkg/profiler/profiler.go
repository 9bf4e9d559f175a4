package profiler

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// StageProfile accumulates the timing of one named stage.
type StageProfile struct {
	TotalTime time.Duration
	CallCount int64
}

// AvgTime returns the mean duration per recorded call.
func (p StageProfile) AvgTime() time.Duration {
	if p.CallCount == 0 {
		return 0
	}
	return p.TotalTime / time.Duration(p.CallCount)
}

// Profiler accumulates durations under stage names. It is safe for
// concurrent use.
type Profiler struct {
	mu       sync.RWMutex
	profiles map[string]StageProfile
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		profiles: make(map[string]StageProfile),
	}
}

// Record adds one timed call under the given stage name.
func (p *Profiler) Record(stage string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prof := p.profiles[stage]
	prof.TotalTime += d
	prof.CallCount++
	p.profiles[stage] = prof
}

// Profile returns the accumulated profile for one stage.
func (p *Profiler) Profile(stage string) (StageProfile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	prof, ok := p.profiles[stage]
	return prof, ok
}

// Profiles returns a copy of all accumulated profiles keyed by stage name.
func (p *Profiler) Profiles() map[string]StageProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]StageProfile, len(p.profiles))
	for name, prof := range p.profiles {
		out[name] = prof
	}
	return out
}

// TotalTime returns the summed duration across all stages.
func (p *Profiler) TotalTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var total time.Duration
	for _, prof := range p.profiles {
		total += prof.TotalTime
	}
	return total
}

// Reset clears all accumulated profiles for reuse.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles = make(map[string]StageProfile)
}

// String formats the profiles as an aligned table, stages sorted by name.
func (p *Profiler) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.profiles))
	for name := range p.profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %14s %14s %10s\n", "Stage", "Total", "Avg", "Calls")
	for _, name := range names {
		prof := p.profiles[name]
		fmt.Fprintf(&b, "%-24s %14s %14s %10d\n", name, prof.TotalTime, prof.AvgTime(), prof.CallCount)
	}
	return b.String()
}
