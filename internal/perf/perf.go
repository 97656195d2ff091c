// Package perf keeps running timings of gallery renders and updates so slow
// widgets show up in the debug log.
package perf

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Stats summarise the samples of one Recorder.
type Stats struct {
	Name    string
	Count   int64
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
	SlowOps int64
}

// Avg returns the mean sample, zero when nothing was recorded.
func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Recorder accumulates durations of one named operation. It is safe for
// concurrent use; tea commands record from their own goroutines.
type Recorder struct {
	name      string
	logger    *slog.Logger
	threshold time.Duration
	now       func() time.Time

	mu    sync.Mutex
	stats Stats
}

// NewRecorder creates a recorder that warns about samples at or above
// threshold. A nil logger disables the warnings.
func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	return &Recorder{
		name:      name,
		logger:    logger,
		threshold: threshold,
		now:       time.Now,
		stats:     Stats{Name: name},
	}
}

// Record adds one sample.
func (r *Recorder) Record(elapsed time.Duration) {
	r.mu.Lock()
	s := &r.stats
	s.Count++
	s.Total += elapsed
	if s.Count == 1 || elapsed < s.Min {
		s.Min = elapsed
	}
	if elapsed > s.Max {
		s.Max = elapsed
	}
	slow := r.threshold > 0 && elapsed >= r.threshold
	if slow {
		s.SlowOps++
	}
	r.mu.Unlock()

	if slow && r.logger != nil {
		r.logger.Warn(r.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", r.threshold.Milliseconds())
	}
}

// Start begins a sample; call the returned func when the operation ends.
//
//	defer rec.Start()()
func (r *Recorder) Start() func() {
	start := r.now()
	return func() {
		r.Record(r.now().Sub(start))
	}
}

// Stats returns a snapshot.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Reset drops every sample.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.stats = Stats{Name: r.name}
	r.mu.Unlock()
}

// Summary is the one-line form shown in the gallery status bar.
func (r *Recorder) Summary() string {
	s := r.Stats()
	if s.Count == 0 {
		return r.name + ": -"
	}
	return fmt.Sprintf("%s: %d × avg %s max %s", r.name, s.Count, round(s.Avg()), round(s.Max))
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Millisecond:
		return d.Round(100 * time.Microsecond)
	case d >= time.Microsecond:
		return d.Round(time.Microsecond)
	}
	return d
}

// LogStats writes the accumulated stats at level.
func (r *Recorder) LogStats(level slog.Level) {
	if r.logger == nil {
		return
	}
	s := r.Stats()
	if s.Count == 0 {
		return
	}
	r.logger.Log(context.Background(), level, r.name+"_stats",
		"count", s.Count,
		"total_ms", s.Total.Milliseconds(),
		"avg_us", s.Avg().Microseconds(),
		"min_us", s.Min.Microseconds(),
		"max_us", s.Max.Microseconds(),
		"slow_ops", s.SlowOps,
	)
}
