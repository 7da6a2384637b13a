// Package profiler reports frame rate and memory use through zap at a fixed interval.
package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Stats is one reporting window.
type Stats struct {
	FPS         float64
	HeapMB      float64
	AllocRateMB float64
	SysMB       float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
}

// Profiler counts frames and logs Stats whenever the interval elapses.
// Not safe for concurrent use; call Tick from the frame loop.
type Profiler struct {
	logger         *zap.Logger
	interval       time.Duration
	frames         int
	lastTime       time.Time
	lastGCCount    uint32
	lastTotalAlloc uint64
	memStats       runtime.MemStats
	last           Stats
}

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithLogger sets the logger stats are written to.
func WithLogger(logger *zap.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets how often stats are logged. Non-positive values are ignored.
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.interval = d
		}
	}
}

// NewProfiler creates a Profiler that logs once a second to a no-op logger unless configured.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the profiler
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		logger:   zap.NewNop(),
		interval: time.Second,
		lastTime: time.Now(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick records one frame and logs stats when the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	return p.tick(time.Now())
}

// Last returns the most recently logged stats.
func (p *Profiler) Last() Stats {
	return p.last
}

func (p *Profiler) tick(now time.Time) bool {
	p.frames++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.interval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	secs := elapsed.Seconds()
	s := Stats{
		FPS:         float64(p.frames) / secs,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / secs,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:     p.memStats.NumGC,
	}
	s.LastPauseUs, s.MaxPauseUs = p.pauses()

	p.logger.Info("frame stats",
		zap.Float64("fps", s.FPS),
		zap.Float64("heap_mb", s.HeapMB),
		zap.Float64("alloc_rate_mb", s.AllocRateMB),
		zap.Uint32("gc", s.GCCount),
		zap.Uint64("gc_last_us", s.LastPauseUs),
		zap.Uint64("gc_max_us", s.MaxPauseUs),
		zap.Float64("sys_mb", s.SysMB),
	)

	p.last = s
	p.frames = 0
	p.lastTime = now
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// pauses returns the latest GC pause and the longest one since the previous report, in microseconds.
// PauseNs is a ring of the last 256 pauses.
func (p *Profiler) pauses() (lastUs, maxUs uint64) {
	n := p.memStats.NumGC
	if n == 0 {
		return 0, 0
	}
	lastUs = p.memStats.PauseNs[(n-1)%256] / 1000

	start := p.lastGCCount
	if n-start > 256 {
		start = n - 256
	}
	for i := start; i < n; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxUs {
			maxUs = pause
		}
	}
	return lastUs, maxUs
}
