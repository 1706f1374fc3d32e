package main

import (
	"sync/atomic"
	"time"

	"gridcaster/internal/logging"
)

// frameStats records render timings. Counters are atomic so the terminal
// loop and the logger can read them from other goroutines.
type frameStats struct {
	frames      int64
	totalNs     int64
	slowestNs   int64
	lastFrameNs int64
}

// addFrame records one rendered frame.
func (s *frameStats) addFrame(d time.Duration) {
	ns := d.Nanoseconds()
	atomic.AddInt64(&s.frames, 1)
	atomic.AddInt64(&s.totalNs, ns)
	atomic.StoreInt64(&s.lastFrameNs, ns)
	for {
		cur := atomic.LoadInt64(&s.slowestNs)
		if ns <= cur || atomic.CompareAndSwapInt64(&s.slowestNs, cur, ns) {
			return
		}
	}
}

// statsSnapshot is a read-only copy of frameStats.
type statsSnapshot struct {
	Frames    int64
	AvgFrame  time.Duration
	LastFrame time.Duration
	Slowest   time.Duration
}

func (s *frameStats) Snapshot() statsSnapshot {
	frames := atomic.LoadInt64(&s.frames)
	total := atomic.LoadInt64(&s.totalNs)
	snap := statsSnapshot{
		Frames:    frames,
		LastFrame: time.Duration(atomic.LoadInt64(&s.lastFrameNs)),
		Slowest:   time.Duration(atomic.LoadInt64(&s.slowestNs)),
	}
	if frames > 0 {
		snap.AvgFrame = time.Duration(total / frames)
	}
	return snap
}

// statsLogger logs a snapshot at most once per interval.
type statsLogger struct {
	stats    *frameStats
	interval time.Duration
	last     time.Time
}

func (l *statsLogger) maybeLog(now time.Time) bool {
	if l.last.IsZero() {
		l.last = now
		return false
	}
	if now.Sub(l.last) < l.interval {
		return false
	}
	l.last = now
	snap := l.stats.Snapshot()
	logging.Log.Debugw("frame stats",
		"frames", snap.Frames,
		"avg", snap.AvgFrame,
		"slowest", snap.Slowest,
	)
	return true
}
