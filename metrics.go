package go_nano

import (
	"sync"
	"sync/atomic"
	"time"
)

// WorkMetrics defines the interface for collecting proof-of-work metrics.
// This interface allows applications to plug in custom metrics
// implementations (e.g., Prometheus, StatsD) when running work searches.
//
// All methods are safe for concurrent use and should be non-blocking:
// every search worker reports to the same collector.
type WorkMetrics interface {
	// AddWorkAttempts adds to the count of candidate nonces tested.
	AddWorkAttempts(n uint64)

	// IncrementWorkFound counts a worker that found a valid nonce.
	IncrementWorkFound()

	// IncrementWorkExhausted counts a worker that exhausted its range.
	IncrementWorkExhausted()

	// IncrementWorkCancelled counts a worker stopped by its context.
	IncrementWorkCancelled()

	// RecordWorkDuration records how long one worker searched.
	RecordWorkDuration(duration time.Duration)
}

// noopWorkMetrics discards everything.
type noopWorkMetrics struct{}

func (noopWorkMetrics) AddWorkAttempts(uint64)           {}
func (noopWorkMetrics) IncrementWorkFound()              {}
func (noopWorkMetrics) IncrementWorkExhausted()          {}
func (noopWorkMetrics) IncrementWorkCancelled()          {}
func (noopWorkMetrics) RecordWorkDuration(time.Duration) {}

// InMemoryWorkMetrics provides a simple in-memory implementation of
// WorkMetrics. Suitable for development, testing, and benchmarks.
type InMemoryWorkMetrics struct {
	attempts  uint64
	found     uint64
	exhausted uint64
	cancelled uint64

	// Duration tracking (protected by mutex for min/max updates)
	durationMu sync.RWMutex
	durations  durationStats
}

// durationStats tracks worker search durations
type durationStats struct {
	count      uint64
	totalNanos uint64
	minNanos   uint64
	maxNanos   uint64
}

// NewInMemoryWorkMetrics creates a new in-memory metrics collector.
func NewInMemoryWorkMetrics() *InMemoryWorkMetrics {
	return &InMemoryWorkMetrics{}
}

func (m *InMemoryWorkMetrics) AddWorkAttempts(n uint64) {
	atomic.AddUint64(&m.attempts, n)
}

func (m *InMemoryWorkMetrics) IncrementWorkFound() {
	atomic.AddUint64(&m.found, 1)
}

func (m *InMemoryWorkMetrics) IncrementWorkExhausted() {
	atomic.AddUint64(&m.exhausted, 1)
}

func (m *InMemoryWorkMetrics) IncrementWorkCancelled() {
	atomic.AddUint64(&m.cancelled, 1)
}

// RecordWorkDuration records one worker's search duration.
func (m *InMemoryWorkMetrics) RecordWorkDuration(duration time.Duration) {
	nanos := uint64(duration.Nanoseconds())

	m.durationMu.Lock()
	defer m.durationMu.Unlock()

	stats := &m.durations
	if stats.count == 0 || nanos < stats.minNanos {
		stats.minNanos = nanos
	}
	if nanos > stats.maxNanos {
		stats.maxNanos = nanos
	}
	stats.count++
	stats.totalNanos += nanos
}

// Attempts returns the total number of nonces tested.
func (m *InMemoryWorkMetrics) Attempts() uint64 {
	return atomic.LoadUint64(&m.attempts)
}

// Found returns the number of workers that found a nonce.
func (m *InMemoryWorkMetrics) Found() uint64 {
	return atomic.LoadUint64(&m.found)
}

// Exhausted returns the number of workers that exhausted their range.
func (m *InMemoryWorkMetrics) Exhausted() uint64 {
	return atomic.LoadUint64(&m.exhausted)
}

// Cancelled returns the number of workers stopped by cancellation.
func (m *InMemoryWorkMetrics) Cancelled() uint64 {
	return atomic.LoadUint64(&m.cancelled)
}

// Searches returns how many worker durations were recorded.
func (m *InMemoryWorkMetrics) Searches() uint64 {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()
	return m.durations.count
}

// AvgDuration returns the average worker duration.
// Returns 0 if no measurements have been recorded.
func (m *InMemoryWorkMetrics) AvgDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()

	if m.durations.count == 0 {
		return 0
	}
	return time.Duration(m.durations.totalNanos / m.durations.count)
}

// MinDuration returns the shortest worker duration.
func (m *InMemoryWorkMetrics) MinDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()
	return time.Duration(m.durations.minNanos)
}

// MaxDuration returns the longest worker duration.
func (m *InMemoryWorkMetrics) MaxDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()
	return time.Duration(m.durations.maxNanos)
}

// Reset clears all metrics. Useful for testing.
func (m *InMemoryWorkMetrics) Reset() {
	atomic.StoreUint64(&m.attempts, 0)
	atomic.StoreUint64(&m.found, 0)
	atomic.StoreUint64(&m.exhausted, 0)
	atomic.StoreUint64(&m.cancelled, 0)

	m.durationMu.Lock()
	m.durations = durationStats{}
	m.durationMu.Unlock()
}
