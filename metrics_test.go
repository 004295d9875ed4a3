package go_nano

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInMemoryWorkMetrics(t *testing.T) {
	m := NewInMemoryWorkMetrics()

	m.AddWorkAttempts(10)
	m.AddWorkAttempts(5)
	m.IncrementWorkFound()
	m.IncrementWorkExhausted()
	m.IncrementWorkExhausted()
	m.IncrementWorkCancelled()
	m.RecordWorkDuration(10 * time.Millisecond)
	m.RecordWorkDuration(30 * time.Millisecond)

	if m.Attempts() != 15 {
		t.Errorf("Attempts = %d, want 15", m.Attempts())
	}
	if m.Found() != 1 || m.Exhausted() != 2 || m.Cancelled() != 1 {
		t.Errorf("found %d, exhausted %d, cancelled %d", m.Found(), m.Exhausted(), m.Cancelled())
	}
	if m.Searches() != 2 {
		t.Errorf("Searches = %d, want 2", m.Searches())
	}
	if m.AvgDuration() != 20*time.Millisecond {
		t.Errorf("AvgDuration = %v, want 20ms", m.AvgDuration())
	}
	if m.MinDuration() != 10*time.Millisecond || m.MaxDuration() != 30*time.Millisecond {
		t.Errorf("min %v, max %v", m.MinDuration(), m.MaxDuration())
	}

	m.Reset()
	if m.Attempts() != 0 || m.Found() != 0 || m.Searches() != 0 || m.AvgDuration() != 0 {
		t.Error("Reset did not clear metrics")
	}
}

func TestInMemoryWorkMetricsConcurrent(t *testing.T) {
	m := NewInMemoryWorkMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.AddWorkAttempts(1)
				m.RecordWorkDuration(time.Microsecond)
			}
		}()
	}
	wg.Wait()

	if m.Attempts() != 5000 || m.Searches() != 5000 {
		t.Errorf("attempts %d, searches %d, want 5000", m.Attempts(), m.Searches())
	}
}

func TestPrometheusWorkMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusWorkMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}

	m.AddWorkAttempts(100)
	m.IncrementWorkFound()
	m.IncrementWorkCancelled()
	m.IncrementWorkCancelled()
	m.RecordWorkDuration(time.Second)

	if got := testutil.ToFloat64(m.attempts); got != 100 {
		t.Errorf("attempts = %v, want 100", got)
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues("found")); got != 1 {
		t.Errorf("found = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues("cancelled")); got != 2 {
		t.Errorf("cancelled = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}

	// A second set of collectors cannot register under the same names.
	if _, err := NewPrometheusWorkMetrics(reg); err == nil {
		t.Error("duplicate registration succeeded")
	}
	if _, err := NewPrometheusWorkMetrics(nil); err != nil {
		t.Errorf("nil registerer: %v", err)
	}
}
