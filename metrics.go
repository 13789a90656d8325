package fielddata

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The per-document read path is never instrumented; only whole-segment
// operations such as facet collection and filtering report here.
type MetricsCollector interface {
	// RecordCollect is called after a facet collection.
	// docs is the number of documents visited, err is nil if successful.
	RecordCollect(field string, docs int, duration time.Duration, err error)

	// RecordFilter is called after a filter evaluation over one segment.
	RecordFilter(field string, matched int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCollect(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFilter(string, int, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CollectCount      atomic.Int64
	CollectErrors     atomic.Int64
	CollectDocs       atomic.Int64
	CollectTotalNanos atomic.Int64
	FilterCount       atomic.Int64
	FilterMatched     atomic.Int64
	FilterTotalNanos  atomic.Int64
}

// RecordCollect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCollect(_ string, docs int, duration time.Duration, err error) {
	b.CollectCount.Add(1)
	b.CollectDocs.Add(int64(docs))
	b.CollectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CollectErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(_ string, matched int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterMatched.Add(int64(matched))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CollectCount:    b.CollectCount.Load(),
		CollectErrors:   b.CollectErrors.Load(),
		CollectDocs:     b.CollectDocs.Load(),
		CollectAvgNanos: avg(b.CollectTotalNanos.Load(), b.CollectCount.Load()),
		FilterCount:     b.FilterCount.Load(),
		FilterMatched:   b.FilterMatched.Load(),
		FilterAvgNanos:  avg(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	CollectCount    int64
	CollectErrors   int64
	CollectDocs     int64
	CollectAvgNanos int64
	FilterCount     int64
	FilterMatched   int64
	FilterAvgNanos  int64
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
