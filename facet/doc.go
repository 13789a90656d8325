// Package facet aggregates numeric field data over documents and segments.
//
// A Collector visits documents of one segment and is merged with the
// collectors of other segments. Collect runs one collector per segment
// concurrently; field data is shared read-only between goroutines while every
// collector stays owned by the goroutine that fills it.
//
//	stats, err := facet.Collect(ctx, segments, facet.NewStatistical)
//	fmt.Println(stats.Count, stats.Mean())
package facet
