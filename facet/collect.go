package facet

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fielddata"
)

// checkInterval is how many documents are visited between context checks.
const checkInterval = 4096

// Collector accumulates values of one segment and merges partial results.
type Collector[C any] interface {
	Collect(fd fielddata.NumericFieldData, docID int)
	Merge(other C)
}

// Segment is the field data of one index segment plus an optional doc set.
type Segment struct {
	ID   uint64
	Data fielddata.NumericFieldData

	// Docs restricts collection to these documents. Nil means every document.
	// Doc ids at or beyond Data.NumDocs() are ignored.
	Docs *roaring.Bitmap
}

type options struct {
	concurrency int
	settings    fielddata.Settings
}

// Option configures Collect.
type Option func(*options)

// WithConcurrency bounds the number of segments collected at once.
// n <= 0 means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithFieldDataOptions applies logging and metrics options.
func WithFieldDataOptions(optFns ...fielddata.Option) Option {
	return func(o *options) {
		o.settings = fielddata.ResolveOptions(optFns...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		settings: fielddata.ResolveOptions(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}

// Collect runs a fresh collector from newCollector over every segment and
// merges the partial results in segment order.
//
// The first error, including cancellation of ctx, aborts the remaining
// segments and is returned.
func Collect[C Collector[C]](ctx context.Context, segments []Segment, newCollector func() C, optFns ...Option) (C, error) {
	o := applyOptions(optFns)
	start := time.Now()

	partials := make([]C, len(segments))
	var docs atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, seg := range segments {
		g.Go(func() error {
			c := newCollector()
			n, err := collectSegment(gctx, seg, c)
			docs.Add(int64(n))
			logger := o.settings.Logger.WithSegment(seg.ID)
			if err != nil {
				logger.WarnContext(ctx, "segment collection aborted",
					"docs", n,
					"error", err,
				)
				return err
			}
			logger.DebugContext(ctx, "segment collected",
				"docs", n,
			)
			partials[i] = c
			return nil
		})
	}
	err := g.Wait()

	elapsed := time.Since(start)
	o.settings.Logger.LogCollect(ctx, len(segments), int(docs.Load()), elapsed, err)
	o.settings.MetricsCollector.RecordCollect(fieldName(segments), int(docs.Load()), elapsed, err)

	if err != nil {
		var zero C
		return zero, err
	}

	result := newCollector()
	for _, p := range partials {
		result.Merge(p)
	}
	return result, nil
}

func collectSegment[C Collector[C]](ctx context.Context, seg Segment, c C) (int, error) {
	numDocs := seg.Data.NumDocs()

	if seg.Docs == nil {
		for docID := 0; docID < numDocs; docID++ {
			if docID%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					return docID, err
				}
			}
			c.Collect(seg.Data, docID)
		}
		return numDocs, nil
	}

	visited := 0
	it := seg.Docs.Iterator()
	for it.HasNext() {
		if visited%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return visited, err
			}
		}
		docID := int(it.Next())
		if docID >= numDocs {
			break
		}
		c.Collect(seg.Data, docID)
		visited++
	}
	return visited, nil
}

func fieldName(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[0].Data.FieldName()
}
