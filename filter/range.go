// Package filter turns numeric field data predicates into document sets.
package filter

import (
	"context"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fielddata"
)

// Range describes a numeric interval. A NaN bound leaves that side open.
type Range struct {
	From         float64
	To           float64
	IncludeLower bool
	IncludeUpper bool
}

// Between returns the closed interval [from, to].
func Between(from, to float64) Range {
	return Range{From: from, To: to, IncludeLower: true, IncludeUpper: true}
}

// AtLeast returns [from, +inf).
func AtLeast(from float64) Range {
	return Range{From: from, To: math.NaN(), IncludeLower: true}
}

// AtMost returns (-inf, to].
func AtMost(to float64) Range {
	return Range{From: math.NaN(), To: to, IncludeUpper: true}
}

// Contains reports whether v lies within the range. NaN values never match.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if !math.IsNaN(r.From) {
		if v < r.From || (v == r.From && !r.IncludeLower) {
			return false
		}
	}
	if !math.IsNaN(r.To) {
		if v > r.To || (v == r.To && !r.IncludeUpper) {
			return false
		}
	}
	return true
}

// Docs returns the documents of fd whose value lies within r. Documents
// without a value never match.
//
// Dictionary-encoded field data is evaluated once per distinct value and then
// mapped to documents through their ordinals.
func (r Range) Docs(fd fielddata.NumericFieldData, optFns ...fielddata.Option) *roaring.Bitmap {
	s := fielddata.ResolveOptions(optFns...)
	start := time.Now()

	var docs *roaring.Bitmap
	if ofd, ok := fd.(fielddata.OrdinalFieldData); ok {
		docs = r.ordinalDocs(ofd)
	} else {
		docs = r.scanDocs(fd)
	}

	matched := int(docs.GetCardinality())
	s.MetricsCollector.RecordFilter(fd.FieldName(), matched, time.Since(start))
	s.Logger.DebugContext(context.Background(), "range filter evaluated",
		"field", fd.FieldName(),
		"matched", matched,
	)
	return docs
}

func (r Range) ordinalDocs(fd fielddata.OrdinalFieldData) *roaring.Bitmap {
	docs := roaring.New()

	numOrds := fd.NumOrdinals()
	matching := bitset.New(uint(numOrds))
	for ord := 1; ord < numOrds; ord++ {
		if r.Contains(fd.DoubleValueAt(ord)) {
			matching.Set(uint(ord))
		}
	}
	if matching.None() {
		return docs
	}

	proc := fielddata.OrdinalInDocProcFunc(func(docID, ord int) {
		if ord != 0 && matching.Test(uint(ord)) {
			docs.Add(uint32(docID))
		}
	})
	for docID, n := 0, fd.NumDocs(); docID < n; docID++ {
		fd.ForEachOrdinalInDoc(docID, proc)
	}
	return docs
}

func (r Range) scanDocs(fd fielddata.NumericFieldData) *roaring.Bitmap {
	docs := roaring.New()
	proc := fielddata.DoubleValueInDocProcFunc(func(docID int, v float64) {
		if r.Contains(v) {
			docs.Add(uint32(docID))
		}
	})
	for docID, n := 0, fd.NumDocs(); docID < n; docID++ {
		fd.ForEachDoubleValueInDoc(docID, proc)
	}
	return docs
}
