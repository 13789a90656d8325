// Package fielddata provides per-document access to dictionary-encoded
// numeric field values of an index segment.
//
// Every distinct value of a field is stored once in a dictionary; each
// document stores the ordinal of its value, with ordinal 0 meaning "no value".
// The read path answers "does this document have a value, and what is it" in
// O(1) without touching raw index data. It serves scoring, sorting and
// aggregation.
//
// # Quick Start
//
//	fd := fielddata.NewSingleValueFloat("price", order, values, freqs)
//
//	if fd.HasValue(docID) {
//	    price := fd.Value(docID)
//	}
//
// # Array-Shaped Access
//
// Values and DoubleValues are served by a FloatReader, which reuses a
// single-element buffer per reader instead of allocating per call:
//
//	r := fd.Reader()
//	defer r.Close()
//	for _, v := range r.Values(docID) {
//	    // v is valid until the next call on r
//	}
//
// A document without a value yields EmptyFloatArray / EmptyDoubleArray.
// Readers must not be shared between goroutines; create one per goroutine.
//
// # Callbacks
//
// ForEachValueInDoc and ForEachDoubleValueInDoc call their proc once for a
// document with a value and never for a document without one. String values
// use FormatFloat.
//
// # Thread Safety
//
// SingleValueFloat is immutable after construction and safe for concurrent
// use without locking. The loader that produces order, values and freqs must
// publish them only once fully built.
//
// # Related Packages
//
//   - facet: statistical and terms aggregation over segments
//   - filter: numeric range filters producing roaring bitmaps
package fielddata
