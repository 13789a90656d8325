// Package ordinal provides the dictionary-encoded storage shared by field data
// implementations.
//
// # Layout
//
// A field is stored as two immutable arrays:
//
//	Dictionary: values[ord], freqs[ord]  - every distinct value once
//	Single:     order[docID] -> ord      - one ordinal per document
//
// Ordinal 0 is a sentinel meaning "no value". Dictionary slot 0 is allocated
// but never read as a real value.
//
// # Thread Safety
//
// Both types are read-only after construction and can be shared by any number
// of goroutines without locking. Callers must publish them only once fully built.
package ordinal
