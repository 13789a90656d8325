package fielddata

import (
	"context"

	"github.com/hupe1980/fielddata/internal/ordinal"
	"github.com/hupe1980/fielddata/internal/scratch"
)

// SingleValueFloat is float field data where each document has at most one value.
//
// It is immutable and safe for concurrent use. Array-shaped results are served
// by a FloatReader, which owns the scratch buffers and must stay on one goroutine.
type SingleValueFloat struct {
	floatFieldData

	// order with value 0 indicates no value
	ords ordinal.Single

	logger *Logger
}

var _ OrdinalFieldData = (*SingleValueFloat)(nil)

// NewSingleValueFloat wraps loader output without copying.
//
// order holds one dictionary ordinal per document, 0 meaning "no value".
// values[0] is a sentinel and is never returned as a real value. freqs is
// parallel to values. Every order entry must be below len(values); this is
// not checked here, see Validate.
func NewSingleValueFloat(fieldName string, order []int32, values []float32, freqs []int32, optFns ...Option) *SingleValueFloat {
	o := applyOptions(optFns)
	fd := &SingleValueFloat{
		floatFieldData: newFloatFieldData(fieldName, o.fieldData, values, freqs),
		ords:           ordinal.NewSingle(order),
		logger:         o.logger.WithField(fieldName),
	}
	fd.logger.LogOpen(context.Background(), fd.NumDocs(), fd.NumOrdinals())
	return fd
}

// NumDocs returns the number of documents in the segment.
func (fd *SingleValueFloat) NumDocs() int { return fd.ords.NumDocs() }

// MultiValued always returns false.
func (fd *SingleValueFloat) MultiValued() bool { return false }

// HasValue reports whether docID has a value.
func (fd *SingleValueFloat) HasValue(docID int) bool {
	return fd.ords.Has(docID)
}

// Value returns the value of docID. Check HasValue first: for a document
// without a value the sentinel slot is returned, which is not a real value.
func (fd *SingleValueFloat) Value(docID int) float32 {
	return fd.dict.Value(fd.ords.Ord(docID))
}

// Lookup returns the value of docID and whether it exists.
func (fd *SingleValueFloat) Lookup(docID int) (float32, bool) {
	loc := fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return 0, false
	}
	return fd.dict.Value(loc), true
}

// DoubleValue returns the value of docID widened to float64.
func (fd *SingleValueFloat) DoubleValue(docID int) float64 {
	return float64(fd.Value(docID))
}

// StringValue returns the canonical text of the value of docID, or "" if none.
func (fd *SingleValueFloat) StringValue(docID int) string {
	loc := fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return ""
	}
	return FormatFloat(fd.dict.Value(loc))
}

// ForEachValueInDoc calls proc once with the text of the document's value.
// proc is not called when the document has no value.
func (fd *SingleValueFloat) ForEachValueInDoc(docID int, proc StringValueInDocProc) {
	loc := fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return
	}
	proc.OnValue(docID, FormatFloat(fd.dict.Value(loc)))
}

// ForEachDoubleValueInDoc calls proc once with the document's value widened to float64.
// proc is not called when the document has no value.
func (fd *SingleValueFloat) ForEachDoubleValueInDoc(docID int, proc DoubleValueInDocProc) {
	loc := fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return
	}
	proc.OnValue(docID, float64(fd.dict.Value(loc)))
}

// ForEachOrdinalInDoc calls proc exactly once with the document's ordinal,
// which is 0 when the document has no value.
func (fd *SingleValueFloat) ForEachOrdinalInDoc(docID int, proc OrdinalInDocProc) {
	proc.OnOrdinal(docID, fd.ords.Ord(docID))
}

// Validate checks the structural invariants the loader is expected to uphold:
// a sentinel slot exists, freqs is parallel to values and every ordinal is
// within the dictionary. It is O(NumDocs) and meant for calling layers that
// do not trust their loader; the read path never calls it.
func (fd *SingleValueFloat) Validate() error {
	err := fd.validateDictionary()
	if err == nil {
		if docID, ord, bad := fd.ords.Check(fd.dict.Len()); bad {
			err = &ErrOrdinalOutOfRange{DocID: docID, Ordinal: ord, NumOrdinals: fd.dict.Len()}
		}
	}
	fd.logger.LogValidate(context.Background(), err)
	return err
}

// Reader returns a reader for array-shaped access from the calling goroutine.
// Close it when done to recycle its buffers.
func (fd *SingleValueFloat) Reader() *FloatReader {
	return &FloatReader{fd: fd, buf: scratch.Get()}
}

// FloatReader serves Values and DoubleValues from reused single-element buffers.
//
// A returned slice is valid only until the next call on the same reader and
// must not be retained or passed to another goroutine. A FloatReader must not
// be used concurrently.
type FloatReader struct {
	fd  *SingleValueFloat
	buf *scratch.Buffers
}

// FieldData returns the field data the reader reads from.
func (r *FloatReader) FieldData() *SingleValueFloat { return r.fd }

// Values returns the document's values: EmptyFloatArray when it has none,
// otherwise the reader's 1-element buffer holding the value.
func (r *FloatReader) Values(docID int) []float32 {
	loc := r.fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return EmptyFloatArray
	}
	return r.buf.Float32(r.fd.dict.Value(loc))
}

// DoubleValues is Values widened to float64, using the reader's float64 buffer.
func (r *FloatReader) DoubleValues(docID int) []float64 {
	loc := r.fd.ords.Ord(docID)
	if loc == ordinal.Missing {
		return EmptyDoubleArray
	}
	return r.buf.Float64(float64(r.fd.dict.Value(loc)))
}

// Close returns the reader's buffers to the pool. The reader, and every slice
// it returned, must not be used afterwards.
func (r *FloatReader) Close() {
	scratch.Put(r.buf)
	r.buf = nil
}
