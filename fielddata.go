package fielddata

// Type identifies the scalar type stored by a field.
type Type int

const (
	TypeString Type = iota
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	default:
		return "unknown"
	}
}

var (
	// EmptyFloatArray is returned for documents without a value.
	// It has zero capacity, so appending to it never touches shared storage.
	EmptyFloatArray = make([]float32, 0)

	// EmptyDoubleArray is the float64 counterpart of EmptyFloatArray.
	EmptyDoubleArray = make([]float64, 0)
)

// StringValueInDocProc receives the text form of a document's values.
type StringValueInDocProc interface {
	OnValue(docID int, value string)
}

// DoubleValueInDocProc receives a document's values widened to float64.
type DoubleValueInDocProc interface {
	OnValue(docID int, value float64)
}

// OrdinalInDocProc receives a document's dictionary ordinals.
type OrdinalInDocProc interface {
	OnOrdinal(docID int, ordinal int)
}

// StringValueProc receives every distinct value of a field with its frequency.
type StringValueProc interface {
	OnValue(value string, freq int32)
}

// StringValueInDocProcFunc adapts a function to StringValueInDocProc.
type StringValueInDocProcFunc func(docID int, value string)

// OnValue calls f(docID, value).
func (f StringValueInDocProcFunc) OnValue(docID int, value string) { f(docID, value) }

// DoubleValueInDocProcFunc adapts a function to DoubleValueInDocProc.
type DoubleValueInDocProcFunc func(docID int, value float64)

// OnValue calls f(docID, value).
func (f DoubleValueInDocProcFunc) OnValue(docID int, value float64) { f(docID, value) }

// OrdinalInDocProcFunc adapts a function to OrdinalInDocProc.
type OrdinalInDocProcFunc func(docID int, ordinal int)

// OnOrdinal calls f(docID, ordinal).
func (f OrdinalInDocProcFunc) OnOrdinal(docID int, ordinal int) { f(docID, ordinal) }

// StringValueProcFunc adapts a function to StringValueProc.
type StringValueProcFunc func(value string, freq int32)

// OnValue calls f(value, freq).
func (f StringValueProcFunc) OnValue(value string, freq int32) { f(value, freq) }

// FieldData is per-document access to one field of one index segment.
//
// docID arguments must be in [0, NumDocs()). Implementations do not check
// bounds; an out-of-range docID is a caller bug.
type FieldData interface {
	Type() Type
	FieldName() string
	NumDocs() int
	MultiValued() bool
	HasValue(docID int) bool

	// StringValue returns the text of the document's first value, or "" if none.
	StringValue(docID int) string

	// ForEachValue visits every distinct value of the field.
	ForEachValue(proc StringValueProc)

	ForEachValueInDoc(docID int, proc StringValueInDocProc)
	ForEachOrdinalInDoc(docID int, proc OrdinalInDocProc)
}

// NumericFieldData adds float64 views for numeric fields.
type NumericFieldData interface {
	FieldData

	// DoubleValue returns the document's first value widened to float64.
	// The result is meaningless when HasValue(docID) is false.
	DoubleValue(docID int) float64

	ForEachDoubleValueInDoc(docID int, proc DoubleValueInDocProc)
}

// OrdinalFieldData is implemented by dictionary-encoded numeric field data.
// Consumers use it to evaluate predicates once per distinct value.
type OrdinalFieldData interface {
	NumericFieldData

	// NumOrdinals returns the dictionary size, including the sentinel slot 0.
	NumOrdinals() int

	// DoubleValueAt returns the value stored at ordinal ord (ord >= 1).
	DoubleValueAt(ord int) float64

	// StringValueAt returns the text of the value stored at ordinal ord (ord >= 1).
	StringValueAt(ord int) string
}
