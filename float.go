package fielddata

import "github.com/hupe1980/fielddata/internal/ordinal"

// floatFieldData holds what every float field data variant shares: the field
// identity, its options and the value dictionary. Cardinality-specific types
// embed it next to their own ordinal layout.
type floatFieldData struct {
	fieldName string
	opts      FieldDataOptions
	dict      ordinal.Dictionary[float32]
}

func newFloatFieldData(fieldName string, opts FieldDataOptions, values []float32, freqs []int32) floatFieldData {
	return floatFieldData{
		fieldName: fieldName,
		opts:      opts,
		dict:      ordinal.NewDictionary(values, freqs),
	}
}

// Type returns TypeFloat.
func (f *floatFieldData) Type() Type { return TypeFloat }

// FieldName returns the name of the field.
func (f *floatFieldData) FieldName() string { return f.fieldName }

// Options returns the options the field data was created with.
func (f *floatFieldData) Options() FieldDataOptions { return f.opts }

// NumOrdinals returns the dictionary size, including the sentinel slot.
func (f *floatFieldData) NumOrdinals() int { return f.dict.Len() }

// ValueAt returns the value stored at ordinal ord.
func (f *floatFieldData) ValueAt(ord int) float32 { return f.dict.Value(ord) }

// DoubleValueAt returns the value stored at ordinal ord widened to float64.
func (f *floatFieldData) DoubleValueAt(ord int) float64 { return float64(f.dict.Value(ord)) }

// StringValueAt returns the canonical text of the value stored at ordinal ord.
func (f *floatFieldData) StringValueAt(ord int) string { return FormatFloat(f.dict.Value(ord)) }

// ForEachValue visits every distinct value with its frequency.
func (f *floatFieldData) ForEachValue(proc StringValueProc) {
	f.dict.ForEach(func(_ int, v float32, freq int32) bool {
		proc.OnValue(FormatFloat(v), freq)
		return true
	})
}

func (f *floatFieldData) validateDictionary() error {
	if f.dict.Len() == 0 {
		return &ErrMissingSentinel{}
	}
	if f.dict.Len() != f.dict.NumFreqs() {
		return &ErrLengthMismatch{Values: f.dict.Len(), Freqs: f.dict.NumFreqs()}
	}
	return nil
}
