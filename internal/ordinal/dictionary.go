package ordinal

// Missing is the ordinal of a document without a value.
const Missing = 0

// Dictionary holds the distinct values of a field, indexed by ordinal.
// Invariant: len(values) == len(freqs); slot Missing is never a real value.
type Dictionary[T any] struct {
	values []T
	freqs  []int32
}

// NewDictionary wraps values and freqs without copying.
// The caller transfers ownership and must not modify either slice afterwards.
func NewDictionary[T any](values []T, freqs []int32) Dictionary[T] {
	return Dictionary[T]{values: values, freqs: freqs}
}

// Value returns the value stored at ord. No bounds checking beyond the runtime's.
func (d Dictionary[T]) Value(ord int) T {
	return d.values[ord]
}

// Freq returns the number of documents referencing ord.
func (d Dictionary[T]) Freq(ord int) int32 {
	return d.freqs[ord]
}

// Len returns the number of slots, including the sentinel slot.
func (d Dictionary[T]) Len() int {
	return len(d.values)
}

// NumFreqs returns the length of the freqs column.
func (d Dictionary[T]) NumFreqs() int {
	return len(d.freqs)
}

// ForEach visits every real slot (ordinal >= 1) in ordinal order.
// Iteration stops when fn returns false.
func (d Dictionary[T]) ForEach(fn func(ord int, value T, freq int32) bool) {
	for ord := 1; ord < len(d.values); ord++ {
		var freq int32
		if ord < len(d.freqs) {
			freq = d.Freq(ord)
		}
		if !fn(ord, d.values[ord], freq) {
			return
		}
	}
}
