package fielddata

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPriceField builds order=[0,1,2,1], values=[0,3.5,7.25].
func newPriceField(t testing.TB) *SingleValueFloat {
	t.Helper()
	return NewSingleValueFloat("price",
		[]int32{0, 1, 2, 1},
		[]float32{0, 3.5, 7.25},
		[]int32{0, 2, 1},
		WithFreqs(true),
	)
}

type recordedString struct {
	docID int
	value string
}

type recordedDouble struct {
	docID int
	value float64
}

func TestSingleValueFloat_Scenario(t *testing.T) {
	fd := newPriceField(t)
	r := fd.Reader()
	defer r.Close()

	assert.False(t, fd.MultiValued())
	assert.Equal(t, TypeFloat, fd.Type())
	assert.Equal(t, "price", fd.FieldName())
	assert.Equal(t, 4, fd.NumDocs())
	assert.Equal(t, 3, fd.NumOrdinals())
	assert.True(t, fd.Options().Freqs)

	assert.False(t, fd.HasValue(0))
	assert.True(t, fd.HasValue(1))
	assert.Equal(t, float32(3.5), fd.Value(1))
	assert.True(t, fd.HasValue(2))
	assert.Equal(t, float32(7.25), fd.Value(2))
	assert.True(t, fd.HasValue(3))
	assert.Equal(t, float32(3.5), fd.Value(3))

	assert.Empty(t, r.Values(0))
	assert.Equal(t, []float64{7.25}, r.DoubleValues(2))

	var calls []recordedString
	proc := StringValueInDocProcFunc(func(docID int, value string) {
		calls = append(calls, recordedString{docID, value})
	})
	fd.ForEachValueInDoc(0, proc)
	assert.Empty(t, calls)
	fd.ForEachValueInDoc(1, proc)
	assert.Equal(t, []recordedString{{1, "3.5"}}, calls)
}

func TestSingleValueFloat_MissingDocs(t *testing.T) {
	fd := NewSingleValueFloat("f", []int32{0, 0, 1}, []float32{42, 1}, []int32{0, 1})
	r := fd.Reader()
	defer r.Close()

	for _, docID := range []int{0, 1} {
		assert.False(t, fd.HasValue(docID))

		values := r.Values(docID)
		assert.Len(t, values, 0)
		assert.Zero(t, cap(values))

		doubles := r.DoubleValues(docID)
		assert.Len(t, doubles, 0)
		assert.Zero(t, cap(doubles))

		fd.ForEachValueInDoc(docID, StringValueInDocProcFunc(func(int, string) {
			t.Errorf("string proc called for doc %d", docID)
		}))
		fd.ForEachDoubleValueInDoc(docID, DoubleValueInDocProcFunc(func(int, float64) {
			t.Errorf("double proc called for doc %d", docID)
		}))

		assert.Equal(t, "", fd.StringValue(docID))
		_, ok := fd.Lookup(docID)
		assert.False(t, ok)
	}
}

func TestSingleValueFloat_EmptyResultsAreShared(t *testing.T) {
	fd := newPriceField(t)
	r := fd.Reader()
	defer r.Close()

	values := r.Values(0)
	doubles := r.DoubleValues(0)
	assert.Equal(t, EmptyFloatArray, values)
	assert.Equal(t, EmptyDoubleArray, doubles)

	// Appending must never write into shared storage.
	_ = append(values, 1)
	assert.Len(t, EmptyFloatArray, 0)
	assert.Len(t, r.Values(0), 0)
}

func TestSingleValueFloat_PresentDocs(t *testing.T) {
	values := []float32{0, 0.1, -2.5, 1e-5, float32(math.Pi)}
	order := []int32{4, 3, 2, 1}
	fd := NewSingleValueFloat("f", order, values, make([]int32, len(values)))
	r := fd.Reader()
	defer r.Close()

	for docID, ord := range order {
		want := values[ord]

		assert.True(t, fd.HasValue(docID))
		assert.Equal(t, want, fd.Value(docID))

		got, ok := fd.Lookup(docID)
		assert.True(t, ok)
		assert.Equal(t, want, got)

		vs := r.Values(docID)
		require.Len(t, vs, 1)
		assert.Equal(t, want, vs[0])

		ds := r.DoubleValues(docID)
		require.Len(t, ds, 1)
		assert.Equal(t, float64(want), ds[0])
		assert.Equal(t, float64(want), fd.DoubleValue(docID))

		var strs []recordedString
		fd.ForEachValueInDoc(docID, StringValueInDocProcFunc(func(d int, v string) {
			strs = append(strs, recordedString{d, v})
		}))
		assert.Equal(t, []recordedString{{docID, FormatFloat(want)}}, strs)
		assert.Equal(t, FormatFloat(want), fd.StringValue(docID))

		var dbls []recordedDouble
		fd.ForEachDoubleValueInDoc(docID, DoubleValueInDocProcFunc(func(d int, v float64) {
			dbls = append(dbls, recordedDouble{d, v})
		}))
		assert.Equal(t, []recordedDouble{{docID, float64(want)}}, dbls)
	}
}

func TestSingleValueFloat_Widening(t *testing.T) {
	// 0.1 is not exactly representable: the float64 must equal the widened
	// float32, not the decimal literal.
	fd := NewSingleValueFloat("f", []int32{1}, []float32{0, 0.1}, []int32{0, 1})
	r := fd.Reader()
	defer r.Close()

	assert.Equal(t, float64(float32(0.1)), r.DoubleValues(0)[0])
	assert.NotEqual(t, 0.1, r.DoubleValues(0)[0])
	assert.Equal(t, "0.1", fd.StringValue(0))
}

func TestSingleValueFloat_ScratchReuse(t *testing.T) {
	fd := newPriceField(t)
	r := fd.Reader()
	defer r.Close()

	first := r.Values(1)
	assert.Equal(t, float32(3.5), first[0])

	second := r.Values(2)
	assert.Equal(t, float32(7.25), second[0])
	// Same buffer, overwritten in place.
	assert.Equal(t, float32(7.25), first[0])

	// Idempotent with no intervening call.
	assert.Equal(t, r.Values(3), r.Values(3))
	assert.Equal(t, r.DoubleValues(2), r.DoubleValues(2))
}

func TestSingleValueFloat_NoAllocs(t *testing.T) {
	fd := newPriceField(t)
	r := fd.Reader()
	defer r.Close()

	sink := DoubleValueInDocProcFunc(func(int, float64) {})
	allocs := testing.AllocsPerRun(100, func() {
		_ = r.Values(1)
		_ = r.Values(0)
		_ = r.DoubleValues(2)
		_ = r.DoubleValues(0)
		_ = fd.HasValue(3)
		_ = fd.Value(3)
		fd.ForEachDoubleValueInDoc(1, sink)
	})
	assert.Zero(t, allocs)
}

func TestSingleValueFloat_ConcurrentReaders(t *testing.T) {
	const numDocs = 1000
	order := make([]int32, numDocs)
	values := make([]float32, numDocs+1)
	for i := range order {
		order[i] = int32(i + 1)
		values[i+1] = float32(i)
	}
	fd := NewSingleValueFloat("f", order, values, make([]int32, len(values)))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			r := fd.Reader()
			defer r.Close()
			for i := 0; i < 20; i++ {
				for docID := g; docID < numDocs; docID += 8 {
					vs := r.Values(docID)
					if len(vs) != 1 || vs[0] != float32(docID) {
						t.Errorf("goroutine %d doc %d: got %v", g, docID, vs)
						return
					}
					ds := r.DoubleValues(docID)
					if len(ds) != 1 || ds[0] != float64(docID) {
						t.Errorf("goroutine %d doc %d: got %v", g, docID, ds)
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestSingleValueFloat_ForEachOrdinalInDoc(t *testing.T) {
	fd := newPriceField(t)

	var got [][2]int
	proc := OrdinalInDocProcFunc(func(docID, ord int) {
		got = append(got, [2]int{docID, ord})
	})
	for docID := 0; docID < fd.NumDocs(); docID++ {
		fd.ForEachOrdinalInDoc(docID, proc)
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 1}}, got)
	assert.Equal(t, 7.25, fd.DoubleValueAt(2))
	assert.Equal(t, "3.5", fd.StringValueAt(1))
	assert.Equal(t, float32(3.5), fd.ValueAt(1))
}

func TestSingleValueFloat_ForEachValue(t *testing.T) {
	fd := newPriceField(t)

	type seen struct {
		value string
		freq  int32
	}
	var got []seen
	fd.ForEachValue(StringValueProcFunc(func(value string, freq int32) {
		got = append(got, seen{value, freq})
	}))
	assert.Equal(t, []seen{{"3.5", 2}, {"7.25", 1}}, got)
}

func TestSingleValueFloat_Validate(t *testing.T) {
	tests := []struct {
		name    string
		order   []int32
		values  []float32
		freqs   []int32
		wantErr any
	}{
		{"Valid", []int32{0, 1, 2, 1}, []float32{0, 3.5, 7.25}, []int32{0, 2, 1}, nil},
		{"No documents", nil, []float32{0}, []int32{0}, nil},
		{"Ordinal too large", []int32{0, 3}, []float32{0, 1, 2}, []int32{0, 1, 1}, &ErrOrdinalOutOfRange{}},
		{"Negative ordinal", []int32{-1}, []float32{0, 1}, []int32{0, 1}, &ErrOrdinalOutOfRange{}},
		{"Length mismatch", []int32{0}, []float32{0, 1}, []int32{0}, &ErrLengthMismatch{}},
		{"No sentinel", []int32{}, nil, nil, &ErrMissingSentinel{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSingleValueFloat("f", tt.order, tt.values, tt.freqs).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFieldData)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestErrOrdinalOutOfRange_Fields(t *testing.T) {
	err := NewSingleValueFloat("f", []int32{0, 1, 5}, []float32{0, 1}, []int32{0, 1}).Validate()

	var oor *ErrOrdinalOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, oor.DocID)
	assert.Equal(t, 5, oor.Ordinal)
	assert.Equal(t, 2, oor.NumOrdinals)
	assert.Equal(t, "doc 2: ordinal 5 out of range [0, 2)", oor.Error())
}

func BenchmarkSingleValueFloat_Values(b *testing.B) {
	fd := newPriceField(b)
	r := fd.Reader()
	defer r.Close()

	b.ReportAllocs()
	b.ResetTimer()
	var sum float32
	for i := 0; i < b.N; i++ {
		for _, v := range r.Values(i & 3) {
			sum += v
		}
	}
	_ = sum
}

func BenchmarkSingleValueFloat_ForEachDoubleValueInDoc(b *testing.B) {
	fd := newPriceField(b)
	var sum float64
	proc := DoubleValueInDocProcFunc(func(_ int, v float64) { sum += v })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fd.ForEachDoubleValueInDoc(i&3, proc)
	}
}
