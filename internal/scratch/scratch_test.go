package scratch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffers_ReuseInPlace(t *testing.T) {
	b := Get()
	defer Put(b)

	first := b.Float32(1.5)
	require.Len(t, first, 1)
	assert.Equal(t, float32(1.5), first[0])

	second := b.Float32(2.5)
	assert.Equal(t, float32(2.5), second[0])
	// Same backing slot: the earlier result is overwritten.
	assert.Equal(t, float32(2.5), first[0])
	assert.Same(t, &first[0], &second[0])

	d := b.Float64(4.25)
	require.Len(t, d, 1)
	assert.Equal(t, 4.25, d[0])
	assert.Equal(t, float32(2.5), second[0])
}

func TestBuffers_Reset(t *testing.T) {
	b := Get()
	f := b.Float32(3)
	d := b.Float64(3)
	b.Reset()
	assert.Zero(t, f[0])
	assert.Zero(t, d[0])
	Put(b)
	Put(nil)
}

func TestBuffers_NoAllocs(t *testing.T) {
	b := Get()
	defer Put(b)

	allocs := testing.AllocsPerRun(100, func() {
		_ = b.Float32(1)
		_ = b.Float64(1)
	})
	assert.Zero(t, allocs)
}

func TestBuffers_ConcurrentIsolation(t *testing.T) {
	const goroutines = 8
	const iterations = 1000

	var wg sync.WaitGroup
	errs := make(chan float64, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			b := Get()
			defer Put(b)
			for i := 0; i < iterations; i++ {
				want := float64(g*iterations + i)
				if got := b.Float64(want)[0]; got != want {
					errs <- got
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("observed foreign value %v", got)
	}
}
