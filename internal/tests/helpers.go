package tests

import (
	"runtime"
	"sync"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

const Draws = 1 << 14

// Type is the part of an engine the helpers drive.
type Type interface {
	Seed(uint64)
	Uint32() uint32
	Uint64() uint64
	Float64() float64
}

// UnitInterval draws n floats from t and fails if any is outside [0, 1).
func UnitInterval(tb testing.TB, t Type, n int) {
	tb.Helper()

	for i := 0; i < n; i++ {
		if f := t.Float64(); f < 0 || f >= 1 {
			tb.Fatalf("draw %d: %v outside [0, 1)", i, f)
		}
	}
}

// Mean draws n floats from t and checks their mean is near 1/2.
func Mean(tb testing.TB, t Type, n int) {
	tb.Helper()

	var sum float64
	for i := 0; i < n; i++ {
		sum += t.Float64()
	}
	mean := sum / float64(n)
	assert.That(tb, mean > 0.49 && mean < 0.51)
}

// Replay checks that reseeding t reproduces the same stream.
func Replay(tb testing.TB, t Type, seed uint64) {
	tb.Helper()

	t.Seed(seed)
	first := make([]uint64, 64)
	for i := range first {
		first[i] = t.Uint64()
	}

	t.Seed(seed)
	for i := range first {
		assert.Equal(tb, t.Uint64(), first[i])
	}
}

func RunBenchmarks(b *testing.B, fn func(seed uint64) Type) {
	b.Run("Uint32", func(b *testing.B) {
		t := fn(pcg.Uint64())
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			t.Uint32()
		}
	})

	b.Run("Uint64", func(b *testing.B) {
		t := fn(pcg.Uint64())
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			t.Uint64()
		}
	})

	b.Run("Float64", func(b *testing.B) {
		var sink float64
		t := fn(pcg.Uint64())
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			sink += t.Float64()
		}

		runtime.KeepAlive(sink)
	})

	b.Run("Seed", func(b *testing.B) {
		t := fn(0)
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			t.Seed(uint64(i))
		}
	})

	b.Run("Uint64Parallel", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			t := fn(pcg.Uint64())
			for pb.Next() {
				t.Uint64()
			}
		})
	})

	b.Run("DrawsParallel", func(b *testing.B) {
		procs := runtime.GOMAXPROCS(-1)
		iters := Draws / procs
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			var wg sync.WaitGroup

			for i := 0; i < procs; i++ {
				wg.Add(1)
				go func() {
					t := fn(pcg.Uint64())
					for i := 0; i < iters; i++ {
						t.Uint64()
					}
					wg.Done()
				}()
			}
			wg.Wait()
		}
	})
}
