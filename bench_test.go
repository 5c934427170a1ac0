package topset_test

import (
	"testing"

	"github.com/hupe1980/topset"
	"github.com/hupe1980/topset/testutil"
)

func benchmarkInsert(b *testing.B, capacity int) {
	b.Helper()
	b.ReportAllocs()

	rng := testutil.NewRNG(1)
	xs := rng.Floats(1 << 16)

	top := topset.New(capacity, topset.Greater[float64])

	i := 0
	b.ResetTimer()
	for b.Loop() {
		top.Insert(xs[i&(len(xs)-1)])
		i++
	}
}

func BenchmarkInsert16(b *testing.B)   { benchmarkInsert(b, 16) }
func BenchmarkInsert256(b *testing.B)  { benchmarkInsert(b, 256) }
func BenchmarkInsert4096(b *testing.B) { benchmarkInsert(b, 4096) }

func BenchmarkInsertRejected(b *testing.B) {
	b.ReportAllocs()

	// A full set of winners: every later candidate loses at the root check.
	top := topset.New(256, topset.Greater[float64])
	for i := range 256 {
		top.Insert(1 + float64(i))
	}

	b.ResetTimer()
	for b.Loop() {
		top.Insert(0.5)
	}
}

func BenchmarkIsCandidate(b *testing.B) {
	b.ReportAllocs()

	rng := testutil.NewRNG(2)
	top := topset.New(256, topset.Greater[float64])
	top.Extend(rng.Floats(4096)...)

	var sink bool
	b.ResetTimer()
	for b.Loop() {
		sink = top.IsCandidate(0.5)
	}
	_ = sink
}

func BenchmarkDrain(b *testing.B) {
	b.ReportAllocs()

	rng := testutil.NewRNG(3)
	xs := rng.Floats(4096)

	b.ResetTimer()
	for b.Loop() {
		b.StopTimer()
		top := topset.WithInit(256, topset.Greater[float64], xs...)
		b.StartTimer()

		for range top.Drain() {
		}
	}
}
