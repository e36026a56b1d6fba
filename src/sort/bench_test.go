package sort_test

import (
	"math/rand"
	"testing"

	"sortbench/src/sort"
)

// benchmarkAlgorithm sorts a fresh copy of a fixed random input per iteration.
func benchmarkAlgorithm(b *testing.B, a sort.Algorithm, n int) {
	src := rand.New(rand.NewSource(1)).Perm(n)
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(buf, src)
		b.StartTimer()
		a.Sort(buf)
	}
}

func BenchmarkAlgorithms_1000(b *testing.B) {
	for _, a := range sort.Algorithms() {
		b.Run(a.Key, func(b *testing.B) { benchmarkAlgorithm(b, a, 1000) })
	}
}

func BenchmarkFastAlgorithms_100000(b *testing.B) {
	for _, key := range []string{"merge", "quick", "shell"} {
		a, _ := sort.Lookup(key)
		b.Run(a.Key, func(b *testing.B) { benchmarkAlgorithm(b, a, 100000) })
	}
}
