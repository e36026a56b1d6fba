package bench_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/src/bench"
	"sortbench/src/sort"
)

func TestRun_CopiesInput(t *testing.T) {
	data := []int{5, 3, 8, 1, 9, 2}
	var seen []int
	d := bench.Run(func(s []int) {
		sort.ShellSort(s)
		seen = s
	}, data)

	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, []int{5, 3, 8, 1, 9, 2}, data, "input must not be reordered")
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, seen)
}

func TestRun_RepeatedDoesNotCompound(t *testing.T) {
	data := []int{3, 2, 1}
	calls := 0
	check := func(s []int) {
		calls++
		assert.Equal(t, []int{3, 2, 1}, s, "call %d saw a reordered copy", calls)
		sort.BubbleSort(s)
	}
	bench.Run(check, data)
	bench.Run(check, data)
	assert.Equal(t, 2, calls)
}

func TestBenchmark_AllAlgorithms(t *testing.T) {
	data := rand.New(rand.NewSource(2)).Perm(500)
	for _, alg := range sort.Algorithms() {
		res := bench.Benchmark(alg, "perm_500", data, bench.Options{Verify: true, CountComparisons: true})
		assert.Equal(t, alg.Name, res.Algorithm)
		assert.Equal(t, "perm_500", res.Dataset)
		assert.Equal(t, 500, res.Len)
		assert.True(t, res.Verified)
		assert.True(t, res.Sorted, alg.Key)
		assert.Positive(t, res.Comparisons, alg.Key)
	}
	assert.False(t, sort.IsSorted(data))
}

func TestBenchmark_NoOptions(t *testing.T) {
	alg, ok := sort.Lookup("merge")
	require.True(t, ok)
	res := bench.Benchmark(alg, "empty", nil, bench.Options{})
	assert.False(t, res.Verified)
	assert.Zero(t, res.Comparisons)
	assert.Zero(t, res.Len)
}

func TestComparisons_KnownCounts(t *testing.T) {
	const n = 100
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	bubble, _ := sort.Lookup("bubble")
	insertion, _ := sort.Lookup("insertion")
	quick, _ := sort.Lookup("quick")

	assert.EqualValues(t, n*(n-1)/2, bench.Comparisons(bubble, sorted))
	assert.EqualValues(t, n-1, bench.Comparisons(insertion, sorted))
	assert.EqualValues(t, n*(n-1)/2, bench.Comparisons(quick, sorted))
}

func TestResult_Format(t *testing.T) {
	res := bench.Result{Algorithm: "Quick Sort", Dataset: "dataset_25000.txt", Elapsed: 1500 * time.Microsecond}
	assert.InDelta(t, 1.5, res.Milliseconds(), 1e-9)
	assert.Equal(t, "Quick Sort for dataset_25000.txt took 1.5 ms", res.String())
	assert.True(t, strings.HasSuffix(res.String(), " ms"))
}
