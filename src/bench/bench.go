// Package bench times one sort over a private copy of a dataset.
package bench

import (
	"fmt"
	"time"

	"sortbench/src/sort"
)

// SortFunc sorts a sequence in place.
type SortFunc func([]int)

// Options selects the optional extra work done around a timed sort.
type Options struct {
	// Verify checks the timed output is in non-decreasing order.
	Verify bool
	// CountComparisons re-runs the algorithm on a fresh copy with a counting
	// comparator. The counting run is not timed.
	CountComparisons bool
}

// Result describes one benchmark run.
type Result struct {
	Algorithm   string
	Dataset     string
	Len         int
	Elapsed     time.Duration
	Comparisons int64 // zero unless counted
	Verified    bool  // the output was checked
	Sorted      bool  // outcome of the check
}

// Milliseconds returns the elapsed time in fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r Result) String() string {
	return fmt.Sprintf("%s for %s took %g ms", r.Algorithm, r.Dataset, r.Milliseconds())
}

// Run sorts a copy of data with fn and returns how long the call took. data
// itself is never modified.
func Run(fn SortFunc, data []int) time.Duration {
	d, _ := run(fn, data)
	return d
}

func run(fn SortFunc, data []int) (time.Duration, []int) {
	work := make([]int, len(data))
	copy(work, data)

	start := time.Now()
	fn(work)
	return time.Since(start), work
}

// Benchmark times alg over a copy of data.
func Benchmark(alg sort.Algorithm, dataset string, data []int, opts Options) Result {
	elapsed, out := run(alg.Sort, data)
	res := Result{
		Algorithm: alg.Name,
		Dataset:   dataset,
		Len:       len(data),
		Elapsed:   elapsed,
	}
	if opts.Verify {
		res.Verified = true
		res.Sorted = sort.IsSorted(out)
	}
	if opts.CountComparisons {
		res.Comparisons = Comparisons(alg, data)
	}
	return res
}

// Comparisons sorts a copy of data with alg and counts how often the ordering
// was consulted.
func Comparisons(alg sort.Algorithm, data []int) int64 {
	var n int64
	work := make([]int, len(data))
	copy(work, data)
	alg.SortFunc(work, func(a, b int) int {
		n++
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return n
}
