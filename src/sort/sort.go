// Package sort implements the six classical in-place sorting algorithms the
// benchmark harness times: bubble, selection, insertion, merge, quick and shell.
//
// Each algorithm comes in two shapes. The int form (BubbleSort, MergeSort, ...)
// sorts a []int ascending. The comparator form (BubbleSortFunc, ...) accepts any
// element type and a cmp function returning a negative number when a < b, zero
// when equal and a positive number when a > b, the same contract as
// slices.SortFunc.
//
// None of the functions return errors. MergeSort and QuickSort take an inclusive
// index range; passing indices outside the slice is a caller bug.
package sort

import "cmp"

// IntArray attaches the ascending ordering to []int.
type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// IsSorted reports whether s is in non-decreasing order.
func IsSorted(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// BubbleSort sorts s ascending with n-1 unconditional passes.
func BubbleSort(s []int) { BubbleSortFunc(s, cmp.Compare[int]) }

// BubbleSortFunc is BubbleSort with a custom ordering. It is stable.
func BubbleSortFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	for pass := 1; pass < n; pass++ {
		for i := 0; i < n-pass; i++ {
			if cmp(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
			}
		}
	}
}

// SelectionSort sorts s ascending by repeatedly swapping the minimum of the
// unsorted suffix into place.
func SelectionSort(s []int) { SelectionSortFunc(s, cmp.Compare[int]) }

// SelectionSortFunc is SelectionSort with a custom ordering.
func SelectionSortFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if cmp(s[j], s[minIdx]) < 0 {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
}

// InsertionSort sorts s ascending. It runs in linear time on sorted input.
func InsertionSort(s []int) { InsertionSortFunc(s, cmp.Compare[int]) }

// InsertionSortFunc is InsertionSort with a custom ordering. It is stable.
func InsertionSortFunc[E any](s []E, cmp func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && cmp(s[j], key) > 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// ShellSort sorts s ascending with gapped insertion passes, halving the gap
// from len(s)/2 down to 1.
func ShellSort(s []int) { ShellSortFunc(s, cmp.Compare[int]) }

// ShellSortFunc is ShellSort with a custom ordering.
func ShellSortFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			tmp := s[i]
			j := i
			for j >= gap && cmp(s[j-gap], tmp) > 0 {
				s[j] = s[j-gap]
				j -= gap
			}
			s[j] = tmp
		}
	}
}
