package sort

import (
	"cmp"
	"strings"
)

// Algorithm is one entry of the benchmark menu.
type Algorithm struct {
	Index int    // menu number, starting at 1
	Key   string // short name used on the command line
	Name  string // display name

	sortFunc func(s []int, cmp func(a, b int) int)
}

// Sort sorts the whole of s ascending.
func (a Algorithm) Sort(s []int) { a.sortFunc(s, cmp.Compare[int]) }

// SortFunc sorts the whole of s with the given ordering.
func (a Algorithm) SortFunc(s []int, cmp func(a, b int) int) { a.sortFunc(s, cmp) }

func (a Algorithm) String() string { return a.Name }

var algorithms = []Algorithm{
	{Index: 1, Key: "bubble", Name: "Bubble Sort", sortFunc: BubbleSortFunc[int]},
	{Index: 2, Key: "selection", Name: "Selection Sort", sortFunc: SelectionSortFunc[int]},
	{Index: 3, Key: "insertion", Name: "Insertion Sort", sortFunc: InsertionSortFunc[int]},
	{Index: 4, Key: "merge", Name: "Merge Sort", sortFunc: func(s []int, cmp func(a, b int) int) {
		MergeSortFunc(s, 0, len(s)-1, cmp)
	}},
	{Index: 5, Key: "quick", Name: "Quick Sort", sortFunc: func(s []int, cmp func(a, b int) int) {
		QuickSortFunc(s, 0, len(s)-1, cmp)
	}},
	{Index: 6, Key: "shell", Name: "Shell Sort", sortFunc: ShellSortFunc[int]},
}

// Algorithms returns every algorithm in menu order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// Keys returns the command line names of all algorithms in menu order.
func Keys() []string {
	keys := make([]string, len(algorithms))
	for i, a := range algorithms {
		keys[i] = a.Key
	}
	return keys
}

// Lookup finds an algorithm by key, ignoring case. "quicksort" style names
// with a "sort" suffix are accepted too.
func Lookup(key string) (Algorithm, bool) {
	key = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(key)), "sort")
	key = strings.TrimSuffix(key, "_")
	for _, a := range algorithms {
		if a.Key == key {
			return a, true
		}
	}
	return Algorithm{}, false
}

// ByIndex finds an algorithm by its menu number.
func ByIndex(i int) (Algorithm, bool) {
	if i < 1 || i > len(algorithms) {
		return Algorithm{}, false
	}
	return algorithms[i-1], true
}
