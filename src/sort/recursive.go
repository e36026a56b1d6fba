package sort

import "cmp"

// MergeSort sorts s[left:right+1] ascending. Call it with (0, len(s)-1) to sort
// the whole slice; it does nothing when left >= right.
func MergeSort(s []int, left, right int) { MergeSortFunc(s, left, right, cmp.Compare[int]) }

// MergeSortFunc is MergeSort with a custom ordering. It is stable.
func MergeSortFunc[E any](s []E, left, right int, cmp func(a, b E) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	MergeSortFunc(s, left, mid, cmp)
	MergeSortFunc(s, mid+1, right, cmp)
	merge(s, left, mid, right, cmp)
}

// merge combines the sorted runs s[left:mid+1] and s[mid+1:right+1].
func merge[E any](s []E, left, mid, right int, cmp func(a, b E) int) {
	l := append([]E(nil), s[left:mid+1]...)
	r := append([]E(nil), s[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		// ties take the left run so equal elements keep their order
		if cmp(l[i], r[j]) <= 0 {
			s[k] = l[i]
			i++
		} else {
			s[k] = r[j]
			j++
		}
		k++
	}
	k += copy(s[k:], l[i:])
	copy(s[k:], r[j:])
}

// QuickSort sorts s[low:high+1] ascending, partitioning around the last element
// of each range. Sorted and reverse-sorted input is quadratic. Call it with
// (0, len(s)-1) to sort the whole slice.
func QuickSort(s []int, low, high int) { QuickSortFunc(s, low, high, cmp.Compare[int]) }

// QuickSortFunc is QuickSort with a custom ordering.
func QuickSortFunc[E any](s []E, low, high int, cmp func(a, b E) int) {
	if low >= high {
		return
	}
	p := partition(s, low, high, cmp)
	QuickSortFunc(s, low, p-1, cmp)
	QuickSortFunc(s, p+1, high, cmp)
}

// partition moves everything strictly less than s[high] to the front of the
// range and returns the pivot's final index.
func partition[E any](s []E, low, high int, cmp func(a, b E) int) int {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(s[j], pivot) < 0 {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[high] = s[high], s[i+1]
	return i + 1
}
