package dataset

import (
	"math/rand"
	"slices"

	"github.com/pkg/errors"
)

// Sample draws count distinct integers uniformly from [0, upperBound].
// Values come back in draw order, which carries no ordering guarantee.
func Sample(r *rand.Rand, count, upperBound int) ([]int, error) {
	if count < 0 || upperBound < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "count=%d upperBound=%d", count, upperBound)
	}
	if count > upperBound+1 {
		return nil, errors.Wrapf(ErrRangeTooSmall, "%d values from [0, %d]", count, upperBound)
	}

	seen := make(map[int]struct{}, count)
	values := make([]int, 0, count)
	for len(values) < count {
		v := r.Intn(upperBound + 1)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}

// Arrange puts values into the order of the category in place. Random leaves
// them untouched.
func Arrange(values []int, c Category) {
	switch c {
	case Ascending:
		slices.Sort(values)
	case Descending:
		slices.Sort(values)
		slices.Reverse(values)
	}
}

// Generate samples count values and arranges them for the category.
func Generate(r *rand.Rand, c Category, count, upperBound int) ([]int, error) {
	if !c.valid() {
		return nil, errors.Wrapf(ErrUnknownCategory, "%d", int(c))
	}
	values, err := Sample(r, count, upperBound)
	if err != nil {
		return nil, err
	}
	Arrange(values, c)
	return values, nil
}
