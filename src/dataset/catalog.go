package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Category is the ordering a dataset file is stored in.
type Category int

const (
	Random Category = iota + 1
	Ascending
	Descending
)

const (
	// DefaultDir is where datasets are written and read by default.
	DefaultDir = "datasets"
	// DefaultUpperBound is the largest value the sampler draws by default.
	DefaultUpperBound = 4000000
)

// Sizes are the dataset lengths shipped in every category.
var Sizes = []int{25000, 75000, 120000, 350000, 500000}

var categories = []struct {
	cat    Category
	key    string
	title  string
	prefix string
}{
	{Random, "random", "Unsorted Datasets", "dataset_"},
	{Ascending, "ascending", "Pre-Sorted Datasets", "sorted_dataset_"},
	{Descending, "descending", "Reverse Sorted Datasets", "sorted_desc_dataset_"},
}

// Categories returns all categories in menu order.
func Categories() []Category {
	cs := make([]Category, len(categories))
	for i, c := range categories {
		cs[i] = c.cat
	}
	return cs
}

func (c Category) valid() bool { return c >= Random && c <= Descending }

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categories[c-1].key
}

// Title is the menu label of the category.
func (c Category) Title() string {
	if !c.valid() {
		return c.String()
	}
	return categories[c-1].title
}

// ParseCategory maps a name to a Category. Besides the canonical names it
// accepts "unsorted", "sorted", "asc", "reverse" and "desc".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "unsorted":
		return Random, nil
	case "ascending", "asc", "sorted", "pre-sorted":
		return Ascending, nil
	case "descending", "desc", "reverse", "reverse-sorted":
		return Descending, nil
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "%q", s)
}

// FileName is the catalog file name for a category and size.
func FileName(c Category, size int) string {
	if !c.valid() {
		return ""
	}
	return fmt.Sprintf("%s%d.txt", categories[c-1].prefix, size)
}

// Catalog lists the file names of a category in size order.
func Catalog(c Category) []string {
	if !c.valid() {
		return nil
	}
	names := make([]string, len(Sizes))
	for i, size := range Sizes {
		names[i] = FileName(c, size)
	}
	return names
}

// Path joins dir and the catalog file name.
func Path(dir string, c Category, size int) string {
	return filepath.Join(dir, FileName(c, size))
}
