package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/src/dataset"
)

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{
		"dataset_25000.txt",
		"dataset_75000.txt",
		"dataset_120000.txt",
		"dataset_350000.txt",
		"dataset_500000.txt",
	}, dataset.Catalog(dataset.Random))
	assert.Equal(t, "sorted_dataset_120000.txt", dataset.Catalog(dataset.Ascending)[2])
	assert.Equal(t, "sorted_desc_dataset_500000.txt", dataset.Catalog(dataset.Descending)[4])
	assert.Nil(t, dataset.Catalog(dataset.Category(9)))
	assert.Empty(t, dataset.FileName(dataset.Category(0), 10))
}

func TestCategory_Strings(t *testing.T) {
	require.Equal(t, []dataset.Category{dataset.Random, dataset.Ascending, dataset.Descending}, dataset.Categories())
	assert.Equal(t, "random", dataset.Random.String())
	assert.Equal(t, "Reverse Sorted Datasets", dataset.Descending.Title())
	assert.Equal(t, "Category(7)", dataset.Category(7).String())
}

func TestParseCategory(t *testing.T) {
	cases := map[string]dataset.Category{
		"random":    dataset.Random,
		"Unsorted":  dataset.Random,
		"asc":       dataset.Ascending,
		"sorted":    dataset.Ascending,
		"DESC":      dataset.Descending,
		" reverse ": dataset.Descending,
	}
	for in, want := range cases {
		got, err := dataset.ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := dataset.ParseCategory("shuffled")
	assert.ErrorIs(t, err, dataset.ErrUnknownCategory)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "sorted_dataset_75000.txt"), dataset.Path("data", dataset.Ascending, 75000))
}
