package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/src/dataset"
)

func TestWrite_OnePerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, []int{3, -1, 0, 4000000}))
	assert.Equal(t, "3\n-1\n0\n4000000\n", buf.String())
}

func TestRead_WhitespaceTolerant(t *testing.T) {
	values, err := dataset.Read(strings.NewReader("5\n3 8\r\n\t1\n\n9  \n2\n   "))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1, 9, 2}, values)
}

func TestRead_Malformed(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1\n2\nthree\n4\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)
	assert.Contains(t, err.Error(), `token 3 "three"`)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dataset_6.txt")
	in := []int{5, 3, 8, 1, 9, 2}
	require.NoError(t, dataset.Save(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n3\n8\n1\n9\n2\n", string(raw))

	out, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, dataset.Save(path, nil))
	out, err := dataset.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "could not open file")
}
