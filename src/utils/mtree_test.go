package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNode_LTreeAndShowTree(t *testing.T) {
	root := &FileNode{FileName: "datasets"}
	root.LTree([]string{
		"random/dataset_25000.txt",
		"random/dataset_75000.txt",
		"ascending/sorted_dataset_25000.txt",
	})
	leaf := root.Insert("ascending/sorted_dataset_25000.txt")
	leaf.Note = "missing"

	var buf bytes.Buffer
	root.ShowTree(&buf, "")
	want := "datasets\n" +
		"├── random\n" +
		"│   ├── dataset_25000.txt\n" +
		"│   └── dataset_75000.txt\n" +
		"└── ascending\n" +
		"    └── sorted_dataset_25000.txt  (missing)\n"
	assert.Equal(t, want, buf.String())
}

func TestFileNode_GetChildLinksSiblings(t *testing.T) {
	root := &FileNode{}
	a := root.GetChild("a", false)
	b := root.GetChild("b", false)
	require.Len(t, root.Children, 2)
	assert.Same(t, a, root.GetChild("a", false))
	assert.Same(t, b, a.Right)
	assert.Same(t, a, b.Left)
	assert.Same(t, root, b.Parent)
	assert.Equal(t, 1, b.Level)
	assert.True(t, root.IsDir)
}

func TestFileNode_EmptyRootShowsDot(t *testing.T) {
	var buf bytes.Buffer
	(&FileNode{}).ShowTree(&buf, "")
	assert.Equal(t, ".\n", buf.String())
}
