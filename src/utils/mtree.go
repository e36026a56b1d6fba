package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	pipe       = "│   "
	tee        = "├── "
	lasttee    = "└── "
	blank      = "    "
	defaultDir = "."
)

// FileNode is one entry of a path tree built from slash separated paths.
type FileNode struct {
	Level    int
	FileName string
	Note     string
	IsDir    bool
	Children []*FileNode
	Parent   *FileNode
	Left     *FileNode
	Right    *FileNode
}

// ShowTree writes the node and its descendants to w. The root is printed bare,
// every other entry is prefixed with tee or lasttee depending on whether it has
// a right sibling.
func (node *FileNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		name := node.FileName
		if name == "" {
			name = defaultDir
		}
		fmt.Fprintln(w, name)
	}
	for _, child := range node.Children {
		connector, indent := tee, pipe
		if child.Right == nil {
			connector, indent = lasttee, blank
		}
		line := prefix + connector + child.FileName
		if child.Note != "" {
			line += "  (" + child.Note + ")"
		}
		fmt.Fprintln(w, line)
		if child.IsDir {
			child.ShowTree(w, prefix+indent)
		}
	}
}

// LTree inserts every path under node, creating intermediate directories.
func (node *FileNode) LTree(paths []string) {
	for _, p := range paths {
		node.Insert(p)
	}
}

// Insert adds a single slash separated path and returns its leaf node.
func (node *FileNode) Insert(p string) *FileNode {
	names := strings.Split(strings.Trim(p, "/"), "/")
	current := node
	for index, name := range names {
		current = current.GetChild(name, index != len(names)-1)
	}
	return current
}

// GetChild returns the child called name, appending it when it does not exist.
func (node *FileNode) GetChild(name string, isDir bool) *FileNode {
	for _, child := range node.Children {
		if child.FileName == name {
			return child
		}
	}

	var pre *FileNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	childFile := &FileNode{
		Level:    node.Level + 1,
		FileName: name,
		Parent:   node,
		Left:     pre,
		IsDir:    isDir,
	}
	if pre != nil {
		pre.Right = childFile
	}
	node.IsDir = true
	node.Children = append(node.Children, childFile)
	return childFile
}
