package organizer

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"ordino/internal/domain"
)

// treeNode is one level of the simulated destination tree.
type treeNode map[string]treeNode

// SimulateTree builds the directory tree the operations would create
// under base, for previewing a plan before anything is executed.
func SimulateTree(operations []domain.Operation, base string) treeNode {
	root := treeNode{}
	for _, op := range operations {
		rel, err := filepath.Rel(base, op.Destination)
		if err != nil {
			rel = op.Destination
		}
		node := root
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			child, ok := node[part]
			if !ok {
				child = treeNode{}
				node[part] = child
			}
			node = child
		}
	}
	return root
}

// RenderTree renders a simulated tree with box-drawing pointers, one
// entry per line, children sorted for a stable display.
func RenderTree(tree treeNode) string {
	var b strings.Builder
	renderTree(&b, tree, "")
	return b.String()
}

func renderTree(b *strings.Builder, tree treeNode, prefix string) {
	keys := slices.Sorted(maps.Keys(tree))
	for i, key := range keys {
		pointer, extension := "├── ", "│   "
		if i == len(keys)-1 {
			pointer, extension = "└── ", "    "
		}
		b.WriteString(prefix + pointer + key + "\n")
		if len(tree[key]) > 0 {
			renderTree(b, tree[key], prefix+extension)
		}
	}
}
