package bptree

import (
	"cmp"
	"fmt"
	"strings"
)

// String returns a one-line summary of the tree, in the style of the
// teacher's own sibling B-tree package.
func (t *Tree[RawK, K, V]) String() string {
	return fmt.Sprintf("Tree(order=%d, size=%d)", t.order, t.size)
}

// Dump renders the full tree structure, one node per line, indented by
// depth, for debugging and for the dump step of the CLI's demo
// subcommand. It is
// not intended for parsing.
func (t *Tree[RawK, K, V]) Dump() string {
	var b strings.Builder
	dumpNode(&b, t.root, 0)
	return b.String()
}

func dumpNode[K cmp.Ordered, V any](b *strings.Builder, n *node[K, V], depth int) {
	indent := strings.Repeat("  ", depth)
	if n.isLeaf {
		fmt.Fprintf(b, "%sleaf %v\n", indent, leafKeys(n))
		return
	}
	fmt.Fprintf(b, "%sinner %v\n", indent, n.keys)
	for _, c := range n.children {
		dumpNode(b, c, depth+1)
	}
}

func leafKeys[K cmp.Ordered, V any](n *node[K, V]) []K {
	keys := make([]K, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}
	return keys
}
