package bptree

import (
	"cmp"
	"fmt"
)

// CheckInvariants walks the whole tree and returns a descriptive error
// at the first structural invariant it finds violated, or nil if the
// tree is well-formed. It is not needed for normal operation; every
// mutating method maintains these invariants on its own. It exists to
// make a tree's invariants directly testable (spec.md §8), promoted
// from what was a test-only helper in the teacher's own test suite.
//
// Checked invariants:
//   - every leaf holds between minLeafEntries and maxLeafEntries
//     entries, except a root that is itself a leaf
//   - every inner node holds between minInternalKeys and
//     maxInternalKeys separator keys, except the root
//   - keys are strictly ascending within every node
//   - every key in a subtree falls within the bounds implied by its
//     ancestors' separator keys
//   - every leaf is at the same depth
//   - the leaf chain, walked left to right, visits every entry exactly
//     once, in ascending key order, and its count matches Size
func (t *Tree[RawK, K, V]) CheckInvariants() error {
	if _, err := t.checkSubtree(t.root, true, nil, nil); err != nil {
		return err
	}

	count := 0
	var prev *K
	for n := t.head; n != nil; n = n.next {
		if !n.isLeaf {
			return fmt.Errorf("bptree: leaf chain visited a non-leaf node")
		}
		for _, e := range n.entries {
			if prev != nil && !(*prev < e.Key) {
				return fmt.Errorf("bptree: leaf chain out of order at key %v", e.Key)
			}
			k := e.Key
			prev = &k
			count++
		}
	}
	if count != t.size {
		return fmt.Errorf("bptree: leaf chain has %d entries, Size reports %d", count, t.size)
	}
	return nil
}

// checkSubtree validates n and everything below it, returning its
// depth (0 for a leaf). lo and hi bound every key within n, following
// the separator keys accumulated on the path from the root.
func (t *Tree[RawK, K, V]) checkSubtree(n *node[K, V], isRoot bool, lo, hi *K) (int, error) {
	if err := checkBounds(n, lo, hi); err != nil {
		return 0, err
	}

	if n.isLeaf {
		if !isRoot {
			if len(n.entries) < minLeafEntries(t.order) {
				return 0, fmt.Errorf("bptree: leaf underflow: %d entries, minimum %d", len(n.entries), minLeafEntries(t.order))
			}
		}
		if len(n.entries) > maxLeafEntries(t.order) {
			return 0, fmt.Errorf("bptree: leaf overflow: %d entries, maximum %d", len(n.entries), maxLeafEntries(t.order))
		}
		for i := 1; i < len(n.entries); i++ {
			if !(n.entries[i-1].Key < n.entries[i].Key) {
				return 0, fmt.Errorf("bptree: leaf keys out of order at index %d", i)
			}
		}
		return 0, nil
	}

	if !isRoot {
		if len(n.keys) < minInternalKeys(t.order) {
			return 0, fmt.Errorf("bptree: inner node underflow: %d keys, minimum %d", len(n.keys), minInternalKeys(t.order))
		}
	} else if len(n.children) < 2 {
		return 0, fmt.Errorf("bptree: root inner node has fewer than 2 children")
	}
	if len(n.keys) > maxInternalKeys(t.order) {
		return 0, fmt.Errorf("bptree: inner node overflow: %d keys, maximum %d", len(n.keys), maxInternalKeys(t.order))
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, fmt.Errorf("bptree: inner node has %d children but %d keys", len(n.children), len(n.keys))
	}
	for i := 1; i < len(n.keys); i++ {
		if !(n.keys[i-1] < n.keys[i]) {
			return 0, fmt.Errorf("bptree: inner node separator keys out of order at index %d", i)
		}
	}

	var childDepth int
	for i, child := range n.children {
		if child.parent != n {
			return 0, fmt.Errorf("bptree: child at index %d has a stale parent pointer", i)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		d, err := t.checkSubtree(child, false, childLo, childHi)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			childDepth = d
		} else if d != childDepth {
			return 0, fmt.Errorf("bptree: uneven leaf depth: child %d has depth %d, expected %d", i, d, childDepth)
		}
	}
	return childDepth + 1, nil
}

// checkBounds verifies every key held directly in n (its entries, if a
// leaf, or its separator keys, if inner) falls within [lo, hi).
func checkBounds[K cmp.Ordered, V any](n *node[K, V], lo, hi *K) error {
	check := func(k K) error {
		if lo != nil && k < *lo {
			return fmt.Errorf("bptree: key %v below lower bound %v", k, *lo)
		}
		if hi != nil && !(k < *hi) {
			return fmt.Errorf("bptree: key %v at or above upper bound %v", k, *hi)
		}
		return nil
	}
	if n.isLeaf {
		for _, e := range n.entries {
			if err := check(e.Key); err != nil {
				return err
			}
		}
		return nil
	}
	for _, k := range n.keys {
		if err := check(k); err != nil {
			return err
		}
	}
	return nil
}
