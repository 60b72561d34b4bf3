// Package bptree implements a generic, in-memory B+ tree: an ordered
// associative container mapping comparable keys to arbitrary values,
// tuned for large node fan-out and fast ascending range scans.
//
// A B+ tree differs from a plain B-tree in two ways that matter for
// this package: values live only in leaf nodes, and every leaf is
// linked to its successor so a range scan never has to walk back up
// into the inner nodes once it reaches the first matching leaf.
//
// This implementation provides:
//   - Generic key and value types, constrained by cmp.Ordered for keys
//   - A configurable order (maximum entries per node) via functional options
//   - An optional key-transform boundary, for keys whose natural
//     representation isn't directly orderable
//   - The full point/range operation set: Insert, Upsert, Search,
//     Contains, Delete, Clear, Items/Keys/Values, Range
//   - Named error kinds (ErrDuplicateKey, ErrNotFound,
//     ErrInvalidConfiguration) instead of bare booleans
//   - A lazy, cursor-based range view that does not materialize its
//     results up front
//
// Example usage:
//
//	tree, err := bptree.New[int, string]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tree.Insert(10, "ten"); err != nil {
//	    log.Fatal(err)
//	}
//	tree.Upsert(5, "five")
//	tree.Upsert(20, "twenty")
//
//	if value, err := tree.Search(10); err == nil {
//	    fmt.Printf("Found: %s\n", value)
//	}
//
//	lo, hi := 5, 20
//	cur := tree.Range(&lo, &hi)
//	for cur.Next() {
//	    fmt.Printf("%d -> %s\n", cur.Key(), cur.Value())
//	}
//
// The tree is not safe for concurrent use; callers sharing a tree
// across goroutines must serialize access themselves (for example
// with a single sync.RWMutex around the tree).
//
// Performance characteristics (order O, size n):
//   - Insert / Upsert / Search / Delete: O(log_O n)
//   - Range: O(log_O n + k), k the number of entries yielded
//   - Space: O(n)
package bptree
