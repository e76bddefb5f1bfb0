// Package treego implements a generic B+tree: an in-memory, single-threaded,
// ordered associative index over a totally ordered key type K and an
// arbitrary value type V.
//
// Unlike a classic B-tree, values live only in the leaves; internal nodes
// hold separator keys and child references, and the leaves are threaded
// into a doubly linked list in ascending key order. That makes range scans
// and full traversal a single walk of the leaf chain instead of an in-order
// tree descent.
//
// This implementation provides:
//   - Generic types for both keys and values using Go generics
//   - A configurable minimum degree controlling node fan-out
//   - Point insert/update, point and range lookup, batched lookup, and
//     delete with structural rebalancing (borrow-or-merge)
//   - Ascending iteration over keys, values, and entries
//
// Example usage:
//
//	tree, err := treego.New[int, string](3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tree.Put(10, "ten")
//	tree.Put(5, "five")
//	tree.Put(20, "twenty")
//
//	if value, found := tree.Get(10); found {
//	    fmt.Printf("Found: %s\n", value)
//	}
//
//	for _, e := range tree.Entries() {
//	    fmt.Printf("%d -> %s\n", e.Key, e.Value)
//	}
//
// The tree is not safe for concurrent use: every public method must
// complete before the next one begins, and callers needing concurrent
// access must provide their own synchronization.
package treego
