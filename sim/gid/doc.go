// Package gid provides the global identifier (GID) collection type used to
// address populations of nodes in the simulation kernel.
//
// # Reading Guide
//
// Start with these three files to understand the collection machinery:
//   - range.go: RangeBlock, the contiguous same-model run of GIDs
//   - collection.go: the Collection value, its tag, and position lookup
//   - slice.go: affine slicing and how views compose onto the base collection
//
// # Representation
//
// Networks may contain millions of nodes, so a collection never stores one
// entry per GID. A Collection is an ordered list of disjoint RangeBlocks
// (primitive when there is exactly one block, composite otherwise), or a
// sliced view: an affine (start, step, count) window over a non-view base
// collection. Views never copy elements; slicing a view composes the two
// transforms so every view is at most one hop from its base.
//
// Collections are immutable. Every operation returns a new value, which makes
// them safe to share across goroutines without locking.
//
// # Key Operations
//
//   - Len, Member, At: O(log n) in the number of blocks
//   - Iterate, Items: lazy ascending cursors, restartable
//   - Slice: build a view, Python-style index semantics including negatives
//   - Combine: the "+" operator, producing a new canonical collection
//   - FromGIDs: validate an explicit GID list against the kernel registry
package gid
