package gid

import "fmt"

// GID is a global identifier naming one node in the network. GIDs are
// positive, 1-based, and assigned in strictly increasing order by the kernel.
// A GID is never reused or renumbered within a run.
type GID int64

// ModelID identifies the node model occupying a GID range. The value is an
// index into the kernel's model registry and is opaque to this package.
type ModelID int

// RangeBlock is a maximal contiguous ascending run of GIDs sharing one model.
// First and Last are inclusive; a single node is the degenerate block with
// First == Last.
type RangeBlock struct {
	First GID
	Last  GID
	Model ModelID
}

// Len returns the number of GIDs covered by the block.
func (b RangeBlock) Len() int {
	return int(b.Last-b.First) + 1
}

// Contains reports whether g falls inside the block.
func (b RangeBlock) Contains(g GID) bool {
	return b.First <= g && g <= b.Last
}

func (b RangeBlock) String() string {
	if b.First == b.Last {
		return fmt.Sprintf("%d(model %d)", b.First, b.Model)
	}
	return fmt.Sprintf("%d..%d(model %d)", b.First, b.Last, b.Model)
}
