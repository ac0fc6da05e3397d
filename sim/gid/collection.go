package gid

import (
	"fmt"
	"sort"
	"strings"
)

// tag discriminates the three collection variants. Operations resolve
// behavior by switching on the tag rather than by interface dispatch.
type tag uint8

const (
	// tagPrimitive: at most one RangeBlock. The zero Collection is an empty
	// primitive.
	tagPrimitive tag = iota
	// tagComposite: two or more disjoint, ascending RangeBlocks.
	tagComposite
	// tagSliced: an affine (start, step, count) window over base, which is
	// always a non-view collection.
	tagSliced
)

// Collection is an ordered set of GIDs, stored as disjoint ascending
// RangeBlocks or as an affine view over such a collection. Collections are
// immutable: every operation returns a new value and never mutates the
// receiver, so values may be shared freely across goroutines.
type Collection struct {
	tag    tag
	blocks []RangeBlock // primitive/composite payload; nil when sliced or empty
	// offsets[i] is the number of GIDs preceding blocks[i]; the final entry
	// is the total length. len(offsets) == len(blocks)+1, except for the
	// zero value where both are nil.
	offsets []int

	// view payload, tagSliced only. start and step are logical positions in
	// base's coordinate space; count is the view length.
	base  *Collection
	start int
	step  int
	count int
}

// NewPrimitive wraps a single kernel-issued RangeBlock as a collection.
func NewPrimitive(b RangeBlock) Collection {
	if b.First < 1 || b.Last < b.First {
		panic(fmt.Sprintf("NewPrimitive: malformed block %v", b))
	}
	return fromBlocks([]RangeBlock{b})
}

// fromBlocks builds a primitive or composite collection from canonical
// blocks: ascending, disjoint, maximally fused. The blocks slice is owned by
// the new collection and must not be retained by the caller.
func fromBlocks(blocks []RangeBlock) Collection {
	if len(blocks) == 0 {
		return Collection{}
	}
	offsets := make([]int, len(blocks)+1)
	for i, b := range blocks {
		if b.Last < b.First {
			panic(fmt.Sprintf("fromBlocks: malformed block %v", b))
		}
		if i > 0 {
			prev := blocks[i-1]
			if b.First <= prev.Last {
				panic(fmt.Sprintf("fromBlocks: blocks %v and %v out of order", prev, b))
			}
			if b.First == prev.Last+1 && b.Model == prev.Model {
				panic(fmt.Sprintf("fromBlocks: blocks %v and %v not fused", prev, b))
			}
		}
		offsets[i+1] = offsets[i] + b.Len()
	}
	t := tagPrimitive
	if len(blocks) > 1 {
		t = tagComposite
	}
	return Collection{tag: t, blocks: blocks, offsets: offsets}
}

// Len returns the number of GIDs in the collection.
func (c Collection) Len() int {
	if c.tag == tagSliced {
		return c.count
	}
	if len(c.offsets) == 0 {
		return 0
	}
	return c.offsets[len(c.offsets)-1]
}

// normalize maps a possibly negative index onto a physical offset in
// [0, length). Negative indexes count from the end, Python style.
func normalize(index, length int) (int, error) {
	n := index
	if n < 0 {
		n += length
	}
	if n < 0 || n >= length {
		return 0, &Error{Kind: KindIndexOutOfRange, Index: index}
	}
	return n, nil
}

// At returns the GID at the given position. Negative positions count from
// the end: At(-1) is the last GID. Fails with KindIndexOutOfRange when the
// normalized position falls outside the collection.
func (c Collection) At(index int) (GID, error) {
	pos, err := normalize(index, c.Len())
	if err != nil {
		return 0, err
	}
	g, _ := c.locate(pos, 0)
	return g, nil
}

// locate resolves a logical position to its GID and the index of the base
// block holding it. hint is a block index known to lie at or before the
// position; ascending callers (cursors) pass their previous block to make
// sequential access amortized O(1). Random access passes 0 and pays one
// binary search.
func (c Collection) locate(pos, hint int) (GID, int) {
	if c.tag == tagSliced {
		return c.base.locate(c.start+pos*c.step, hint)
	}
	i := hint
	if i+1 >= len(c.offsets) || c.offsets[i] > pos {
		i = 0
	}
	if c.offsets[i+1] <= pos {
		// Not in the hinted block: binary search the remainder.
		j := sort.Search(len(c.blocks)-i, func(k int) bool {
			return c.offsets[i+k+1] > pos
		})
		i += j
	}
	return c.blocks[i].First + GID(pos-c.offsets[i]), i
}

// modelAt returns the model of the block holding logical position pos.
// pos must be in range.
func (c Collection) modelAt(pos, hint int) (ModelID, int) {
	if c.tag == tagSliced {
		return c.base.modelAt(c.start+pos*c.step, hint)
	}
	_, i := c.locate(pos, hint)
	return c.blocks[i].Model, i
}

// position returns the logical position of g within a non-view collection,
// or false when g is not a member.
func (c Collection) position(g GID) (int, bool) {
	i := sort.Search(len(c.blocks), func(k int) bool {
		return c.blocks[k].Last >= g
	})
	if i == len(c.blocks) || !c.blocks[i].Contains(g) {
		return 0, false
	}
	return c.offsets[i] + int(g-c.blocks[i].First), true
}

// Member reports whether g is in the collection. O(log n) in the number of
// blocks; views add a constant-time stride check.
func (c Collection) Member(g GID) bool {
	if c.tag != tagSliced {
		_, ok := c.position(g)
		return ok
	}
	pos, ok := c.base.position(g)
	if !ok {
		return false
	}
	rel := pos - c.start
	return rel >= 0 && rel%c.step == 0 && rel/c.step < c.count
}

// Equal reports whether the two collections materialize to the same
// ascending (GID, model) sequence. Block structure and view history do not
// participate: a collection rebuilt from its own GID list compares equal to
// the original.
func (c Collection) Equal(other Collection) bool {
	if c.Len() != other.Len() {
		return false
	}
	a, b := c.Items(), other.Items()
	for {
		ga, ma, ok := a.Next()
		if !ok {
			return true
		}
		gb, mb, _ := b.Next()
		if ga != gb || ma != mb {
			return false
		}
	}
}

// GIDs materializes the collection as an ascending GID slice. Intended for
// small collections and tests; prefer Iterate for anything large.
func (c Collection) GIDs() []GID {
	out := make([]GID, 0, c.Len())
	for cur := c.Iterate(); ; {
		g, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, g)
	}
}

func (c Collection) String() string {
	switch c.tag {
	case tagSliced:
		return fmt.Sprintf("Collection(view of %s start=%d step=%d len=%d)",
			c.base, c.start, c.step, c.count)
	default:
		if len(c.blocks) == 0 {
			return "Collection(empty)"
		}
		parts := make([]string, len(c.blocks))
		for i, b := range c.blocks {
			parts[i] = b.String()
		}
		return "Collection(" + strings.Join(parts, " ") + ")"
	}
}
