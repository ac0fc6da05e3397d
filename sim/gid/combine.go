package gid

import "sort"

// Combine merges two collections into a new canonical, non-view collection:
// the "+" operator. The result contains every GID of both operands in
// ascending order, with contiguous same-model runs fused into maximal
// RangeBlocks; it is always eligible for further combination regardless of
// the operands' view status.
//
// Two failure modes, both atomic (no partial result):
//   - KindUnsupportedCombination: an operand is a strided view (step > 1)
//     over a multi-block collection. Position arithmetic over such a view
//     cannot be carried into the merged block structure. A strided view over
//     a single-block primitive remains combinable.
//   - KindOverlappingIdentifiers: the operands share a GID.
func (c Collection) Combine(other Collection) (Collection, error) {
	if err := c.combinable(); err != nil {
		return Collection{}, err
	}
	if err := other.combinable(); err != nil {
		return Collection{}, err
	}
	merged := append(c.materialize(), other.materialize()...)
	sort.Slice(merged, func(i, j int) bool { return merged[i].gid < merged[j].gid })
	for i := 1; i < len(merged); i++ {
		if merged[i].gid == merged[i-1].gid {
			return Collection{}, &Error{Kind: KindOverlappingIdentifiers, GID: merged[i].gid}
		}
	}
	return fromBlocks(fuse(merged)), nil
}

// combinable checks the operand rule for Combine.
func (c Collection) combinable() error {
	if c.tag == tagSliced && c.step != 1 && len(c.base.blocks) > 1 {
		return &Error{Kind: KindUnsupportedCombination, Index: c.step}
	}
	return nil
}

// fuse packs ascending, duplicate-free (GID, model) pairs into maximal
// RangeBlocks: consecutive GIDs sharing a model extend the open block.
func fuse(items []item) []RangeBlock {
	var blocks []RangeBlock
	for _, it := range items {
		n := len(blocks)
		if n > 0 && blocks[n-1].Last+1 == it.gid && blocks[n-1].Model == it.model {
			blocks[n-1].Last = it.gid
			continue
		}
		blocks = append(blocks, RangeBlock{First: it.gid, Last: it.gid, Model: it.model})
	}
	return blocks
}
