package gid

import "sort"

// Registry is the kernel-side view this package needs to validate explicit
// GID lists: which identifiers exist, and which model each one carries. The
// kernel owns and serializes all writes to the underlying state; this
// package only reads it.
type Registry interface {
	// MaxGID returns the highest GID assigned so far, 0 when no node has
	// been created in the current run.
	MaxGID() GID
	// Lookup returns the model of g, or false when g has never been
	// assigned.
	Lookup(g GID) (ModelID, bool)
}

// FromGIDs builds a canonical collection from an explicit list of GIDs,
// validating every entry against the registry. Input order is irrelevant:
// the list is sorted ascending and consecutive same-model GIDs are fused
// into maximal RangeBlocks. The resulting collection is independent of how
// the GIDs were originally created.
//
// Failure modes:
//   - KindEmptyIdentifierSpace: the list is non-empty but no node exists yet.
//   - KindUnknownIdentifier: an entry is not registered with the kernel.
//   - KindOverlappingIdentifiers: an entry appears more than once. Duplicate
//     input is rejected rather than deduplicated, matching the strictness of
//     Combine.
func FromGIDs(reg Registry, gids []GID) (Collection, error) {
	if len(gids) == 0 {
		return Collection{}, nil
	}
	if reg.MaxGID() == 0 {
		return Collection{}, &Error{Kind: KindEmptyIdentifierSpace, GID: gids[0]}
	}
	sorted := make([]GID, len(gids))
	copy(sorted, gids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	items := make([]item, len(sorted))
	for i, g := range sorted {
		if i > 0 && g == sorted[i-1] {
			return Collection{}, &Error{Kind: KindOverlappingIdentifiers, GID: g}
		}
		m, ok := reg.Lookup(g)
		if !ok {
			return Collection{}, &Error{Kind: KindUnknownIdentifier, GID: g}
		}
		items[i] = item{gid: g, model: m}
	}
	return fromBlocks(fuse(items)), nil
}
