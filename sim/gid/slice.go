package gid

// Slice returns a lazy view over the collection covering logical positions
// [start, stop) with the given stride. Semantics follow Python sequence
// slicing: negative bounds count from the end, bounds are clamped to
// [0, Len], and an empty window is legal. step must be a positive integer;
// step <= 0 fails with KindUnsupportedSliceDirection. Callers wanting the
// full extent pass (0, c.Len(), 1).
//
// No GIDs are copied. Slicing a view composes the two affine transforms, so
// the result always references the original non-view collection directly:
//
//	c.Slice(a, b, s) then .Slice(d, e, f)  ==  c.Slice(a+d*s, a+e*s, s*f)
func (c Collection) Slice(start, stop, step int) (Collection, error) {
	if step <= 0 {
		return Collection{}, &Error{Kind: KindUnsupportedSliceDirection, Index: step}
	}
	n := c.Len()
	a := clampBound(start, n)
	b := clampBound(stop, n)
	count := 0
	if b > a {
		count = (b - a + step - 1) / step
	}
	if c.tag == tagSliced {
		return Collection{
			tag:   tagSliced,
			base:  c.base,
			start: c.start + a*c.step,
			step:  c.step * step,
			count: count,
		}, nil
	}
	base := c
	return Collection{tag: tagSliced, base: &base, start: a, step: step, count: count}, nil
}

// clampBound normalizes a possibly negative slice bound against length and
// clamps it to [0, length]. Unlike normalize, out-of-range bounds are legal
// and saturate.
func clampBound(bound, length int) int {
	if bound < 0 {
		bound += length
	}
	if bound < 0 {
		return 0
	}
	if bound > length {
		return length
	}
	return bound
}
