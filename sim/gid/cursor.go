package gid

// Cursor walks a collection in ascending GID order. Cursors are independent:
// any number may be open on the same collection, and a fresh one restarts
// from the beginning. The zero Cursor is not valid; obtain one from
// Collection.Iterate.
type Cursor struct {
	col  Collection
	pos  int
	hint int // base block index of the previous element
}

// Iterate returns a cursor positioned before the first GID.
func (c Collection) Iterate() *Cursor {
	return &Cursor{col: c}
}

// Next returns the next GID in ascending order, or false when exhausted.
func (cur *Cursor) Next() (GID, bool) {
	if cur.pos >= cur.col.Len() {
		return 0, false
	}
	g, hint := cur.col.locate(cur.pos, cur.hint)
	cur.pos++
	cur.hint = hint
	return g, true
}

// ItemCursor walks a collection yielding (GID, model) pairs in ascending
// order. The model is the one attached to the GID's RangeBlock at creation
// time.
type ItemCursor struct {
	col  Collection
	pos  int
	hint int
}

// Items returns an item cursor positioned before the first GID.
func (c Collection) Items() *ItemCursor {
	return &ItemCursor{col: c}
}

// Next returns the next (GID, model) pair, or false when exhausted.
func (cur *ItemCursor) Next() (GID, ModelID, bool) {
	if cur.pos >= cur.col.Len() {
		return 0, 0, false
	}
	g, hint := cur.col.locate(cur.pos, cur.hint)
	m, _ := cur.col.modelAt(cur.pos, hint)
	cur.pos++
	cur.hint = hint
	return g, m, true
}

// item pairs a GID with its model during materialization.
type item struct {
	gid   GID
	model ModelID
}

// materialize flattens the collection into ascending (GID, model) pairs.
func (c Collection) materialize() []item {
	out := make([]item, 0, c.Len())
	for cur := c.Items(); ; {
		g, m, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, item{gid: g, model: m})
	}
}
