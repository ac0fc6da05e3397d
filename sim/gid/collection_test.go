package gid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistry is a map-backed Registry for tests that do not need a kernel.
type fakeRegistry struct {
	max    GID
	models map[GID]ModelID
}

func newFakeRegistry(blocks ...RangeBlock) *fakeRegistry {
	r := &fakeRegistry{models: make(map[GID]ModelID)}
	for _, b := range blocks {
		for g := b.First; g <= b.Last; g++ {
			r.models[g] = b.Model
		}
		if b.Last > r.max {
			r.max = b.Last
		}
	}
	return r
}

func (r *fakeRegistry) MaxGID() GID { return r.max }

func (r *fakeRegistry) Lookup(g GID) (ModelID, bool) {
	m, ok := r.models[g]
	return m, ok
}

func TestRangeBlock_LenAndContains(t *testing.T) {
	b := RangeBlock{First: 5, Last: 9, Model: 2}
	assert.Equal(t, 5, b.Len())
	assert.True(t, b.Contains(5))
	assert.True(t, b.Contains(9))
	assert.False(t, b.Contains(4))
	assert.False(t, b.Contains(10))

	single := RangeBlock{First: 7, Last: 7}
	assert.Equal(t, 1, single.Len())
}

func TestPrimitive_IterationYieldsAscendingRange(t *testing.T) {
	// 10 nodes starting at GID 1.
	c := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})

	assert.Equal(t, 10, c.Len())
	want := []GID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, want, c.GIDs())

	// Cursors are independent and restartable.
	a, b := c.Iterate(), c.Iterate()
	ga, _ := a.Next()
	gb, _ := b.Next()
	assert.Equal(t, ga, gb)
	ga2, _ := a.Next()
	assert.Equal(t, GID(2), ga2)
	gb2, _ := b.Next()
	assert.Equal(t, GID(2), gb2)
}

func TestPrimitive_At(t *testing.T) {
	c := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})

	tests := []struct {
		index int
		want  GID
	}{
		{0, 1},
		{2, 3},
		{9, 10},
		{-1, 10},
		{-10, 1},
	}
	for _, tc := range tests {
		got, err := c.At(tc.index)
		if err != nil {
			t.Errorf("At(%d) returned error %v", tc.index, err)
			continue
		}
		if got != tc.want {
			t.Errorf("At(%d) = %d, want %d", tc.index, got, tc.want)
		}
	}
}

func TestAt_OutOfRange(t *testing.T) {
	c := NewPrimitive(RangeBlock{First: 1, Last: 5, Model: 0})

	for _, index := range []int{5, 7, -6, 100} {
		_, err := c.At(index)
		require.Error(t, err, "At(%d)", index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "At(%d): got %v", index, err)
	}

	var kindErr *Error
	_, err := c.At(7)
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, 7, kindErr.Index)
}

func TestEmptyCollection(t *testing.T) {
	var c Collection
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.GIDs())
	assert.False(t, c.Member(1))
	_, err := c.At(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestMember_Primitive(t *testing.T) {
	c := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})

	assert.True(t, c.Member(5))
	assert.True(t, c.Member(10))
	assert.False(t, c.Member(11))
	assert.False(t, c.Member(0))
}

func TestAt_CompositeCrossesBlocks(t *testing.T) {
	a := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})
	b := NewPrimitive(RangeBlock{First: 26, Last: 55, Model: 2})
	c, err := a.Combine(b)
	require.NoError(t, err)

	require.Equal(t, 40, c.Len())
	got, err := c.At(9)
	require.NoError(t, err)
	assert.Equal(t, GID(10), got)
	got, err = c.At(10)
	require.NoError(t, err)
	assert.Equal(t, GID(26), got)
	got, err = c.At(-1)
	require.NoError(t, err)
	assert.Equal(t, GID(55), got)
}

func TestEqual_IgnoresBlockHistory(t *testing.T) {
	reg := newFakeRegistry(RangeBlock{First: 1, Last: 20, Model: 0})

	direct := NewPrimitive(RangeBlock{First: 1, Last: 20, Model: 0})
	left := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})
	right := NewPrimitive(RangeBlock{First: 11, Last: 20, Model: 0})
	combined, err := left.Combine(right)
	require.NoError(t, err)

	// Adjacent same-model blocks fuse, so both materialize identically.
	assert.True(t, direct.Equal(combined))
	assert.True(t, combined.Equal(direct))

	rebuilt, err := FromGIDs(reg, direct.GIDs())
	require.NoError(t, err)
	assert.True(t, direct.Equal(rebuilt))
}

func TestEqual_ModelMatters(t *testing.T) {
	a := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 0})
	b := NewPrimitive(RangeBlock{First: 1, Last: 10, Model: 1})
	c := NewPrimitive(RangeBlock{First: 1, Last: 9, Model: 0})

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(a))
}

func TestItems_ReportModels(t *testing.T) {
	a := NewPrimitive(RangeBlock{First: 1, Last: 2, Model: 3})
	b := NewPrimitive(RangeBlock{First: 3, Last: 4, Model: 7})
	c, err := a.Combine(b)
	require.NoError(t, err)

	var gids []GID
	var models []ModelID
	for cur := c.Items(); ; {
		g, m, ok := cur.Next()
		if !ok {
			break
		}
		gids = append(gids, g)
		models = append(models, m)
	}
	assert.Equal(t, []GID{1, 2, 3, 4}, gids)
	assert.Equal(t, []ModelID{3, 3, 7, 7}, models)
}
